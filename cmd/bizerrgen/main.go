/*
   Copyright 2026 The Bizerr Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// cmd/bizerrgen generates a strongly-typed Go error-code file from an
// error-catalog YAML schema.
//
// Typical invocation, wired into the consuming package with go:generate:
//
//	bizerrgen -schema biz_errors.yaml -out errcodes.gen.go -pkg myservice
//
// On any failure nothing is written to the output path and the process exits
// non-zero with the schema path and the violated rule.
package main

import (
	"flag"
	"fmt"
	"log"

	"bizerr.dev/bizerr/codegen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bizerrgen: ")

	schema := flag.String("schema", "", "path to the error-catalog YAML schema (required)")
	out := flag.String("out", "", "path of the generated Go file (required)")
	pkg := flag.String("pkg", codegen.DefaultPackageName, "package name of the generated file")
	flag.Parse()

	if *schema == "" || *out == "" {
		flag.Usage()
		log.Fatal("both -schema and -out are required")
	}

	if err := codegen.Generate(*schema, *out, codegen.Options{PackageName: *pkg}); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %s\n", *out)
}
