//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Generates the ent client into gen/ent from the schemas in db/ent/schema.
// Run from the repo root: go run db/ent/generate.go
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/coursedeck/syllabus-tracker/gen/ent",
			Schema:  "github.com/coursedeck/syllabus-tracker/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
