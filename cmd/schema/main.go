// Command schema writes the JSON schema of the buddy configuration
package main

import (
	"encoding/json"
	"os"

	"github.com/go-pkgz/lgr"

	"github.com/woodmeone/Buddy/pkg/config"
)

func main() {
	schema, err := config.GenerateSchema()
	if err != nil {
		lgr.Fatalf("failed to generate schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		lgr.Fatalf("failed to marshal schema: %v", err)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil {
		lgr.Fatalf("failed to write schema file: %v", err)
	}
	lgr.Printf("[INFO] schema generated at %s", outputPath)
}
