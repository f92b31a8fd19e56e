package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/sqlbind/app/script"
)

func main() {
	schema := script.Schema()
	schema.Title = "sqlbind script schema"
	schema.Description = "Schema for sqlbind YAML script files"
	schema.Version = "1.0.0"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}
