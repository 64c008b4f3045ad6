package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/loamtools/loam/site"
)

func main() {
	schemaBytes, err := site.GenerateFrontmatterSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	outputDir := "schema"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	outputPath := filepath.Join(outputDir, "frontmatter.schema.json")
	if err := os.WriteFile(outputPath, schemaBytes, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated frontmatter schema at %s", outputPath)
}
