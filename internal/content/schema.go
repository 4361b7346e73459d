package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled document schemas by document name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument checks a parsed document against its embedded schema.
func validateDocument(doc string, value any) error {
	compiled, err := compiledSchema(doc)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", doc, err)
	}
	if err := compiled.Validate(value); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(doc string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(doc); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := embedded.ReadFile("schema/" + doc + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", doc)
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(doc, compiled)
	return compiled, nil
}

// Schema returns the raw JSON Schema for a document name.
func Schema(doc string) ([]byte, error) {
	return embedded.ReadFile("schema/" + doc + ".schema.json")
}
