package cutscene

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed manifest.schema.json
var manifestSchemaJSON []byte

const manifestSchemaURL = "https://f2b.local/manifest.schema.json"

var manifestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(manifestSchemaURL, bytes.NewReader(manifestSchemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(manifestSchemaURL)
})

// validateManifest checks a decoded YAML document against the manifest
// schema. The document is passed through JSON so numbers reach the
// validator in the form it expects.
func validateManifest(doc any) error {
	schema, err := manifestSchema()
	if err != nil {
		return fmt.Errorf("cutscene: manifest schema: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cutscene: manifest is not representable as JSON: %w", err)
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("cutscene: manifest: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("cutscene: invalid manifest: %w", err)
	}
	return nil
}
