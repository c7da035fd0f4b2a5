package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed seed.json
var seedJSON []byte

// defaultCatalog is the package-level catalog singleton, built by init()
// from the embedded seed.
var defaultCatalog *Catalog

func init() {
	c, err := buildSeed(seedJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded seed: %v", err))
	}
	defaultCatalog = c
}

// Default returns the catalog built from the embedded seed.
func Default() *Catalog {
	return defaultCatalog
}

// buildSeed validates the seed bytes against the seed schema and builds a
// catalog from them.
func buildSeed(data []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	compiled, err := compileSeedSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("seed schema validation: %w", err)
	}

	var raw []rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return New(raw)
}

func compileSeedSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(seedSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal seed schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse seed schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://catalog-seed.json", defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://catalog-seed.json")
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	return compiled, nil
}
