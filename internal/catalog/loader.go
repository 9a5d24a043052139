package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledItemSchema compiles itemSchema once and caches the result.
func compiledItemSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		raw, err := json.Marshal(itemSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal item schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse item schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog-item.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Load parses a catalog from raw JSON (an array of item objects).
// Each entry is validated against the item schema; entries that fail
// validation or decoding are logged and skipped rather than aborting
// the load. Returns an error only if the document itself is unreadable.
func Load(data []byte, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(data, &rawItems); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	schema, err := compiledItemSchema()
	if err != nil {
		return nil, fmt.Errorf("compile item schema: %w", err)
	}

	items := make([]Item, 0, len(rawItems))
	for i, raw := range rawItems {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			log.Warn("skipping unreadable catalog entry", zap.Int("index", i), zap.Error(err))
			continue
		}
		if err := schema.Validate(parsed); err != nil {
			log.Warn("skipping invalid catalog entry", zap.Int("index", i), zap.Error(err))
			continue
		}
		var it Item
		if err := json.Unmarshal(raw, &it); err != nil {
			log.Warn("skipping undecodable catalog entry", zap.Int("index", i), zap.Error(err))
			continue
		}
		items = append(items, it)
	}

	return New(items), nil
}

// LoadFile reads and parses a catalog from a JSON file on disk.
func LoadFile(path string, log *zap.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Load(data, log)
}
