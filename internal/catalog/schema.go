package catalog

// itemSchema is the JSON schema each catalog entry is validated
// against on load. Entries that fail validation are skipped so one
// malformed item cannot take down the whole catalog.
var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                    map[string]any{"type": "string", "minLength": 1},
		"word":                  map[string]any{"type": "string", "minLength": 1},
		"translation":           map[string]any{"type": "string", "minLength": 1},
		"translation_localized": map[string]any{"type": "string"},
		"category":              map[string]any{"type": "string", "minLength": 1},
		"level":                 map[string]any{"type": "string"},
		"examples": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source_text":    map[string]any{"type": "string", "minLength": 1},
					"localized_text": map[string]any{"type": "string"},
				},
				"required":             []any{"source_text"},
				"additionalProperties": false,
			},
		},
		"distractors": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required":             []any{"id", "word", "translation", "category"},
	"additionalProperties": false,
}
