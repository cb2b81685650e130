package lessons

// ContentSchemaName identifies the compiled content schema.
const ContentSchemaName = "lesson-content"

// ContentSchema is the JSON schema every lesson's content must satisfy.
// A lesson without words can never be practised, so minItems is 1.
var ContentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"words": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"word": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"translation": map[string]any{
						"type": "string",
					},
					"image": map[string]any{
						"type": "string",
					},
				},
				"required":             []any{"word", "translation", "image"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{"words"},
}
