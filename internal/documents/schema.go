package documents

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildExtractedDataSchema returns a JSON-Schema (draft 2020-12 subset) for
// the decoder output contract. The model is instructed to produce exactly this
// shape; anything that fails validation is rejected before a record is written.
func buildExtractedDataSchema() map[string]any {
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}

	fieldProps := map[string]any{
		"sender":   map[string]any{"type": "string"},
		"receiver": map[string]any{"type": "string"},
		"date":     map[string]any{"type": "string"},
		"deadline": map[string]any{"type": "string"},
		"subject":  map[string]any{"type": "string"},
		"demands":  stringList,
	}

	props := map[string]any{
		"summary":    map[string]any{"type": "string", "minLength": 1},
		"keyPoints":  stringList,
		"actionPlan": map[string]any{"type": "string"},
		"extractedFields": map[string]any{
			"type":       "object",
			"properties": fieldProps,
		},
		"detectedDocType": map[string]any{"type": "string"},
		"categoryTag":     map[string]any{"type": "string"},
		"urgency": map[string]any{
			"type": "string",
			"enum": []string{UrgencyLow, UrgencyMedium, UrgencyHigh},
		},
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required": []string{
			"summary", "keyPoints", "actionPlan",
			"detectedDocType", "categoryTag", "urgency",
		},
	}
}

// ParseExtractedData validates the raw model output against the contract and
// decodes it. Any JSON or schema violation maps to ErrBadExtraction.
func ParseExtractedData(raw json.RawMessage) (ExtractedData, error) {
	if err := validateAgainstSchema(buildExtractedDataSchema(), raw); err != nil {
		return ExtractedData{}, fmt.Errorf("%w: %v", ErrBadExtraction, err)
	}

	var data ExtractedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ExtractedData{}, fmt.Errorf("%w: decode: %v", ErrBadExtraction, err)
	}
	return data, nil
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}
