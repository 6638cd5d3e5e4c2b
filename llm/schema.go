package llm

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
)

// validate is the shared validator instance used across the package.
var validate = validator.New()

// Validate checks the given struct against its validation tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// GenerateJSONSchema reflects a JSON schema for the given struct, in the
// plain map form providers expect in a response_format block.
func GenerateJSONSchema(v any) (map[string]any, error) {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	// response_format schemas must not carry a $schema version marker.
	delete(out, "$schema")
	return out, nil
}

func marshalSchema(schema any) (string, error) {
	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
