package manifest

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed manifest.schema.json
var manifestSchema string

// ValidateSchema checks raw manifest JSON against the embedded document
// schema. Schema findings are reported as errors in the result; the error
// return is reserved for unreadable input or a broken schema.
func (v *Validator) ValidateSchema(data []byte) (ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(manifestSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	res, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("schema validation failed: %w", err)
	}

	result := ValidationResult{IsValid: res.Valid()}
	for _, desc := range res.Errors() {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return result, nil
}
