package decomposer

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/definitions.json
var schemaDefinitions string

// ValidationError lists every schema violation of a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	slideSchema  = sync.OnceValues(func() (*gojsonschema.Schema, error) { return compileSchema("slide") })
	resultSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) { return compileSchema("result") })
)

func compileSchema(root string) (*gojsonschema.Schema, error) {
	doc := fmt.Sprintf(`{"$schema": "http://json-schema.org/draft-07/schema#", "definitions": %s, "$ref": "#/definitions/%s"}`,
		schemaDefinitions, root)
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", root, err)
	}
	return s, nil
}

// ValidateSlideJSON checks a published slide record.
func ValidateSlideJSON(data []byte) error {
	s, err := slideSchema()
	if err != nil {
		return err
	}
	return validate(s, data)
}

// ValidateResultJSON checks a processing result record.
func ValidateResultJSON(data []byte) error {
	s, err := resultSchema()
	if err != nil {
		return err
	}
	return validate(s, data)
}

func validate(s *gojsonschema.Schema, data []byte) error {
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" {
			field = "root"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: e.Description()})
	}
	return ve
}
