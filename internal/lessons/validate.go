package lessons

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ParseContent decodes raw lesson content JSON and validates it against
// ContentSchema.
func ParseContent(raw []byte) (Content, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Content{}, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidContent, err)
	}
	if err := validateValue(parsed); err != nil {
		return Content{}, err
	}

	var c Content
	if err := json.Unmarshal(raw, &c); err != nil {
		return Content{}, fmt.Errorf("%w: decode: %v", ErrInvalidContent, err)
	}
	return c, nil
}

// Validate checks that a lesson has an identifier, a title and content that
// satisfies ContentSchema.
func Validate(l *Lesson) error {
	if l == nil {
		return fmt.Errorf("%w: nil lesson", ErrInvalidContent)
	}
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: lesson id is required", ErrInvalidContent)
	}
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("%w: lesson %q has no title", ErrInvalidContent, l.ID)
	}

	// Round-trip through JSON so the validator sees the same shape that is
	// stored in the database.
	raw, err := json.Marshal(l.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("unmarshal content: %w", err)
	}
	if err := validateValue(parsed); err != nil {
		return fmt.Errorf("lesson %q: %w", l.ID, err)
	}
	for i, w := range l.Content.Words {
		if strings.TrimSpace(w.Word) == "" {
			return fmt.Errorf("%w: lesson %q word %d is blank", ErrInvalidContent, l.ID, i+1)
		}
	}
	return nil
}

func validateValue(v any) error {
	sch, err := contentSchema()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", ContentSchemaName, err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return nil
}

// contentSchema compiles ContentSchema once.
func contentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go literals.
		defBytes, err := json.Marshal(ContentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", ContentSchemaName)
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
