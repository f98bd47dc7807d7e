package extract

import (
	"fmt"
	"sync"

	"github.com/leofalp/llmextract/internal/jsonschema"
)

// validatorCache holds one compiled JSON Schema per Description.
type validatorCache struct {
	compiled sync.Map // *Description -> *jsonschema.Validator
}

// check validates r against d's JSON Schema. The returned error wraps
// ErrSchemaViolation.
func (c *validatorCache) check(d *Description, r Record) error {
	v, err := c.validator(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	if err := v.Validate(r); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return nil
}

func (c *validatorCache) validator(d *Description) (*jsonschema.Validator, error) {
	if v, ok := c.compiled.Load(d); ok {
		return v.(*jsonschema.Validator), nil
	}
	v, err := jsonschema.Compile(d.JSONSchema())
	if err != nil {
		return nil, err
	}
	actual, _ := c.compiled.LoadOrStore(d, v)
	return actual.(*jsonschema.Validator), nil
}
