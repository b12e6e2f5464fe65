package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is the sentinel matched by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid simulation config")

// validate is a singleton; validator caches struct metadata per type.
var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes one rejected field.
type FieldError struct {
	Field string
	Rule  string
	Value any
}

// ValidationError collects every rejected field of a SimulationConfig.
type ValidationError struct {
	Fields []FieldError
}

// Error implements error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s failed %q (got %v)", f.Field, f.Rule, f.Value))
	}
	return ErrInvalidConfig.Error() + ": " + strings.Join(parts, "; ")
}

// Is matches ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidConfig }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validate checks c with struct tags. The returned error, if any, is a
// *ValidationError.
func (c SimulationConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  rule,
			Value: fe.Value(),
		})
	}
	return out
}
