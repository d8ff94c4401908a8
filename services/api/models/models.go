// Package models holds the persisted entities and the create/update payloads
// accepted by the API. Numeric quantities (levels, flows, readings) travel
// and persist as text, exactly as clients send them.
package models

import (
	"fmt"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// ValidationError is a rejected input field. The message is shown to users verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func canonical(v *string, set enum.Set, field string) error {
	out, err := set.Canonical(*v)
	if err != nil {
		return &ValidationError{Field: field, Message: err.Error()}
	}
	*v = out
	return nil
}

func canonicalPtr(v **string, set enum.Set, field string) error {
	if *v == nil {
		return nil
	}
	return canonical(*v, set, field)
}

func canonicalField(f *patch.Field[string], set enum.Set, field string) error {
	if !f.Set || f.Null {
		return nil
	}
	return canonical(&f.Val, set, field)
}

func requiredDate(s, field string) error {
	if _, ok := patch.ParseDate(s); !ok {
		return &ValidationError{Field: field, Message: fmt.Sprintf("Data inválida em %s: %q", field, s)}
	}
	return nil
}

func optionalDate(s *string, field string) error {
	if s == nil || *s == "" {
		return nil
	}
	return requiredDate(*s, field)
}
