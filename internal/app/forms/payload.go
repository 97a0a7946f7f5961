package forms

import (
	"strconv"
)

// Payload builds the request body for a submission.
//
// Create sends every non-empty field. Edit sends only fields that are non-empty and
// differ from original, the state the form was seeded with; immutable fields are
// never sent on edit. Numbers are sent as JSON numbers and checkboxes as booleans.
// Checkboxes are always "true" or "false", so on create they are always sent and on
// edit they are sent when toggled.
func (s Schema) Payload(v Values, original Values, mode Mode) map[string]interface{} {
	out := make(map[string]interface{})
	for _, f := range s.Fields {
		if mode == Edit && f.Immutable {
			continue
		}
		value := v.Get(f.Name)
		if value == "" {
			continue
		}
		if mode == Edit && original != nil && value == original.Get(f.Name) {
			continue
		}
		out[f.Name] = typed(f, value)
	}
	return out
}

func typed(f Field, value string) interface{} {
	switch f.Kind {
	case Number:
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	case Checkbox:
		return value == "true"
	}
	return value
}
