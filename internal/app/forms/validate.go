package forms

import (
	"fmt"
	"strconv"

	"github.com/yigit/schooldash/internal/pkg/validation"
)

// Errors maps field names to the message shown next to the field.
type Errors map[string]string

// Any reports whether there is at least one error.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Validate checks v before anything is sent: required fields, enumerations and
// number, date, email and URL formats. Immutable fields are skipped in edit mode.
func (s Schema) Validate(v Values, src Sources, mode Mode) Errors {
	errs := Errors{}
	for _, f := range s.Fields {
		if mode == Edit && f.Immutable {
			continue
		}
		if msg := s.checkField(f, v, src); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// Summary is the first error in field order, for the banner above the form.
func (s Schema) Summary(errs Errors) string {
	for _, f := range s.Fields {
		if msg, ok := errs[f.Name]; ok {
			return msg
		}
	}
	return ""
}

func (s Schema) checkField(f Field, v Values, src Sources) string {
	value := v.Get(f.Name)
	if f.Kind == Checkbox {
		return ""
	}
	if value == "" {
		if !f.Required {
			return ""
		}
		if f.RequiredMessage != "" {
			return f.RequiredMessage
		}
		return validation.Check(f.Label, value, "required")
	}

	switch f.Kind {
	case Email:
		if msg := validation.Check(f.Label, value, "email"); msg != "" {
			return msg
		}
	case URL:
		if msg := validation.Check(f.Label, value, "url"); msg != "" {
			return msg
		}
	case Phone:
		if msg := validation.Check(f.Label, value, "phone"); msg != "" {
			return msg
		}
	case Date:
		if msg := validation.Check(f.Label, value, "datetime=2006-01-02"); msg != "" {
			return msg
		}
	case Decimal:
		if msg := validation.Check(f.Label, value, "numeric"); msg != "" {
			return msg
		}
	case Number:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Sprintf("%s must be a whole number.", f.Label)
		}
		return validation.Check(f.Label, n, f.Rules)
	case Select:
		if (len(f.Options) > 0 || f.Source != "") && !ValidChoice(f, v, src, value) {
			return fmt.Sprintf("Choose a valid %s.", f.Label)
		}
	}
	return validation.Check(f.Label, value, f.Rules)
}
