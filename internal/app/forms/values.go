package forms

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yigit/schooldash/internal/pkg/helpers"
)

// Values is the form state: one string per field name, as typed by the user.
type Values map[string]string

// Get returns the value of name, or "".
func (v Values) Get(name string) string {
	return v[name]
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Blank returns the create-mode state: every field empty except declared defaults.
func (s Schema) Blank() Values {
	v := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		v[f.Name] = f.Default
		if f.Kind == Checkbox && v[f.Name] == "" {
			v[f.Name] = "false"
		}
	}
	return v
}

// Bind reads the submitted form fields. Unchecked checkboxes are absent from
// submissions and are recorded as "false".
func (s Schema) Bind(form url.Values) Values {
	v := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		raw := strings.TrimSpace(form.Get(f.Name))
		if f.Kind == Checkbox {
			if raw == "" || raw == "false" || raw == "off" {
				raw = "false"
			} else {
				raw = "true"
			}
		}
		v[f.Name] = raw
	}
	return v
}

// FromEntity seeds edit-mode state from an entity fetched from the API. The entity is
// read through its JSON form, so field names match the API's camelCase keys.
func (s Schema) FromEntity(entity interface{}) (Values, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode entity fields: %w", err)
	}

	v := s.Blank()
	for _, f := range s.Fields {
		val, ok := fields[f.Name]
		if !ok || val == nil {
			if f.Kind != Checkbox {
				v[f.Name] = ""
			}
			continue
		}
		v[f.Name] = stringify(val)
		if f.Kind == Date {
			v[f.Name] = helpers.DateOnly(v[f.Name])
		}
	}
	return v, nil
}

func stringify(val interface{}) string {
	switch t := val.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
