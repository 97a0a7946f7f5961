package views

import (
	"github.com/yigit/schooldash/internal/app/forms"
)

// PrevPrefix prefixes the hidden inputs that remember a parent select's value as it
// was rendered, so a refresh can tell whether the parent changed.
const PrevPrefix = "_prev_"

// Fields renders schema under the current values. Dependent selects only offer the
// options of the selected parent. Immutable fields are disabled in edit mode.
func Fields(schema forms.Schema, v forms.Values, errs forms.Errors, src forms.Sources, mode forms.Mode) []Field {
	out := make([]Field, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		value := v.Get(f.Name)
		field := Field{
			Name:        f.Name,
			Label:       f.Label,
			Control:     control(f.Kind),
			InputType:   f.Kind.InputType(),
			Value:       value,
			Required:    f.Required,
			Disabled:    mode == forms.Edit && f.Immutable,
			Placeholder: f.Placeholder,
			Help:        f.Help,
			Error:       errs[f.Name],
			Refresh:     len(schema.Dependents(f.Name)) > 0,
		}
		if parent, ok := schema.Field(f.DependsOn); ok {
			field.ParentLabel = parent.Label
		}
		if f.Kind == forms.Checkbox {
			field.Checked = value == "true"
		}
		if f.Kind == forms.Select {
			for _, o := range forms.OptionsFor(f, v, src) {
				field.Options = append(field.Options, Option{Value: o.Value, Label: o.Label, Selected: o.Value == value})
			}
		}
		out = append(out, field)
	}
	return out
}

// Hidden returns the previous-value inputs of every parent select.
func Hidden(schema forms.Schema, v forms.Values) map[string]string {
	hidden := map[string]string{}
	for _, f := range schema.Fields {
		if len(schema.Dependents(f.Name)) > 0 {
			hidden[PrevPrefix+f.Name] = v.Get(f.Name)
		}
	}
	return hidden
}

func control(k forms.Kind) string {
	switch k {
	case forms.Textarea:
		return "textarea"
	case forms.Select:
		return "select"
	case forms.Checkbox:
		return "checkbox"
	default:
		return "input"
	}
}
