package forms

// Kind is the input type of a field; it drives validation, rendering and the
// JSON type the value is sent as.
type Kind int

const (
	Text Kind = iota
	Email
	Phone
	URL
	Password
	Textarea
	Number
	Decimal
	Date
	Select
	Checkbox
)

// InputType is the HTML input type used to render the kind.
func (k Kind) InputType() string {
	switch k {
	case Email:
		return "email"
	case Phone:
		return "tel"
	case URL:
		return "url"
	case Password:
		return "password"
	case Number, Decimal:
		return "number"
	case Date:
		return "date"
	case Checkbox:
		return "checkbox"
	default:
		return "text"
	}
}

// Option is one choice of a select. Parent is the foreign key used to narrow
// dependent selects, e.g. a section option's class ID.
type Option struct {
	Value  string
	Label  string
	Parent string
}

// Field describes one writable field of a form.
type Field struct {
	Name  string
	Label string
	Kind  Kind

	Required        bool
	RequiredMessage string
	// Rules are extra validator tags, e.g. "min=2" or "gte=1800,lte=2100".
	Rules string

	// Options are the static choices of a select; Source names a dynamic option
	// list supplied at render time instead.
	Options []Option
	Source  string
	// DependsOn names the parent select; the options are narrowed to those whose
	// Parent equals the parent's value.
	DependsOn string

	Default     string
	Placeholder string
	Help        string

	// Immutable fields are set on create only and never sent on edit.
	Immutable bool
}

// EnumOptions turns enumeration values into options labelled for display.
func EnumOptions(values []string, label func(string) string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: label(v)}
	}
	return out
}

// Mode distinguishes creating a new entity from editing an existing one.
type Mode int

const (
	Create Mode = iota
	Edit
)

// Schema is the ordered field list of one form.
type Schema struct {
	Fields []Field
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Dependents returns the fields whose options depend on parent.
func (s Schema) Dependents(parent string) []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.DependsOn == parent {
			out = append(out, f)
		}
	}
	return out
}
