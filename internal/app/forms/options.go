package forms

// Sources are the dynamic option lists of a form, keyed by Field.Source.
type Sources map[string][]Option

// FilterOptions returns the options whose Parent equals parentID. With no parent
// selected there is nothing to choose from.
func FilterOptions(all []Option, parentID string) []Option {
	if parentID == "" {
		return nil
	}
	out := make([]Option, 0, len(all))
	for _, o := range all {
		if o.Parent == parentID {
			out = append(out, o)
		}
	}
	return out
}

// OptionsFor computes the choices of f given the current values.
func OptionsFor(f Field, v Values, src Sources) []Option {
	all := f.Options
	if f.Source != "" {
		all = src[f.Source]
	}
	if f.DependsOn == "" {
		return all
	}
	return FilterOptions(all, v.Get(f.DependsOn))
}

// ChangeParent sets parent to value. When the value actually changes, every dependent
// selection is cleared, transitively.
func (s Schema) ChangeParent(v Values, parent, value string) Values {
	out := v.Clone()
	if out[parent] == value {
		return out
	}
	out[parent] = value
	s.clearDependents(out, parent)
	return out
}

func (s Schema) clearDependents(v Values, parent string) {
	for _, dep := range s.Dependents(parent) {
		v[dep.Name] = ""
		s.clearDependents(v, dep.Name)
	}
}

// ValidChoice reports whether value is one of the options f offers under v.
func ValidChoice(f Field, v Values, src Sources, value string) bool {
	return containsValue(OptionsFor(f, v, src), value)
}

func containsValue(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
