package schema

import "fmt"

// Field binds a rule to a field name.
type Field struct {
	Name string
	Rule Rule
}

// Schema is an ordered list of fields. Field names are unique.
// A Schema is never modified by the validator and may be shared between goroutines.
type Schema []Field

// New builds a Schema from fields, rejecting empty or duplicate names and nil rules.
func New(fields ...Field) (Schema, error) {
	s := Schema(fields)
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNew is like New but panics on error.
// Intended for package-level schema declarations.
func MustNew(fields ...Field) Schema {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Check verifies the structural integrity of s and of every nested object schema.
func (s Schema) Check() error {
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if f.Name == "" {
			return ErrEmptyFieldName
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Rule == nil {
			return fmt.Errorf("%w: %q", ErrNilRule, f.Name)
		}
		if obj, ok := f.Rule.(ObjectRule); ok {
			if err := obj.Schema.Check(); err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
		}
	}
	return nil
}

// Lookup returns the rule declared for name.
func (s Schema) Lookup(name string) (Rule, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Rule, true
		}
	}
	return nil, false
}

// Names returns the field names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}
