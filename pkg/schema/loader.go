package schema

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleDoc is the document form of a rule. Keys follow the names used by
// request schemas written for JavaScript services, so definitions can be shared.
type ruleDoc struct {
	Type       string    `yaml:"type"`
	Required   *bool     `yaml:"required"`
	List       bool      `yaml:"list"`
	NotEmpty   bool      `yaml:"notEmpty"`
	Match      string    `yaml:"match"`
	RegExp     string    `yaml:"regExp"`
	Case       string    `yaml:"case"`
	Min        *float64  `yaml:"min"`
	Max        *float64  `yaml:"max"`
	AllowFloat *bool     `yaml:"allowFloat"`
	Format     string    `yaml:"format"`
	Validator  yaml.Node `yaml:"validator"`
}

var commonKeys = []string{"type", "required", "list"}

var typeKeys = map[Type][]string{
	TypeString:   {"notEmpty", "match", "regExp", "case"},
	TypeNumber:   {"min", "max", "allowFloat"},
	TypeBool:     nil,
	TypeDate:     {"format"},
	TypeDateTime: {"format"},
	TypeObject:   {"validator"},
}

// Parse decodes a YAML or JSON schema document. The top level must be a
// mapping from field name to rule; field order is preserved.
func Parse(data []byte) (Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
	}
	return decodeSchema(doc.Content[0], "")
}

// LoadFile reads and parses a schema file.
func LoadFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// UnmarshalYAML lets a Schema be embedded in larger YAML documents.
func (s *Schema) UnmarshalYAML(n *yaml.Node) error {
	decoded, err := decodeSchema(n, "")
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

func decodeSchema(n *yaml.Node, path string) (Schema, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %sexpected a mapping of fields at line %d", ErrInvalidSchema, pathPrefix(path), n.Line)
	}

	s := make(Schema, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		fieldPath := joinPath(path, name)

		rule, err := decodeRule(n.Content[i+1], fieldPath)
		if err != nil {
			return nil, err
		}
		s = append(s, Field{Name: name, Rule: rule})
	}

	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("%w: %s%w", ErrInvalidSchema, pathPrefix(path), err)
	}
	return s, nil
}

func decodeRule(n *yaml.Node, path string) (Rule, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: expected a rule mapping at line %d", ErrInvalidSchema, path, n.Line)
	}

	var doc ruleDoc
	if err := n.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, path, err)
	}
	if doc.Type == "" {
		return nil, fmt.Errorf("%w: %s: missing rule type", ErrInvalidSchema, path)
	}

	t := Type(doc.Type)
	base := Base{List: doc.List}
	if doc.Required != nil {
		base.Optional = !*doc.Required
	}

	allowed, known := typeKeys[t]
	if !known {
		// Unrecognized types are kept and rejected by the validator on use.
		return UnknownRule{Base: base, Type: t}, nil
	}
	if err := checkKeys(n, path, t, allowed); err != nil {
		return nil, err
	}

	switch t {
	case TypeString:
		r := StringRule{Base: base, NotEmpty: doc.NotEmpty, Match: doc.Match}
		switch Case(doc.Case) {
		case CaseNone, CaseUpper, CaseLower:
			r.Case = Case(doc.Case)
		default:
			return nil, fmt.Errorf("%w: %s: unknown case %q", ErrInvalidSchema, path, doc.Case)
		}
		if doc.RegExp != "" {
			re, err := CompilePattern(doc.RegExp)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, path, err)
			}
			r.RegExp = re
		}
		return r, nil

	case TypeNumber:
		r := NumberRule{Base: base, Min: doc.Min, Max: doc.Max}
		if doc.AllowFloat != nil {
			r.IntegerOnly = !*doc.AllowFloat
		}
		return r, nil

	case TypeBool:
		return BoolRule{Base: base}, nil

	case TypeDate, TypeDateTime:
		if doc.Format != "" {
			if _, err := Layout(doc.Format); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, path, err)
			}
		}
		if t == TypeDate {
			return DateRule{Base: base, Format: doc.Format}, nil
		}
		return DateTimeRule{Base: base, Format: doc.Format}, nil

	case TypeObject:
		if doc.Validator.Kind == 0 {
			return nil, fmt.Errorf("%w: %s: object rule without validator", ErrInvalidSchema, path)
		}
		nested, err := decodeSchema(&doc.Validator, path)
		if err != nil {
			return nil, err
		}
		return ObjectRule{Base: base, Schema: nested}, nil
	}

	return UnknownRule{Base: base, Type: t}, nil
}

func checkKeys(n *yaml.Node, path string, t Type, allowed []string) error {
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if slices.Contains(commonKeys, key) || slices.Contains(allowed, key) {
			continue
		}
		return fmt.Errorf("%w: %s: option %q is not valid for type '%s'", ErrInvalidSchema, path, key, t)
	}
	return nil
}

// CompilePattern compiles a custom pattern. Both plain expressions and the
// /expr/flags literal notation are accepted; flags i, m and s are supported and g is ignored.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	if len(expr) > 1 && expr[0] == '/' {
		if end := strings.LastIndexByte(expr, '/'); end > 0 {
			flags := strings.ReplaceAll(expr[end+1:], "g", "")
			body := expr[1:end]
			if strings.Trim(flags, "ims") != "" {
				return nil, fmt.Errorf("unsupported pattern flags %q", flags)
			}
			if flags != "" {
				body = "(?" + flags + ")" + body
			}
			expr = body
		}
	}
	return regexp.Compile(expr)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func pathPrefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}
