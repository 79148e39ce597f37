package schema

import "regexp"

// Type is the discriminator of a Rule.
type Type string

const (
	TypeString   Type = "string"
	TypeNumber   Type = "number"
	TypeBool     Type = "bool"
	TypeDate     Type = "date"
	TypeDateTime Type = "datetime"
	TypeObject   Type = "object"
)

// Default formats for date and datetime rules, in dayjs token notation.
const (
	DefaultDateFormat     = "YYYY-MM-DD"
	DefaultDateTimeFormat = "YYYY-MM-DD HH:mm:ss"
)

// Case selects the normalization applied to a validated string.
type Case string

const (
	CaseNone  Case = ""
	CaseUpper Case = "upper"
	CaseLower Case = "lower"
)

// Rule is a typed constraint for a single schema field.
// The set of implementations is closed: StringRule, NumberRule, BoolRule,
// DateRule, DateTimeRule, ObjectRule and UnknownRule.
type Rule interface {
	// Kind returns the rule type tag.
	Kind() Type
	base() Base
	withBase(Base) Rule
}

// Base carries the options shared by every rule.
// The zero value describes a required, scalar field.
type Base struct {
	// Optional allows the field to be absent from the dataset.
	Optional bool
	// List requires the value to be a list whose elements all satisfy the rule.
	List bool
}

func (b Base) base() Base { return b }

// StringRule accepts string values.
type StringRule struct {
	Base
	NotEmpty bool
	// Match names a pattern from the registry. Mutually exclusive with RegExp.
	Match string
	// RegExp is a custom pattern. Mutually exclusive with Match.
	RegExp *regexp.Regexp
	// Case normalizes the value after it passed every check.
	Case Case
}

func (StringRule) Kind() Type { return TypeString }

func (r StringRule) withBase(b Base) Rule { r.Base = b; return r }

// NumberRule accepts numbers and numeric strings and yields float64.
type NumberRule struct {
	Base
	// Min and Max are inclusive bounds, nil means unbounded.
	Min *float64
	Max *float64
	// IntegerOnly rejects values with a fractional part.
	IntegerOnly bool
}

func (NumberRule) Kind() Type { return TypeNumber }

func (r NumberRule) withBase(b Base) Rule { r.Base = b; return r }

// BoolRule accepts boolean values.
type BoolRule struct {
	Base
}

func (BoolRule) Kind() Type { return TypeBool }

func (r BoolRule) withBase(b Base) Rule { r.Base = b; return r }

// DateRule accepts calendar dates and yields time.Time.
type DateRule struct {
	Base
	// Format uses dayjs tokens. Empty means DefaultDateFormat.
	Format string
}

func (DateRule) Kind() Type { return TypeDate }

func (r DateRule) withBase(b Base) Rule { r.Base = b; return r }

// Layout returns the effective format of the rule.
func (r DateRule) Layout() string {
	if r.Format == "" {
		return DefaultDateFormat
	}
	return r.Format
}

// DateTimeRule accepts date-times and yields time.Time.
type DateTimeRule struct {
	Base
	// Format uses dayjs tokens. Empty means DefaultDateTimeFormat.
	Format string
}

func (DateTimeRule) Kind() Type { return TypeDateTime }

func (r DateTimeRule) withBase(b Base) Rule { r.Base = b; return r }

// Layout returns the effective format of the rule.
func (r DateTimeRule) Layout() string {
	if r.Format == "" {
		return DefaultDateTimeFormat
	}
	return r.Format
}

// ObjectRule accepts a nested dataset described by Schema.
type ObjectRule struct {
	Base
	Schema Schema
}

func (ObjectRule) Kind() Type { return TypeObject }

func (r ObjectRule) withBase(b Base) Rule { r.Base = b; return r }

// UnknownRule holds a rule decoded from untyped input whose type tag is not
// recognized. Validating against it always fails.
type UnknownRule struct {
	Base
	Type Type
}

func (r UnknownRule) Kind() Type { return r.Type }

func (r UnknownRule) withBase(b Base) Rule { r.Base = b; return r }

// Required reports whether the field described by r must be present.
func Required(r Rule) bool {
	return !r.base().Optional
}

// IsList reports whether r expects a list of values.
func IsList(r Rule) bool {
	return r.base().List
}

// WithoutList returns a copy of r with the List flag cleared.
// The receiver is never modified.
func WithoutList(r Rule) Rule {
	b := r.base()
	b.List = false
	return r.withBase(b)
}

// Bound is a helper for NumberRule bounds.
func Bound(v float64) *float64 {
	return &v
}
