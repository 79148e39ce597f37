package schema

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Pattern matches string values. *regexp.Regexp satisfies it.
type Pattern interface {
	MatchString(s string) bool
}

// PatternFunc adapts a predicate to the Pattern interface.
type PatternFunc func(s string) bool

func (f PatternFunc) MatchString(s string) bool { return f(s) }

// Registered pattern names.
const (
	PatternEmail          = "email"
	PatternAlphanumeric   = "alphanumeric"
	PatternAlphabetical   = "alphabetical"
	PatternNumerical      = "numerical"
	PatternUUID           = "UUID"
	PatternStrongPassword = "strongPassword"
	PatternURL            = "URL"
	PatternPhone          = "phone"
	PatternIPAddress      = "IPAddress"
	PatternMACAddress     = "MACAddress"
	PatternHexColor       = "hexColor"
)

const (
	emailAtom   = "[a-z0-9!#$%&'*+/=?^_`{|}~-]+"
	emailOctet  = `(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])`
	emailQuoted = `"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*"`
	emailDomain = `(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?`
	emailLit    = `\[(?:` + emailOctet + `\.){3}(?:` + emailOctet +
		`|[a-z0-9-]*[a-z0-9]:(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\]`

	ipOctet = `(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`
)

// patterns is populated once at package initialization and never written again.
var patterns = map[string]Pattern{
	PatternEmail: regexp.MustCompile(`(?i)^(?:` + emailAtom + `(?:\.` + emailAtom + `)*|` + emailQuoted + `)@(?:` +
		emailDomain + `|` + emailLit + `)$`),
	PatternAlphanumeric: regexp.MustCompile(`^[A-Za-z0-9]*$`),
	PatternAlphabetical: regexp.MustCompile(`^[A-Za-z]*$`),
	PatternNumerical:    regexp.MustCompile(`^[0-9]*$`),
	PatternUUID:         regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`),
	PatternURL:          regexp.MustCompile(`^(https?://)?([a-zA-Z0-9.-]+\.[a-zA-Z]{2,6})(/[^\s]*)?$`),
	PatternPhone:        regexp.MustCompile(`^\+?(\d{1,3})?[-. (]*(\d{3})[-. )]*(\d{3})[-. ]*(\d{4})(\s*x\d{1,5})?$`),
	PatternIPAddress:    regexp.MustCompile(`^` + ipOctet + `\.` + ipOctet + `\.` + ipOctet + `\.` + ipOctet + `$`),
	PatternMACAddress:   regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`),
	PatternHexColor:     regexp.MustCompile(`^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`),

	// RE2 has no lookaheads, so the password policy is a predicate.
	PatternStrongPassword: PatternFunc(isStrongPassword),
}

// LookupPattern returns the registered pattern for name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames returns the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

const passwordSpecials = "!@#$&*"

// isStrongPassword requires at least 8 characters with two upper case letters,
// three lower case letters, two digits and one of !@#$&*.
func isStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}

	var upper, lower, digit, special int
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			upper++
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			lower++
		case unicode.IsDigit(r) && r <= unicode.MaxASCII:
			digit++
		case strings.ContainsRune(passwordSpecials, r):
			special++
		}
	}
	return upper >= 2 && lower >= 3 && digit >= 2 && special >= 1
}
