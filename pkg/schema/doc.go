// Package schema describes the shape of request datasets: a Schema is an
// ordered list of named fields, each bound to a typed Rule.
//
// # Rules
//
// Rule is a closed set of value types, one per supported field type:
//
//   - StringRule    – strings, optional emptiness check, pattern and case normalization
//   - NumberRule    – numbers and numeric strings, inclusive bounds, integer-only mode
//   - BoolRule      – booleans
//   - DateRule      – calendar dates parsed with a dayjs style format
//   - DateTimeRule  – date-times parsed with a dayjs style format
//   - ObjectRule    – nested datasets described by another Schema
//
// Every rule embeds Base, which makes the field optional or turns it into a
// list of values. The zero Base describes a required scalar field.
//
// Rules are plain values. WithoutList returns a modified copy, so a Schema
// can be declared once at package level and shared between goroutines.
//
// # Usage
//
//	var createUser = schema.MustNew(
//	    schema.Field{Name: "email", Rule: schema.StringRule{Match: schema.PatternEmail}},
//	    schema.Field{Name: "age", Rule: schema.NumberRule{Min: schema.Bound(18), IntegerOnly: true}},
//	    schema.Field{Name: "tags", Rule: schema.StringRule{Base: schema.Base{List: true, Optional: true}}},
//	    schema.Field{Name: "address", Rule: schema.ObjectRule{Schema: schema.MustNew(
//	        schema.Field{Name: "city", Rule: schema.StringRule{NotEmpty: true}},
//	    )}},
//	)
//
// # Named patterns
//
// StringRule.Match refers to a pattern registered under a symbolic name
// (email, UUID, phone, URL, ...). The registry is built at package
// initialization and is read-only afterwards; see LookupPattern.
//
// # Documents
//
// Schemas can also be decoded from YAML or JSON with Parse, LoadFile or by
// embedding a Schema in a larger YAML document:
//
//	email:
//	  type: string
//	  match: email
//	age:
//	  type: number
//	  min: 18
//	  allowFloat: false
//	birthday:
//	  type: date
//	  required: false
//
// A rule with an unrecognized type is decoded as UnknownRule and rejected by
// the validator when it is used.
package schema
