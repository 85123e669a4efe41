package core

// parse.go converts raw dump cells to typed values, one parser per semantic
// type. The dumps are delimited text with no enforced typing, so every cell
// arrives as a string and must be checked against its declared type here.
//
// Absence rule: the sentinel inputs "" / "None" / "null" mean "no value" for
// every type except Boolean, where they mean false. Absent values are bound
// as NULL by Value.Arg.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampLayouts are tried in order; the first successful parse wins.
// The dumps mix plain dates, abbreviated month dates, and full UTC instants.
var timestampLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"2006-01-02T15:04:05Z",
}

// intArrayRegex is the exact grammar for integer-array cells: braces around
// comma-separated signed integers, no trailing comma. "{}" is an empty array.
var intArrayRegex = regexp.MustCompile(`^\{\s*(-?\d+(\s*,\s*-?\d+)*)?\s*\}$`)

var (
	trueValues = map[string]bool{
		"t": true, "true": true, "yes": true, "y": true, "1": true,
		"x": true, "on": true, "enabled": true, "active": true,
		"✓": true, "✔": true,
	}
	falseValues = map[string]bool{
		"f": true, "false": true, "no": true, "n": true, "0": true,
		"": true, "off": true, "disabled": true, "inactive": true,
		"none": true, "null": true,
	}
)

// ParseError describes a present-but-malformed value for a declared type.
// It rejects the whole record; it never escapes the validator.
type ParseError struct {
	Field string
	Type  SemanticType
	Raw   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field %q: %q is not a valid %s", e.Field, e.Raw, e.Type)
}

// IsSentinel reports whether a raw cell conventionally means "no value".
func IsSentinel(raw string) bool {
	return raw == "" || raw == "None" || raw == "null"
}

// ParseValue converts one raw cell to a typed value according to the field's
// declared semantic type. TypeUnknown yields an absent value without error;
// the caller decides how loudly to complain.
func ParseValue(t SemanticType, field, raw string) (Value, error) {
	if t != TypeBoolean && IsSentinel(raw) {
		return Value{Type: t}, nil
	}

	switch t {
	case TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Field: field, Type: t, Raw: raw}
		}
		return Value{Type: t, Valid: true, Int: n}, nil

	case TypeText:
		return Value{Type: t, Valid: true, Text: raw}, nil

	case TypeTimestamp:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, raw); err == nil {
				return Value{Type: t, Valid: true, Time: ts}, nil
			}
		}
		return Value{}, &ParseError{Field: field, Type: t, Raw: raw}

	case TypeIntegerArray:
		return parseIntegerArray(field, raw)

	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, &ParseError{Field: field, Type: t, Raw: raw}
		}
		return Value{Type: t, Valid: true, Float: f}, nil

	case TypeUUID:
		// uuid.Parse accepts any standard textual form; the stored value is
		// always the canonical lowercase hyphenated representation.
		u, err := uuid.Parse(raw)
		if err != nil {
			return Value{}, &ParseError{Field: field, Type: t, Raw: raw}
		}
		return Value{Type: t, Valid: true, UUID: u}, nil

	case TypeBoolean:
		return parseBool(field, raw)

	default:
		return Value{Type: TypeUnknown}, nil
	}
}

func parseIntegerArray(field, raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if !intArrayRegex.MatchString(trimmed) {
		return Value{}, &ParseError{Field: field, Type: TypeIntegerArray, Raw: raw}
	}

	inner := strings.Trim(trimmed, "{}")
	ints := []int64{}
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Field: field, Type: TypeIntegerArray, Raw: raw}
		}
		ints = append(ints, n)
	}
	return Value{Type: TypeIntegerArray, Valid: true, Ints: ints}, nil
}

// parseBool is intentionally asymmetric with the other parsers: a sentinel or
// empty cell yields a stored false, never an absent value, so boolean columns
// are always populated.
func parseBool(field, raw string) (Value, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case trueValues[v]:
		return Value{Type: TypeBoolean, Valid: true, Bool: true}, nil
	case falseValues[v]:
		return Value{Type: TypeBoolean, Valid: true, Bool: false}, nil
	default:
		return Value{}, &ParseError{Field: field, Type: TypeBoolean, Raw: raw}
	}
}
