package core

import (
	"errors"
	"testing"
	"time"
)

// ----------------------------------------------------------------------------
// Sentinel handling
// ----------------------------------------------------------------------------

func TestParseValue_SentinelsAbsentForNonBoolean(t *testing.T) {
	types := []SemanticType{
		TypeInteger, TypeText, TypeTimestamp, TypeIntegerArray, TypeFloat, TypeUUID,
	}
	sentinels := []string{"", "None", "null"}

	for _, typ := range types {
		for _, raw := range sentinels {
			v, err := ParseValue(typ, "field", raw)
			if err != nil {
				t.Errorf("ParseValue(%s, %q) error = %v, want nil", typ, raw, err)
				continue
			}
			if v.Valid {
				t.Errorf("ParseValue(%s, %q) = valid, want absent", typ, raw)
			}
		}
	}
}

func TestParseValue_SentinelBooleanIsFalse(t *testing.T) {
	for _, raw := range []string{"", "None", "null"} {
		v, err := ParseValue(TypeBoolean, "animated", raw)
		if err != nil {
			t.Fatalf("ParseValue(bool, %q) error = %v", raw, err)
		}
		if !v.Valid {
			t.Errorf("ParseValue(bool, %q) = absent, want a stored false", raw)
		}
		if v.Bool {
			t.Errorf("ParseValue(bool, %q) = true, want false", raw)
		}
	}
}

// ----------------------------------------------------------------------------
// Integer
// ----------------------------------------------------------------------------

func TestParseValue_Integer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "positive", input: "123", want: 123},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-456", want: -456},
		{name: "letters fail", input: "12a", wantErr: true},
		{name: "decimal fails", input: "1.5", wantErr: true},
		{name: "whitespace fails", input: " 7", wantErr: true},
		{name: "hex fails", input: "0x10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(TypeInteger, "hypes", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(int, %q) error = nil, want ParseError", tt.input)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("error type = %T, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(int, %q) error = %v", tt.input, err)
			}
			if !v.Valid || v.Int != tt.want {
				t.Errorf("ParseValue(int, %q) = %+v, want %d", tt.input, v, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Text
// ----------------------------------------------------------------------------

func TestParseValue_TextPassthrough(t *testing.T) {
	v, err := ParseValue(TypeText, "name", "  Chrono Trigger ")
	if err != nil {
		t.Fatalf("ParseValue(text) error = %v", err)
	}
	if v.Text != "  Chrono Trigger " {
		t.Errorf("text = %q, want unmodified input", v.Text)
	}
}

// ----------------------------------------------------------------------------
// Timestamp
// ----------------------------------------------------------------------------

func TestParseValue_Timestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain date",
			input: "2020-01-01",
			want:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "abbreviated month",
			input: "Mar 5, 1998",
			want:  time.Date(1998, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "full UTC instant",
			input: "2020-01-01T12:34:56Z",
			want:  time.Date(2020, 1, 1, 12, 34, 56, 0, time.UTC),
		},
		{name: "garbage fails", input: "next tuesday", wantErr: true},
		{name: "unix seconds fail", input: "1577836800", wantErr: true},
		{name: "partial date fails", input: "2020-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(TypeTimestamp, "updated_at", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(timestamp, %q) error = nil, want ParseError", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(timestamp, %q) error = %v", tt.input, err)
			}
			if !v.Time.Equal(tt.want) {
				t.Errorf("time = %v, want %v", v.Time, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// IntegerArray
// ----------------------------------------------------------------------------

func TestParseValue_IntegerArray(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
	}{
		{name: "empty braces", input: "{}", want: []int64{}},
		{name: "single element", input: "{42}", want: []int64{42}},
		{name: "multiple elements", input: "{1, 2, 3}", want: []int64{1, 2, 3}},
		{name: "no spaces", input: "{1,2,3}", want: []int64{1, 2, 3}},
		{name: "negative elements", input: "{-1, 2}", want: []int64{-1, 2}},
		{name: "unterminated fails", input: "{1,2,", wantErr: true},
		{name: "trailing comma fails", input: "{1,2,}", wantErr: true},
		{name: "no braces fails", input: "1,2,3", wantErr: true},
		{name: "non-numeric element fails", input: "{1,b}", wantErr: true},
		{name: "nested braces fail", input: "{{1}}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(TypeIntegerArray, "themes", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(int_array, %q) error = nil, want ParseError", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(int_array, %q) error = %v", tt.input, err)
			}
			if len(v.Ints) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(v.Ints), len(tt.want), v.Ints)
			}
			for i := range tt.want {
				if v.Ints[i] != tt.want[i] {
					t.Errorf("element %d = %d, want %d", i, v.Ints[i], tt.want[i])
				}
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Float
// ----------------------------------------------------------------------------

func TestParseValue_Float(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "decimal", input: "73.25", want: 73.25},
		{name: "integer form", input: "80", want: 80},
		{name: "exponent", input: "1.5e2", want: 150},
		{name: "negative", input: "-0.5", want: -0.5},
		{name: "letters fail", input: "high", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(TypeFloat, "rating", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(float, %q) error = nil, want ParseError", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(float, %q) error = %v", tt.input, err)
			}
			if v.Float != tt.want {
				t.Errorf("float = %v, want %v", v.Float, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// UUID
// ----------------------------------------------------------------------------

func TestParseValue_UUIDNormalizesToLowercase(t *testing.T) {
	v, err := ParseValue(TypeUUID, "checksum", "550E8400-E29B-41D4-A716-446655440000")
	if err != nil {
		t.Fatalf("ParseValue(uuid) error = %v", err)
	}
	if got := v.UUID.String(); got != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("uuid = %q, want canonical lowercase form", got)
	}
}

func TestParseValue_UUIDMalformed(t *testing.T) {
	for _, raw := range []string{"not-a-uuid", "550e8400", "550e8400-e29b-41d4-a716-44665544000g"} {
		if _, err := ParseValue(TypeUUID, "checksum", raw); err == nil {
			t.Errorf("ParseValue(uuid, %q) error = nil, want ParseError", raw)
		}
	}
}

// ----------------------------------------------------------------------------
// Boolean
// ----------------------------------------------------------------------------

func TestParseValue_Boolean(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "t", input: "t", want: true},
		{name: "true mixed case", input: "TRUE", want: true},
		{name: "yes", input: "yes", want: true},
		{name: "one", input: "1", want: true},
		{name: "x", input: "x", want: true},
		{name: "enabled", input: "enabled", want: true},
		{name: "check mark", input: "✓", want: true},
		{name: "heavy check mark", input: "✔", want: true},
		{name: "f", input: "f", want: false},
		{name: "false", input: "false", want: false},
		{name: "no", input: "no", want: false},
		{name: "zero", input: "0", want: false},
		{name: "off", input: "off", want: false},
		{name: "inactive", input: "inactive", want: false},
		{name: "none lowercase", input: "none", want: false},
		{name: "null mixed case", input: "NULL", want: false},
		{name: "neither set fails", input: "maybe", wantErr: true},
		{name: "number fails", input: "2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(TypeBoolean, "animated", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(bool, %q) error = nil, want ParseError", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(bool, %q) error = %v", tt.input, err)
			}
			if !v.Valid || v.Bool != tt.want {
				t.Errorf("ParseValue(bool, %q) = %+v, want %v", tt.input, v, tt.want)
			}
		})
	}
}
