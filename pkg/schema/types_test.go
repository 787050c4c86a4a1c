package schema

import (
	"encoding/json"
	"testing"
)

func TestStringType(t *testing.T) {
	typ := String()

	if typ.Name() != "string" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "string")
	}

	tests := []struct {
		value any
		want  bool
	}{
		{"hello", true},
		{"", true},
		{42, false},
		{3.14, false},
		{true, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := typ.Accepts(tt.value); got != tt.want {
			t.Errorf("Accepts(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestIntType(t *testing.T) {
	typ := Int()

	if typ.Name() != "int" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "int")
	}

	tests := []struct {
		value any
		want  bool
	}{
		{42, true},
		{int8(42), true},
		{int16(42), true},
		{int32(42), true},
		{int64(42), true},
		{uint8(42), true},
		{float64(42), true},
		{float64(42.5), false},
		{json.Number("42"), true},
		{json.Number("42.0"), true},
		{json.Number("42.5"), false},
		{json.Number("4.2e1"), true},
		{"42", false},
		{true, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := typ.Accepts(tt.value); got != tt.want {
			t.Errorf("Accepts(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFloatType(t *testing.T) {
	typ := Float()

	if typ.Name() != "float" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "float")
	}

	tests := []struct {
		value any
		want  bool
	}{
		{3.14, true},
		{float32(3.14), true},
		{42, true},
		{int64(42), true},
		{uint64(1 << 63), true},
		{json.Number("1.5e3"), true},
		{"3.14", false},
		{true, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := typ.Accepts(tt.value); got != tt.want {
			t.Errorf("Accepts(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestBoolType(t *testing.T) {
	typ := Bool()

	tests := []struct {
		value any
		want  bool
	}{
		{true, true},
		{false, true},
		{1, false},
		{"true", false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := typ.Accepts(tt.value); got != tt.want {
			t.Errorf("Accepts(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestContainerTypes(t *testing.T) {
	tests := []struct {
		typ   Type
		value any
		want  bool
		desc  string
	}{
		{ObjectType(), map[string]any{}, true, "empty object"},
		{ObjectType(), []any{}, false, "list is not an object"},
		{ListType(), []any{1, "a"}, true, "mixed list"},
		{ListType(), []string{}, true, "typed slice"},
		{ListType(), [2]int{1, 2}, true, "array"},
		{ListType(), "abc", false, "string is not a list"},
		{Null(), nil, true, "nil"},
		{Null(), 0, false, "zero"},
		{Any(), nil, true, "any accepts nil"},
		{Any(), struct{}{}, true, "any accepts anything"},
	}

	for _, tt := range tests {
		if got := tt.typ.Accepts(tt.value); got != tt.want {
			t.Errorf("%s: Accepts(%v) = %v, want %v", tt.desc, tt.value, got, tt.want)
		}
	}
}

func TestCustomType(t *testing.T) {
	email := CustomType("email", func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) > 3 && s[0] != '@'
	})

	if email.Name() != "email" {
		t.Errorf("Name() = %q, want %q", email.Name(), "email")
	}
	if !email.Accepts("a@b.c") {
		t.Error("Accepts(a@b.c) = false, want true")
	}
	if email.Accepts(12) {
		t.Error("Accepts(12) = true, want false")
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		wantErr  bool
		wantName string
	}{
		{"string", false, "string"},
		{"int", false, "int"},
		{"integer", false, "int"},
		{"float", false, "float"},
		{"number", false, "float"},
		{"bool", false, "bool"},
		{"null", false, "null"},
		{"any", false, "any"},
		{"object", false, "object"},
		{"array", false, "list"},
		{"invalid", true, ""},
		{"[string]", true, ""},
	}

	for _, tt := range tests {
		typ, err := ParseType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && typ.Name() != tt.wantName {
			t.Errorf("ParseType(%q) Name() = %q, want %q", tt.input, typ.Name(), tt.wantName)
		}
	}
}

func TestAsInt64(t *testing.T) {
	tests := []struct {
		value  any
		want   int64
		wantOK bool
	}{
		{7, 7, true},
		{float64(-3), -3, true},
		{json.Number("9007199254740993"), 9007199254740993, true},
		{json.Number("8.0"), 8, true},
		{json.Number("8.5"), 0, false},
		{uint64(1 << 63), 0, false},
		{1e300, 0, false},
		{false, 0, false},
	}

	for _, tt := range tests {
		got, ok := AsInt64(tt.value)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("AsInt64(%#v) = (%d, %v), want (%d, %v)", tt.value, got, ok, tt.want, tt.wantOK)
		}
	}
}
