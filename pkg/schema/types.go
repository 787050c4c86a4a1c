package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Type is the type tag of a leaf. It gates a value before any predicate runs.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Accepts reports whether value is an instance of this type.
	Accepts(value any) bool
}

// --- Built-in Type Implementations ---

type stringType struct{}

func (stringType) Name() string { return "string" }

func (stringType) Accepts(value any) bool {
	_, ok := value.(string)
	return ok
}

// intType accepts integral numbers. Whole floats such as 8.0 are accepted
// whether they arrive as float64 or as json.Number.
type intType struct{}

func (intType) Name() string { return "int" }

func (intType) Accepts(value any) bool {
	_, ok := AsInt64(value)
	return ok
}

type floatType struct{}

func (floatType) Name() string { return "float" }

func (floatType) Accepts(value any) bool {
	_, ok := AsFloat64(value)
	return ok
}

type boolType struct{}

func (boolType) Name() string { return "bool" }

func (boolType) Accepts(value any) bool {
	_, ok := value.(bool)
	return ok
}

type nullType struct{}

func (nullType) Name() string { return "null" }

func (nullType) Accepts(value any) bool { return value == nil }

type anyType struct{}

func (anyType) Name() string { return "any" }

func (anyType) Accepts(any) bool { return true }

type objectType struct{}

func (objectType) Name() string { return "object" }

func (objectType) Accepts(value any) bool {
	_, ok := value.(map[string]any)
	return ok
}

type listType struct{}

func (listType) Name() string { return "list" }

func (listType) Accepts(value any) bool {
	_, ok := listLen(value)
	return ok
}

type customType struct {
	name    string
	accepts func(any) bool
}

func (t *customType) Name() string { return t.name }

func (t *customType) Accepts(value any) bool { return t.accepts(value) }

// --- Factory Functions ---

// String matches string values.
func String() Type { return stringType{} }

// Int matches integral numbers.
func Int() Type { return intType{} }

// Float matches any number, integral or not.
func Float() Type { return floatType{} }

// Bool matches booleans.
func Bool() Type { return boolType{} }

// Null matches only nil.
func Null() Type { return nullType{} }

// Any matches every value, including nil.
func Any() Type { return anyType{} }

// ObjectType matches decoded JSON objects (map[string]any) without
// inspecting their contents.
func ObjectType() Type { return objectType{} }

// ListType matches slices and arrays without inspecting their elements.
func ListType() Type { return listType{} }

// CustomType creates a type tag backed by a user-defined membership test.
func CustomType(name string, accepts func(any) bool) Type {
	return &customType{name: name, accepts: accepts}
}

// ParseType converts a type name to a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "string":
		return String(), nil
	case "int", "integer":
		return Int(), nil
	case "float", "number":
		return Float(), nil
	case "bool", "boolean":
		return Bool(), nil
	case "null":
		return Null(), nil
	case "any":
		return Any(), nil
	case "object":
		return ObjectType(), nil
	case "list", "array":
		return ListType(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", name)
	}
}

// --- Numeric helpers ---

// AsInt64 converts an integral numeric value to int64.
// It reports false for non-numbers, fractional values and booleans.
func AsInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	default:
		return 0, false
	}
}

// AsFloat64 converts any numeric value to float64.
func AsFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	if i, ok := AsInt64(value); ok {
		return float64(i), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// listLen reports the length of a slice or array value.
func listLen(value any) (int, bool) {
	if l, ok := value.([]any); ok {
		return len(l), true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0, false
	}
	return rv.Len(), true
}

// listItem returns the i-th element of a slice or array value.
func listItem(value any, i int) any {
	if l, ok := value.([]any); ok {
		return l[i]
	}
	return reflect.ValueOf(value).Index(i).Interface()
}
