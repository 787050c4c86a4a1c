package schema

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Pattern returns a predicate that accepts strings matching expr from
// their first character. The match is not anchored at the end.
func Pattern(expr string) (Predicate, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return func(value any) error {
		s, ok := value.(string)
		if !ok || !re.MatchString(s) {
			return Errorf("String %s does not match the format %s", describe(value), expr)
		}
		return nil
	}, nil
}

// MustPattern is like Pattern but panics if expr does not compile.
func MustPattern(expr string) Predicate {
	p, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Enum returns a predicate that accepts only the given values.
// Numbers compare by value, so 8, 8.0 and json.Number("8") are equal.
func Enum(values ...any) Predicate {
	allowed := append([]any(nil), values...)
	rendered := make([]string, len(allowed))
	for i, v := range allowed {
		rendered[i] = fmt.Sprintf("%v", v)
	}
	list := strings.Join(rendered, ",")

	return func(value any) error {
		for _, v := range allowed {
			if equal(value, v) {
				return nil
			}
		}
		return Errorf("Value %s must be one of (%s)", describe(value), list)
	}
}

func equal(a, b any) bool {
	if x, ok := AsInt64(a); ok {
		if y, ok := AsInt64(b); ok {
			return x == y
		}
	}
	if x, ok := AsFloat64(a); ok {
		y, ok := AsFloat64(b)
		return ok && x == y
	}
	return reflect.DeepEqual(a, b)
}
