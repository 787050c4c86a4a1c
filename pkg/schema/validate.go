package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Validate checks data against root and returns the first violation as a
// *ValidationError, or nil when data conforms.
func Validate(data map[string]any, root *Object) error {
	if root == nil {
		// No schema = no validation
		return nil
	}
	if err := validateObject("", data, root); err != nil {
		return err
	}
	return nil
}

// ValidateJSON decodes text and validates the resulting tree against root.
// Decode failures are reported as a ValidationError as well.
func ValidateJSON(text []byte, root *Object) error {
	return ValidateReader(bytes.NewReader(text), root)
}

// ValidateReader is the streaming form of ValidateJSON.
func ValidateReader(r io.Reader, root *Object) error {
	data, err := Decode(r)
	if err != nil {
		return err
	}
	return Validate(data, root)
}

// Decode reads a single JSON object from r. Numbers are kept as
// json.Number so integers are not widened to float64.
func Decode(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, parseError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, parseError(err)
	}

	data, ok := v.(map[string]any)
	if !ok {
		return nil, parseError(fmt.Errorf("top-level value is %s, not an object", describe(v)))
	}
	return data, nil
}

func parseError(err error) *ValidationError {
	return &ValidationError{
		Reason: fmt.Sprintf("Could not parse JSON: %s", err),
		Err:    err,
	}
}

// validateObject walks the fields of o against data in declaration order.
func validateObject(path string, data map[string]any, o *Object) *ValidationError {
	for _, f := range o.fields {
		fieldPath := joinPath(path, f.Key.Name)

		value, exists := data[f.Key.Name]
		if !exists {
			if f.Key.Required {
				return &ValidationError{
					Path:   fieldPath,
					Reason: fmt.Sprintf("Required key %s not found", f.Key.Name),
				}
			}
			continue
		}

		if err := validateNode(fieldPath, f.Key.Name, value, f.Node); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(path, name string, value any, n Node) *ValidationError {
	switch node := n.(type) {
	case *Object:
		obj, ok := value.(map[string]any)
		if !ok {
			return typeMismatch(path, value, "object")
		}
		return validateObject(path, obj, node)

	case *List:
		size, ok := listLen(value)
		if !ok {
			return typeMismatch(path, value, "list")
		}
		if size == 0 && !node.MayBeEmpty {
			return &ValidationError{
				Path:   path,
				Reason: fmt.Sprintf("List named %s may not be empty", name),
				Value:  value,
			}
		}
		for i := 0; i < size; i++ {
			if err := applyLeaf(indexPath(path, i), listItem(value, i), node.Elem); err != nil {
				return err
			}
		}
		return nil

	case *Leaf:
		return applyLeaf(path, value, node)

	default:
		return &ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("unsupported schema node %T", n),
		}
	}
}

// applyLeaf runs the type gate, then every predicate in order. The first
// failing predicate ends the chain.
func applyLeaf(path string, value any, leaf *Leaf) *ValidationError {
	if !leaf.Type.Accepts(value) {
		return typeMismatch(path, value, leaf.Type.Name())
	}
	for _, p := range leaf.Predicates {
		if err := p(value); err != nil {
			return predicateError(path, value, err)
		}
	}
	return nil
}

func predicateError(path string, value any, err error) *ValidationError {
	if verr, ok := err.(*ValidationError); ok {
		return at(verr, path, value)
	}
	out := &ValidationError{Path: path, Reason: err.Error(), Value: value, Err: err}
	var inner *ValidationError
	if errors.As(err, &inner) && inner.Path != "" {
		out.Path = inner.Path
	}
	return out
}

func typeMismatch(path string, value any, typeName string) *ValidationError {
	return &ValidationError{
		Path:   path,
		Reason: fmt.Sprintf("Value %s is not of type %s", describe(value), typeName),
		Value:  value,
	}
}

// describe renders a data value for error messages.
func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%v", v)
	}
}
