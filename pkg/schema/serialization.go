package schema

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the object in document shorthand: optional keys get
// a "?" suffix, leaves become their type name, lists become "[type]"
// ("[type]?" when they may be empty). Predicates are not serialized.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	raw, err := o.describe()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

func (o *Object) describe() (map[string]any, error) {
	raw := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		switch n := f.Node.(type) {
		case *Leaf:
			raw[f.Key.String()] = n.Type.Name()
		case *List:
			name := fmt.Sprintf("[%s]", n.Elem.Type.Name())
			if n.MayBeEmpty {
				name += OptionalMarker
			}
			raw[f.Key.String()] = name
		case *Object:
			child, err := n.describe()
			if err != nil {
				return nil, err
			}
			raw[f.Key.String()] = child
		default:
			return nil, fmt.Errorf("field %s: unsupported schema node %T", f.Key.Name, f.Node)
		}
	}
	return raw, nil
}
