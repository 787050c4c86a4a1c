package schema

import (
	"fmt"
	"sort"
	"strings"
)

// OptionalMarker is the suffix that marks a key optional in the shorthand
// accepted by ParseKey and Fields.
const OptionalMarker = "?"

// Node is a schema tree node. It is implemented by *Leaf, *Object and *List
// only; the engine dispatches on the concrete type.
type Node interface {
	node()
}

// Predicate checks a semantic constraint on a value that already passed
// its type gate. A non-nil error rejects the value.
type Predicate func(value any) error

// Leaf is an expected type followed by an ordered predicate chain.
type Leaf struct {
	Type       Type
	Predicates []Predicate
}

// NewLeaf creates a leaf node. Predicates run in the given order after the
// type check. Unused slots must be omitted: a nil predicate panics.
func NewLeaf(t Type, preds ...Predicate) *Leaf {
	if t == nil {
		panic("schema: leaf type is nil")
	}
	for i, p := range preds {
		if p == nil {
			panic(fmt.Sprintf("schema: predicate %d of %s leaf is nil", i, t.Name()))
		}
	}
	return &Leaf{Type: t, Predicates: append([]Predicate(nil), preds...)}
}

// List describes a homogeneous list whose elements all satisfy Elem.
// Elements are always leaves; nested objects or lists are not supported.
type List struct {
	Elem       *Leaf
	MayBeEmpty bool
}

// NewList creates a list node that rejects empty lists.
func NewList(elem *Leaf) *List {
	if elem == nil {
		panic("schema: list element is nil")
	}
	return &List{Elem: elem}
}

// AllowEmpty returns a copy of l that also accepts empty lists.
func (l *List) AllowEmpty() *List {
	return &List{Elem: l.Elem, MayBeEmpty: true}
}

// Key identifies a field of an object node.
type Key struct {
	Name     string
	Required bool
}

// ParseKey decodes the shorthand form: a trailing "?" marks the key optional.
func ParseKey(s string) Key {
	if name, ok := strings.CutSuffix(s, OptionalMarker); ok {
		return Key{Name: name}
	}
	return Key{Name: s, Required: true}
}

func (k Key) String() string {
	if k.Required {
		return k.Name
	}
	return k.Name + OptionalMarker
}

// Field pairs a key with the schema of its value.
type Field struct {
	Key  Key
	Node Node
}

// Required builds a field that must be present in the data.
func Required(name string, n Node) Field {
	return Field{Key: Key{Name: name, Required: true}, Node: n}
}

// Optional builds a field that is validated only when present.
func Optional(name string, n Node) Field {
	return Field{Key: Key{Name: name}, Node: n}
}

// Object is an ordered set of fields. Fields are checked in declaration
// order, so the reported violation is always the first one in that order.
type Object struct {
	fields []Field
}

// NewObject creates an object node. Duplicate field names panic, as do
// empty names and names containing OptionalMarker.
func NewObject(fields ...Field) *Object {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Key.Name == "" || strings.Contains(f.Key.Name, OptionalMarker) {
			panic(fmt.Sprintf("schema: invalid field name %q", f.Key.Name))
		}
		if f.Node == nil {
			panic(fmt.Sprintf("schema: field %q has no schema", f.Key.Name))
		}
		if seen[f.Key.Name] {
			panic(fmt.Sprintf("schema: duplicate field %q", f.Key.Name))
		}
		seen[f.Key.Name] = true
	}
	return &Object{fields: append([]Field(nil), fields...)}
}

// Fields builds an object node from the shorthand map form, where keys
// ending in "?" are optional. Fields are ordered by name. A "?" anywhere
// else in a key panics.
func Fields(m map[string]Node) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: ParseKey(k), Node: m[k]})
	}
	return NewObject(fields...)
}

// Fields returns the object's fields in declaration order.
func (o *Object) Fields() []Field {
	return append([]Field(nil), o.fields...)
}

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.fields) }

func (*Leaf) node()   {}
func (*List) node()   {}
func (*Object) node() {}
