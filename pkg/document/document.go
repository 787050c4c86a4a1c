package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/conform/internal/dto"
	"github.com/aretw0/conform/pkg/registry"
	"github.com/aretw0/conform/pkg/schema"
)

// Load reads a schema document from disk.
func Load(path string, reg *registry.Registry) (*schema.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	root, err := Parse(data, reg)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return root, nil
}

// Parse converts a YAML or JSON schema document into an object.
// Field order in the document becomes the declaration order of the schema.
// reg resolves named validators and may be nil when none are referenced.
func Parse(data []byte, reg *registry.Registry) (*schema.Object, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("schema document is empty")
	}

	p := &parser{reg: reg}
	return p.object("", doc.Content[0])
}

type parser struct {
	reg *registry.Registry
}

func (p *parser) object(path string, n *yaml.Node) (*schema.Object, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping, got %s", where(path), kindName(n))
	}

	seen := make(map[string]bool, len(n.Content)/2)
	fields := make([]schema.Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := schema.ParseKey(n.Content[i].Value)
		fieldPath := key.Name
		if path != "" {
			fieldPath = path + "." + key.Name
		}
		if key.Name == "" {
			return nil, fmt.Errorf("%s: empty field name", where(path))
		}
		if strings.Contains(key.Name, schema.OptionalMarker) {
			return nil, fmt.Errorf("%s: %q may only appear at the end of a field name", fieldPath, schema.OptionalMarker)
		}
		if seen[key.Name] {
			return nil, fmt.Errorf("%s: duplicate field", fieldPath)
		}
		seen[key.Name] = true

		child, err := p.node(fieldPath, n.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, schema.Field{Key: key, Node: child})
	}
	return schema.NewObject(fields...), nil
}

func (p *parser) node(path string, n *yaml.Node) (schema.Node, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return p.leaf(path, dto.LeafDescriptor{Type: n.Value})
	case yaml.MappingNode:
		if !isDescriptor(n) {
			return p.object(path, n)
		}
		desc, err := decodeDescriptor(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return p.leaf(path, desc)
	case yaml.SequenceNode:
		// Flow form: "tags: [string]" or "tags: [{$type: string, ...}]".
		if len(n.Content) != 1 {
			return nil, fmt.Errorf("%s: a list takes exactly one element schema, got %d", path, len(n.Content))
		}
		elem := resolve(n.Content[0])
		switch {
		case elem.Kind == yaml.ScalarNode:
			return p.leaf(path, dto.LeafDescriptor{Type: "[" + elem.Value + "]"})
		case elem.Kind == yaml.MappingNode && isDescriptor(elem):
			desc, err := decodeDescriptor(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			desc.Type = "[" + desc.Type + "]"
			return p.leaf(path, desc)
		default:
			return nil, fmt.Errorf("%s: list elements must be leaves, got %s", path, kindName(elem))
		}
	default:
		return nil, fmt.Errorf("%s: expected a type name or a mapping, got %s", path, kindName(n))
	}
}

// leaf builds a leaf or list node. Predicates are chained in a fixed order:
// pattern, enum, then named validators in the order listed.
func (p *parser) leaf(path string, d dto.LeafDescriptor) (schema.Node, error) {
	typeName, isList, allowEmpty := parseTypeName(d.Type)
	if d.AllowEmpty {
		if !isList {
			return nil, fmt.Errorf("%s: allow_empty requires a list type", path)
		}
		allowEmpty = true
	}

	t, err := schema.ParseType(typeName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var preds []schema.Predicate
	if d.Pattern != "" {
		pattern, err := schema.Pattern(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		preds = append(preds, pattern)
	}
	if len(d.Enum) > 0 {
		preds = append(preds, schema.Enum(d.Enum...))
	}
	for _, name := range d.Validators {
		if p.reg == nil {
			return nil, fmt.Errorf("%s: validator %q referenced without a registry", path, name)
		}
		pred, err := p.reg.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		preds = append(preds, pred)
	}

	leaf := schema.NewLeaf(t, preds...)
	if !isList {
		return leaf, nil
	}
	list := schema.NewList(leaf)
	if allowEmpty {
		list = list.AllowEmpty()
	}
	return list, nil
}

// parseTypeName splits "[int]?" into ("int", list, may be empty).
func parseTypeName(s string) (name string, isList, allowEmpty bool) {
	s = strings.TrimSpace(s)
	if trimmed, ok := strings.CutSuffix(s, schema.OptionalMarker); ok && strings.HasSuffix(trimmed, "]") {
		s = trimmed
		allowEmpty = true
	}
	if len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']' {
		return s[1 : len(s)-1], true, allowEmpty
	}
	return s, false, false
}

func isDescriptor(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == dto.TypeKey {
			return true
		}
	}
	return false
}

func decodeDescriptor(n *yaml.Node) (dto.LeafDescriptor, error) {
	var raw map[string]any
	if err := n.Decode(&raw); err != nil {
		return dto.LeafDescriptor{}, fmt.Errorf("failed to decode descriptor: %w", err)
	}

	var desc dto.LeafDescriptor
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &desc,
	})
	if err != nil {
		return dto.LeafDescriptor{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return dto.LeafDescriptor{}, fmt.Errorf("invalid descriptor: %w", err)
	}
	return desc, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func where(path string) string {
	if path == "" {
		return "root"
	}
	return path
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unsupported node"
	}
}
