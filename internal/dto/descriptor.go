package dto

// LeafDescriptor is the long form of a leaf or list entry in a schema document.
// It uses "mapstructure" tags to match the YAML/JSON keys of the document.
type LeafDescriptor struct {
	// Type is a type name ("int") or a list of one ("[int]").
	Type    string `json:"$type" mapstructure:"$type"`
	Pattern string `json:"pattern,omitempty" mapstructure:"pattern"`
	Enum    []any  `json:"enum,omitempty" mapstructure:"enum"`

	// Validators are names resolved against a predicate registry.
	Validators []string `json:"validators,omitempty" mapstructure:"validators"`

	// AllowEmpty is only meaningful for list types.
	AllowEmpty bool `json:"allow_empty,omitempty" mapstructure:"allow_empty"`
}

// TypeKey is the reserved key that marks a mapping as a descriptor rather
// than a nested object.
const TypeKey = "$type"
