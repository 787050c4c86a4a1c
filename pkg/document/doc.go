// Package document builds schemas from YAML or JSON documents.
//
// A document is a mapping from field keys to field schemas. A key ending in
// "?" is optional. A field schema is one of:
//
//	name: string            # leaf with a type name
//	tags: "[string]"        # non-empty list of strings
//	tags: [string]          # same, in YAML flow form
//	notes: "[string]?"      # list that may be empty
//	owner:                  # nested object
//	  email: string
//	code:                   # descriptor, marked by the reserved $type key
//	  $type: string
//	  pattern: "[A-Z]{3}"
//	  enum: [ABC, XYZ]
//	  validators: [non_empty]
//
// Descriptors accept allow_empty for list types. Named validators are
// resolved against a registry.Registry.
package document
