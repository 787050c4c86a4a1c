// Package schema validates decoded JSON data trees against declarative schemas.
//
// A schema is a tree of three node kinds:
//
//   - *Leaf: a type tag (String, Int, Float, Bool, ...) followed by an ordered
//     chain of predicates.
//   - *Object: an ordered set of fields, each required or optional.
//   - *List: a homogeneous list whose elements all satisfy one leaf, with a
//     flag saying whether the list may be empty.
//
// Basic usage:
//
//	root := schema.NewObject(
//	    schema.Required("name", schema.NewLeaf(schema.String(), schema.MustPattern(`[a-z]+`))),
//	    schema.Optional("port", schema.NewLeaf(schema.Int())),
//	    schema.Required("tags", schema.NewList(schema.NewLeaf(schema.String())).AllowEmpty()),
//	    schema.Required("owner", schema.NewObject(
//	        schema.Required("email", schema.NewLeaf(schema.String())),
//	    )),
//	)
//
//	if err := schema.ValidateJSON(body, root); err != nil {
//	    var verr *schema.ValidationError
//	    errors.As(err, &verr) // always true
//	}
//
// The shorthand form keys fields by name, with a trailing "?" for optional ones:
//
//	root := schema.Fields(map[string]schema.Node{
//	    "one":  schema.NewLeaf(schema.String()),
//	    "two?": schema.NewLeaf(schema.String()),
//	})
//
// Validation stops at the first violation, found in field declaration order
// and depth first. A value that fails its type tag never reaches the
// predicates of its leaf, so predicates may assume the declared type.
//
// Schemas are immutable once built and may be shared between goroutines,
// provided predicates are free of side effects.
package schema
