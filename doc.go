/*
Package conform is a lightweight declarative validator for decoded JSON data.

A schema describes required and optional keys, expected types, homogeneous
lists and chains of custom predicates. Validation walks the schema against
the data tree and stops at the first violation, which is reported as a
*schema.ValidationError naming the offending field.

# Packages

  - schema: the engine. Schema nodes, type tags, predicates, Validate and ValidateJSON.
  - document: builds schemas from YAML or JSON documents.
  - registry: named predicates that documents can reference.
  - adapters/http: an HTTP endpoint validating request bodies.
  - observability: Prometheus metrics for validators.

# Usage

	root := schema.Fields(map[string]schema.Node{
		"one":  schema.NewLeaf(schema.Int(), isEven, greaterThanSeven),
		"two?": schema.NewList(schema.NewLeaf(schema.String())).AllowEmpty(),
	})

	if err := schema.ValidateJSON([]byte(`{"one": 8}`), root); err != nil {
		log.Fatal(err)
	}

The conform command wraps the same engine:

	conform validate --schema schema.yaml data.json
	conform serve --schema schema.yaml --port 8080
*/
package conform
