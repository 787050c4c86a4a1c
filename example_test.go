package conform_test

import (
	"fmt"

	"github.com/aretw0/conform/pkg/document"
	"github.com/aretw0/conform/pkg/registry"
	"github.com/aretw0/conform/pkg/schema"
)

// Example_chainedPredicates shows predicates running in order after
// the type check, stopping at the first failure.
func Example_chainedPredicates() {
	isEven := func(v any) error {
		if n, _ := schema.AsInt64(v); n%2 != 0 {
			return schema.Errorf("%d is not an even number", n)
		}
		return nil
	}
	greaterThanSeven := func(v any) error {
		if n, _ := schema.AsInt64(v); n <= 7 {
			return schema.Errorf("%d is not greater than 7", n)
		}
		return nil
	}

	root := schema.NewObject(
		schema.Required("one", schema.NewLeaf(schema.Int(), isEven, greaterThanSeven)),
	)

	for _, data := range []map[string]any{{"one": 8}, {"one": 4}, {"one": 9}, {}} {
		fmt.Println(schema.Validate(data, root))
	}
	// Output:
	// <nil>
	// field "one": 4 is not greater than 7
	// field "one": 9 is not an even number
	// field "one": Required key one not found
}

// Example_document builds the schema from a YAML document.
func Example_document() {
	root, err := document.Parse([]byte(`
one: string
two?: "[string]?"
three:
  $type: int
  validators: [positive]
`), registry.Default())
	if err != nil {
		panic(err)
	}

	fmt.Println(schema.ValidateJSON([]byte(`{"one": "", "two": [], "three": 1}`), root))
	fmt.Println(schema.ValidateJSON([]byte(`{"one": "", "two": [5], "three": 1}`), root))
	fmt.Println(schema.ValidateJSON([]byte(`{not json`), root))
	// Output:
	// <nil>
	// field "two[0]": Value 5 is not of type string
	// Could not parse JSON: invalid character 'n' looking for beginning of object key string
}
