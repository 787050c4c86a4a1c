package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/conform"
	"github.com/aretw0/conform/internal/testutils"
)

const testSchema = `
one:
  $type: int
  validators: [even]
two?: "[string]?"
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd_Files(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{
		"schema.yaml": testSchema,
		"good.json":   `{"one": 8, "two": []}`,
		"bad.json":    `{"one": 7}`,
		"broken.json": `{not json`,
	})
	schemaPath := filepath.Join(dir, "schema.yaml")
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	broken := filepath.Join(dir, "broken.json")

	out, err := run(t, "", "validate", "--schema", schemaPath, good)
	require.NoError(t, err)
	assert.Equal(t, good+": valid\n", out)

	out, err = run(t, "", "validate", "-s", schemaPath, good, bad, broken)
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, good+": valid")
	assert.Contains(t, out, bad+`: field "one": 7 is not an even number`)
	assert.Contains(t, out, broken+": Could not parse JSON")
}

func TestValidateCmd_Stdin(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{"schema.yaml": testSchema})
	schemaPath := filepath.Join(dir, "schema.yaml")

	out, err := run(t, `{"one": 10}`, "validate", "--schema", schemaPath)
	require.NoError(t, err)
	assert.Equal(t, "stdin: valid\n", out)

	out, err = run(t, `{}`, "validate", "--schema", schemaPath)
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "Required key one not found")
}

func TestValidateCmd_Errors(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{"schema.yaml": testSchema})
	schemaPath := filepath.Join(dir, "schema.yaml")

	_, err := run(t, "", "validate", "--schema", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read schema")

	_, err = run(t, "", "validate", "--schema", schemaPath, filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read")

	_, err = run(t, "{}", "validate", "--schema", schemaPath, "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "conform version "+conform.Version+"\n", out)
}
