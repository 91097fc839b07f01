package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `
type: object
required: [name]
properties:
  name:
    type: string
    examples: [Ada]
    x-display:
      label: Name
  age:
    type: integer
    minimum: 0
  pets:
    type: array
    items:
      oneOf:
        - title: Dog
          type: object
          required: [bark]
          properties:
            bark: {type: boolean}
        - title: Cat
          type: object
          required: [meow]
          properties:
            meow: {type: string, examples: [purr]}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"version", "resolve", "synth", "validate", "walk", "variant"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "schemawalk version: dev")
}

func TestSynthCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)

	out, err := run(t, "synth", schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada"}`, out)

	out, err = run(t, "synth", schema, "--path", "pets", "--element", "--variant", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"meow":"purr"}`, out)

	_, err = run(t, "synth", schema, "--path", "pets", "--element", "--variant", "5")
	assert.Error(t, err)

	_, err = run(t, "synth", schema, "--path", "missing")
	assert.Error(t, err)
}

func TestSynthCommand_YAMLOutput(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)

	out, err := run(t, "synth", schema, "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "name: Ada\n", out)
}

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "ref.json", `{"properties":{"a":{"$ref":"#/definitions/b"}},"definitions":{"b":{"type":"string"}}}`)

	out, err := run(t, "resolve", schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"properties":{"a":{"type":"string"}},"definitions":{"b":{"type":"string"}}}`, out)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)
	good := writeFile(t, dir, "good.json", `{"name":"Ada","age":36}`)
	bad := writeFile(t, dir, "bad.json", `{"age":-1}`)

	out, err := run(t, "validate", schema, good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	out, err = run(t, "validate", schema, bad)
	require.Error(t, err)
	assert.Contains(t, out, "required")
	assert.Contains(t, out, "minimum")
	assert.Contains(t, out, "Name is required")
}

func TestWalkCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)
	data := writeFile(t, dir, "data.json", `{"name":"Ada","pets":[{"meow":"hi"}]}`)

	out, err := run(t, "walk", schema, data)
	require.NoError(t, err)
	assert.Contains(t, out, "(root)")
	assert.Contains(t, out, "pets[0].meow")
	assert.Contains(t, out, `"hi"`)
}

func TestVariantCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)
	data := writeFile(t, dir, "data.json", `{"pets":[{"bark":true},{"meow":"x"},{"moo":1}]}`)

	out, err := run(t, "variant", schema, data, "--path", "pets")
	require.NoError(t, err)
	assert.Contains(t, out, "Dog")
	assert.Contains(t, out, "Cat")
}
