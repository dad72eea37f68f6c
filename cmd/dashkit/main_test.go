package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveBuiltInComponent(t *testing.T) {
	out, err := execute(t, "resolve", "button", "--set", "variant=outline", "--set", "size=lg", "--class", "px-10")
	require.NoError(t, err)

	classes := strings.Fields(out)
	assert.Contains(t, classes, "border-primary-500")
	assert.Contains(t, classes, "px-10")
	assert.NotContains(t, classes, "px-6")
	assert.NotContains(t, classes, "bg-primary-500")
}

func TestResolveSuggestsClosestOption(t *testing.T) {
	_, err := execute(t, "resolve", "button", "--set", "variant=outlin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Did you mean "outline"?`)

	_, err = execute(t, "resolve", "buton")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Did you mean "button"?`)

	_, err = execute(t, "resolve", "button", "--set", "sise=lg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Did you mean "size"?`)
}

func TestResolveRejectsMalformedSelection(t *testing.T) {
	_, err := execute(t, "resolve", "button", "--set", "variant")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "axis=option")
}

func TestResolveFromSchemaFile(t *testing.T) {
	original := appFs
	t.Cleanup(func() { appFs = original })
	appFs = afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(appFs, "/pill.yaml", []byte(`
schemas:
  - name: pill
    base: inline-flex rounded-full
    axes:
      - name: tone
        default: neutral
        options:
          - {key: neutral, class: bg-neutral-100}
          - {key: danger, class: bg-error-100}
`), 0o644))

	out, err := execute(t, "--schema", "/pill.yaml", "resolve", "pill", "--set", "tone=danger")
	require.NoError(t, err)
	assert.Equal(t, "inline-flex rounded-full bg-error-100\n", out)

	_, err = execute(t, "--schema", "/missing.yaml", "schemas")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load schemas")
}

func TestMerge(t *testing.T) {
	out, err := execute(t, "merge", "px-2 py-1 bg-red-500", "px-4 bg-blue-500")
	require.NoError(t, err)
	assert.Equal(t, "py-1 px-4 bg-blue-500\n", out)

	_, err = execute(t, "merge")
	assert.Error(t, err)
}

func TestSchemasListsRegistry(t *testing.T) {
	out, err := execute(t, "schemas")
	require.NoError(t, err)
	assert.Contains(t, out, "SCHEMA")
	assert.Contains(t, out, "button")

	out, err = execute(t, "schemas", "--json")
	require.NoError(t, err)
	var summaries []schemaSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "badge")
	assert.Contains(t, names, "shell-sidebar")
	assert.IsIncreasing(t, names)
}

func TestTokens(t *testing.T) {
	out, err := execute(t, "tokens", "--css")
	require.NoError(t, err)
	assert.Contains(t, out, ":root")
	assert.Contains(t, out, "--color-primary-500")

	out, err = execute(t, "tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "primary")
	assert.Contains(t, out, "900")
}
