package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleFile = "../../examples/app.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--file", exampleFile, "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"id=42", "tag=a", "tag=b", "tag=c", "q="})
	require.NoError(t, err)
	assert.Equal(t, "42", params["id"])
	assert.Equal(t, []string{"a", "b", "c"}, params["tag"])
	assert.Equal(t, "", params["q"])

	_, err = parseParams([]string{"nope"})
	assert.ErrorContains(t, err, "invalid param")
	_, err = parseParams([]string{"=1"})
	assert.Error(t, err)
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "match", "/users/7?tab=posts")
	require.NoError(t, err)

	var got struct {
		State  string         `json:"state"`
		Params map[string]any `json:"params"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "users.show", got.State)
	assert.Equal(t, "7", got.Params["id"])
	assert.Equal(t, "posts", got.Params["tab"])

	_, err = run(t, "match", "/nowhere")
	assert.ErrorContains(t, err, "no state matches")
}

func TestGoCommand(t *testing.T) {
	out, err := run(t, "go", "--no-color", "--from", "", "users.show", "id=42")
	require.NoError(t, err)
	assert.Contains(t, out, "app › users › users.show")
	assert.Contains(t, out, "id = 42")
	assert.Contains(t, out, "/users/42?tab=profile")

	out, err = run(t, "go", "--no-color", "--from", "/home", "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "app › settings › settings.section")
	assert.Contains(t, out, "/settings/general")

	_, err = run(t, "go", "--from", "", "ghost")
	assert.Error(t, err)
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, "graph", "users.list")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "classDef current")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "7 states are valid!")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "voie version ")
}
