package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalIntrospection = `{
  "data": {
    "__schema": {
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            {
              "name": "ping",
              "args": []
            }
          ]
        }
      ]
    }
  }
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(location, []byte(minimalIntrospection), 0644))
	return location
}

func TestRun_PrintsPrettyJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{writeFixture(t)}, &out))

	output := out.String()
	assert.True(t, len(output) > 0 && output[len(output)-1] == '\n', "output must end with a newline")

	var tools []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &tools))
	require.Len(t, tools, 1)
	assert.Equal(t, "ping", tools[0]["name"])
	assert.Equal(t, "Executes ping", tools[0]["description"])
	assert.Contains(t, tools[0], "parameters")

	// 2-space indent
	assert.Contains(t, output, "\n  {")
}

func TestRun_ClaudeFormat(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--format", "claude", writeFixture(t)}, &out))

	var tools []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &tools))
	require.Len(t, tools, 1)
	assert.Contains(t, tools[0], "input_schema")
	assert.NotContains(t, tools[0], "parameters")
}

func TestRun_SourceErrors(t *testing.T) {
	fixture := writeFixture(t)
	cases := []struct {
		name string
		args []string
	}{
		{name: "no source", args: []string{}},
		{name: "both source and url", args: []string{"--url", "https://api.acme.com/graphql", fixture}},
		{name: "malformed header", args: []string{"--url", "https://api.acme.com/graphql", "--header", "no colon"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), tc.args, &out)
			require.Error(t, err)
			assert.Zero(t, out.Len())
		})
	}
}

func TestRun_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: claude\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-f", cfgPath, writeFixture(t)}, &out))

	var tools []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &tools))
	require.Len(t, tools, 1)
	assert.Contains(t, tools[0], "input_schema")
}
