package graphql

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-toolgen/toolgen/tool"
)

func loadFixture(t *testing.T, name string) *Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	return &doc
}

func TestTools_EmptyRoots(t *testing.T) {
	doc := &Document{Data: &Data{Schema: &SchemaDef{Types: []*TypeDef{
		{Kind: KindObject, Name: "Query"},
		{Kind: KindObject, Name: "Mutation"},
	}}}}
	tools, err := Tools(doc, Options{Dialect: tool.DialectOpenAI})
	require.NoError(t, err)
	assert.Empty(t, tools)
}

func TestTools_MissingRootsSkipped(t *testing.T) {
	doc := &Document{Data: &Data{Schema: &SchemaDef{}}}
	tools, err := Tools(doc, Options{Dialect: tool.DialectOpenAI})
	require.NoError(t, err)
	assert.Empty(t, tools)
}

func TestTools_InvalidDialect(t *testing.T) {
	_, err := Tools(&Document{}, Options{Dialect: "invalid"})
	var configErr *tool.ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestTools_MutationFieldsFirst(t *testing.T) {
	doc := loadFixture(t, "users.json")
	tools, err := Tools(doc, Options{Dialect: tool.DialectOpenAI})
	require.NoError(t, err)
	names := make([]string, 0, len(tools))
	for _, record := range tools {
		names = append(names, record.Name)
	}
	assert.Equal(t, []string{"createUser", "updateUser", "getUser", "searchUsers"}, names)
}

func TestTools_OnlyMutations(t *testing.T) {
	doc := loadFixture(t, "users.json")
	tools, err := Tools(doc, Options{OnlyMutations: true, Dialect: tool.DialectOpenAI})
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "createUser", tools[0].Name)
	assert.Equal(t, "updateUser", tools[1].Name)
}

func TestTools_DescriptionFallback(t *testing.T) {
	doc := &Document{Data: &Data{Schema: &SchemaDef{Types: []*TypeDef{
		{Kind: KindObject, Name: "Query", Fields: []*Field{
			{Name: "ping"},
			{Name: "echo", Description: "   "},
		}},
	}}}}
	tools, err := Tools(doc, Options{Dialect: tool.DialectOpenAI})
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "Executes ping", tools[0].Description)
	assert.Equal(t, "Executes echo", tools[1].Description)
}

// Mirrors the users fixture end to end in the claude dialect: 4 records,
// required-ness per argument nullability, nested input object resolution and
// the input_schema key.
func TestTools_ClaudeFixture(t *testing.T) {
	doc := loadFixture(t, "users.json")
	tools, err := Tools(doc, Options{Dialect: tool.DialectClaude})
	require.NoError(t, err)
	require.Len(t, tools, 4)

	byName := map[string]tool.Tool{}
	for _, record := range tools {
		byName[record.Name] = record
	}

	getUser := byName["getUser"]
	assert.Equal(t, "Retrieve a user by their unique identifier", getUser.Description)
	require.NotNil(t, getUser.Parameters)
	assert.Equal(t, []string{"id"}, getUser.Parameters.Required)
	require.Contains(t, getUser.Parameters.Properties, "id")
	assert.Equal(t, tool.TypeString, getUser.Parameters.Properties["id"].Type)
	assert.Equal(t, "The unique identifier of the user", getUser.Parameters.Properties["id"].Description)

	searchUsers := byName["searchUsers"]
	assert.Empty(t, searchUsers.Parameters.Required)
	assert.Equal(t, tool.TypeString, searchUsers.Parameters.Properties["query"].Type)
	assert.Equal(t, tool.TypeInteger, searchUsers.Parameters.Properties["limit"].Type)

	createUser := byName["createUser"]
	assert.Equal(t, []string{"input"}, createUser.Parameters.Required)
	input := createUser.Parameters.Properties["input"]
	require.NotNil(t, input)
	assert.Equal(t, tool.TypeObject, input.Type)
	assert.Equal(t, "User creation input data", input.Description)
	assert.Equal(t, []string{"name", "email"}, input.Required)
	assert.Equal(t, tool.TypeInteger, input.Properties["age"].Type)

	updateUser := byName["updateUser"]
	assert.Equal(t, []string{"id"}, updateUser.Parameters.Required)

	// dialect key check on the serialized form
	for _, record := range tools {
		data, err := json.Marshal(record)
		require.NoError(t, err)
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "input_schema")
		assert.NotContains(t, decoded, "parameters")
		schema, ok := decoded["input_schema"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "object", schema["type"])
		assert.Contains(t, schema, "properties")
	}
}
