package graphql

import (
	"strings"

	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// Options control which root types are mapped and the output dialect.
type Options struct {
	OnlyMutations bool
	Dialect       tool.Dialect
}

// Tools maps every field of the Mutation root (always) and the Query root
// (unless OnlyMutations) to one tool record each, in declaration order with
// Mutation fields first. Root types absent from the schema are skipped.
func Tools(doc *Document, options Options) ([]tool.Tool, error) {
	if err := options.Dialect.Validate(); err != nil {
		return nil, err
	}
	index := NewIndex(doc)
	roots := []string{"Mutation", "Query"}
	if options.OnlyMutations {
		roots = roots[:1]
	}
	result := make([]tool.Tool, 0)
	for _, rootName := range roots {
		root := index.Lookup(rootName)
		if root == nil {
			continue
		}
		for _, field := range root.Fields {
			result = append(result, fieldTool(field, index, options.Dialect))
		}
	}
	return result, nil
}

func fieldTool(field *Field, index Index, dialect tool.Dialect) tool.Tool {
	description := strings.TrimSpace(field.Description)
	if description == "" {
		description = "Executes " + field.Name
	}
	return tool.Tool{
		Name:        field.Name,
		Description: description,
		Dialect:     dialect,
		Parameters:  index.objectSchema(field.Args),
	}
}
