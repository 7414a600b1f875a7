// Package cmd implements the mcp-toolgen command-line interface: a single
// flat command that reads a GraphQL introspection source or a compiled
// descriptor set, prints the generated tool specifications as JSON, or
// serves them over MCP with --serve.
package cmd
