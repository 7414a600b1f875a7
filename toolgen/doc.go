// Package toolgen generates LLM function-calling tool specifications from
// GraphQL introspection results and compiled RPC descriptor sets. Its central
// Service type routes a source to the right pipeline, and NewHandler can
// expose a generated tool list over an MCP server for inspection.
package toolgen
