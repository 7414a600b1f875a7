// Package conv provides small helpers to coerce generated schema structures
// into the loosely-typed property maps the MCP protocol layer expects. The
// primary helper Convert performs a best-effort JSON marshal/unmarshal
// round-trip, which is sufficient for bridging typed schema nodes and
// map-shaped protocol payloads.
package conv
