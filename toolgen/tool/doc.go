// Package tool defines the normalized tool-record model shared by the
// GraphQL and RPC generation pipelines: the recursive JSON-Schema node, the
// dialect-keyed tool record and the error kinds surfaced by loaders and the
// service facade.
package tool
