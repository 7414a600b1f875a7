// Package graphql turns GraphQL introspection results into tool records. It
// contains the introspection document model, a loader that accepts a live
// endpoint, a file or an already-parsed document, and the recursive type
// resolver that translates type references into JSON-Schema nodes.
package graphql
