package graphql

// IntrospectionQuery is sent verbatim as the "query" field of the POST body
// when loading a live endpoint. Wrapper nesting is resolved three levels deep
// (ofType.ofType.ofType); anything deeper is truncated to {kind, name:null}
// by the query shape itself.
const IntrospectionQuery = `
query IntrospectionQuery {
  __schema {
    types {
      kind
      name
      description
      fields(includeDeprecated: true) {
        name
        description
        args {
          name
          description
          type { ...TypeRef }
        }
      }
      inputFields {
        name
        description
        type { ...TypeRef }
      }
      enumValues(includeDeprecated: true) { name description }
    }
  }
}

fragment TypeRef on __Type {
  kind
  name
  ofType { kind name ofType { kind name ofType { kind name } } }
}
`

// TypeKind enumerates the __TypeKind values the resolver dispatches on.
// Kinds outside this set are handled by the resolver's default arm.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// Document is a parsed introspection result.
type Document struct {
	Data *Data `json:"data"`
}

// Types returns the flat type list, tolerating a partially absent payload.
func (d *Document) Types() []*TypeDef {
	if d == nil || d.Data == nil || d.Data.Schema == nil {
		return nil
	}
	return d.Data.Schema.Types
}

type Data struct {
	Schema *SchemaDef `json:"__schema"`
}

type SchemaDef struct {
	Types []*TypeDef `json:"types"`
}

// TypeDef is one named type of the schema. Fields, InputFields and EnumValues
// keep their source declaration order.
type TypeDef struct {
	Kind        TypeKind     `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Fields      []*Field     `json:"fields"`
	InputFields []*InputValue `json:"inputFields"`
	EnumValues  []*EnumValue `json:"enumValues"`
}

// Field is a queryable field on an object type.
type Field struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Args        []*InputValue `json:"args"`
}

// InputValue is an argument or input-object field.
type InputValue struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        *TypeRef `json:"type"`
}

type EnumValue struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TypeRef is a type reference node. OfType is present only for the LIST and
// NON_NULL wrapper kinds.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// IsNonNull reports whether the reference's outermost kind is NON_NULL, which
// is the only thing required-ness is derived from: [String!] stays optional
// while [String]! is required.
func (r *TypeRef) IsNonNull() bool {
	return r != nil && r.Kind == KindNonNull
}
