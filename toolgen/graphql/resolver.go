package graphql

import (
	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// Index maps type names to their definitions. Duplicate names are not
// validated; the last definition wins, which is safe because GraphQL schemas
// never carry duplicate type names.
type Index map[string]*TypeDef

// NewIndex builds the name index from the document's flat type list.
func NewIndex(doc *Document) Index {
	index := make(Index)
	for _, def := range doc.Types() {
		index[def.Name] = def
	}
	return index
}

// Lookup returns the named type definition or nil when absent.
func (x Index) Lookup(name string) *TypeDef { return x[name] }

var scalarTypes = map[string]string{
	"Int":     tool.TypeInteger,
	"Float":   tool.TypeNumber,
	"String":  tool.TypeString,
	"Boolean": tool.TypeBoolean,
	"ID":      tool.TypeString,
}

// Resolve recursively translates a type reference into a schema node.
// NON_NULL wrappers are transparent here; required-ness belongs to the
// containing field or argument, not to the type node. Unknown kinds, unknown
// scalars and missing index entries all fall back to a plain string schema
// rather than erroring.
func (x Index) Resolve(ref *TypeRef) *tool.Schema {
	if ref == nil {
		// deep wrapper nesting truncated by the introspection query shape
		return &tool.Schema{Type: tool.TypeString}
	}
	switch ref.Kind {
	case KindNonNull:
		return x.Resolve(ref.OfType)
	case KindList:
		return &tool.Schema{Type: tool.TypeArray, Items: x.Resolve(ref.OfType)}
	case KindScalar:
		if jsonType, ok := scalarTypes[ref.Name]; ok {
			return &tool.Schema{Type: jsonType}
		}
		return &tool.Schema{Type: tool.TypeString}
	case KindEnum:
		def := x.Lookup(ref.Name)
		if def == nil {
			return &tool.Schema{Type: tool.TypeString}
		}
		values := make([]string, 0, len(def.EnumValues))
		for _, value := range def.EnumValues {
			values = append(values, value.Name)
		}
		return &tool.Schema{Type: tool.TypeString, Enum: values}
	case KindInputObject:
		def := x.Lookup(ref.Name)
		if def == nil {
			return &tool.Schema{Type: tool.TypeString}
		}
		return x.objectSchema(def.InputFields)
	default:
		return &tool.Schema{Type: tool.TypeString}
	}
}

// objectSchema builds an object schema from an ordered input-value list;
// arguments and input-object fields share shape and required-ness semantics.
func (x Index) objectSchema(values []*InputValue) *tool.Schema {
	object := tool.NewObject()
	for _, value := range values {
		property := x.Resolve(value.Type)
		if value.Description != "" {
			property.Description = value.Description
		}
		object.Properties[value.Name] = property
		if value.Type.IsNonNull() {
			object.Required = append(object.Required, value.Name)
		}
	}
	return object
}
