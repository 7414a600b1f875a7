package tool

import "encoding/json"

// Schema value types produced by the resolvers.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Schema is a recursive JSON-Schema-compatible node. Every node carries
// exactly one Type; Items is populated for arrays, Properties/Required for
// objects. Required preserves source declaration order.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// NewObject returns an object schema with an initialised property map so that
// parameter schemas always serialize a properties key, even when empty.
func NewObject() *Schema {
	return &Schema{Type: TypeObject, Properties: map[string]*Schema{}}
}

// MarshalJSON keeps the properties key present on object nodes; omitempty
// would drop an empty property map which parameter schemas must retain.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Type == TypeObject {
		properties := s.Properties
		if properties == nil {
			properties = map[string]*Schema{}
		}
		return json.Marshal(struct {
			Type        string             `json:"type"`
			Description string             `json:"description,omitempty"`
			Properties  map[string]*Schema `json:"properties"`
			Required    []string           `json:"required,omitempty"`
		}{s.Type, s.Description, properties, s.Required})
	}
	type plain Schema
	return json.Marshal((*plain)(s))
}
