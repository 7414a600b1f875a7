package rpc

import (
	"fmt"
	"strings"

	"github.com/viant/mcp-toolgen/toolgen/tool"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Index maps fully-qualified type names to message and enum definitions
// across every file of a descriptor set. Keys are stored verbatim in the
// ".<package>.<TypeName>" form; lookups normalize a missing leading dot at
// the lookup boundary, never in storage.
type Index struct {
	messages map[string]*descriptorpb.DescriptorProto
	enums    map[string]*descriptorpb.EnumDescriptorProto
}

// NewIndex builds the type index for a descriptor set.
func NewIndex(set *descriptorpb.FileDescriptorSet) *Index {
	index := &Index{
		messages: map[string]*descriptorpb.DescriptorProto{},
		enums:    map[string]*descriptorpb.EnumDescriptorProto{},
	}
	for _, file := range set.GetFile() {
		pkg := file.GetPackage()
		for _, message := range file.GetMessageType() {
			index.messages[fullName(pkg, message.GetName())] = message
		}
		for _, enum := range file.GetEnumType() {
			index.enums[fullName(pkg, enum.GetName())] = enum
		}
	}
	return index
}

func fullName(pkg, name string) string {
	return fmt.Sprintf(".%s.%s", pkg, name)
}

func normalize(name string) string {
	if strings.HasPrefix(name, ".") {
		return name
	}
	return "." + name
}

// Message returns the message definition for a fully-qualified name, with or
// without the leading dot, or nil when absent.
func (x *Index) Message(name string) *descriptorpb.DescriptorProto {
	return x.messages[normalize(name)]
}

// Enum returns the enum definition for a fully-qualified name or nil.
func (x *Index) Enum(name string) *descriptorpb.EnumDescriptorProto {
	return x.enums[normalize(name)]
}

// MessageSchema resolves a message type into an object schema: fields in
// declaration order, message fields recursing through the index, enum fields
// as string enums, everything else through the scalar table. REPEATED wraps
// the resolved schema into an array; only the explicit REQUIRED label marks a
// field required. The property key is the declared JSON name when present.
func (x *Index) MessageSchema(message *descriptorpb.DescriptorProto) *tool.Schema {
	object := tool.NewObject()
	for _, field := range message.GetField() {
		name := field.GetJsonName()
		if name == "" {
			name = field.GetName()
		}
		schema := x.fieldSchema(field)
		if field.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED {
			schema = &tool.Schema{Type: tool.TypeArray, Items: schema}
		}
		object.Properties[name] = schema
		if field.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REQUIRED {
			object.Required = append(object.Required, name)
		}
	}
	return object
}

func (x *Index) fieldSchema(field *descriptorpb.FieldDescriptorProto) *tool.Schema {
	switch field.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		if nested := x.Message(field.GetTypeName()); nested != nil {
			return x.MessageSchema(nested)
		}
		return &tool.Schema{Type: tool.TypeString}
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		enum := x.Enum(field.GetTypeName())
		if enum == nil {
			return &tool.Schema{Type: tool.TypeString}
		}
		values := make([]string, 0, len(enum.GetValue()))
		for _, value := range enum.GetValue() {
			values = append(values, value.GetName())
		}
		return &tool.Schema{Type: tool.TypeString, Enum: values}
	default:
		return scalarSchema(field.GetType())
	}
}

// scalarSchema maps proto scalar type codes to JSON schema types. Codes
// outside the table (groups, fixed variants) fall back to string.
func scalarSchema(code descriptorpb.FieldDescriptorProto_Type) *tool.Schema {
	switch code {
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return &tool.Schema{Type: tool.TypeBoolean}
	case descriptorpb.FieldDescriptorProto_TYPE_STRING,
		descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return &tool.Schema{Type: tool.TypeString}
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
		descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return &tool.Schema{Type: tool.TypeNumber}
	case descriptorpb.FieldDescriptorProto_TYPE_INT32,
		descriptorpb.FieldDescriptorProto_TYPE_INT64,
		descriptorpb.FieldDescriptorProto_TYPE_UINT32,
		descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_SINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return &tool.Schema{Type: tool.TypeInteger}
	default:
		return &tool.Schema{Type: tool.TypeString}
	}
}
