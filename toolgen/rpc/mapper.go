package rpc

import (
	"strings"
	"unicode"

	"github.com/viant/mcp-toolgen/toolgen/tool"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Options control service filtering and the output dialect.
type Options struct {
	// Services is an optional allowlist of service names; empty means all.
	Services []string
	Dialect  tool.Dialect
}

// Tools maps every method of every service in the set to one tool record, in
// file-then-service-then-method declaration order. The parameter schema is
// the resolved schema of the method's input message; a method whose input
// type cannot be found in the index gets an empty object schema.
func Tools(set *descriptorpb.FileDescriptorSet, options Options) ([]tool.Tool, error) {
	if err := options.Dialect.Validate(); err != nil {
		return nil, err
	}
	index := NewIndex(set)
	allowed := map[string]bool{}
	for _, name := range options.Services {
		allowed[name] = true
	}
	result := make([]tool.Tool, 0)
	for _, file := range set.GetFile() {
		for serviceIdx, service := range file.GetService() {
			if len(allowed) > 0 && !allowed[service.GetName()] {
				continue
			}
			for methodIdx, method := range service.GetMethod() {
				parameters := tool.NewObject()
				if input := index.Message(method.GetInputType()); input != nil {
					parameters = index.MessageSchema(input)
				}
				description := strings.TrimSpace(methodComment(file, serviceIdx, methodIdx))
				if description == "" {
					description = "Calls " + method.GetName()
				}
				result = append(result, tool.Tool{
					Name:        MethodToolName(method.GetName()),
					Description: description,
					Dialect:     options.Dialect,
					Parameters:  parameters,
				})
			}
		}
	}
	return result, nil
}

// MethodToolName converts a capitalized-word method name into
// lowercase-underscore form: an underscore before every uppercase letter that
// is not the first character, then everything lowercased.
func MethodToolName(name string) string {
	var builder strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				builder.WriteByte('_')
			}
			builder.WriteRune(unicode.ToLower(r))
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// methodComment returns the leading comment attached to a method, recovered
// from the file's SourceCodeInfo. The location path is [6, service, 2,
// method]: field numbers of FileDescriptorProto.service and
// ServiceDescriptorProto.method.
func methodComment(file *descriptorpb.FileDescriptorProto, serviceIdx, methodIdx int) string {
	for _, location := range file.GetSourceCodeInfo().GetLocation() {
		path := location.GetPath()
		if len(path) != 4 {
			continue
		}
		if path[0] == 6 && int(path[1]) == serviceIdx && path[2] == 2 && int(path[3]) == methodIdx {
			return location.GetLeadingComments()
		}
	}
	return ""
}
