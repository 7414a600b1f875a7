package toolgen

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/mcp-toolgen/internal/conv"
	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// NewHandler returns an MCP handler factory exposing the given generated
// tools. Every incoming connection reuses the same tool list: records are
// converted once per connection setup, never mutated afterwards. The tools
// describe remote operations with no local executor, so call requests answer
// with an is-error result rather than an execution.
func NewHandler(tools []tool.Tool) func(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	return func(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
		impl := serverproto.NewDefaultHandler(notifier, l, cli)
		for i := range tools {
			entry, err := toolEntry(tools[i])
			if err != nil {
				return nil, err
			}
			impl.Registry.ToolRegistry.Put(entry.Metadata.Name, entry)
		}
		return impl, nil
	}
}

func toolEntry(t tool.Tool) (*serverproto.ToolEntry, error) {
	var properties map[string]map[string]interface{}
	var required []string
	if t.Parameters != nil {
		if err := conv.Convert(t.Parameters.Properties, &properties); err != nil {
			return nil, fmt.Errorf("failed to convert schema for tool %q: %w", t.Name, err)
		}
		required = t.Parameters.Required
	}
	description := t.Description
	entry := &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        t.Name,
			Description: &description,
			InputSchema: mcpschema.ToolInputSchema{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		res := &mcpschema.CallToolResult{IsError: conv.Pointer[bool](true)}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Text: fmt.Sprintf("tool %q describes a remote operation and has no local executor", request.Params.Name),
		})
		return res, nil
	}
	return entry, nil
}
