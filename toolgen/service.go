package toolgen

import (
	"context"
	"path"

	"github.com/viant/mcp-toolgen/toolgen/graphql"
	"github.com/viant/mcp-toolgen/toolgen/rpc"
	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// Service is the generation facade. Each invocation builds its own type
// index and discards it on return; the service itself holds no mutable state
// beyond the loaders' clients.
type Service struct {
	graphql *graphql.Loader
	rpc     *rpc.Loader
}

// New constructs a service with default loaders.
func New() *Service {
	return &Service{graphql: graphql.NewLoader(), rpc: rpc.NewLoader()}
}

// Options bundle the per-invocation generation settings shared by both
// pipelines.
type Options struct {
	// Headers apply to live GraphQL endpoint sources only.
	Headers map[string]string
	// OnlyMutations limits GraphQL mapping to the Mutation root.
	OnlyMutations bool
	// Services is an optional allowlist of RPC service names.
	Services []string
	// Dialect defaults to openai when empty.
	Dialect tool.Dialect
}

func (o Options) dialect() (tool.Dialect, error) {
	dialect := o.Dialect
	if dialect == "" {
		dialect = tool.DialectOpenAI
	}
	if err := dialect.Validate(); err != nil {
		return "", err
	}
	return dialect, nil
}

// Generate routes a source to the RPC pipeline when it carries the .desc
// extension and to the GraphQL pipeline otherwise. The dialect is validated
// before any I/O happens.
func (s *Service) Generate(ctx context.Context, source string, options Options) ([]tool.Tool, error) {
	if source == "" {
		return nil, tool.NewConfigError("provide a source file or endpoint URL")
	}
	if path.Ext(source) == ".desc" {
		return s.ProtoTools(ctx, source, options)
	}
	return s.GraphQLTools(ctx, source, options)
}

// GraphQLTools loads an introspection document from a file path, live
// endpoint URL or any other source the loader supports and maps it to tool
// records.
func (s *Service) GraphQLTools(ctx context.Context, source string, options Options) ([]tool.Tool, error) {
	dialect, err := options.dialect()
	if err != nil {
		return nil, err
	}
	doc, err := s.graphql.Load(ctx, source, options.Headers)
	if err != nil {
		return nil, err
	}
	return graphql.Tools(doc, graphql.Options{OnlyMutations: options.OnlyMutations, Dialect: dialect})
}

// GraphQLToolsFromDocument maps an already-parsed introspection document.
func (s *Service) GraphQLToolsFromDocument(doc *graphql.Document, options Options) ([]tool.Tool, error) {
	dialect, err := options.dialect()
	if err != nil {
		return nil, err
	}
	return graphql.Tools(doc, graphql.Options{OnlyMutations: options.OnlyMutations, Dialect: dialect})
}

// ProtoTools loads a descriptor-set file and maps its service methods to
// tool records.
func (s *Service) ProtoTools(ctx context.Context, location string, options Options) ([]tool.Tool, error) {
	dialect, err := options.dialect()
	if err != nil {
		return nil, err
	}
	set, err := s.rpc.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	return rpc.Tools(set, rpc.Options{Services: options.Services, Dialect: dialect})
}
