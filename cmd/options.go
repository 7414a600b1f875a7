package cmd

import (
	"strings"

	"github.com/viant/mcp-toolgen/toolgen"
	"github.com/viant/mcp-toolgen/toolgen/config"
	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config        string   `short:"f" long:"config" description:"Optional YAML config with defaults (url, headers, format, server options)"`
	URL           string   `long:"url" description:"GraphQL endpoint URL – introspection fetched automatically"`
	Headers       []string `long:"header" description:"HTTP header for --url (e.g. 'Authorization: Bearer X')"`
	Format        string   `long:"format" choice:"openai" choice:"claude" description:"Output dialect (default openai)"`
	OnlyMutations bool     `long:"only-mutations" description:"GraphQL: include only Mutation fields"`
	Services      string   `long:"services" description:"Proto: comma-separated service names to include"`
	Serve         bool     `long:"serve" description:"Expose the generated tools over an MCP server instead of printing JSON"`

	Args struct {
		Source string `positional-arg-name:"source" description:"Path to introspection JSON or .desc file"`
	} `positional-args:"yes"`
}

// source resolves the mutually exclusive source selection: a positional file
// path, the --url flag, or a configured default URL.
func (o *Options) source(cfg *config.Config) (string, error) {
	if o.URL != "" && o.Args.Source != "" {
		return "", tool.NewConfigError("source file and --url are mutually exclusive")
	}
	switch {
	case o.URL != "":
		return o.URL, nil
	case o.Args.Source != "":
		return o.Args.Source, nil
	case cfg != nil && cfg.URL != "":
		return cfg.URL, nil
	}
	return "", tool.NewConfigError("provide a source file or --url")
}

// generationOptions merges flags over configured defaults.
func (o *Options) generationOptions(cfg *config.Config) (toolgen.Options, error) {
	options := toolgen.Options{OnlyMutations: o.OnlyMutations}
	if cfg != nil {
		options.Headers = cfg.Headers
		options.Services = cfg.Services
		options.OnlyMutations = options.OnlyMutations || cfg.OnlyMutations
		options.Dialect = tool.Dialect(cfg.Format)
	}
	if len(o.Headers) > 0 {
		headers, err := ParseHeaders(o.Headers)
		if err != nil {
			return toolgen.Options{}, err
		}
		options.Headers = headers
	}
	if o.Services != "" {
		options.Services = strings.Split(o.Services, ",")
	}
	if o.Format != "" {
		options.Dialect = tool.Dialect(o.Format)
	}
	return options, nil
}
