package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/mcp-toolgen/toolgen"
	"github.com/viant/mcp-toolgen/toolgen/config"
)

// Run is the entry point for the CLI. The function is intentionally separated
// from the main package to keep the command usable from tests as well.
func Run(args []string) {
	if err := run(context.Background(), args, os.Stdout); err != nil {
		// flags already prints user-friendly messages – just set exit code.
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	var cfg *config.Config
	if options.Config != "" {
		var err error
		if cfg, err = config.Load(options.Config); err != nil {
			return err
		}
	}
	source, err := options.source(cfg)
	if err != nil {
		return err
	}
	genOptions, err := options.generationOptions(cfg)
	if err != nil {
		return err
	}

	tools, err := toolgen.New().Generate(ctx, source, genOptions)
	if err != nil {
		return err
	}
	if options.Serve {
		return serve(ctx, tools, cfg)
	}
	data, err := json.MarshalIndent(tools, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
