package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
	"github.com/viant/mcp-toolgen/toolgen"
	"github.com/viant/mcp-toolgen/toolgen/config"
	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// serve launches an MCP server exposing the generated tool records so that
// MCP hosts can list and inspect them. Server options (port, transport,
// auth, …) come from the config file; when absent the underlying library
// assumes sensible defaults.
func serve(ctx context.Context, tools []tool.Tool, cfg *config.Config) error {
	var srvOptions *mcp.ServerOptions
	if cfg != nil {
		srvOptions = cfg.Server
	}
	mcpServer, err := mcp.NewServer(toolgen.NewHandler(tools), srvOptions)
	if err != nil {
		return err
	}

	httpSrv := mcpServer.HTTP(ctx, "")
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("http server: %v", err)
		}
	}()

	fmt.Printf("MCP server listening on %s (%d tools)\n", httpSrv.Addr, len(tools))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	fmt.Println("shutting down…")
	return httpSrv.Close()
}
