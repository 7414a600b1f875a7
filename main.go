package main

import (
	"os"

	"github.com/viant/mcp-toolgen/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
