// Package main implements the decomment-mcp entry point.
package main

import (
	"flag"

	"github.com/seanhalberthal/decomment/internal/cli"
	"github.com/seanhalberthal/decomment/internal/scanner"
	"github.com/seanhalberthal/decomment/internal/server"
)

func main() {
	cliMode := flag.Bool("cli", false, "Run in CLI mode instead of MCP server")
	flag.Parse()

	scan := scanner.New()

	if *cliMode {
		cli.Run(scan, flag.Args())
		return
	}

	server.Run(scan)
}
