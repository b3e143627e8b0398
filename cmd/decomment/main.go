// Package main implements the decomment entry point.
package main

import (
	"flag"

	"github.com/seanhalberthal/decomment/internal/cli"
	"github.com/seanhalberthal/decomment/internal/scanner"
	"github.com/seanhalberthal/decomment/internal/server"
)

func main() {
	mcpMode := flag.Bool("mcp", false, "Run as MCP server")
	flag.Parse()

	scan := scanner.New()

	if *mcpMode {
		server.Run(scan)
		return
	}

	cli.Run(scan, flag.Args())
}
