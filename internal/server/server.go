// Package server provides the MCP server implementation for decomment.
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seanhalberthal/decomment/internal/config"
	"github.com/seanhalberthal/decomment/internal/scanner"
	"github.com/seanhalberthal/decomment/internal/types"
)

// scan holds the scanner instance for tool handlers.
var scan *scanner.Scanner

// Run starts the MCP server with the given scanner.
func Run(s *scanner.Scanner) {
	scan = s

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "decomment",
			Version: types.Version,
		},
		nil,
	)

	registerTools(server)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "decomment_status",
		Description: "Get decomment version, recognised comment syntaxes, and default ignore list",
	}, handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decomment_strip",
		Description: "Strip comments from a text buffer while preserving string literal contents",
	}, handleStrip)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decomment_scan",
		Description: "Strip comments from text files under a directory, with optional dry-run and backups",
	}, handleScan)
}

// Tool input/output types

type StatusInput struct{}

type StatusOutput struct {
	types.StatusResponse
}

type StripInput struct {
	Text string `json:"text" jsonschema:"description=Text to strip comments from"`
}

type StripOutput struct {
	types.StripResponse
}

type ScanInput struct {
	Path      string `json:"path" jsonschema:"description=Path to the directory to scan"`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"description=Descend into subdirectories"`
	DryRun    bool   `json:"dry_run,omitempty" jsonschema:"description=Report changes without writing files"`
	Backup    bool   `json:"backup,omitempty" jsonschema:"description=Write .bak copies before overwriting"`
}

type ScanOutput struct {
	types.ScanResult
}

// Tool handlers

func handleStatus(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[StatusInput]) (*mcp.CallToolResultFor[StatusOutput], error) {
	status := StatusOutput{
		StatusResponse: types.StatusResponse{
			Version:           types.Version,
			SupportedSyntaxes: types.SupportedSyntaxes,
			DefaultIgnoreDirs: config.DefaultIgnoreDirs,
		},
	}

	return &mcp.CallToolResultFor[StatusOutput]{StructuredContent: status}, nil
}

func handleStrip(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[StripInput]) (*mcp.CallToolResultFor[StripOutput], error) {
	result := StripOutput{StripResponse: scan.StripText(params.Arguments.Text)}
	return &mcp.CallToolResultFor[StripOutput]{StructuredContent: result}, nil
}

func handleScan(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ScanInput]) (*mcp.CallToolResultFor[ScanOutput], error) {
	input := params.Arguments
	if input.Path == "" {
		return &mcp.CallToolResultFor[ScanOutput]{IsError: true}, fmt.Errorf("path is required")
	}

	result, err := scan.Scan(scanner.ScanOptions{
		Path:      input.Path,
		Recursive: input.Recursive,
		DryRun:    input.DryRun,
		Backup:    input.Backup,
	})
	if err != nil {
		return &mcp.CallToolResultFor[ScanOutput]{IsError: true}, err
	}

	return &mcp.CallToolResultFor[ScanOutput]{StructuredContent: ScanOutput{ScanResult: *result}}, nil
}
