// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the fitbitgen toolchain as MCP tools over stdio.
package mcpserver

import (
	"context"

	fitbitapi "github.com/lizlecrone/fitbit-api"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `fitbitgen MCP server — parses Fitbit's Swagger 2.0 document, reports OAuth2 scopes, and generates Go client code.

Documents can be provided as a file path, a URL, or inline content. Fitbit
publishes its document at:
https://dev.fitbit.com/build/reference/web-api/explore/fitbit-web-api-swagger.json`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "fitbitgen", Version: fitbitapi.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a Fitbit Swagger 2.0 document. Returns a structural summary: title, API version, path/operation/parameter counts, tags, plus any validation errors and warnings.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scopes",
		Description: "List the OAuth2 scopes a Fitbit Swagger 2.0 document defines, with each scope's description and the number of operations that require it.",
	}, handleScopes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Go client methods from a Fitbit Swagger 2.0 document. Requires output_dir. Returns a manifest of generated files and an issue summary.",
	}, handleGenerate)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
