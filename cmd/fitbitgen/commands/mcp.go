package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/lizlecrone/fitbit-api/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: fitbitgen mcp\n\n")
		Writef(output, "Serve the fitbitgen toolchain over the Model Context Protocol (stdio).\n\n")
		Writef(output, "Tools exposed:\n")
		Writef(output, "  parse      Structural summary of the Swagger document\n")
		Writef(output, "  scopes     OAuth2 scopes and the operations that require them\n")
		Writef(output, "  generate   Render Go client methods into an output directory\n")
		Writef(output, "\nExample MCP client config:\n")
		Writef(output, "  {\"mcpServers\": {\"fitbitgen\": {\"command\": \"fitbitgen\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
