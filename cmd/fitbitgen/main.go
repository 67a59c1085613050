package main

import (
	"fmt"
	"os"

	fitbitapi "github.com/lizlecrone/fitbit-api"
	"github.com/lizlecrone/fitbit-api/cmd/fitbitgen/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("fitbitgen v%s\n", fitbitapi.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fitbitgen - Fitbit Web API client generator

Usage:
  fitbitgen <command> [options]

Commands:
  generate    Generate client methods from the Swagger 2.0 document
  parse       Parse the document and print a structural summary
  mcp         Serve the toolchain over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Examples:
  fitbitgen parse fitbit_api.json
  fitbitgen generate -o ./fitbit fitbit_api.json
  fitbitgen generate -o ./fitbit https://dev.fitbit.com/build/reference/web-api/explore/fitbit-web-api-swagger.json
  cat fitbit_api.json | fitbitgen generate -o ./fitbit -

Run 'fitbitgen <command> --help' for more information on a command.`)
}
