package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/lizlecrone/fitbit-api/swagger"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	NoValidate bool
	Format     string
	Quiet      bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.NoValidate, "no-validate", false, "skip document structure validation")
	fs.StringVar(&flags.Format, "f", FormatJSON, "summary output format (json or yaml)")
	fs.StringVar(&flags.Format, "format", FormatJSON, "summary output format (json or yaml)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the summary, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the summary, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: fitbitgen parse [flags] <file|url|->\n\n")
		Writef(output, "Parse the Swagger document and print a structural summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  fitbitgen parse fitbit_api.json\n")
		Writef(output, "  fitbitgen parse -f yaml https://dev.fitbit.com/build/reference/web-api/explore/fitbit-web-api-swagger.json\n")
		Writef(output, "  cat fitbit_api.json | fitbitgen parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed or validation errors found\n")
	}

	return fs, flags
}

// parseSummary is the machine-readable summary printed to stdout.
type parseSummary struct {
	Title          string   `json:"title" yaml:"title"`
	APIVersion     string   `json:"api_version" yaml:"api_version"`
	SwaggerVersion string   `json:"swagger_version" yaml:"swagger_version"`
	Format         string   `json:"format" yaml:"format"`
	Paths          int      `json:"paths" yaml:"paths"`
	Operations     int      `json:"operations" yaml:"operations"`
	Parameters     int      `json:"parameters" yaml:"parameters"`
	Tags           []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Scopes         []string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path, URL, or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	p := swagger.New()
	p.ValidateStructure = !flags.NoValidate

	var result *swagger.ParseResult
	var err error

	if specPath == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
	} else {
		result, err = p.Parse(specPath)
		if err != nil {
			return fmt.Errorf("parsing file: %w", err)
		}
	}

	// Always print errors to stderr, even in quiet mode (critical for debugging)
	if len(result.Errors) > 0 {
		Writef(os.Stderr, "Validation Errors:\n")
		for _, err := range result.Errors {
			Writef(os.Stderr, "  - %s\n", err)
		}
		Writef(os.Stderr, "\n")
		return fmt.Errorf("document has %d validation error(s)", len(result.Errors))
	}

	// Diagnostics go to stderr so stdout stays clean for the summary
	if !flags.Quiet {
		Writef(os.Stderr, "Fitbit API Document Parser\n")
		Writef(os.Stderr, "==========================\n\n")
		OutputSpecHeader(specPath, result.Version)
		OutputSpecStats(result.SourceSize, result.Stats, result.LoadTime)
		Writef(os.Stderr, "\n")

		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "Warnings:\n")
			for _, warning := range result.Warnings {
				Writef(os.Stderr, "  - %s\n", warning)
			}
			Writef(os.Stderr, "\n")
		}
	}

	doc, ok := result.Doc()
	if !ok {
		return fmt.Errorf("parse result carries no document")
	}

	summary := parseSummary{
		SwaggerVersion: result.Version,
		Format:         string(result.SourceFormat),
		Paths:          result.Stats.PathCount,
		Operations:     result.Stats.OperationCount,
		Parameters:     result.Stats.ParameterCount,
	}
	if doc.Info != nil {
		summary.Title = doc.Info.Title
		summary.APIVersion = doc.Info.Version
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			summary.Tags = append(summary.Tags, tag.Name)
		}
	}
	summary.Scopes = documentScopes(doc)

	if err := OutputStructured(summary, flags.Format); err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(os.Stderr, "Parsing completed successfully!\n")
	}
	return nil
}

// documentScopes returns the sorted OAuth2 scope names defined by the document.
func documentScopes(doc *swagger.Document) []string {
	var scopes []string
	for _, scheme := range doc.SecurityDefinitions {
		if scheme == nil || scheme.Type != "oauth2" {
			continue
		}
		for name := range scheme.Scopes {
			scopes = append(scopes, name)
		}
	}
	sort.Strings(scopes)
	return scopes
}
