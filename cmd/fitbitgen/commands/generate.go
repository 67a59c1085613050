package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	fitbitapi "github.com/lizlecrone/fitbit-api"
	"github.com/lizlecrone/fitbit-api/generator"
	"github.com/lizlecrone/fitbit-api/swagger"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output       string
	PackageName  string
	UserAgent    string
	Strict       bool
	NoWarnings   bool
	NoSplitByTag bool
	NoReadme     bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory for generated files (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated files (required)")
	fs.StringVar(&flags.PackageName, "p", "fitbit", "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package", "fitbit", "Go package name for generated code")
	fs.StringVar(&flags.UserAgent, "user-agent", "", "User-Agent header when fetching the document from a URL")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	fs.BoolVar(&flags.NoSplitByTag, "no-split-by-tag", false, "emit a single endpoints file instead of one per tag")
	fs.BoolVar(&flags.NoReadme, "no-readme", false, "don't generate README.md file")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: fitbitgen generate [flags] <file|url|->\n\n")
		Writef(output, "Generate Fitbit client methods from the vendor's Swagger 2.0 document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  fitbitgen generate -o ./fitbit fitbit_api.json\n")
		Writef(output, "  fitbitgen generate -o ./fitbit -p myfit https://dev.fitbit.com/build/reference/web-api/explore/fitbit-web-api-swagger.json\n")
		Writef(output, "  fitbitgen generate --strict -o ./fitbit fitbit_api.json\n")
		Writef(output, "  cat fitbit_api.json | fitbitgen generate -o ./fitbit -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  Use '-' as the file path to read the document from stdin.\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - The OAuth2 token endpoints are skipped; the runtime client owns them\n")
		Writef(output, "  - Generated files carry a DO NOT EDIT header and are formatted with goimports\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	// Generate the code with timing
	startTime := time.Now()
	var result *generator.GenerateResult
	var err error

	if specPath == StdinFilePath {
		parseResult, parseErr := swagger.New().ParseReader(os.Stdin)
		if parseErr != nil {
			return fmt.Errorf("parsing stdin: %w", parseErr)
		}
		g := generator.New()
		g.PackageName = flags.PackageName
		g.StrictMode = flags.Strict
		g.IncludeInfo = !flags.NoWarnings
		g.SplitByTag = !flags.NoSplitByTag
		g.GenerateReadme = !flags.NoReadme
		result, err = g.GenerateParsed(*parseResult)
	} else {
		genOpts := []generator.Option{
			generator.WithFilePath(specPath),
			generator.WithPackageName(flags.PackageName),
			generator.WithStrictMode(flags.Strict),
			generator.WithIncludeInfo(!flags.NoWarnings),
			generator.WithSplitByTag(!flags.NoSplitByTag),
			generator.WithReadme(!flags.NoReadme),
		}
		if flags.UserAgent != "" {
			genOpts = append(genOpts, generator.WithUserAgent(flags.UserAgent))
		}
		result, err = generator.GenerateWithOptions(genOpts...)
	}
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	// Print results
	fmt.Printf("Fitbit Client Generator\n")
	fmt.Printf("=======================\n\n")
	fmt.Printf("fitbitgen version: %s\n", fitbitapi.Version())
	fmt.Printf("Document: %s\n", FormatSpecPath(specPath))
	fmt.Printf("Swagger Version: %s\n", result.SourceVersion)
	fmt.Printf("Source Size: %s\n", swagger.FormatBytes(result.SourceSize))
	fmt.Printf("Package: %s\n", result.PackageName)
	fmt.Printf("Methods: %d\n", result.GeneratedMethods)
	fmt.Printf("Skipped Operations: %d\n", result.SkippedOperations)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	// Write files
	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	// Print generated files
	fmt.Printf("Generated Files (%d):\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("  - %s/%s (%d bytes)\n", flags.Output, file.Name, len(file.Content))
	}
	fmt.Println()

	// Print summary
	if result.Success {
		fmt.Printf("✓ Generation successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Println()
	} else {
		fmt.Printf("✗ Generation completed with %d critical issue(s)", result.CriticalCount)
		if result.WarningCount > 0 {
			fmt.Printf(", %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}

	return nil
}
