// Package commands provides CLI command handlers for fitbitgen.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	fitbitapi "github.com/lizlecrone/fitbit-api"
	"github.com/lizlecrone/fitbit-api/swagger"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// FormatSpecPath returns a display-friendly path for the API document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputSpecHeader outputs the common document header to stderr.
// This includes the fitbitgen version, document path, and Swagger version.
func OutputSpecHeader(specPath, version string) {
	Writef(os.Stderr, "fitbitgen version: %s\n", fitbitapi.Version())
	Writef(os.Stderr, "Document: %s\n", FormatSpecPath(specPath))
	Writef(os.Stderr, "Swagger Version: %s\n", version)
}

// OutputSpecStats outputs the common document statistics to stderr.
// This includes source size, path count, operation count, parameter count,
// and load time.
func OutputSpecStats(sourceSize int64, stats swagger.DocumentStats, loadTime any) {
	Writef(os.Stderr, "Source Size: %s\n", swagger.FormatBytes(sourceSize))
	Writef(os.Stderr, "Paths: %d\n", stats.PathCount)
	Writef(os.Stderr, "Operations: %d\n", stats.OperationCount)
	Writef(os.Stderr, "Parameters: %d\n", stats.ParameterCount)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}
