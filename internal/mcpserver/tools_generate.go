package mcpserver

import (
	"context"
	"fmt"

	"github.com/lizlecrone/fitbit-api/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The Swagger document to generate code from"`
	OutputDir   string    `json:"output_dir"             jsonschema:"Directory to write generated files to"`
	PackageName string    `json:"package_name,omitempty" jsonschema:"Go package name for generated code (default: fitbit)"`
	SingleFile  bool      `json:"single_file,omitempty"  jsonschema:"Emit one endpoints file instead of one per tag"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success           bool                `json:"success"`
	OutputDir         string              `json:"output_dir"`
	PackageName       string              `json:"package_name"`
	FileCount         int                 `json:"file_count"`
	Files             []generatedFileInfo `json:"files"`
	GeneratedMethods  int                 `json:"generated_methods"`
	SkippedOperations int                 `json:"skipped_operations"`
	WarningCount      int                 `json:"warning_count"`
	CriticalCount     int                 `json:"critical_count"`
	Issues            []string            `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := []generator.Option{
		generator.WithParsed(*parseResult),
		generator.WithReadme(false),
		generator.WithSplitByTag(!input.SingleFile),
	}
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:           result.Success,
		OutputDir:         input.OutputDir,
		PackageName:       result.PackageName,
		FileCount:         len(result.Files),
		GeneratedMethods:  result.GeneratedMethods,
		SkippedOperations: result.SkippedOperations,
		WarningCount:      result.WarningCount,
		CriticalCount:     result.CriticalCount,
	}
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	return nil, output, nil
}
