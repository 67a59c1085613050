package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The Swagger document to parse"`
}

type parseOutput struct {
	Title          string   `json:"title"`
	APIVersion     string   `json:"api_version"`
	SwaggerVersion string   `json:"swagger_version"`
	Format         string   `json:"format"`
	PathCount      int      `json:"path_count"`
	OperationCount int      `json:"operation_count"`
	ParameterCount int      `json:"parameter_count"`
	Tags           []string `json:"tags,omitempty"`
	Errors         []string `json:"errors,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		SwaggerVersion: result.Version,
		Format:         string(result.SourceFormat),
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		ParameterCount: result.Stats.ParameterCount,
		Warnings:       result.Warnings,
	}
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, e.Error())
	}

	if doc, ok := result.Doc(); ok {
		if doc.Info != nil {
			output.Title = doc.Info.Title
			output.APIVersion = doc.Info.Version
		}
		for _, tag := range doc.Tags {
			if tag != nil {
				output.Tags = append(output.Tags, tag.Name)
			}
		}
	}

	return nil, output, nil
}
