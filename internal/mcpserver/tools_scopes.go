package mcpserver

import (
	"context"
	"fmt"
	"sort"

	"github.com/lizlecrone/fitbit-api/swagger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type scopesInput struct {
	Spec specInput `json:"spec" jsonschema:"The Swagger document to inspect"`
}

type scopeInfo struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	OperationCount int    `json:"operation_count"`
}

type scopesOutput struct {
	AuthorizationURL string      `json:"authorization_url,omitempty"`
	TokenURL         string      `json:"token_url,omitempty"`
	Scopes           []scopeInfo `json:"scopes"`
}

func handleScopes(_ context.Context, _ *mcp.CallToolRequest, input scopesInput) (*mcp.CallToolResult, scopesOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), scopesOutput{}, nil
	}

	doc, ok := result.Doc()
	if !ok {
		return errResult(fmt.Errorf("parse result carries no document")), scopesOutput{}, nil
	}

	var scheme *swagger.SecurityScheme
	for _, s := range doc.SecurityDefinitions {
		if s != nil && s.Type == "oauth2" {
			scheme = s
			break
		}
	}
	if scheme == nil {
		return errResult(fmt.Errorf("document defines no oauth2 security scheme")), scopesOutput{}, nil
	}

	// Count how many operations require each scope.
	counts := make(map[string]int)
	for _, item := range doc.Paths {
		if item == nil {
			continue
		}
		for _, op := range swagger.Operations(item) {
			if op == nil {
				continue
			}
			for _, scope := range op.Scopes(doc) {
				counts[scope]++
			}
		}
	}

	output := scopesOutput{
		AuthorizationURL: scheme.AuthorizationURL,
		TokenURL:         scheme.TokenURL,
	}
	for name, desc := range scheme.Scopes {
		output.Scopes = append(output.Scopes, scopeInfo{
			Name:           name,
			Description:    desc,
			OperationCount: counts[name],
		})
	}
	sort.Slice(output.Scopes, func(i, j int) bool {
		return output.Scopes[i].Name < output.Scopes[j].Name
	})

	return nil, output, nil
}
