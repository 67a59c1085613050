package generator

import (
	"fmt"
	"strings"

	fitbitapi "github.com/lizlecrone/fitbit-api"
	"github.com/lizlecrone/fitbit-api/swagger"
)

// generateReadme renders a README.md describing the generated files and how
// to regenerate them.
func (g *Generator) generateReadme(doc *swagger.Document, result *GenerateResult) []byte {
	var b strings.Builder

	title := "Fitbit Web API"
	version := ""
	if doc.Info != nil {
		if doc.Info.Title != "" {
			title = doc.Info.Title
		}
		version = doc.Info.Version
	}

	fmt.Fprintf(&b, "# %s client\n\n", title)
	fmt.Fprintf(&b, "Generated by fitbitgen %s. Do not edit the `*_gen.go` files by hand.\n\n", fitbitapi.Version())

	b.WriteString("## Source\n\n")
	if version != "" {
		fmt.Fprintf(&b, "- API version: %s\n", version)
	}
	if result.SourceVersion != "" {
		fmt.Fprintf(&b, "- Swagger version: %s\n", result.SourceVersion)
	}
	fmt.Fprintf(&b, "- Operations: %d generated, %d skipped\n\n", result.GeneratedMethods, result.SkippedOperations)

	b.WriteString("## Regenerating\n\n")
	b.WriteString("```sh\n")
	b.WriteString("fitbitgen generate -o . fitbit_api.json\n")
	b.WriteString("```\n\n")

	b.WriteString("## Files\n\n")
	for _, f := range result.Files {
		if !strings.HasSuffix(f.Name, ".go") {
			continue
		}
		fmt.Fprintf(&b, "- `%s`\n", f.Name)
	}
	b.WriteString("\n")

	b.WriteString("## Usage\n\n")
	b.WriteString("```go\n")
	fmt.Fprintf(&b, "client, err := %s.NewClient(ctx, cfg, token)\n", g.packageName())
	b.WriteString("if err != nil {\n")
	b.WriteString("\tlog.Fatal(err)\n")
	b.WriteString("}\n")
	b.WriteString("raw, err := client.Profile(ctx)\n")
	b.WriteString("```\n")

	return []byte(b.String())
}
