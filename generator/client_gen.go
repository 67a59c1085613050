// This file emits the generated endpoint source files, one per operation
// group.

package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lizlecrone/fitbit-api/internal/httputil"
	"github.com/lizlecrone/fitbit-api/internal/issues"
)

// callVerbs maps wire methods onto the runtime client's request helpers.
var callVerbs = map[string]string{
	httputil.MethodGet:    "Get",
	httputil.MethodPost:   "Post",
	httputil.MethodPut:    "Put",
	httputil.MethodDelete: "Delete",
}

// generateEndpointFiles groups methods and emits one source file per group.
func (g *Generator) generateEndpointFiles(methods []methodSpec, result *GenerateResult) error {
	if len(methods) == 0 {
		result.Issues = append(result.Issues, issues.New(SeverityCritical, "paths",
			"document contains no generatable operations"))
		return nil
	}

	groups := make(map[string][]methodSpec)
	var slugs []string
	for _, m := range methods {
		slug := m.GroupSlug
		if !g.SplitByTag {
			slug = ""
		}
		if _, ok := groups[slug]; !ok {
			slugs = append(slugs, slug)
		}
		groups[slug] = append(groups[slug], m)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		group := groups[slug]
		name := "endpoints_gen.go"
		header := "Fitbit Web API endpoints."
		if slug != "" {
			name = fmt.Sprintf("endpoints_%s_gen.go", slug)
			header = fmt.Sprintf("Fitbit Web API: %s endpoints.", group[0].GroupName)
		}

		content := g.emitFile(header, group, result)
		formatted, err := formatAndFixImports(name, content)
		if err != nil {
			result.Issues = append(result.Issues, issues.New(SeverityWarning, name,
				"generated code could not be formatted: %v", err))
			formatted = content
		}

		result.Files = append(result.Files, GeneratedFile{Name: name, Content: formatted})
		result.GeneratedMethods += len(group)
	}

	return nil
}

// emitFile renders a complete endpoint source file.
func (g *Generator) emitFile(header string, methods []methodSpec, result *GenerateResult) []byte {
	var b strings.Builder

	b.WriteString("// Code generated by fitbitgen. DO NOT EDIT.\n")
	b.WriteString("//\n")
	b.WriteString("// ")
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString("package ")
	b.WriteString(g.packageName())
	b.WriteString("\n\n")

	writeImports(&b, methods)

	for i := range methods {
		if i > 0 {
			b.WriteString("\n")
		}
		writeMethod(&b, &methods[i], result)
	}

	return []byte(b.String())
}

// packageName returns the configured package name, defaulting to "fitbit".
func (g *Generator) packageName() string {
	if g.PackageName == "" {
		return "fitbit"
	}
	return g.PackageName
}

// writeImports renders the import block covering every method in the file.
func writeImports(b *strings.Builder, methods []methodSpec) {
	needed := map[string]bool{
		"context":       true,
		"encoding/json": true,
	}
	for i := range methods {
		m := &methods[i]
		if len(m.pathParams()) > 0 {
			needed["strings"] = true
		}
		if len(m.queryParams()) > 0 || len(m.Optional) > 0 {
			needed["net/url"] = true
		}
		for _, p := range m.Args {
			for _, imp := range p.Kind.imports() {
				needed[imp] = true
			}
		}
		for _, p := range m.Optional {
			switch p.Kind {
			case kindInt, kindFloat:
				needed["strconv"] = true
			case kindDate:
				needed["time"] = true
			}
		}
	}

	paths := make([]string, 0, len(needed))
	for p := range needed {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	b.WriteString("import (\n")
	for _, p := range paths {
		fmt.Fprintf(b, "\t%q\n", p)
	}
	b.WriteString(")\n\n")
}

// writeMethod renders the optional-params struct (when present) and the
// method itself.
func writeMethod(b *strings.Builder, m *methodSpec, result *GenerateResult) {
	opPath := fmt.Sprintf("paths.%s.%s", m.Path, m.HTTPMethod)

	if len(m.Optional) > 0 {
		writeParamsStruct(b, m)
		b.WriteString("\n")
	}

	// Doc comment.
	writeWrappedComment(b, m.Doc, "")
	if len(m.Scopes) > 0 {
		b.WriteString("//\n")
		writeWrappedComment(b, fmt.Sprintf("Required scopes: %s.", strings.Join(m.Scopes, ", ")), "")
	}
	if m.Deprecated {
		b.WriteString("//\n")
		b.WriteString("// Deprecated: Fitbit has deprecated this operation.\n")
	}

	// Signature.
	fmt.Fprintf(b, "func (c *Client) %s(ctx context.Context", m.Name)
	for _, p := range m.Args {
		fmt.Fprintf(b, ", %s %s", p.GoName, p.Kind.goType())
	}
	if len(m.Optional) > 0 {
		fmt.Fprintf(b, ", params *%s", m.paramsTypeName())
	}
	b.WriteString(") (json.RawMessage, error) {\n")

	// Scope guard.
	if len(m.Scopes) > 0 {
		exprs := make([]string, len(m.Scopes))
		for i, s := range m.Scopes {
			exprs[i] = scopeExpr(s, opPath, result)
		}
		fmt.Fprintf(b, "\tif err := c.requireScopes(%s); err != nil {\n", strings.Join(exprs, ", "))
		b.WriteString("\t\treturn nil, err\n")
		b.WriteString("\t}\n")
	}

	// Path substitution.
	pathParams := m.pathParams()
	endpointExpr := fmt.Sprintf("%q", m.Path)
	if len(pathParams) > 0 {
		b.WriteString("\tendpoint := strings.NewReplacer(\n")
		for _, p := range pathParams {
			fmt.Fprintf(b, "\t\t\"{%s}\", %s,\n", p.WireName, p.Kind.wireExpr(p.GoName))
		}
		fmt.Fprintf(b, "\t).Replace(%q)\n", m.Path)
		endpointExpr = "endpoint"
	}

	// Query parameters.
	queryParams := m.queryParams()
	queryExpr := "nil"
	if len(queryParams) > 0 || len(m.Optional) > 0 {
		b.WriteString("\tquery := url.Values{}\n")
		for _, p := range queryParams {
			fmt.Fprintf(b, "\tquery.Set(%q, %s)\n", p.WireName, p.Kind.wireExpr(p.GoName))
		}
		if len(m.Optional) > 0 {
			b.WriteString("\tif params != nil {\n")
			for _, p := range m.Optional {
				cond, value := p.Kind.zeroGuard("params." + p.GoName)
				fmt.Fprintf(b, "\t\tif %s {\n", cond)
				fmt.Fprintf(b, "\t\t\tquery.Set(%q, %s)\n", p.WireName, value)
				b.WriteString("\t\t}\n")
			}
			b.WriteString("\t}\n")
		}
		queryExpr = "query"
	}

	fmt.Fprintf(b, "\treturn c.%s(ctx, %s, %s)\n", callVerbs[m.HTTPMethod], endpointExpr, queryExpr)
	b.WriteString("}\n")
}

// writeParamsStruct renders the struct holding a method's optional query
// parameters.
func writeParamsStruct(b *strings.Builder, m *methodSpec) {
	writeWrappedComment(b, fmt.Sprintf("%s holds the optional parameters for %s.", m.paramsTypeName(), m.Name), "")
	fmt.Fprintf(b, "type %s struct {\n", m.paramsTypeName())
	for _, p := range m.Optional {
		if p.Desc != "" {
			writeWrappedComment(b, fmt.Sprintf("%s %s", p.GoName, lowerFirst(p.Desc)), "\t")
		} else {
			writeWrappedComment(b, fmt.Sprintf("%s is the %q parameter.", p.GoName, p.WireName), "\t")
		}
		fmt.Fprintf(b, "\t%s %s\n", p.GoName, p.Kind.goType())
	}
	b.WriteString("}\n")
}
