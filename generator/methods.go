// This file lowers parsed operations into methodSpec values, the intermediate
// form the code emitter works from.

package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lizlecrone/fitbit-api/internal/httputil"
	"github.com/lizlecrone/fitbit-api/internal/issues"
	"github.com/lizlecrone/fitbit-api/swagger"
)

// skippedPaths are the OAuth2 token endpoints. The runtime client performs
// authorization and token refresh itself, so no methods are generated for
// them.
var skippedPaths = map[string]bool{
	"/oauth2/token":          true,
	"/1.1/oauth2/introspect": true,
}

// scopeConstants maps wire scope names onto the Scope constants the runtime
// package declares.
var scopeConstants = map[string]string{
	"activity":  "ScopeActivity",
	"heartrate": "ScopeHeartrate",
	"location":  "ScopeLocation",
	"nutrition": "ScopeNutrition",
	"profile":   "ScopeProfile",
	"settings":  "ScopeSettings",
	"sleep":     "ScopeSleep",
	"social":    "ScopeSocial",
	"weight":    "ScopeWeight",
}

// methodOrder fixes the emission order of operations sharing a path.
var methodOrder = []string{
	httputil.MethodGet,
	httputil.MethodPost,
	httputil.MethodPut,
	httputil.MethodDelete,
}

// paramSpec describes one parameter of a generated method.
type paramSpec struct {
	// WireName is the parameter name as it appears on the wire
	WireName string
	// GoName is the Go argument name (required) or field name (optional)
	GoName string
	// In is the parameter location, "path" or "query"
	In string
	// Kind is the Go type classification
	Kind paramKind
	// Desc is the cleaned parameter description
	Desc string
}

// methodSpec describes one generated client method.
type methodSpec struct {
	// Name is the Go method name
	Name string
	// GroupName is the display name of the method's group (e.g. "Activity")
	GroupName string
	// GroupSlug is the file name fragment for the group (e.g. "activity")
	GroupSlug string
	// Path is the endpoint path template
	Path string
	// HTTPMethod is the lowercase HTTP method
	HTTPMethod string
	// Doc is the method doc comment text, starting with the method name
	Doc string
	// Scopes are the OAuth2 scopes the operation requires
	Scopes []string
	// Args are the required parameters in declaration order
	Args []paramSpec
	// Optional are the optional query parameters, grouped into a params struct
	Optional []paramSpec
	// Deprecated marks operations the document flags as deprecated
	Deprecated bool
}

// pathParams returns the required parameters located in the path.
func (m *methodSpec) pathParams() []paramSpec {
	var out []paramSpec
	for _, p := range m.Args {
		if p.In == "path" {
			out = append(out, p)
		}
	}
	return out
}

// queryParams returns the required parameters located in the query.
func (m *methodSpec) queryParams() []paramSpec {
	var out []paramSpec
	for _, p := range m.Args {
		if p.In == "query" {
			out = append(out, p)
		}
	}
	return out
}

// paramsTypeName is the name of the optional-parameters struct.
func (m *methodSpec) paramsTypeName() string {
	return m.Name + "Params"
}

// collectMethods lowers every operation in the document into a methodSpec,
// recording issues for anything skipped or approximated.
func (g *Generator) collectMethods(doc *swagger.Document, result *GenerateResult) []methodSpec {
	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	seen := make(map[string]string)
	var methods []methodSpec

	for _, path := range paths {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		ops := swagger.Operations(item)
		for _, httpMethod := range methodOrder {
			op := ops[httpMethod]
			if op == nil {
				continue
			}
			opPath := fmt.Sprintf("paths.%s.%s", path, httpMethod)

			if skippedPaths[path] {
				result.SkippedOperations++
				result.Issues = append(result.Issues, issues.New(SeverityInfo, opPath,
					"skipped: the OAuth2 token endpoints are handled by the runtime client"))
				continue
			}

			if op.OperationID == "" {
				result.SkippedOperations++
				result.Issues = append(result.Issues, issues.New(SeverityWarning, opPath,
					"operation has no operationId, skipped"))
				continue
			}

			m := g.buildMethod(doc, item, op, path, httpMethod, opPath, result)

			if prev, dup := seen[m.Name]; dup {
				renamed := m.Name + fieldName(httpMethod)
				for i := 2; ; i++ {
					if _, taken := seen[renamed]; !taken {
						break
					}
					renamed = fmt.Sprintf("%s%s%d", m.Name, fieldName(httpMethod), i)
				}
				result.Issues = append(result.Issues, issues.New(SeverityWarning, opPath,
					"method name %s collides with %s, renamed to %s", m.Name, prev, renamed))
				m.Doc = renamed + strings.TrimPrefix(m.Doc, m.Name)
				m.Name = renamed
			}
			seen[m.Name] = opPath

			methods = append(methods, m)
		}
	}

	return methods
}

// buildMethod lowers a single operation.
func (g *Generator) buildMethod(doc *swagger.Document, item *swagger.PathItem, op *swagger.Operation, path, httpMethod, opPath string, result *GenerateResult) methodSpec {
	m := methodSpec{
		Name:       methodName(op),
		Path:       path,
		HTTPMethod: httpMethod,
		Scopes:     op.Scopes(doc),
		Deprecated: op.Deprecated,
	}

	tag := ""
	if len(op.Tags) > 0 {
		tag = op.Tags[0]
	} else {
		result.Issues = append(result.Issues, issues.New(SeverityInfo, opPath,
			"operation has no tags, grouped under the default file"))
	}
	m.GroupName, m.GroupSlug = tagGroup(tag)

	desc := cleanDescription(op.Description)
	if desc == "" {
		desc = cleanDescription(op.Summary)
	}
	if desc == "" {
		m.Doc = fmt.Sprintf("%s calls the %s %s endpoint.", m.Name, strings.ToUpper(httpMethod), path)
	} else {
		m.Doc = m.Name + " " + lowerFirst(desc)
	}

	// Path-level parameters apply to every operation on the path.
	params := make([]*swagger.Parameter, 0, len(item.Parameters)+len(op.Parameters))
	params = append(params, item.Parameters...)
	params = append(params, op.Parameters...)

	for _, p := range params {
		if p == nil {
			continue
		}
		spec := paramSpec{
			WireName: p.Name,
			In:       p.In,
			Kind:     kindOf(p),
			Desc:     cleanDescription(p.Description),
		}
		switch p.In {
		case "path":
			// Path parameters are required by definition.
			spec.GoName = paramName(p.Name)
			m.Args = append(m.Args, spec)
		case "query":
			if p.Required {
				spec.GoName = paramName(p.Name)
				m.Args = append(m.Args, spec)
			} else {
				spec.GoName = fieldName(p.Name)
				m.Optional = append(m.Optional, spec)
			}
		case "formData":
			// Fitbit's write endpoints accept both; generate as query.
			result.Issues = append(result.Issues, issues.New(SeverityInfo, opPath,
				"formData parameter %q generated as a query parameter", p.Name))
			spec.In = "query"
			if p.Required {
				spec.GoName = paramName(p.Name)
				m.Args = append(m.Args, spec)
			} else {
				spec.GoName = fieldName(p.Name)
				m.Optional = append(m.Optional, spec)
			}
		default:
			result.Issues = append(result.Issues, issues.New(SeverityWarning, opPath,
				"unsupported parameter location %q for %q, parameter dropped", p.In, p.Name))
		}
	}

	if m.Deprecated {
		result.Issues = append(result.Issues, issues.New(SeverityInfo, opPath,
			"operation is deprecated"))
	}

	return m
}

// scopeExpr renders the Go expression for a wire scope name, preferring the
// runtime package's constants.
func scopeExpr(scope string, opPath string, result *GenerateResult) string {
	if c, ok := scopeConstants[scope]; ok {
		return c
	}
	result.Issues = append(result.Issues, issues.New(SeverityWarning, opPath,
		"unknown OAuth2 scope %q, using a literal", scope))
	return fmt.Sprintf("Scope(%q)", scope)
}
