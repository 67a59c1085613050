package swagger

// Document represents a Swagger 2.0 (OpenAPI 2.0) document.
// Reference: https://spec.openapis.org/oas/v2.0.html
type Document struct {
	Swagger             string                     `yaml:"swagger" json:"swagger"` // Required: "2.0"
	Info                *Info                      `yaml:"info" json:"info"`       // Required
	Host                string                     `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath            string                     `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes             []string                   `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Consumes            []string                   `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces            []string                   `yaml:"produces,omitempty" json:"produces,omitempty"`
	Paths               map[string]*PathItem       `yaml:"paths" json:"paths"` // Required
	SecurityDefinitions map[string]*SecurityScheme `yaml:"securityDefinitions,omitempty" json:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement      `yaml:"security,omitempty" json:"security,omitempty"`
	Tags                []*Tag                     `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Info provides metadata about the API
type Info struct {
	Title          string `yaml:"title" json:"title"`     // Required
	Version        string `yaml:"version" json:"version"` // Required
	Description    string `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Get    *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put    *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post   *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	// Parameters apply to every operation on this path
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Operation describes a single API operation on a path
type Operation struct {
	OperationID string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Summary     string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Parameters  []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Security    []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Deprecated  bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Parameter describes a single operation parameter
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	In          string `yaml:"in" json:"in"` // "query", "header", "path", "formData", "body"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum        []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
}

// SecurityScheme describes a security scheme (Fitbit uses oauth2)
type SecurityScheme struct {
	Type             string            `yaml:"type" json:"type"`
	Description      string            `yaml:"description,omitempty" json:"description,omitempty"`
	Flow             string            `yaml:"flow,omitempty" json:"flow,omitempty"`
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// SecurityRequirement lists required security schemes and, for oauth2,
// the scopes an operation needs.
type SecurityRequirement map[string][]string

// Tag adds metadata to a group of operations
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Scopes returns the oauth2 scopes required by the operation, consulting the
// operation's own security requirements first and falling back to the
// document-level requirements. The scheme name Fitbit uses is "oauth2".
func (op *Operation) Scopes(doc *Document) []string {
	reqs := op.Security
	if len(reqs) == 0 && doc != nil {
		reqs = doc.Security
	}
	for _, req := range reqs {
		if scopes, ok := req["oauth2"]; ok {
			return scopes
		}
	}
	return nil
}
