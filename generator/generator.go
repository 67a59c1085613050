package generator

import (
	"fmt"
	"time"

	"github.com/lizlecrone/fitbit-api/internal/issues"
	"github.com/lizlecrone/fitbit-api/internal/severity"
	"github.com/lizlecrone/fitbit-api/swagger"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates operations that may not generate perfectly
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates operations that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "endpoints_activity_gen.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating client code from an API
// description
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// SourceVersion is the declared Swagger version string
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat swagger.SourceFormat
	// PackageName is the Go package name used in generation
	PackageName string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the source document
	Stats swagger.DocumentStats
	// GeneratedMethods is the count of client methods generated
	GeneratedMethods int
	// SkippedOperations is the count of operations skipped: the OAuth2
	// token endpoints the runtime client already covers, and operations
	// without an operationId
	SkippedOperations int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles client code generation from Fitbit's API description
type Generator struct {
	// PackageName is the Go package name for generated code
	// If empty, defaults to "fitbit"
	PackageName string

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string

	// SplitByTag splits generated methods into one file per operation tag.
	// When false, every method lands in a single endpoints_gen.go.
	// Default: true
	SplitByTag bool

	// GenerateReadme enables README.md generation alongside the code.
	// The README includes regeneration commands and the file listing.
	// Default: true
	GenerateReadme bool
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		PackageName:    "fitbit",
		StrictMode:     false,
		IncludeInfo:    true,
		SplitByTag:     true,
		GenerateReadme: true,
	}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *swagger.ParseResult

	// Configuration options
	packageName    string
	strictMode     bool
	includeInfo    bool
	userAgent      string
	splitByTag     bool
	generateReadme bool
}

// GenerateWithOptions generates client code from an API description using
// functional options. This combines input source selection and configuration
// in a single function call.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("fitbit_api.json"),
//	    generator.WithPackageName("fitbit"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		PackageName:    cfg.packageName,
		StrictMode:     cfg.strictMode,
		IncludeInfo:    cfg.includeInfo,
		UserAgent:      cfg.userAgent,
		SplitByTag:     cfg.splitByTag,
		GenerateReadme: cfg.generateReadme,
	}

	// Route to the appropriate generation method based on input source
	if cfg.filePath != nil {
		return g.Generate(*cfg.filePath)
	}
	if cfg.parsed != nil {
		return g.GenerateParsed(*cfg.parsed)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("generator: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName:    "fitbit",
		strictMode:     false,
		includeInfo:    true,
		userAgent:      "",
		splitByTag:     true,
		generateReadme: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sourceCount := 0
	if cfg.filePath != nil {
		sourceCount++
	}
	if cfg.parsed != nil {
		sourceCount++
	}

	if sourceCount == 0 {
		return nil, fmt.Errorf("generator: must specify an input source (use WithFilePath or WithParsed)")
	}
	if sourceCount > 1 {
		return nil, fmt.Errorf("generator: must specify exactly one input source")
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result swagger.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithPackageName specifies the Go package name for generated code
// Default: "fitbit"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any issues)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses swagger package default)
func WithUserAgent(ua string) Option {
	return func(cfg *generateConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithSplitByTag enables or disables splitting files by operation tag.
// Default: true
func WithSplitByTag(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.splitByTag = enabled
		return nil
	}
}

// WithGenerateReadme enables or disables README.md generation alongside the
// generated code.
// Default: true
func WithGenerateReadme(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateReadme = enabled
		return nil
	}
}

// WithReadme is an alias for WithGenerateReadme.
func WithReadme(enabled bool) Option { return WithGenerateReadme(enabled) }

// Generate generates client code from an API description file or URL
func (g *Generator) Generate(specPath string) (*GenerateResult, error) {
	// Create parser and set UserAgent if specified
	p := swagger.New()
	if g.UserAgent != "" {
		p.UserAgent = g.UserAgent
	}

	// Parse the source document
	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse API description: %w", err)
	}

	// Check for parse errors
	if len(parseResult.Errors) > 0 {
		return nil, fmt.Errorf("generator: source document has %d parse error(s), cannot generate", len(parseResult.Errors))
	}

	return g.GenerateParsed(*parseResult)
}

// GenerateParsed generates client code from an already-parsed API description
func (g *Generator) GenerateParsed(parseResult swagger.ParseResult) (*GenerateResult, error) {
	startTime := time.Now()

	result := &GenerateResult{
		Files:         make([]GeneratedFile, 0),
		SourceVersion: parseResult.Version,
		SourceFormat:  parseResult.SourceFormat,
		PackageName:   g.PackageName,
		Issues:        make([]GenerateIssue, 0),
		LoadTime:      parseResult.LoadTime,
		SourceSize:    parseResult.SourceSize,
		Stats:         parseResult.Stats,
	}

	if result.PackageName == "" {
		result.PackageName = "fitbit"
	}

	doc, ok := parseResult.Doc()
	if !ok {
		return nil, fmt.Errorf("generator: parse result carries no document")
	}

	methods := g.collectMethods(doc, result)
	if err := g.generateEndpointFiles(methods, result); err != nil {
		return nil, err
	}

	if g.GenerateReadme {
		result.Files = append(result.Files, GeneratedFile{
			Name:    "README.md",
			Content: g.generateReadme(doc, result),
		})
	}

	// Update counts and timing
	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// In strict mode, fail on any issues
	if g.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("generator: generation failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
