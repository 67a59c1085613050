package swagger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"
)

// Parser loads and validates Fitbit's Swagger 2.0 API description
type Parser struct {
	// ValidateStructure determines whether to perform basic structure validation
	ValidateStructure bool
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to fitbitapi.UserAgent() if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed API description and metadata.
//
// Callers should treat ParseResult as read-only after parsing. The generator
// reads the same Document instance that validation inspected.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of
	// the method and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared Swagger version string (expected "2.0")
	Version string
	// Document is the typed document
	Document *Document
	// Errors contains any parsing or validation errors encountered
	Errors []error
	// Warnings contains non-fatal issues
	Warnings []string
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Doc returns the parsed document and a boolean indicating whether parsing
// produced one. A document may be present even when validation errors were
// recorded in Errors.
func (pr *ParseResult) Doc() (*Document, bool) {
	return pr.Document, pr.Document != nil
}

// Parse parses an API description from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
// For local files, the file is read and parsed.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat
	var loadTime time.Duration

	if isURL(specPath) {
		var contentType string
		loadStart := time.Now()
		data, contentType, err = p.fetchURL(specPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, err
		}
		p.log().Debug("fetched document", "url", specPath, "bytes", len(data))
		format = detectFormatFromURL(specPath, contentType)
	} else {
		loadStart := time.Now()
		data, err = os.ReadFile(specPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, fmt.Errorf("swagger: failed to read file: %w", err)
		}
		format = detectFormatFromPath(specPath)
	}

	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}

	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an API description from an io.Reader.
// Note: ParseResult.SourcePath will be set to ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("swagger: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses an API description from a byte slice.
// Note: ParseResult.SourcePath will be set to ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

func (p *Parser) parseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{
		SourceFormat: detectFormatFromContent(data),
		SourceSize:   int64(len(data)),
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("swagger: document is empty")
	}

	doc := &Document{}
	if result.SourceFormat == SourceFormatJSON {
		// JSON fast path: encoding/json is measurably faster than the YAML
		// decoder on Fitbit's (JSON) document.
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("swagger: failed to decode JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("swagger: failed to decode YAML: %w", err)
		}
	}

	result.Version = doc.Swagger
	if doc.Swagger != "2.0" {
		if doc.Swagger == "" {
			return nil, fmt.Errorf("swagger: missing swagger version field")
		}
		return nil, fmt.Errorf("swagger: unsupported version %q (only 2.0 is supported)", doc.Swagger)
	}

	result.Document = doc
	result.Stats = GetDocumentStats(doc)

	if p.ValidateStructure {
		result.Errors = append(result.Errors, p.validate(doc)...)
		if len(result.Errors) > 0 {
			p.log().Warn("document has validation errors", "count", len(result.Errors))
		}
	}

	return result, nil
}

// validate performs basic structure validation of the document
func (p *Parser) validate(doc *Document) []error {
	var errs []error

	if doc.Info == nil {
		errs = append(errs, fmt.Errorf("swagger: info section is required"))
	} else {
		if doc.Info.Title == "" {
			errs = append(errs, fmt.Errorf("swagger: info.title is required"))
		}
		if doc.Info.Version == "" {
			errs = append(errs, fmt.Errorf("swagger: info.version is required"))
		}
	}

	if len(doc.Paths) == 0 {
		errs = append(errs, fmt.Errorf("swagger: paths section is required"))
	}

	operationIDs := make(map[string]string)
	for path, item := range doc.Paths {
		if !strings.HasPrefix(path, "/") {
			errs = append(errs, fmt.Errorf("swagger: path %q must begin with '/'", path))
		}
		if item == nil {
			continue
		}
		for method, op := range Operations(item) {
			if op == nil {
				continue
			}
			opPath := fmt.Sprintf("%s.%s", path, method)
			if op.OperationID != "" {
				if prev, dup := operationIDs[op.OperationID]; dup {
					errs = append(errs, fmt.Errorf("swagger: duplicate operationId %q at %s (first seen at %s)", op.OperationID, opPath, prev))
				} else {
					operationIDs[op.OperationID] = opPath
				}
			}
			for i, param := range op.Parameters {
				if param == nil {
					continue
				}
				if param.Name == "" {
					errs = append(errs, fmt.Errorf("swagger: parameter %d of %s has no name", i, opPath))
				}
				if param.In == "" {
					errs = append(errs, fmt.Errorf("swagger: parameter %q of %s has no location", param.Name, opPath))
				}
			}
		}
	}

	return errs
}
