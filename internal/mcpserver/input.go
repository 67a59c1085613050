package mcpserver

import (
	"fmt"

	"github.com/lizlecrone/fitbit-api/swagger"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger 2.0 document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the Swagger 2.0 document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline Swagger 2.0 document content (JSON or YAML)"`
}

// resolve parses the document from whichever input was provided.
func (s specInput) resolve() (*swagger.ParseResult, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.URL != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	p := swagger.New()
	switch {
	case s.File != "":
		return p.Parse(s.File)
	case s.URL != "":
		return p.Parse(s.URL)
	default:
		return p.ParseBytes([]byte(s.Content))
	}
}
