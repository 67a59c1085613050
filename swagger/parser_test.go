package swagger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "testdata/fitbit.swagger.json"

func TestNew(t *testing.T) {
	p := New()
	require.NotNil(t, p)
	assert.True(t, p.ValidateStructure, "ValidateStructure should be true by default")
	assert.Nil(t, p.HTTPClient)
}

func TestParseFixture(t *testing.T) {
	p := New()
	result, err := p.Parse(fixturePath)
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	doc, ok := result.Doc()
	require.True(t, ok)
	assert.Equal(t, "2.0", result.Version)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, fixturePath, result.SourcePath)
	assert.Positive(t, result.SourceSize)

	assert.Equal(t, "Fitbit Web API", doc.Info.Title)
	assert.Equal(t, "api.fitbit.com", doc.Host)
	assert.Equal(t, []string{"https"}, doc.Schemes)

	require.Contains(t, doc.SecurityDefinitions, "oauth2")
	oauth := doc.SecurityDefinitions["oauth2"]
	assert.Equal(t, "https://www.fitbit.com/oauth2/authorize", oauth.AuthorizationURL)
	assert.Equal(t, "https://api.fitbit.com/oauth2/token", oauth.TokenURL)
	assert.Len(t, oauth.Scopes, 9)

	assert.Equal(t, 11, result.Stats.PathCount)
	assert.Equal(t, 11, result.Stats.OperationCount)
	assert.Equal(t, 6, result.Stats.TagCount)
}

func TestParseYAML(t *testing.T) {
	const doc = `
swagger: "2.0"
info:
  title: Fitbit Web API
  version: "1"
paths:
  /1/user/-/badges.json:
    get:
      operationId: getBadges
      summary: Get Badges
      security:
        - oauth2: [social]
`
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)

	item := result.Document.Paths["/1/user/-/badges.json"]
	require.NotNil(t, item)
	require.NotNil(t, item.Get)
	assert.Equal(t, []string{"social"}, item.Get.Scopes(result.Document))
}

func TestParseReader(t *testing.T) {
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)

	p := New()
	result, err := p.ParseReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.json", result.SourcePath)
	assert.Equal(t, int64(len(data)), result.SourceSize)
}

func TestParseURL(t *testing.T) {
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)

	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	p := New()
	p.UserAgent = "fitbitgen/test"
	result, err := p.Parse(srv.URL + "/fitbit-web-api-swagger.json")
	require.NoError(t, err)
	assert.Equal(t, "fitbitgen/test", gotUserAgent)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "Fitbit Web API", result.Document.Info.Title)
}

func TestParseURLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New().Parse(srv.URL + "/swagger.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
}

func TestParseEmpty(t *testing.T) {
	_, err := New().ParseBytes([]byte("  \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document is empty")
}

func TestParseUnsupportedVersion(t *testing.T) {
	_, err := New().ParseBytes([]byte(`{"openapi": "3.0.0", "swagger": "3.0"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported version "3.0"`)
}

func TestParseMissingVersion(t *testing.T) {
	_, err := New().ParseBytes([]byte(`{"info": {"title": "x", "version": "1"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing swagger version")
}

func TestValidateDuplicateOperationIDs(t *testing.T) {
	const doc = `
swagger: "2.0"
info:
  title: Fitbit Web API
  version: "1"
paths:
  /1/a.json:
    get:
      operationId: getThing
  /1/b.json:
    get:
      operationId: getThing
`
	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error(), `duplicate operationId "getThing"`)
}

func TestValidateStructureErrors(t *testing.T) {
	const doc = `
swagger: "2.0"
info:
  title: ""
  version: ""
paths:
  bad-path:
    get:
      operationId: getBad
      parameters:
        - description: nameless
`
	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err)

	var msgs []string
	for _, e := range result.Errors {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")
	assert.Contains(t, joined, "info.title is required")
	assert.Contains(t, joined, "info.version is required")
	assert.Contains(t, joined, `path "bad-path" must begin with '/'`)
	assert.Contains(t, joined, "has no name")
	assert.Contains(t, joined, "has no location")
}

func TestValidateDisabled(t *testing.T) {
	p := New()
	p.ValidateStructure = false
	result, err := p.ParseBytes([]byte(`{"swagger": "2.0"}`))
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestParseFileNotFound(t *testing.T) {
	_, err := New().Parse(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
