package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocumentStatsNil(t *testing.T) {
	assert.Zero(t, GetDocumentStats(nil))
}

func TestGetDocumentStats(t *testing.T) {
	doc := &Document{
		Paths: map[string]*PathItem{
			"/1/a.json": {
				Get:  &Operation{OperationID: "getA", Parameters: []*Parameter{{Name: "date", In: "path"}}},
				Post: &Operation{OperationID: "addA"},
			},
			"/1/b.json": {
				Delete: &Operation{OperationID: "deleteB"},
			},
			"/1/empty.json": nil,
		},
		Tags: []*Tag{{Name: "Activity"}},
	}

	stats := GetDocumentStats(doc)
	assert.Equal(t, 3, stats.PathCount)
	assert.Equal(t, 3, stats.OperationCount)
	assert.Equal(t, 1, stats.ParameterCount)
	assert.Equal(t, 1, stats.TagCount)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "-1 B", FormatBytes(-1))
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 MiB", FormatBytes(1572864))
}

func TestOperations(t *testing.T) {
	item := &PathItem{Get: &Operation{OperationID: "getX"}}
	ops := Operations(item)
	require.Len(t, ops, 4)
	assert.NotNil(t, ops["get"])
	assert.Nil(t, ops["post"])
	assert.Nil(t, ops["put"])
	assert.Nil(t, ops["delete"])
}

func TestOperationScopesFallsBackToDocument(t *testing.T) {
	doc := &Document{
		Security: []SecurityRequirement{{"oauth2": {"activity", "sleep"}}},
	}
	op := &Operation{}
	assert.Equal(t, []string{"activity", "sleep"}, op.Scopes(doc))

	op.Security = []SecurityRequirement{{"oauth2": {"profile"}}}
	assert.Equal(t, []string{"profile"}, op.Scopes(doc))
}
