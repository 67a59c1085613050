package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../swagger/testdata/fitbit.swagger.json"

func TestSpecInputResolveRequiresOneSource(t *testing.T) {
	_, err := specInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content")

	_, err = specInput{File: fixturePath, Content: "{}"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(got 2)")
}

func TestSpecInputResolveFile(t *testing.T) {
	result, err := specInput{File: fixturePath}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "2.0", result.Version)
	assert.Empty(t, result.Errors)
}

func TestSpecInputResolveContent(t *testing.T) {
	content := `{
		"swagger": "2.0",
		"info": {"title": "Fitbit Web API", "version": "1"},
		"paths": {
			"/1/foods/locales.json": {
				"get": {"operationId": "getFoodsLocales", "tags": ["Nutrition"]}
			}
		}
	}`
	result, err := specInput{Content: content}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.OperationCount)
}
