package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParse(t *testing.T) {
	result, output, err := handleParse(context.Background(), nil, parseInput{
		Spec: specInput{File: fixturePath},
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "Fitbit Web API", output.Title)
	assert.Equal(t, "1", output.APIVersion)
	assert.Equal(t, "2.0", output.SwaggerVersion)
	assert.Equal(t, "json", output.Format)
	assert.Equal(t, 11, output.PathCount)
	assert.Equal(t, 11, output.OperationCount)
	assert.Contains(t, output.Tags, "Activity")
	assert.Contains(t, output.Tags, "Subscriptions")
	assert.Empty(t, output.Errors)
}

func TestHandleParseBadInput(t *testing.T) {
	result, _, err := handleParse(context.Background(), nil, parseInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleParseInvalidDocument(t *testing.T) {
	result, _, err := handleParse(context.Background(), nil, parseInput{
		Spec: specInput{Content: `{"swagger": "3.0"}`},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
