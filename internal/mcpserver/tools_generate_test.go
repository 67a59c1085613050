package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGenerate(t *testing.T) {
	dir := t.TempDir()
	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:      specInput{File: fixturePath},
		OutputDir: dir,
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.True(t, output.Success)
	assert.Equal(t, "fitbit", output.PackageName)
	assert.Equal(t, 9, output.GeneratedMethods)
	assert.Equal(t, 2, output.SkippedOperations)
	assert.Equal(t, len(output.Files), output.FileCount)

	// Files must actually land on disk.
	data, err := os.ReadFile(filepath.Join(dir, "endpoints_activity_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package fitbit")
}

func TestHandleGenerateSingleFile(t *testing.T) {
	dir := t.TempDir()
	_, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:        specInput{File: fixturePath},
		OutputDir:   dir,
		PackageName: "myfit",
		SingleFile:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "myfit", output.PackageName)
	require.Len(t, output.Files, 1)
	assert.Equal(t, "endpoints_gen.go", output.Files[0].Name)
}

func TestHandleGenerateRequiresOutputDir(t *testing.T) {
	result, _, err := handleGenerate(context.Background(), nil, generateInput{
		Spec: specInput{File: fixturePath},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
