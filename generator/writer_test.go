package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	result := &GenerateResult{
		Files: []GeneratedFile{
			{Name: "endpoints_gen.go", Content: []byte("package fitbit\n")},
			{Name: "README.md", Content: []byte("# readme\n")},
		},
	}

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, result.WriteFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "endpoints_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package fitbit\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# readme\n", string(data))
}

func TestWriteFilesRejectsPathSeparators(t *testing.T) {
	result := &GenerateResult{
		Files: []GeneratedFile{
			{Name: "../escape.go", Content: []byte("x")},
		},
	}
	err := result.WriteFiles(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path separators")
}

func TestWriteFile(t *testing.T) {
	f := &GeneratedFile{Name: "endpoints_gen.go", Content: []byte("package fitbit\n")}
	path := filepath.Join(t.TempDir(), "nested", "endpoints_gen.go")
	require.NoError(t, f.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package fitbit\n", string(data))
}
