package generator

import (
	"golang.org/x/tools/imports"
)

// formatAndFixImports formats generated Go source and fixes its imports,
// adding missing ones and removing unused ones. This keeps generated code
// immediately compilable without a separate goimports pass.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
