package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizlecrone/fitbit-api/swagger"
)

func TestSetupParseFlags(t *testing.T) {
	fs, flags := SetupParseFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.NoValidate)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-f", "yaml", "-q", "--no-validate", "spec.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, FormatYAML, flags.Format)
		assert.True(t, flags.Quiet)
		assert.True(t, flags.NoValidate)
	})
}

func TestHandleParseNoArgs(t *testing.T) {
	require.Error(t, HandleParse([]string{}))
}

func TestHandleParseHelp(t *testing.T) {
	require.NoError(t, HandleParse([]string{"--help"}))
}

func TestHandleParseInvalidFormat(t *testing.T) {
	err := HandleParse([]string{"-f", "xml", fixturePath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleParseMissingFile(t *testing.T) {
	require.Error(t, HandleParse([]string{"does-not-exist.json"}))
}

func TestHandleParseFixture(t *testing.T) {
	require.NoError(t, HandleParse([]string{"-q", fixturePath}))
}

func TestDocumentScopes(t *testing.T) {
	doc := &swagger.Document{
		SecurityDefinitions: map[string]*swagger.SecurityScheme{
			"oauth2": {
				Type:   "oauth2",
				Scopes: map[string]string{"sleep": "", "activity": ""},
			},
			"basic": {Type: "basic"},
		},
	}
	assert.Equal(t, []string{"activity", "sleep"}, documentScopes(doc))
	assert.Empty(t, documentScopes(&swagger.Document{}))
}
