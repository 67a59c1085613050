package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleMCPHelp(t *testing.T) {
	require.NoError(t, HandleMCP([]string{"--help"}))
}

func TestHandleMCPRejectsUnknownFlag(t *testing.T) {
	require.Error(t, HandleMCP([]string{"--bogus"}))
}
