package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lizlecrone/fitbit-api/internal/severity"
)

func TestIssueString(t *testing.T) {
	i := Issue{
		Path:     "paths./1/foods/search.json.get",
		Message:  "operation has no operationId",
		Severity: severity.SeverityWarning,
	}
	assert.Equal(t, "⚠ paths./1/foods/search.json.get: operation has no operationId", i.String())
}

func TestIssueStringWithoutPath(t *testing.T) {
	i := Issue{Message: "document has no paths", Severity: severity.SeverityCritical}
	assert.Equal(t, "✗ document has no paths", i.String())
}

func TestNew(t *testing.T) {
	i := New(severity.SeverityInfo, "paths./1/user/-/badges.json", "skipping %s", "trace")
	assert.Equal(t, severity.SeverityInfo, i.Severity)
	assert.Equal(t, "skipping trace", i.Message)
	assert.Equal(t, "paths./1/user/-/badges.json", i.Path)
}
