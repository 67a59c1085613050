package fitbit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.May, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-05-01", formatDate(d))
}

func TestFormatDateZeroMeansToday(t *testing.T) {
	assert.Equal(t, "today", formatDate(time.Time{}))
}
