package fitbit

import "time"

// Layouts for the date and time values Fitbit endpoints accept.
const (
	// DateFormat is the yyyy-MM-dd layout used by date parameters.
	DateFormat = "2006-01-02"
	// TimeFormat is the HH:mm layout used by intraday time parameters.
	TimeFormat = "15:04"
)

// formatDate renders a date parameter; the zero time renders as "today",
// which Fitbit accepts wherever a date is expected.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "today"
	}
	return t.Format(DateFormat)
}
