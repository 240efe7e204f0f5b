package finance

import "time"

const dateOnly = "2006-01-02"

// ParseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateOnly, s)
}

// FormatDate renders a time as a bare YYYY-MM-DD date.
func FormatDate(t time.Time) string {
	return t.Format(dateOnly)
}
