package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored date string, accepting the bare date form
// used for domain dates and RFC3339 for timestamps. SQLite stores both
// as text, so every scan runs through here.
func ParseTime(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, str); err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date %q: %w", str, err)
		}
	}
	return t.UTC(), nil
}
