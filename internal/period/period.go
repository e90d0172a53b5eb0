package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the layout of expense dates.
const DateFormat = "2006-01-02"

// Key returns a period key like "2025-01".
func Key(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseKey parses "2025-01" into year and month.
func ParseKey(key string) (year, month int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid period key format: %q", key)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in period key %q: %w", key, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in period key %q: %w", key, err)
	}
	if err := ValidMonth(month); err != nil {
		return 0, 0, fmt.Errorf("period key %q: %w", key, err)
	}

	return year, month, nil
}

// ValidMonth returns an error unless month is in 1..12.
func ValidMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range 1-12", month)
	}
	return nil
}

// ParseDate checks that s is a calendar date in DateFormat.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Today formats now as an expense date.
func Today(now time.Time) string {
	return now.Format(DateFormat)
}
