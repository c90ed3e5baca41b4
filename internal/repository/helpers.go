package repository

import (
	"database/sql"
	"strings"
	"time"
)

// timeLayout is how run and snapshot timestamps are stored.
const timeLayout = time.RFC3339

func timeToString(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// timeFromString returns the zero time for values that do not parse.
func timeFromString(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableTimeToString stores nil as NULL.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return timeToString(*t)
}

// parseNullableTime returns nil for NULL, empty or unparseable values.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// boundToValue stores a missing incumbent as NULL.
func boundToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func boundFromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Rendered output paths are kept one per line in a single column.
func joinOutputs(paths []string) string {
	return strings.Join(paths, "\n")
}

func splitOutputs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
