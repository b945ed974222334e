package repository

import (
	"database/sql"
	"strings"
	"time"
)

// parseNullableTime parses a scanned NULL-able timestamp column.
// NULL, empty, or unparseable values come back as nil.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeValue converts a *time.Time into a SQLite bind value.
func nullableTimeValue(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// nullableIntValue converts a *int into a SQLite bind value.
func nullableIntValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
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

// joinEquipment flattens an equipment id list into its stored form.
func joinEquipment(ids []string) string {
	return strings.Join(ids, ",")
}

// splitEquipment expands the stored form back into an id list.
// An empty column means no equipment, not a single empty id.
func splitEquipment(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
