package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{65, "1h 5m"},
		{90, "1h 30m"},
		{480, "8h"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMinutes(tc.min), "min=%d", tc.min)
	}
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days fall back to absolute", now.Add(-48 * time.Hour), "2026-03-06 14:00"},
		{"future falls back to absolute", now.Add(time.Hour), "2026-03-08 15:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HumanTimestampFrom(tc.t, now))
		})
	}
}

func TestRenderProgress(t *testing.T) {
	empty := RenderProgress(0, 10)
	assert.Contains(t, empty, "0%")
	assert.Equal(t, 10, strings.Count(empty, emptyBlock))

	full := RenderProgress(100, 10)
	assert.Contains(t, full, "100%")
	assert.Equal(t, 10, strings.Count(full, filledBlock))

	half := RenderProgress(50, 10)
	assert.Contains(t, half, "50%")
	assert.Equal(t, 5, strings.Count(half, filledBlock))
}

func TestRenderProgress_Clamped(t *testing.T) {
	assert.Contains(t, RenderProgress(-10, 10), "0%")
	assert.Contains(t, RenderProgress(150, 10), "100%")
}
