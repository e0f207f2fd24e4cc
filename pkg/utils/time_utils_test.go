package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekRange(t *testing.T) {
	madrid := LoadLocation("Europe/Madrid")

	tests := []struct {
		name      string
		now       time.Time
		loc       *time.Location
		wantStart time.Time
	}{
		{
			name:      "wednesday",
			now:       time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday midnight is the start",
			now:       time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday late belongs to the week before",
			now:       time.Date(2026, 10, 18, 23, 59, 59, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "location decides the day",
			now:       time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC),
			loc:       madrid,
			wantStart: time.Date(2026, 10, 19, 0, 0, 0, 0, madrid),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(tt.now, tt.loc)
			assert.True(t, tt.wantStart.Equal(start), "start = %v", start)
			assert.True(t, tt.wantStart.AddDate(0, 0, 7).Equal(end), "end = %v", end)
			assert.True(t, WithinRange(tt.now, start, end))
		})
	}
}

func TestWithinRange_HalfOpen(t *testing.T) {
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	assert.True(t, WithinRange(start, start, end))
	assert.False(t, WithinRange(end, start, end))
	assert.False(t, WithinRange(start.Add(-time.Nanosecond), start, end))
}

func TestFromUnixMillis(t *testing.T) {
	assert.True(t, FromUnixMillis(0).IsZero())
	assert.Equal(t, int64(1760000000123), FromUnixMillis(1760000000123).UnixMilli())
}
