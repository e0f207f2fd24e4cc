package utils

import "time"

// LoadLocation falls back to UTC so a bad APP_TIMEZONE never blocks startup.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// Stored timestamps are unix milliseconds.
func NowUnixMillis() int64 { return time.Now().UnixMilli() }

func FromUnixMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// StartOfISOWeek returns Monday 00:00 of the week containing t, in loc.
func StartOfISOWeek(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	// time.Weekday has Sunday = 0; shift so Monday = 0.
	offset := (int(local.Weekday()) + 6) % 7
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return day.AddDate(0, 0, -offset)
}

// WeekRange is the half open interval [Monday 00:00, next Monday 00:00).
func WeekRange(now time.Time, loc *time.Location) (start, end time.Time) {
	start = StartOfISOWeek(now, loc)
	return start, start.AddDate(0, 0, 7)
}

func WithinRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func FormatRFC3339In(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.RFC3339)
}
