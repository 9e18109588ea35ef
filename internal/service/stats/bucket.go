package stats

import "time"

// Counter is a value that is only valid for the period named by Key.
type Counter struct {
	Value int
	Key   string
}

// ReconcileBucket resets the counter when the period it belongs to is not the
// current one. A missing key never matches.
func ReconcileBucket(stored Counter, nowKey string) Counter {
	if stored.Key != nowKey {
		return Counter{Value: 0, Key: nowKey}
	}
	return stored
}

// Keys are the day, month and year bucket keys for one instant.
type Keys struct {
	Day   string // YYYY-MM-DD
	Month string // YYYY-MM
	Year  string // YYYY
}

func KeysAt(t time.Time, loc *time.Location) Keys {
	day := t.In(loc).Format(time.DateOnly)
	return Keys{Day: day, Month: day[:7], Year: day[:4]}
}
