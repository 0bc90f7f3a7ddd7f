package gamification

import "time"

// RecordVisit maintains the daily visit streak. A second visit on the same UTC day
// changes nothing; a visit the day after the last one extends the streak; anything
// else starts a new streak at 1. The bool reports whether stats changed.
func RecordVisit(stats UserStats, lastVisit, now time.Time) (UserStats, bool) {
	out := stats.Clone()
	if lastVisit.IsZero() {
		out.Streaks.DailyVisit = 1
		return out, true
	}

	last := truncateDay(lastVisit)
	today := truncateDay(now)

	switch {
	case !today.After(last):
		return out, false
	case today.Sub(last) == 24*time.Hour:
		out.Streaks.DailyVisit++
	default:
		out.Streaks.DailyVisit = 1
	}
	return out, true
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
