package collection

import "time"

// CalculateStreak counts consecutive calendar days in loc, ending today or
// yesterday, on which at least one item was created. A day without items
// today does not break the run; the first earlier gap does. The scan is
// bounded to StreakWindowDays.
func CalculateStreak(createdAt []time.Time, now time.Time, loc *time.Location) int {
	if len(createdAt) == 0 {
		return 0
	}
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[string]struct{}, len(createdAt))
	for _, t := range createdAt {
		days[dayKey(t, loc)] = struct{}{}
	}

	today := now.In(loc)
	cursor := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, loc)

	// Today is optional
	if _, ok := days[dayKey(cursor, loc)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for streak < StreakWindowDays {
		if _, ok := days[dayKey(cursor, loc)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(RarityDateLayout)
}
