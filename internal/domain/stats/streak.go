package stats

import (
	"sort"
	"time"
)

// dayNumber maps a calendar date in loc to a day count so gaps are immune to DST shifts.
func dayNumber(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// TrainingStreak counts consecutive calendar days with at least one session,
// walking backward from today. A most recent session older than yesterday breaks the streak.
// Sessions dated after today are ignored.
func TrainingStreak(dates []time.Time, today time.Time) int64 {
	if len(dates) == 0 {
		return 0
	}

	loc := today.Location()
	todayNum := dayNumber(today, loc)

	seen := make(map[int64]struct{}, len(dates))
	days := make([]int64, 0, len(dates))
	for _, d := range dates {
		n := dayNumber(d, loc)
		if n > todayNum {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		days = append(days, n)
	}

	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i] > days[j]
	})

	if todayNum-days[0] > 1 {
		return 0
	}

	streak := int64(1)
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != 1 {
			break
		}
		streak++
	}

	return streak
}
