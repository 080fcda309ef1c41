package stats

import (
	"testing"
	"time"
)

func TestTrainingStreak(t *testing.T) {
	loc := time.UTC
	today := time.Date(2024, time.March, 10, 15, 30, 0, 0, loc)
	day := func(offset int, hour int) time.Time {
		return time.Date(2024, time.March, 10+offset, hour, 0, 0, 0, loc)
	}

	tests := []struct {
		name  string
		dates []time.Time
		want  int64
	}{
		{name: "no sessions", dates: nil, want: 0},
		{name: "today only", dates: []time.Time{day(0, 8)}, want: 1},
		{name: "yesterday only", dates: []time.Time{day(-1, 20)}, want: 1},
		{name: "today and yesterday", dates: []time.Time{day(0, 7), day(-1, 7)}, want: 2},
		{name: "three consecutive days", dates: []time.Time{day(0, 9), day(-1, 9), day(-2, 9)}, want: 3},
		{name: "two days ago only", dates: []time.Time{day(-2, 9)}, want: 0},
		{name: "today and five days ago", dates: []time.Time{day(0, 9), day(-5, 9)}, want: 1},
		{
			name:  "several sessions on the same day",
			dates: []time.Time{day(0, 6), day(0, 18), day(-1, 6), day(-1, 23)},
			want:  2,
		},
		{
			name:  "unsorted input",
			dates: []time.Time{day(-2, 1), day(0, 1), day(-1, 1), day(-4, 1)},
			want:  3,
		},
		{name: "future session ignored", dates: []time.Time{day(1, 9)}, want: 0},
		{name: "future session alongside today", dates: []time.Time{day(1, 9), day(0, 9)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrainingStreak(tt.dates, today); got != tt.want {
				t.Errorf("TrainingStreak() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrainingStreakUsesTodayLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 23:30 UTC on the 9th is already the 10th in Paris.
	today := time.Date(2024, time.March, 10, 9, 0, 0, 0, paris)
	dates := []time.Time{
		time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC),
		time.Date(2024, time.March, 9, 8, 0, 0, 0, paris),
	}

	if got := TrainingStreak(dates, today); got != 2 {
		t.Errorf("TrainingStreak() = %v, want 2", got)
	}
}
