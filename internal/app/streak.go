package app

import "time"

// CalculateStreak computes streak statistics for given days.
//
// Days must be sorted ascending by date with at most one entry per day.
// Today is a civil date (UTC midnight). A streak in progress is not broken
// when today has no contribution yet: the run ending yesterday is used then.
func CalculateStreak(days []ContributionDay, today time.Time) StreakResult {
	var res StreakResult

	var run int
	for i, d := range days {
		if d.Count <= 0 {
			run = 0
			continue
		}
		if i > 0 && !isNextDay(days[i-1].Date, d.Date) {
			run = 0
		}
		run++
		if run > res.LongestStreak {
			res.LongestStreak = run
		}

		date := d.Date
		if res.FirstContribution == nil {
			res.FirstContribution = &date
		}
		res.LastContribution = &date
	}

	today = CivilDate(today)
	res.CurrentStreak = runEndingAt(days, today)
	if res.CurrentStreak == 0 {
		res.CurrentStreak = runEndingAt(days, today.AddDate(0, 0, -1))
	}

	return res
}

// runEndingAt returns the length of the contiguous run of contribution days ending exactly at end.
func runEndingAt(days []ContributionDay, end time.Time) int {
	var n int
	want := end
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		if d.Date.After(want) && n == 0 {
			continue
		}
		if !d.Date.Equal(want) || d.Count <= 0 {
			break
		}
		n++
		want = want.AddDate(0, 0, -1)
	}

	return n
}

func isNextDay(prev, next time.Time) bool {
	return prev.AddDate(0, 0, 1).Equal(next)
}

// CivilDate truncates t to its calendar date in t's location, returned as UTC midnight.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
