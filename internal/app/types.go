package app

import (
	"sort"
	"time"
)

// ContributionDay is a single day of the contribution calendar.
// Date is a civil date stored as UTC midnight.
type ContributionDay struct {
	Date    time.Time
	Weekday int
	Count   int
	Color   string
}

// ContributionCalendar entity
type ContributionCalendar struct {
	TotalContributions int
	Weeks              [][]ContributionDay
}

// Days flattens calendar weeks into a date-ascending day sequence.
func (c ContributionCalendar) Days() []ContributionDay {
	var days []ContributionDay
	for _, w := range c.Weeks {
		days = append(days, w...)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// StreakResult is computed from a contribution day sequence.
type StreakResult struct {
	CurrentStreak     int
	LongestStreak     int
	FirstContribution *time.Time
	LastContribution  *time.Time
}

// StreakStats entity
type StreakStats struct {
	StreakResult
	TotalContributions int
}

// ContributionSummary holds yearly contribution totals and account counters.
type ContributionSummary struct {
	Year                    int
	TotalContributions      int
	Commits                 int
	PullRequests            int
	Issues                  int
	Reviews                 int
	RepositoryContributions int
	Repositories            int
	Stars                   int
	Forks                   int
	Followers               int
	Following               int
	CreatedAt               time.Time
}

// LanguageEdge is a language used in a repository, with its size in bytes.
type LanguageEdge struct {
	Name  string
	Color string
	Size  int
}

// Repository entity
type Repository struct {
	Name      string
	IsPrivate bool
	Languages []LanguageEdge
}

// LanguageStat is an aggregated language usage entry.
type LanguageStat struct {
	Name       string
	Color      string
	Size       int
	Percentage float64
}

// Event is a public activity event of a user.
type Event struct {
	Type      string
	Repo      string
	CreatedAt time.Time
	Action    string
	RefType   string
	Commits   int
}

// ProfileStats combines all stats needed for badges and the readme.
type ProfileStats struct {
	Summary   ContributionSummary
	Streak    StreakStats
	Languages []LanguageStat
}
