package app

import (
	"context"
	"fmt"
	"time"
)

// Number of weeks shown on the activity heatmap.
const activityWeeks = 12

// Number of languages shown on the language card.
const topLanguages = 8

// GithubClient returns github profile data.
//
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/m-zajac/profilestats/internal/app GithubClient
type GithubClient interface {
	ContributionCalendar(ctx context.Context, login string) (ContributionCalendar, error)
	ContributionSummary(ctx context.Context, login string, from, to time.Time) (ContributionSummary, error)
	RepositoryLanguages(ctx context.Context, login string) ([]Repository, error)
	RecentEvents(ctx context.Context, login string, count int) ([]Event, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	location     *time.Location
	now          func() time.Time
}

// NewService creates new Service instance.
// location is the time zone used to determine "today" for streaks.
func NewService(githubClient GithubClient, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}

	return &Service{
		githubClient: githubClient,
		location:     location,
		now:          time.Now,
	}
}

// WithClock replaces the source of current time. Used mostly in tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Today returns current civil date in service's time zone.
func (s *Service) Today() time.Time {
	return CivilDate(s.now().In(s.location))
}

// StreakStats returns current and longest streak computed from the contribution calendar.
func (s *Service) StreakStats(ctx context.Context, login string) (StreakStats, error) {
	calendar, err := s.githubClient.ContributionCalendar(ctx, login)
	if err != nil {
		return StreakStats{}, fmt.Errorf("retrieving contribution calendar: %w", err)
	}

	return StreakStats{
		StreakResult:       CalculateStreak(calendar.Days(), s.Today()),
		TotalContributions: calendar.TotalContributions,
	}, nil
}

// ContributionStats returns contribution summary for the current year.
func (s *Service) ContributionStats(ctx context.Context, login string) (ContributionSummary, error) {
	year := s.now().In(s.location).Year()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	summary, err := s.githubClient.ContributionSummary(ctx, login, from, to)
	if err != nil {
		return ContributionSummary{}, fmt.Errorf("retrieving contribution summary: %w", err)
	}
	summary.Year = year

	return summary, nil
}

// LanguageStats returns most used languages across owned repositories.
func (s *Service) LanguageStats(ctx context.Context, login string) ([]LanguageStat, error) {
	repos, err := s.githubClient.RepositoryLanguages(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("retrieving repository languages: %w", err)
	}

	langs, _ := AggregateLanguages(repos, topLanguages)
	return langs, nil
}

// ActivityWeeks returns recent weeks of the contribution calendar.
func (s *Service) ActivityWeeks(ctx context.Context, login string) ([][]ContributionDay, error) {
	calendar, err := s.githubClient.ContributionCalendar(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("retrieving contribution calendar: %w", err)
	}

	return RecentWeeks(calendar, activityWeeks), nil
}

// ProfileStats returns summary, streak and language stats.
func (s *Service) ProfileStats(ctx context.Context, login string) (ProfileStats, error) {
	summary, err := s.ContributionStats(ctx, login)
	if err != nil {
		return ProfileStats{}, err
	}
	streak, err := s.StreakStats(ctx, login)
	if err != nil {
		return ProfileStats{}, err
	}
	langs, err := s.LanguageStats(ctx, login)
	if err != nil {
		return ProfileStats{}, err
	}

	return ProfileStats{
		Summary:   summary,
		Streak:    streak,
		Languages: langs,
	}, nil
}

// RecentActivity returns `count` most recent public events.
func (s *Service) RecentActivity(ctx context.Context, login string, count int) ([]Event, error) {
	if count <= 0 {
		return nil, InvalidRequestError("count must be greater than zero")
	}

	events, err := s.githubClient.RecentEvents(ctx, login, count)
	if err != nil {
		return nil, fmt.Errorf("retrieving recent events: %w", err)
	}
	if len(events) > count {
		events = events[:count]
	}

	return events, nil
}
