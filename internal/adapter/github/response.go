package github

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-zajac/profilestats/internal/app"
)

const calendarDateLayout = "2006-01-02"

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLResponse struct {
	Data   json.RawMessage        `json:"data"`
	Errors []graphQLResponseError `json:"errors"`
}

type graphQLResponseError struct {
	Message string        `json:"message"`
	Type    string        `json:"type"`
	Path    []interface{} `json:"path"`
}

func (r graphQLResponse) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}

	return &app.GraphQLError{Messages: msgs}
}

type totalCount struct {
	TotalCount int `json:"totalCount"`
}

// Calendar query.

type calendarResponse struct {
	User *struct {
		ContributionsCollection *struct {
			ContributionCalendar *calendarResponseCalendar `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

type calendarResponseCalendar struct {
	TotalContributions int `json:"totalContributions"`
	Weeks              []struct {
		ContributionDays []calendarResponseDay `json:"contributionDays"`
	} `json:"weeks"`
}

type calendarResponseDay struct {
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
	ContributionCount int    `json:"contributionCount"`
	Color             string `json:"color"`
}

func (r calendarResponse) ToCalendar() (app.ContributionCalendar, error) {
	switch {
	case r.User == nil:
		return app.ContributionCalendar{}, &app.ShapeError{Path: "data.user"}
	case r.User.ContributionsCollection == nil:
		return app.ContributionCalendar{}, &app.ShapeError{Path: "data.user.contributionsCollection"}
	case r.User.ContributionsCollection.ContributionCalendar == nil:
		return app.ContributionCalendar{}, &app.ShapeError{Path: "data.user.contributionsCollection.contributionCalendar"}
	}

	cal := r.User.ContributionsCollection.ContributionCalendar
	weeks := make([][]app.ContributionDay, 0, len(cal.Weeks))
	for _, w := range cal.Weeks {
		days := make([]app.ContributionDay, 0, len(w.ContributionDays))
		for _, d := range w.ContributionDays {
			date, err := time.Parse(calendarDateLayout, d.Date)
			if err != nil {
				return app.ContributionCalendar{}, fmt.Errorf("parsing contribution day date: %w", err)
			}
			days = append(days, app.ContributionDay{
				Date:    date,
				Weekday: d.Weekday,
				Count:   d.ContributionCount,
				Color:   d.Color,
			})
		}
		weeks = append(weeks, days)
	}

	return app.ContributionCalendar{
		TotalContributions: cal.TotalContributions,
		Weeks:              weeks,
	}, nil
}

// Summary query.

type summaryResponse struct {
	User *struct {
		CreatedAt               time.Time `json:"createdAt"`
		ContributionsCollection *struct {
			TotalCommitContributions            int `json:"totalCommitContributions"`
			TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
			TotalIssueContributions             int `json:"totalIssueContributions"`
			TotalRepositoryContributions        int `json:"totalRepositoryContributions"`
			TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
			ContributionCalendar                *struct {
				TotalContributions int `json:"totalContributions"`
			} `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
		Repositories *struct {
			TotalCount int `json:"totalCount"`
			Nodes      []struct {
				IsPrivate      bool `json:"isPrivate"`
				StargazerCount int  `json:"stargazerCount"`
				ForkCount      int  `json:"forkCount"`
			} `json:"nodes"`
		} `json:"repositories"`
		Followers *totalCount `json:"followers"`
		Following *totalCount `json:"following"`
	} `json:"user"`
}

func (r summaryResponse) ToSummary() (app.ContributionSummary, error) {
	u := r.User
	switch {
	case u == nil:
		return app.ContributionSummary{}, &app.ShapeError{Path: "data.user"}
	case u.ContributionsCollection == nil:
		return app.ContributionSummary{}, &app.ShapeError{Path: "data.user.contributionsCollection"}
	case u.ContributionsCollection.ContributionCalendar == nil:
		return app.ContributionSummary{}, &app.ShapeError{Path: "data.user.contributionsCollection.contributionCalendar"}
	case u.Repositories == nil:
		return app.ContributionSummary{}, &app.ShapeError{Path: "data.user.repositories"}
	}

	cc := u.ContributionsCollection
	s := app.ContributionSummary{
		TotalContributions:      cc.ContributionCalendar.TotalContributions,
		Commits:                 cc.TotalCommitContributions,
		PullRequests:            cc.TotalPullRequestContributions,
		Issues:                  cc.TotalIssueContributions,
		Reviews:                 cc.TotalPullRequestReviewContributions,
		RepositoryContributions: cc.TotalRepositoryContributions,
		Repositories:            u.Repositories.TotalCount,
		CreatedAt:               u.CreatedAt,
	}
	for _, n := range u.Repositories.Nodes {
		s.Stars += n.StargazerCount
		s.Forks += n.ForkCount
	}
	if u.Followers != nil {
		s.Followers = u.Followers.TotalCount
	}
	if u.Following != nil {
		s.Following = u.Following.TotalCount
	}

	return s, nil
}

// Languages query.

type languagesResponse struct {
	User *struct {
		Repositories *struct {
			Nodes []struct {
				Name      string `json:"name"`
				IsPrivate bool   `json:"isPrivate"`
				Languages *struct {
					Edges []struct {
						Size int `json:"size"`
						Node struct {
							Name  string  `json:"name"`
							Color *string `json:"color"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"languages"`
			} `json:"nodes"`
		} `json:"repositories"`
	} `json:"user"`
}

func (r languagesResponse) ToRepositories() ([]app.Repository, error) {
	switch {
	case r.User == nil:
		return nil, &app.ShapeError{Path: "data.user"}
	case r.User.Repositories == nil:
		return nil, &app.ShapeError{Path: "data.user.repositories"}
	}

	repos := make([]app.Repository, 0, len(r.User.Repositories.Nodes))
	for _, n := range r.User.Repositories.Nodes {
		repo := app.Repository{
			Name:      n.Name,
			IsPrivate: n.IsPrivate,
		}
		if n.Languages != nil {
			for _, e := range n.Languages.Edges {
				var color string
				if e.Node.Color != nil {
					color = *e.Node.Color
				}
				repo.Languages = append(repo.Languages, app.LanguageEdge{
					Name:  e.Node.Name,
					Color: color,
					Size:  e.Size,
				})
			}
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

// Events (rest api) payload.

type eventPayload struct {
	Action  string            `json:"action"`
	RefType string            `json:"ref_type"`
	Commits []json.RawMessage `json:"commits"`
}
