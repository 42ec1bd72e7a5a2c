package render

import (
	"encoding/json"
	"testing"

	"github.com/m-zajac/profilestats/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		label   string
		message string
		color   string
		style   string
		want    string
	}{
		{
			name:    "simple",
			label:   "Stars",
			message: "256",
			color:   "brightgreen",
			style:   StyleFlatSquare,
			want:    "https://img.shields.io/badge/Stars-256-brightgreen?style=flat-square",
		},
		{
			name:    "spaces",
			label:   "Current Streak",
			message: "21 days",
			color:   "yellow",
			style:   StyleFlatSquare,
			want:    "https://img.shields.io/badge/Current%20Streak-21%20days-yellow?style=flat-square",
		},
		{
			name:    "dashes and underscores",
			label:   "build-status",
			message: "first_pr",
			color:   "blue",
			style:   StyleForTheBadge,
			want:    "https://img.shields.io/badge/build--status-first__pr-blue?style=for-the-badge",
		},
		{
			name:    "reserved characters",
			label:   "Lang #1",
			message: "C/C++",
			color:   "ff69b4",
			want:    "https://img.shields.io/badge/Lang%20%231-C%2FC%2B%2B-ff69b4",
		},
		{
			name:    "sub-delimiters",
			label:   "a&b=c",
			message: "x:y@z$",
			color:   "green",
			want:    "https://img.shields.io/badge/a%26b%3Dc-x%3Ay%40z%24-green",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BadgeURL(tt.label, tt.message, tt.color, tt.style))
		})
	}
}

func TestColorForValue(t *testing.T) {
	th := Thresholds{High: 50, Medium: 20}
	assert.Equal(t, "brightgreen", ColorForValue(50, th))
	assert.Equal(t, "yellow", ColorForValue(49, th))
	assert.Equal(t, "yellow", ColorForValue(20, th))
	assert.Equal(t, "orange", ColorForValue(19, th))
}

func TestMilestoneBadgeURL(t *testing.T) {
	assert.Equal(t,
		"https://img.shields.io/badge/%F0%9F%8E%89%20Milestone-1k%20contributions-brightgreen?style=for-the-badge",
		MilestoneBadgeURL(app.Milestone1kContributions),
	)
	assert.Equal(t,
		"https://img.shields.io/badge/%F0%9F%8E%89%20Milestone-unknown-lightgrey?style=for-the-badge",
		MilestoneBadgeURL("unknown"),
	)
}

func TestProfileBadges(t *testing.T) {
	stats := app.ProfileStats{
		Summary: app.ContributionSummary{
			Year:               2024,
			TotalContributions: 1337,
			Repositories:       42,
			Stars:              256,
			Followers:          128,
		},
		Streak: app.StreakStats{
			StreakResult: app.StreakResult{CurrentStreak: 21},
		},
		Languages: []app.LanguageStat{
			{Name: "Go"}, {Name: "Python"}, {Name: "TypeScript"}, {Name: "SQL"},
		},
	}

	got := ProfileBadges(stats, "1.2k+")

	names := make([]string, 0, len(got))
	for _, b := range got {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{
		"repos", "stars", "followers", "contributions", "streak",
		"lang_0", "lang_1", "lang_2",
		"milestone_first_star", "milestone_1k_contributions",
		"profile_views",
	}, names)

	assert.Equal(t, "https://img.shields.io/badge/Repos-42-yellow?style=flat-square", got[0].URL)
	assert.Equal(t, "https://img.shields.io/badge/Stars-256-yellow?style=flat-square", got[1].URL)
	assert.Equal(t, "https://img.shields.io/badge/Followers-128-yellow?style=flat-square", got[2].URL)
	assert.Equal(t, "https://img.shields.io/badge/2024%20Contributions-1337-brightgreen?style=flat-square", got[3].URL)
	assert.Equal(t, "https://img.shields.io/badge/Current%20Streak-21%20days-yellow?style=flat-square", got[4].URL)
	assert.Equal(t, "https://img.shields.io/badge/Lang%20%231-Go-blue?style=flat-square", got[5].URL)
	assert.Equal(t, "https://img.shields.io/badge/Profile%20Views-1.2k%2B-blueviolet?style=flat-square", got[10].URL)

	withoutViews := ProfileBadges(stats, "")
	assert.Len(t, withoutViews, len(got)-1)
}

func TestBadgesJSON(t *testing.T) {
	got, err := BadgesJSON([]Badge{{Name: "stars", URL: "https://x", Alt: "Total Stars"}})
	require.NoError(t, err)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, []map[string]string{{"name": "stars", "url": "https://x", "alt": "Total Stars"}}, decoded)

	empty, err := BadgesJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestBadgesMarkdown(t *testing.T) {
	got := BadgesMarkdown([]Badge{
		{Alt: "Total Stars", URL: "https://a"},
		{Alt: "Followers", URL: "https://b"},
	})

	want := "<!-- Badges Start -->\n" +
		"<div align=\"center\">\n\n" +
		"![Total Stars](https://a) ![Followers](https://b)\n\n" +
		"</div>\n" +
		"<!-- Badges End -->"
	assert.Equal(t, want, got)
}
