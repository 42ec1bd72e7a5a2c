package readme

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	humanize "github.com/dustin/go-humanize"
	"github.com/m-zajac/profilestats/internal/app"
)

// FormatRecentActivity formats up to n events as numbered markdown list.
func FormatRecentActivity(events []app.Event, n int) string {
	if n < 0 {
		n = 0
	}
	if len(events) > n {
		events = events[:n]
	}
	if len(events) == 0 {
		return "No recent public activity."
	}

	lines := make([]string, 0, len(events))
	for i, e := range events {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, describeEvent(e)))
	}
	return strings.Join(lines, "\n")
}

func describeEvent(e app.Event) string {
	switch e.Type {
	case "PushEvent":
		return fmt.Sprintf("🔨 Pushed %d %s to %s", e.Commits, plural(e.Commits, "commit"), e.Repo)
	case "CreateEvent":
		return fmt.Sprintf("📦 Created %s in %s", e.RefType, e.Repo)
	case "IssuesEvent":
		return fmt.Sprintf("📝 %s issue in %s", capitalize(e.Action), e.Repo)
	case "PullRequestEvent":
		return fmt.Sprintf("🔄 %s PR in %s", capitalize(e.Action), e.Repo)
	case "WatchEvent":
		return fmt.Sprintf("⭐ Starred %s", e.Repo)
	case "ForkEvent":
		return fmt.Sprintf("🔱 Forked %s", e.Repo)
	default:
		return fmt.Sprintf("🎯 %s in %s", strings.TrimSuffix(e.Type, "Event"), e.Repo)
	}
}

// FormatStats formats profile summary as markdown table.
// Account age is counted in whole days up to now.
func FormatStats(stats app.ProfileStats, now time.Time) string {
	s := stats.Summary

	age := "N/A"
	if !s.CreatedAt.IsZero() && now.After(s.CreatedAt) {
		days := int(now.Sub(s.CreatedAt).Hours() / 24)
		age = humanize.Comma(int64(days)) + " " + plural(days, "day")
	}

	rows := [][2]string{
		{"📦 Total Repos", humanize.Comma(int64(s.Repositories))},
		{"⭐ Total Stars", humanize.Comma(int64(s.Stars))},
		{"👥 Followers", humanize.Comma(int64(s.Followers))},
		{"📅 Account Age", age},
		{"🔥 Current Streak", fmt.Sprintf("%d %s", stats.Streak.CurrentStreak, plural(stats.Streak.CurrentStreak, "day"))},
	}

	var b strings.Builder
	b.WriteString("| Metric | Value |\n")
	b.WriteString("| --- | --- |")
	for _, r := range rows {
		fmt.Fprintf(&b, "\n| %s | %s |", r[0], r[1])
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
