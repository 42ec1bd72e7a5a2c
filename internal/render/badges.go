package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-zajac/profilestats/internal/app"
)

const shieldsBaseURL = "https://img.shields.io/badge/"

// BadgesSection is the name of the document section holding badges.
const BadgesSection = "Badges"

// Badge styles.
const (
	StyleFlatSquare  = "flat-square"
	StyleForTheBadge = "for-the-badge"
)

// Badge describes a single shields.io badge image.
type Badge struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Alt  string `json:"alt"`
}

// Thresholds for ColorForValue.
type Thresholds struct {
	High   int
	Medium int
}

var languageBadgeColors = []string{"blue", "green", "yellow"}

var milestoneColors = map[string]string{
	app.MilestoneFirstPR:         "success",
	app.MilestoneFirstStar:       "yellow",
	app.Milestone100Commits:      "blue",
	app.Milestone1kContributions: "brightgreen",
	app.Milestone50Repos:         "orange",
	app.Milestone100Followers:    "ff69b4",
}

// BadgeURL returns static shields.io badge url.
// Dashes and underscores in label and message are escaped the way shields.io expects,
// then both parts are percent-encoded, reserved characters like + & = : included.
func BadgeURL(label, message, color, style string) string {
	u := shieldsBaseURL + escapeBadgePart(label) + "-" + escapeBadgePart(message) + "-" + url.PathEscape(color)
	if style != "" {
		u += "?style=" + url.QueryEscape(style)
	}
	return u
}

func escapeBadgePart(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ColorForValue picks badge color for value.
func ColorForValue(value int, t Thresholds) string {
	switch {
	case value >= t.High:
		return "brightgreen"
	case value >= t.Medium:
		return "yellow"
	default:
		return "orange"
	}
}

// MilestoneBadgeURL returns badge url for reached milestone.
func MilestoneBadgeURL(milestone string) string {
	color, ok := milestoneColors[milestone]
	if !ok {
		color = "lightgrey"
	}
	return BadgeURL("🎉 Milestone", strings.ReplaceAll(milestone, "_", " "), color, StyleForTheBadge)
}

// ProfileBadges builds the list of profile badges.
// profileViews is optional, badge is skipped when empty.
func ProfileBadges(stats app.ProfileStats, profileViews string) []Badge {
	s := stats.Summary
	badges := []Badge{
		{
			Name: "repos",
			URL:  BadgeURL("Repos", strconv.Itoa(s.Repositories), ColorForValue(s.Repositories, Thresholds{High: 50, Medium: 20}), StyleFlatSquare),
			Alt:  "Repository Count",
		},
		{
			Name: "stars",
			URL:  BadgeURL("Stars", strconv.Itoa(s.Stars), ColorForValue(s.Stars, Thresholds{High: 500, Medium: 100}), StyleFlatSquare),
			Alt:  "Total Stars",
		},
		{
			Name: "followers",
			URL:  BadgeURL("Followers", strconv.Itoa(s.Followers), ColorForValue(s.Followers, Thresholds{High: 200, Medium: 50}), StyleFlatSquare),
			Alt:  "Followers",
		},
		{
			Name: "contributions",
			URL: BadgeURL(
				fmt.Sprintf("%d Contributions", s.Year),
				strconv.Itoa(s.TotalContributions),
				ColorForValue(s.TotalContributions, Thresholds{High: 1000, Medium: 500}),
				StyleFlatSquare,
			),
			Alt: "Yearly Contributions",
		},
		{
			Name: "streak",
			URL: BadgeURL(
				"Current Streak",
				fmt.Sprintf("%d days", stats.Streak.CurrentStreak),
				ColorForValue(stats.Streak.CurrentStreak, Thresholds{High: 30, Medium: 7}),
				StyleFlatSquare,
			),
			Alt: "Contribution Streak",
		},
	}

	for i, l := range stats.Languages {
		if i >= len(languageBadgeColors) {
			break
		}
		badges = append(badges, Badge{
			Name: fmt.Sprintf("lang_%d", i),
			URL:  BadgeURL(fmt.Sprintf("Lang #%d", i+1), l.Name, languageBadgeColors[i], StyleFlatSquare),
			Alt:  fmt.Sprintf("Top Language %d", i+1),
		})
	}

	for _, m := range app.Milestones(s) {
		badges = append(badges, Badge{
			Name: "milestone_" + m,
			URL:  MilestoneBadgeURL(m),
			Alt:  "Milestone " + strings.ReplaceAll(m, "_", " "),
		})
	}

	if profileViews != "" {
		badges = append(badges, Badge{
			Name: "profile_views",
			URL:  BadgeURL("Profile Views", profileViews, "blueviolet", StyleFlatSquare),
			Alt:  "Profile Views",
		})
	}

	return badges
}

// BadgesJSON renders badges as indented json array.
func BadgesJSON(badges []Badge) ([]byte, error) {
	if badges == nil {
		badges = []Badge{}
	}
	b, err := json.MarshalIndent(badges, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling badges: %w", err)
	}
	return b, nil
}

// BadgesBlock renders badges as a centered markdown block.
func BadgesBlock(badges []Badge) string {
	images := make([]string, 0, len(badges))
	for _, b := range badges {
		images = append(images, fmt.Sprintf("![%s](%s)", b.Alt, b.URL))
	}

	return "<div align=\"center\">\n\n" +
		strings.Join(images, " ") + "\n\n" +
		"</div>"
}

// BadgesMarkdown renders badges block wrapped in section markers, ready to be pasted into a README.
func BadgesMarkdown(badges []Badge) string {
	return SectionStart(BadgesSection) + "\n" + BadgesBlock(badges) + "\n" + SectionEnd(BadgesSection)
}

// SectionStart returns opening marker of a named document section.
func SectionStart(name string) string {
	return "<!-- " + name + " Start -->"
}

// SectionEnd returns closing marker of a named document section.
func SectionEnd(name string) string {
	return "<!-- " + name + " End -->"
}
