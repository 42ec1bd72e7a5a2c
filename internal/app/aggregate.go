package app

import "sort"

// DefaultLanguageColor is used for languages without color defined by github.
const DefaultLanguageColor = "#858585"

// AggregateLanguages sums language sizes across repositories.
// Returns top `limit` languages sorted by size and the total size of all languages.
// Percentages are relative to the total size of all languages, not only the returned ones.
func AggregateLanguages(repos []Repository, limit int) ([]LanguageStat, int) {
	byName := make(map[string]*LanguageStat)
	var total int
	for _, r := range repos {
		for _, l := range r.Languages {
			st, ok := byName[l.Name]
			if !ok {
				color := l.Color
				if color == "" {
					color = DefaultLanguageColor
				}
				st = &LanguageStat{
					Name:  l.Name,
					Color: color,
				}
				byName[l.Name] = st
			}
			st.Size += l.Size
			total += l.Size
		}
	}

	result := make([]LanguageStat, 0, len(byName))
	for _, st := range byName {
		if total > 0 {
			st.Percentage = float64(st.Size) / float64(total) * 100
		}
		result = append(result, *st)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Size != result[j].Size {
			return result[i].Size > result[j].Size
		}
		return result[i].Name < result[j].Name
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, total
}

// RecentWeeks returns last n weeks of the calendar.
func RecentWeeks(c ContributionCalendar, n int) [][]ContributionDay {
	if n <= 0 || len(c.Weeks) <= n {
		return c.Weeks
	}

	return c.Weeks[len(c.Weeks)-n:]
}

// Milestone names.
const (
	MilestoneFirstPR         = "first_pr"
	MilestoneFirstStar       = "first_star"
	Milestone100Commits      = "100_commits"
	Milestone1kContributions = "1k_contributions"
	Milestone50Repos         = "50_repos"
	Milestone100Followers    = "100_followers"
)

// Milestones returns milestones reached by the profile, in a stable order.
// Pull request, commit and contribution milestones are counted within the summary's year,
// stars, repositories and followers are account totals.
func Milestones(s ContributionSummary) []string {
	var m []string
	if s.PullRequests > 0 {
		m = append(m, MilestoneFirstPR)
	}
	if s.Stars > 0 {
		m = append(m, MilestoneFirstStar)
	}
	if s.Commits >= 100 {
		m = append(m, Milestone100Commits)
	}
	if s.TotalContributions >= 1000 {
		m = append(m, Milestone1kContributions)
	}
	if s.Repositories >= 50 {
		m = append(m, Milestone50Repos)
	}
	if s.Followers >= 100 {
		m = append(m, Milestone100Followers)
	}

	return m
}
