package render

import "github.com/m-zajac/profilestats/internal/app"

type contributionViewModel struct {
	Width       int
	Height      int
	InnerWidth  int
	InnerHeight int

	Year               int
	TotalContributions string
	Commits            string
	Repositories       int
	PullRequests       int
	Issues             int
	Stars              int
}

// ContributionSVG renders yearly contribution stats card.
func ContributionSVG(s app.ContributionSummary) ([]byte, error) {
	return execute("contribution.svg.tmpl", contributionViewModel{
		Width:              cardWidth,
		Height:             cardHeight,
		InnerWidth:         cardWidth - 1,
		InnerHeight:        cardHeight - 1,
		Year:               s.Year,
		TotalContributions: formatCount(s.TotalContributions),
		Commits:            formatCount(s.Commits),
		Repositories:       s.Repositories,
		PullRequests:       s.PullRequests,
		Issues:             s.Issues,
		Stars:              s.Stars,
	})
}
