package render

import (
	"math"

	"github.com/m-zajac/profilestats/internal/app"
)

const (
	cardWidth  = 495
	cardHeight = 195

	streakBarWidth = 445
)

type streakViewModel struct {
	Width       int
	Height      int
	InnerWidth  int
	InnerHeight int

	CurrentStreak      int
	LongestStreak      int
	TotalContributions string
	LastContribution   string

	BarMaxWidth int
	BarWidth    string
}

// StreakSVG renders streak stats card.
func StreakSVG(stats app.StreakStats) ([]byte, error) {
	last := "N/A"
	if stats.LastContribution != nil {
		last = stats.LastContribution.Format(dateLayout)
	}

	var bar float64
	if stats.LongestStreak > 0 {
		bar = math.Min(streakBarWidth, float64(stats.CurrentStreak)/float64(stats.LongestStreak)*streakBarWidth)
	}

	return execute("streak.svg.tmpl", streakViewModel{
		Width:              cardWidth,
		Height:             cardHeight,
		InnerWidth:         cardWidth - 1,
		InnerHeight:        cardHeight - 1,
		CurrentStreak:      stats.CurrentStreak,
		LongestStreak:      stats.LongestStreak,
		TotalContributions: formatCount(stats.TotalContributions),
		LastContribution:   last,
		BarMaxWidth:        streakBarWidth,
		BarWidth:           formatFloat(bar),
	})
}
