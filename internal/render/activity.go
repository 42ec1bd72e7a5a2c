package render

import (
	"fmt"

	"github.com/m-zajac/profilestats/internal/app"
)

const (
	activityWidth    = 350
	activityHeight   = 155
	activityCellSize = 11
	activityCellGap  = 3
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type activityViewModel struct {
	Width    int
	Height   int
	CenterX  string
	Title    string
	CellSize int

	DayLabels []activityDayLabel
	Cells     []activityCell
}

type activityDayLabel struct {
	Y    int
	Name string
}

type activityCell struct {
	X     int
	Y     int
	Color string
	Title string
}

// ActivitySVG renders contribution heatmap for given weeks.
func ActivitySVG(weeks [][]app.ContributionDay) ([]byte, error) {
	step := activityCellSize + activityCellGap
	vm := activityViewModel{
		Width:    activityWidth,
		Height:   activityHeight,
		CenterX:  formatFloat(activityWidth / 2.0),
		Title:    fmt.Sprintf("%d-Week Activity Heatmap", len(weeks)),
		CellSize: activityCellSize,
	}
	for i, name := range weekdayNames {
		vm.DayLabels = append(vm.DayLabels, activityDayLabel{
			Y:    i*step + 9,
			Name: name,
		})
	}

	for wi, week := range weeks {
		for _, d := range week {
			vm.Cells = append(vm.Cells, activityCell{
				X:     wi * step,
				Y:     d.Weekday * step,
				Color: ActivityColor(d.Count),
				Title: activityTitle(d),
			})
		}
	}

	return execute("activity.svg.tmpl", vm)
}

// ActivityColor returns heatmap cell color for contribution count.
func ActivityColor(count int) string {
	switch {
	case count <= 0:
		return "#24283b"
	case count <= 2:
		return "#2d3748"
	case count <= 4:
		return "#4a5568"
	case count <= 8:
		return "#7dcfff"
	default:
		return "#9ece6a"
	}
}

func activityTitle(d app.ContributionDay) string {
	suffix := "s"
	if d.Count == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%s: %d contribution%s", d.Date.Format("2006-01-02"), d.Count, suffix)
}
