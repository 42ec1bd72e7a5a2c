package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/m-zajac/profilestats/internal/app"
)

const (
	languagesWidth     = 500
	languagesHeight    = 200
	languagesBarHeight = 20
	languagesMargin    = 20
	languagesTop       = 40
	languagesListTop   = 50
	languagesRowHeight = 20
)

type languagesViewModel struct {
	Width      int
	Height     int
	CenterX    string
	MarginLeft int
	MarginTop  int
	BarWidth   int
	BarHeight  int
	PercentX   int

	Segments []languageSegment
	Rows     []languageRow
}

type languageSegment struct {
	X     string
	Width string
	Color string
}

type languageRow struct {
	Y       int
	Name    string
	Color   string
	Percent string
}

// LanguagesSVG renders most used languages card.
func LanguagesSVG(langs []app.LanguageStat) ([]byte, error) {
	barWidth := languagesWidth - 2*languagesMargin
	vm := languagesViewModel{
		Width:      languagesWidth,
		Height:     languagesHeight,
		CenterX:    formatFloat(languagesWidth / 2.0),
		MarginLeft: languagesMargin,
		MarginTop:  languagesTop,
		BarWidth:   barWidth,
		BarHeight:  languagesBarHeight,
		PercentX:   barWidth - 5,
	}

	var x float64
	y := languagesListTop
	for _, l := range langs {
		w := l.Percentage / 100 * float64(barWidth)
		vm.Segments = append(vm.Segments, languageSegment{
			X:     formatFloat(x),
			Width: formatFloat(w),
			Color: l.Color,
		})
		x += w

		vm.Rows = append(vm.Rows, languageRow{
			Y:       y,
			Name:    l.Name,
			Color:   l.Color,
			Percent: strconv.FormatFloat(l.Percentage, 'f', 1, 64),
		})
		y += languagesRowHeight
	}

	return execute("languages.svg.tmpl", vm)
}

type languagesJSON struct {
	Languages []languageJSON `json:"languages"`
	Generated string         `json:"generated"`
}

type languageJSON struct {
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
	Color      string `json:"color"`
}

// LanguagesJSON renders language stats as indented json document.
func LanguagesJSON(langs []app.LanguageStat, generated time.Time) ([]byte, error) {
	doc := languagesJSON{
		Languages: make([]languageJSON, 0, len(langs)),
		Generated: generated.UTC().Format(time.RFC3339),
	}
	for _, l := range langs {
		doc.Languages = append(doc.Languages, languageJSON{
			Name:       l.Name,
			Percentage: strconv.FormatFloat(l.Percentage, 'f', 2, 64),
			Color:      l.Color,
		})
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling language stats: %w", err)
	}
	return b, nil
}
