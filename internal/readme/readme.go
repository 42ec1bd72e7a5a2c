// Package readme updates generated sections of a profile README document.
package readme

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	// Embedded zone database, CI runners do not always ship one.
	_ "time/tzdata"

	"github.com/m-zajac/profilestats/internal/render"
	"github.com/sirupsen/logrus"
)

// Section names used in the README.
const (
	StatsSection    = "Stats"
	ActivitySection = "Recent Activity"
)

const (
	timestampZone   = "America/New_York"
	timestampLayout = "Monday, January 2, 2006 at 3:04 PM"
)

var timestampRe = regexp.MustCompile(`Last updated: [^\r\n*<]*`)

// Document is a README being updated in memory.
type Document struct {
	content string
	l       logrus.FieldLogger
}

// NewDocument creates new Document.
func NewDocument(content []byte, l logrus.FieldLogger) *Document {
	return &Document{
		content: string(content),
		l:       l,
	}
}

// UpdateSection replaces text between every pair of section markers with content.
// Returns false and leaves document untouched when no complete pair is found.
func (d *Document) UpdateSection(name, content string) bool {
	start := render.SectionStart(name)
	end := render.SectionEnd(name)

	var b strings.Builder
	rest := d.content
	var updated bool
	for {
		i := strings.Index(rest, start)
		if i < 0 {
			break
		}
		i += len(start)

		j := strings.Index(rest[i:], end)
		if j < 0 {
			break
		}
		j += i

		b.WriteString(rest[:i])
		b.WriteString("\n" + content + "\n")
		b.WriteString(end)
		rest = rest[j+len(end):]
		updated = true
	}

	if !updated {
		d.l.Warnf("section %q: markers not found", name)
		return false
	}
	b.WriteString(rest)
	d.content = b.String()

	return true
}

// UpdateTimestamp rewrites every "Last updated: ..." line with now in US eastern time.
// Returns number of replaced lines.
func (d *Document) UpdateTimestamp(now time.Time) (int, error) {
	loc, err := time.LoadLocation(timestampZone)
	if err != nil {
		return 0, fmt.Errorf("loading %s location: %w", timestampZone, err)
	}

	line := "Last updated: " + now.In(loc).Format(timestampLayout) + " ET"
	n := len(timestampRe.FindAllStringIndex(d.content, -1))
	if n == 0 {
		d.l.Warn("timestamp line not found")
		return 0, nil
	}
	d.content = timestampRe.ReplaceAllLiteralString(d.content, line)

	return n, nil
}

// Bytes returns current document content.
func (d *Document) Bytes() []byte {
	return []byte(d.content)
}

func (d *Document) String() string {
	return d.content
}
