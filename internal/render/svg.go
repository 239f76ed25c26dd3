package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"golang.org/x/text/message"

	"github.com/vukan322/rustkit/internal/core"
	"github.com/vukan322/rustkit/internal/i18n"
)

const (
	svgWidth     = 960
	headerHeight = 120
	columns      = 3
	columnWidth  = 300
	rowHeight    = 22
	groupPadding = 56
)

//go:embed templates/statcard.svg.tmpl
var statcardTemplate string

var statcardTmpl = template.Must(
	template.New("statcard").
		Funcs(template.FuncMap{
			"add": func(a, b int) int { return a + b },
			"mul": func(a, b int) int { return a * b },
			"xml": xmlEscape,
		}).
		Parse(statcardTemplate),
)

type statcardViewModel struct {
	Width  int
	Height int

	Title       string
	Subtitle    string
	AvatarURL   string
	HoursPlayed string

	Groups []groupView
}

type groupView struct {
	X, Y    int
	Title   string
	Entries []entryView
}

type entryView struct {
	Label string
	Value string
}

// RenderSVG draws the stat card for stats, with labels and numbers in the
// printer's language.
func RenderSVG(stats core.PlayerStats, p *message.Printer) ([]byte, error) {
	title := stats.Profile.Name
	if title == "" {
		title = string(stats.SteamID)
	}

	groups, height := layoutGroups(stats.Groups, p)

	vm := statcardViewModel{
		Width:       svgWidth,
		Height:      height,
		Title:       title,
		Subtitle:    stats.Profile.ProfileURL,
		AvatarURL:   stats.Profile.AvatarURL,
		HoursPlayed: p.Sprintf(i18n.MsgHoursPlayed, stats.PlaytimeHours),
		Groups:      groups,
	}

	var buf bytes.Buffer
	if err := statcardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return buf.Bytes(), nil
}

// layoutGroups places groups in a fixed column grid, each row of groups as
// tall as its longest member.
func layoutGroups(groups []core.StatGroup, p *message.Printer) ([]groupView, int) {
	views := make([]groupView, 0, len(groups))
	y := headerHeight
	rowMax := 0

	for i, g := range groups {
		col := i % columns
		if col == 0 && i > 0 {
			y += rowMax
			rowMax = 0
		}

		entries := make([]entryView, 0, len(g.Entries))
		for _, e := range g.Entries {
			entries = append(entries, entryView{
				Label: i18n.Label(p, e.Label),
				Value: i18n.FormatMetric(p, e.Value),
			})
		}
		views = append(views, groupView{
			X:       20 + col*(columnWidth+10),
			Y:       y,
			Title:   i18n.Label(p, g.Title),
			Entries: entries,
		})

		if h := groupPadding + len(g.Entries)*rowHeight; h > rowMax {
			rowMax = h
		}
	}

	return views, y + rowMax + 20
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	template.HTMLEscape(&buf, []byte(s))
	return buf.String()
}
