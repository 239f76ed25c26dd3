package render

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/vukan322/rustkit/internal/core"
	"github.com/vukan322/rustkit/internal/i18n"
)

func sampleStats() core.PlayerStats {
	return core.PlayerStats{
		SteamID:       "76561190000000000",
		Profile:       core.Profile{Name: "Tom & <Jerry>", AvatarURL: "https://avatars/x.jpg", ProfileURL: "https://steamcommunity.com/id/tj/"},
		Groups:        core.Normalize(core.RawStats{"kill_player": 10, "deaths": 5, "gathered_wood": 1250000}),
		PlaytimeHours: 1850,
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(sampleStats(), i18n.Printer(language.English))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(svg)

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("not an svg document: %.80s", out)
	}
	for _, want := range []string{
		"Tom &amp; &lt;Jerry&gt;",
		"Hours Played: 1,850 hours",
		"K/D Ratio:",
		"2.00",
		"1,250,000",
		"Exposure (hours)",
		"https://avatars/x.jpg",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg missing %q", want)
		}
	}
	if strings.Contains(out, "<Jerry>") {
		t.Fatal("persona name was not escaped")
	}
}

func TestRenderSVGSpanish(t *testing.T) {
	svg, err := RenderSVG(sampleStats(), i18n.Printer(language.Spanish))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(svg)
	for _, want := range []string{"Recolectado", "Horas jugadas", "1.250.000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg missing %q", want)
		}
	}
}

func TestRenderSVGFallsBackToSteamID(t *testing.T) {
	stats := sampleStats()
	stats.Profile = core.Profile{}
	svg, err := RenderSVG(stats, i18n.Printer(language.English))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(svg), "76561190000000000") {
		t.Fatal("expected steam id as title")
	}
	if strings.Contains(string(svg), "avatar-clip") {
		t.Fatal("expected no avatar without url")
	}
}
