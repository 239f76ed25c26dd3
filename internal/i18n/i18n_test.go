package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"

	"github.com/vukan322/rustkit/internal/core"
)

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name   string
		target string
		accept string
		want   language.Tag
	}{
		{"default", "/", "", language.English},
		{"query wins", "/?lang=es", "en-US", language.Spanish},
		{"accept header", "/", "es-AR,es;q=0.9", language.Spanish},
		{"unsupported falls back", "/", "ja-JP", language.English},
		{"bad query uses header", "/?lang=!!", "es", language.Spanish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			if got := ResolveTag(r); got != tt.want {
				t.Fatalf("ResolveTag = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLabelTranslations(t *testing.T) {
	es := Printer(language.Spanish)
	en := Printer(language.English)

	if got := Label(es, core.GroupGathered); got != "Recolectado" {
		t.Fatalf("es label = %q", got)
	}
	if got := Label(en, core.GroupGathered); got != "Gathered" {
		t.Fatalf("en label = %q", got)
	}
	if got := Label(en, "Hit %"); got != "Hit %" {
		t.Fatalf("en percent label = %q", got)
	}
	if got := Label(es, "Headshot %"); got != "% a la cabeza" {
		t.Fatalf("es percent label = %q", got)
	}
	if got := es.Sprintf(MsgHoursPlayed, 12); got != "Horas jugadas: 12 horas" {
		t.Fatalf("es hours = %q", got)
	}
}

func TestFormatMetric(t *testing.T) {
	en := Printer(language.English)
	tests := []struct {
		m    core.Metric
		want string
	}{
		{core.Metric{Kind: core.MetricCount, Value: 1250000, Text: "1250000"}, "1,250,000"},
		{core.Metric{Kind: core.MetricRatio, Value: 1.09, Text: "1.09"}, "1.09"},
		{core.Metric{Kind: core.MetricPercent, Value: 15, Text: "15%"}, "15%"},
		{core.Metric{Kind: core.MetricHours, Value: 7, Text: "7 hours"}, "7 hours"},
		{core.Metric{Kind: core.MetricHours, Value: 22, Text: "22"}, "22"},
	}
	for _, tt := range tests {
		if got := FormatMetric(en, tt.m); got != tt.want {
			t.Fatalf("FormatMetric(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	es := Printer(language.Spanish)
	if got := ErrorMessage(es, core.CodeVanityNotFound); got != "Ninguna cuenta de Steam usa ese nombre." {
		t.Fatalf("es error = %q", got)
	}
	en := Printer(language.English)
	if got := ErrorMessage(en, core.Code("SOMETHING_ELSE")); got != "Steam could not be reached. Try again." {
		t.Fatalf("fallback error = %q", got)
	}
}
