// Package i18n selects the display language for a request and formats
// labels, numbers and messages through golang.org/x/text printers.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vukan322/rustkit/internal/core"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

// Message keys shared by the renderers.
const (
	MsgHoursPlayed  = "Hours Played: %d hours"
	MsgHours        = "%d hours"
	MsgDecayResult  = "Estimated time until full decay: %s"
	MsgDecayNote    = "Assumes no Tool Cupboard, or an empty one."
	MsgLookupFailed = "Lookup failed"
)

var errorMessages = map[core.Code]string{
	core.CodeInvalidProfileURL: "The Steam profile URL is not valid.",
	core.CodeVanityNotFound:    "No Steam account uses that name.",
	core.CodeProfileNotFound:   "The Steam profile could not be found.",
	core.CodeTransport:         "Steam could not be reached. Try again.",
}

func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

func Default() language.Tag {
	return language.English
}

// ParseTag matches s against the supported languages.
func ParseTag(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default(), false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default(), false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default(), false
	}
	return supported[idx], true
}

// ResolveTag picks the language for r: the lang query parameter first, then
// Accept-Language, then English.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[idx]
			}
		}
	}
	return Default()
}

func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ErrorMessage returns the user-facing text for a lookup failure code.
func ErrorMessage(p *message.Printer, code core.Code) string {
	key, ok := errorMessages[code]
	if !ok {
		key = errorMessages[core.CodeTransport]
	}
	return p.Sprintf(key)
}

// FormatMetric renders m for display with locale digit grouping. Ratios keep
// their fixed two decimals.
func FormatMetric(p *message.Printer, m core.Metric) string {
	switch m.Kind {
	case core.MetricRatio:
		return m.Text
	case core.MetricPercent:
		return p.Sprintf("%d%%", int64(m.Value))
	case core.MetricHours:
		if strings.HasSuffix(m.Text, " hours") {
			return p.Sprintf(MsgHours, int64(m.Value))
		}
		return p.Sprintf("%d", int64(m.Value))
	default:
		return p.Sprintf("%d", int64(m.Value))
	}
}

// Label translates a group title or stat label. Labels are plain text, so a
// literal % is escaped before the key is used as a format.
func Label(p *message.Printer, key string) string {
	return p.Sprintf(strings.ReplaceAll(key, "%", "%%"))
}
