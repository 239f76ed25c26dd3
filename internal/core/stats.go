package core

import "math"

// RustAppID is the Steam application id of Rust.
const RustAppID = 252490

// SteamID is a canonical SteamID64 in its decimal string form.
type SteamID string

type Profile struct {
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
	ProfileURL string `json:"profile_url"`
}

// RawStats maps Steam stat names to their raw counter values. A missing key
// reads as zero.
type RawStats map[string]float64

// Value returns the named counter rounded to the nearest integer, or 0 when
// the counter is absent. Values outside the int64 range saturate.
func (r RawStats) Value(name string) int64 {
	v, ok := r[name]
	if !ok || math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

type MetricKind string

const (
	MetricCount   MetricKind = "count"
	MetricRatio   MetricKind = "ratio"
	MetricPercent MetricKind = "percent"
	MetricHours   MetricKind = "hours"
)

// Metric is a single derived value. Value is the number behind Text: whole
// for counts, hours and percentages, two decimals for ratios.
type Metric struct {
	Kind  MetricKind `json:"kind"`
	Value float64    `json:"value"`
	Text  string     `json:"text"`
}

type StatEntry struct {
	Label string `json:"label"`
	Value Metric `json:"value"`
}

type StatGroup struct {
	Title   string      `json:"title"`
	Entries []StatEntry `json:"entries"`
}

// Get returns the metric for label and whether the group has it.
func (g StatGroup) Get(label string) (Metric, bool) {
	for _, e := range g.Entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return Metric{}, false
}

type PlayerStats struct {
	SteamID       SteamID     `json:"steam_id"`
	Profile       Profile     `json:"profile"`
	Groups        []StatGroup `json:"groups"`
	PlaytimeHours int         `json:"playtime_hours"`
}

// Group returns the stat group with the given title.
func (s PlayerStats) Group(title string) (StatGroup, bool) {
	for _, g := range s.Groups {
		if g.Title == title {
			return g, true
		}
	}
	return StatGroup{}, false
}
