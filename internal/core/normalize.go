package core

import (
	"fmt"
	"math"
	"strconv"
)

const secondsPerHour = 3600

// Stat group titles, in display order.
const (
	GroupPVP      = "PVP"
	GroupKills    = "Kills"
	GroupBow      = "Bow Hits"
	GroupShotgun  = "Shotgun Hits"
	GroupExposure = "Exposure (hours)"
	GroupGathered = "Gathered"
	GroupOther    = "Other"
)

type statRule struct {
	label  string
	derive func(RawStats) Metric
}

type groupRules struct {
	title string
	rules []statRule
}

var normalizationRules = []groupRules{
	{GroupPVP, []statRule{
		{"Kills", count("kill_player")},
		{"Deaths", count("deaths")},
		{"K/D Ratio", ratio("kill_player", "deaths")},
		{"Headshots", count("headshot")},
		{"Bullets Hit", count("bullet_hit_player")},
		{"Bullets Fired", count("bullet_fired")},
		{"Hit %", percent("bullet_hit_player", "bullet_fired")},
		{"Headshot %", percent("headshot", "kill_player")},
	}},
	{GroupKills, []statRule{
		{"Scientists", count("kill_scientist")},
		{"Boars", count("kill_boar")},
		{"Bears", count("kill_bear")},
		{"Wolves", count("kill_wolf")},
		{"Chickens", count("kill_chicken")},
		{"Deers", count("kill_stag")},
		{"Horses", count("kill_horse")},
	}},
	{GroupBow, []statRule{
		{"Shots Fired", count("arrow_fired")},
		{"Players", count("arrow_hit_player")},
		{"Buildings", count("arrow_hit_building")},
		{"Bears", count("arrow_hit_bear")},
		{"Boars", count("arrow_hit_boar")},
		{"Deers", count("arrow_hit_stag")},
		{"Horses", count("arrow_hit_horse")},
		{"Chickens", count("arrow_hit_chicken")},
	}},
	{GroupShotgun, []statRule{
		{"Shots Fired", count("shotgun_fired")},
		{"Players", count("shotgun_hit_player")},
		{"Buildings", count("shotgun_hit_building")},
	}},
	{GroupExposure, []statRule{
		{"Cold", hours("cold_exposure")},
		{"Heat", hours("heat_exposure")},
		{"Comfort", hours("comfort_exposure")},
		{"Radiation", hours("radiation_exposure")},
	}},
	{GroupGathered, []statRule{
		{"Wood", count("gathered_wood")},
		{"Stone", count("gathered_stone")},
		{"Metal", count("gathered_metal")},
		{"Scrap", count("gathered_scrap")},
		{"Cloth", count("gathered_cloth")},
		{"Leather", count("gathered_leather")},
		{"Low Grade", count("gathered_lowgrade")},
	}},
	{GroupOther, []statRule{
		{"Voice Chat", roundedHours("seconds_speaking")},
		{"Barrels Destroyed", count("destroyed_barrels")},
		{"Rockets Fired", count("rocket_fired")},
		{"Inventory Opened", count("inventory_opened")},
		{"Map Opened", count("map_opened")},
		{"Wounded", count("wounded")},
		{"Blueprints Learned", count("blueprint_studied")},
	}},
}

// Normalize derives the fixed stat groups from raw counters. Every group and
// label is always present; missing counters count as zero and unknown
// counters are ignored.
func Normalize(raw RawStats) []StatGroup {
	groups := make([]StatGroup, 0, len(normalizationRules))
	for _, g := range normalizationRules {
		entries := make([]StatEntry, 0, len(g.rules))
		for _, r := range g.rules {
			entries = append(entries, StatEntry{Label: r.label, Value: r.derive(raw)})
		}
		groups = append(groups, StatGroup{Title: g.title, Entries: entries})
	}
	return groups
}

// GroupTitles lists every group title Normalize produces, in order.
func GroupTitles() []string {
	titles := make([]string, len(normalizationRules))
	for i, g := range normalizationRules {
		titles[i] = g.title
	}
	return titles
}

func count(key string) func(RawStats) Metric {
	return func(raw RawStats) Metric {
		v := raw.Value(key)
		return Metric{Kind: MetricCount, Value: float64(v), Text: strconv.FormatInt(v, 10)}
	}
}

// ratio divides two counters, substituting 1 for a zero denominator.
func ratio(num, den string) func(RawStats) Metric {
	return func(raw RawStats) Metric {
		r := float64(raw.Value(num)) / denominator(raw.Value(den))
		text := strconv.FormatFloat(r, 'f', 2, 64)
		v, _ := strconv.ParseFloat(text, 64)
		return Metric{Kind: MetricRatio, Value: v, Text: text}
	}
}

func percent(num, den string) func(RawStats) Metric {
	return func(raw RawStats) Metric {
		p := math.Round(float64(raw.Value(num)) / denominator(raw.Value(den)) * 100)
		return Metric{Kind: MetricPercent, Value: p, Text: fmt.Sprintf("%d%%", int64(p))}
	}
}

// hours converts a seconds counter to whole hours, truncating.
func hours(key string) func(RawStats) Metric {
	return func(raw RawStats) Metric {
		h := raw.Value(key) / secondsPerHour
		return Metric{Kind: MetricHours, Value: float64(h), Text: strconv.FormatInt(h, 10)}
	}
}

func roundedHours(key string) func(RawStats) Metric {
	return func(raw RawStats) Metric {
		h := int64(math.Round(float64(raw.Value(key)) / secondsPerHour))
		return Metric{Kind: MetricHours, Value: float64(h), Text: fmt.Sprintf("%d hours", h)}
	}
}

func denominator(v int64) float64 {
	if v <= 0 {
		return 1
	}
	return float64(v)
}
