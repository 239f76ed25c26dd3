package demo

import (
	"context"
	"fmt"

	"github.com/vukan322/rustkit/internal/core"
)

// DemoSteamID is the canonical id every demo vanity name resolves to.
const DemoSteamID core.SteamID = "76561190000000000"

// DemoProvider serves fixed data without network access. Vanity "unknown"
// fails to resolve and any id other than DemoSteamID has no profile, so the
// failure paths can be exercised offline too.
type DemoProvider struct{}

func New() *DemoProvider {
	return &DemoProvider{}
}

func (d *DemoProvider) Name() string {
	return "demo"
}

func (d *DemoProvider) ResolveVanity(ctx context.Context, name string) (core.SteamID, error) {
	if name == "" || name == "unknown" {
		return "", core.NewError(core.CodeVanityNotFound, fmt.Sprintf("vanity name %q not found", name))
	}
	return DemoSteamID, nil
}

func (d *DemoProvider) FetchProfile(ctx context.Context, id core.SteamID) (core.Profile, error) {
	if id != DemoSteamID {
		return core.Profile{}, core.NewError(core.CodeProfileNotFound, fmt.Sprintf("no profile for steam id %s", id))
	}
	return core.Profile{
		Name:       "Demo Survivor",
		AvatarURL:  "",
		ProfileURL: "https://steamcommunity.com/profiles/" + string(DemoSteamID),
	}, nil
}

func (d *DemoProvider) FetchStats(ctx context.Context, id core.SteamID) (core.RawStats, error) {
	return core.RawStats{
		"kill_player":        412,
		"deaths":             377,
		"headshot":           96,
		"bullet_hit_player":  2210,
		"bullet_fired":       15120,
		"kill_scientist":     188,
		"kill_boar":          64,
		"kill_bear":          21,
		"kill_wolf":          33,
		"kill_chicken":       40,
		"kill_stag":          52,
		"kill_horse":         9,
		"arrow_fired":        3400,
		"arrow_hit_player":   310,
		"arrow_hit_building": 120,
		"shotgun_fired":      800,
		"shotgun_hit_player": 140,
		"cold_exposure":      81000,
		"heat_exposure":      12000,
		"comfort_exposure":   430000,
		"radiation_exposure": 25000,
		"gathered_wood":      1250000,
		"gathered_stone":     940000,
		"gathered_metal":     410000,
		"gathered_scrap":     18500,
		"gathered_cloth":     22000,
		"gathered_leather":   6400,
		"gathered_lowgrade":  31000,
		"seconds_speaking":   27000,
		"destroyed_barrels":  5200,
		"rocket_fired":       240,
		"inventory_opened":   88000,
		"map_opened":         15400,
		"wounded":            610,
		"blueprint_studied":  180,
	}, nil
}

func (d *DemoProvider) FetchPlaytime(ctx context.Context, id core.SteamID) (int, error) {
	return 1850 * 60, nil
}
