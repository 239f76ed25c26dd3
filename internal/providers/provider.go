package providers

import (
	"context"

	"github.com/vukan322/rustkit/internal/core"
)

// Provider answers the four player lookups a stat lookup needs. Fetch methods
// take a canonical id; only ResolveVanity accepts a vanity name.
type Provider interface {
	Name() string
	ResolveVanity(ctx context.Context, name string) (core.SteamID, error)
	FetchProfile(ctx context.Context, id core.SteamID) (core.Profile, error)
	FetchStats(ctx context.Context, id core.SteamID) (core.RawStats, error)
	FetchPlaytime(ctx context.Context, id core.SteamID) (int, error)
}
