package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vukan322/rustkit/internal/core"
)

const (
	DefaultBaseURL   = "https://api.steampowered.com"
	DefaultTimeout   = 8 * time.Second
	defaultUserAgent = "rustkit/0.1"

	resolveVanityPath   = "/ISteamUser/ResolveVanityURL/v1/"
	playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v2/"
	userStatsPath       = "/ISteamUserStats/GetUserStatsForGame/v2/"
	ownedGamesPath      = "/IPlayerService/GetOwnedGames/v1/"
)

var tracer = otel.Tracer("github.com/vukan322/rustkit/internal/providers/steam")

type Provider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	appID   int
	timeout time.Duration
}

type Option func(*Provider)

// WithBaseURL points the provider at another API root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout bounds every single request.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		if c != nil {
			p.client = c
		}
	}
}

func New(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		client:  &http.Client{},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		appID:   core.RustAppID,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return "steam"
}

type resolveVanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
		Message string `json:"message"`
	} `json:"response"`
}

type playerSummariesResponse struct {
	Response struct {
		Players []steamPlayer `json:"players"`
	} `json:"response"`
}

type steamPlayer struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	ProfileURL  string `json:"profileurl"`
	AvatarFull  string `json:"avatarfull"`
}

type userStatsResponse struct {
	PlayerStats struct {
		SteamID  string `json:"steamID"`
		GameName string `json:"gameName"`
		Stats    []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		} `json:"stats"`
	} `json:"playerstats"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID           int `json:"appid"`
			PlaytimeForever int `json:"playtime_forever"`
		} `json:"games"`
	} `json:"response"`
}

func (p *Provider) ResolveVanity(ctx context.Context, name string) (core.SteamID, error) {
	ctx, span := tracer.Start(ctx, "steam.ResolveVanity", trace.WithAttributes(attribute.String("steam.vanity", name)))
	defer span.End()

	var res resolveVanityResponse
	params := url.Values{"vanityurl": {name}}
	if err := p.get(ctx, resolveVanityPath, params, &res, nil); err != nil {
		recordError(span, err)
		return "", fmt.Errorf("steam: resolve vanity: %w", err)
	}

	if res.Response.Success != 1 || res.Response.SteamID == "" {
		err := core.NewError(core.CodeVanityNotFound, fmt.Sprintf("vanity name %q not found", name))
		recordError(span, err)
		return "", err
	}
	return core.SteamID(res.Response.SteamID), nil
}

func (p *Provider) FetchProfile(ctx context.Context, id core.SteamID) (core.Profile, error) {
	ctx, span := tracer.Start(ctx, "steam.FetchProfile", trace.WithAttributes(attribute.String("steam.id", string(id))))
	defer span.End()

	var res playerSummariesResponse
	params := url.Values{"steamids": {string(id)}}
	if err := p.get(ctx, playerSummariesPath, params, &res, nil); err != nil {
		recordError(span, err)
		return core.Profile{}, fmt.Errorf("steam: fetch profile: %w", err)
	}

	if len(res.Response.Players) == 0 {
		err := core.NewError(core.CodeProfileNotFound, fmt.Sprintf("no profile for steam id %s", id))
		recordError(span, err)
		return core.Profile{}, err
	}

	player := res.Response.Players[0]
	return core.Profile{
		Name:       player.PersonaName,
		AvatarURL:  player.AvatarFull,
		ProfileURL: player.ProfileURL,
	}, nil
}

// FetchStats returns the raw Rust counters for id. Steam answers 400 or 403
// for private profiles and accounts that never played; both read as an empty
// set.
func (p *Provider) FetchStats(ctx context.Context, id core.SteamID) (core.RawStats, error) {
	ctx, span := tracer.Start(ctx, "steam.FetchStats", trace.WithAttributes(attribute.String("steam.id", string(id))))
	defer span.End()

	var res userStatsResponse
	params := url.Values{
		"steamid": {string(id)},
		"appid":   {strconv.Itoa(p.appID)},
	}
	emptyOn := []int{http.StatusBadRequest, http.StatusForbidden}
	if err := p.get(ctx, userStatsPath, params, &res, emptyOn); err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("steam: fetch stats: %w", err)
	}

	stats := make(core.RawStats, len(res.PlayerStats.Stats))
	for _, s := range res.PlayerStats.Stats {
		stats[s.Name] = s.Value
	}
	span.SetAttributes(attribute.Int("steam.stats.count", len(stats)))
	return stats, nil
}

// FetchPlaytime returns minutes played, 0 when the game is not owned or the
// library is private.
func (p *Provider) FetchPlaytime(ctx context.Context, id core.SteamID) (int, error) {
	ctx, span := tracer.Start(ctx, "steam.FetchPlaytime", trace.WithAttributes(attribute.String("steam.id", string(id))))
	defer span.End()

	var res ownedGamesResponse
	params := url.Values{
		"steamid":          {string(id)},
		"include_appinfo":  {"false"},
		"appids_filter[0]": {strconv.Itoa(p.appID)},
	}
	if err := p.get(ctx, ownedGamesPath, params, &res, nil); err != nil {
		recordError(span, err)
		return 0, fmt.Errorf("steam: fetch playtime: %w", err)
	}

	if len(res.Response.Games) == 0 {
		return 0, nil
	}
	return res.Response.Games[0].PlaytimeForever, nil
}

// get issues a keyed GET against path and decodes the JSON body into out.
// A status listed in emptyOn leaves out untouched instead of failing. Every
// failure is a transport error.
func (p *Provider) get(ctx context.Context, path string, params url.Values, out any, emptyOn []int) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params.Set("key", p.apiKey)
	endpoint := p.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return core.WrapError(core.CodeTransport, "new request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return core.WrapError(core.CodeTransport, "do request", redactKey(err, p.apiKey))
	}
	defer resp.Body.Close()

	for _, status := range emptyOn {
		if resp.StatusCode == status {
			return nil
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.NewError(core.CodeTransport, fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, path))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return core.WrapError(core.CodeTransport, "decode response", err)
	}
	return nil
}

// redactKey keeps the API key out of *url.Error messages, which embed the
// request URL.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	if ue, ok := err.(*url.Error); ok {
		return &url.Error{Op: ue.Op, URL: strings.ReplaceAll(ue.URL, key, "REDACTED"), Err: ue.Err}
	}
	return err
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(core.CodeOf(err)))
}
