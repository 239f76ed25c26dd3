package lookup

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vukan322/rustkit/internal/core"
)

type fakeProvider struct {
	vanity    map[string]core.SteamID
	profiles  map[core.SteamID]core.Profile
	stats     core.RawStats
	statsErr  error
	minutes   int
	playErr   error
	resolved  atomic.Int32
	fetchHook func(ctx context.Context, what string) error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		vanity: map[string]core.SteamID{"gaben": "100"},
		profiles: map[core.SteamID]core.Profile{
			"100": {Name: "Gabe", ProfileURL: "https://steamcommunity.com/id/gaben/"},
			"200": {Name: "Numeric"},
		},
		stats:   core.RawStats{"kill_player": 10, "deaths": 5},
		minutes: 125,
	}
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) hook(ctx context.Context, what string) error {
	if f.fetchHook == nil {
		return nil
	}
	return f.fetchHook(ctx, what)
}

func (f *fakeProvider) ResolveVanity(ctx context.Context, name string) (core.SteamID, error) {
	f.resolved.Add(1)
	if err := f.hook(ctx, "vanity:"+name); err != nil {
		return "", err
	}
	id, ok := f.vanity[name]
	if !ok {
		return "", core.NewError(core.CodeVanityNotFound, "no such vanity")
	}
	return id, nil
}

func (f *fakeProvider) FetchProfile(ctx context.Context, id core.SteamID) (core.Profile, error) {
	if err := f.hook(ctx, "profile"); err != nil {
		return core.Profile{}, err
	}
	p, ok := f.profiles[id]
	if !ok {
		return core.Profile{}, core.NewError(core.CodeProfileNotFound, "no players")
	}
	return p, nil
}

func (f *fakeProvider) FetchStats(ctx context.Context, id core.SteamID) (core.RawStats, error) {
	if err := f.hook(ctx, "stats"); err != nil {
		return nil, err
	}
	return f.stats, f.statsErr
}

func (f *fakeProvider) FetchPlaytime(ctx context.Context, id core.SteamID) (int, error) {
	if err := f.hook(ctx, "playtime"); err != nil {
		return 0, err
	}
	return f.minutes, f.playErr
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestResolveVanityName(t *testing.T) {
	p := newFakeProvider()
	var states []State
	r := NewResolver(p, WithLogger(quietLogger()), WithObserver(func(_ string, _, to State) {
		states = append(states, to)
	}))

	res := r.Resolve(context.Background(), "  gaben ")
	if res.Failed() {
		t.Fatalf("lookup failed: %v", res.Err)
	}
	if res.Stats.SteamID != "100" || res.Stats.Profile.Name != "Gabe" {
		t.Fatalf("unexpected stats %+v", res.Stats)
	}
	if res.Stats.PlaytimeHours != 2 {
		t.Fatalf("playtime hours = %d, want 2", res.Stats.PlaytimeHours)
	}
	pvp, ok := res.Stats.Group(core.GroupPVP)
	if !ok {
		t.Fatal("missing PVP group")
	}
	if m, _ := pvp.Get("K/D Ratio"); m.Text != "2.00" {
		t.Fatalf("k/d = %q", m.Text)
	}

	want := []State{Classifying, Resolving, Fetching, Normalizing, Done}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("states = %v, want %v", states, want)
		}
	}
	if res.ID == "" {
		t.Fatal("expected lookup id")
	}
}

func TestResolveNumericSkipsVanity(t *testing.T) {
	for _, input := range []string{"200", "https://steamcommunity.com/profiles/200/"} {
		p := newFakeProvider()
		r := NewResolver(p, WithLogger(quietLogger()))

		res := r.Resolve(context.Background(), input)
		if res.Failed() {
			t.Fatalf("%s: lookup failed: %v", input, res.Err)
		}
		if p.resolved.Load() != 0 {
			t.Fatalf("%s: vanity resolver called for numeric id", input)
		}
		if res.Stats.Profile.Name != "Numeric" {
			t.Fatalf("%s: profile = %+v", input, res.Stats.Profile)
		}
	}
}

func TestResolveFailures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		setup    func(*fakeProvider)
		code     core.Code
		failedIn State
	}{
		{"invalid url", "https://steamcommunity.com/groups/x", nil, core.CodeInvalidProfileURL, Classifying},
		{"unknown vanity", "nobody", nil, core.CodeVanityNotFound, Resolving},
		{"empty input", "   ", nil, core.CodeVanityNotFound, Resolving},
		{"numeric without profile", "999", nil, core.CodeProfileNotFound, Fetching},
		{"stats transport error", "gaben", func(p *fakeProvider) {
			p.statsErr = core.NewError(core.CodeTransport, "unexpected status 500")
		}, core.CodeTransport, Fetching},
		{"playtime plain error", "gaben", func(p *fakeProvider) {
			p.playErr = errors.New("connection reset")
		}, core.CodeTransport, Fetching},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFakeProvider()
			if tt.setup != nil {
				tt.setup(p)
			}
			var lastBeforeFail State
			r := NewResolver(p, WithLogger(quietLogger()), WithObserver(func(_ string, from, to State) {
				if to == Failed {
					lastBeforeFail = from
				}
			}))

			res := r.Resolve(context.Background(), tt.input)
			if !res.Failed() {
				t.Fatalf("expected failure, got %+v", res.Stats)
			}
			if res.Stats != nil {
				t.Fatal("failed lookup must not carry partial stats")
			}
			if res.Code() != tt.code {
				t.Fatalf("code = %s, want %s (%v)", res.Code(), tt.code, res.Err)
			}
			if lastBeforeFail != tt.failedIn {
				t.Fatalf("failed from %s, want %s", lastBeforeFail, tt.failedIn)
			}
		})
	}
}

func TestResolveFetchesConcurrently(t *testing.T) {
	p := newFakeProvider()
	var started sync.WaitGroup
	started.Add(3)
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()
	p.fetchHook = func(ctx context.Context, what string) error {
		if strings.HasPrefix(what, "vanity:") {
			return nil
		}
		started.Done()
		select {
		case <-allStarted:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New(what + " waited for siblings that never started")
		}
	}

	res := NewResolver(p, WithLogger(quietLogger())).Resolve(context.Background(), "gaben")
	if res.Failed() {
		t.Fatalf("expected concurrent fetches, got %v", res.Err)
	}
}

func TestResolveLogsFailureOnce(t *testing.T) {
	var buf bytes.Buffer
	p := newFakeProvider()
	r := NewResolver(p, WithLogger(log.New(&buf, "", 0)))

	r.Resolve(context.Background(), "nobody")
	if n := strings.Count(buf.String(), "failed"); n != 1 {
		t.Fatalf("expected one failure log line, got %d: %q", n, buf.String())
	}
}

func TestResolveDoesNotLogCancellation(t *testing.T) {
	var buf bytes.Buffer
	p := newFakeProvider()
	p.fetchHook = func(ctx context.Context, what string) error {
		<-ctx.Done()
		return core.WrapError(core.CodeTransport, "do request", ctx.Err())
	}
	r := NewResolver(p, WithLogger(log.New(&buf, "", 0)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := r.Resolve(ctx, "gaben")
	if !res.Failed() {
		t.Fatalf("expected cancelled lookup to fail, got %+v", res)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log for a cancelled lookup, got %q", buf.String())
	}
}

func TestStateString(t *testing.T) {
	if Resolving.String() != "resolving" || Failed.String() != "failed" {
		t.Fatal("unexpected state names")
	}
	if State(42).String() != "state(42)" {
		t.Fatalf("unexpected fallback %q", State(42).String())
	}
}
