// Package lookup turns a free-text player identifier into normalized Rust
// stats: classify, resolve a vanity name when needed, fetch profile, stats and
// playtime concurrently, then normalize. Any failure aborts the whole lookup.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vukan322/rustkit/internal/core"
	"github.com/vukan322/rustkit/internal/providers"
)

var tracer = otel.Tracer("github.com/vukan322/rustkit/internal/lookup")

type State int

const (
	Idle State = iota
	Classifying
	Resolving
	Fetching
	Normalizing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Classifying:
		return "classifying"
	case Resolving:
		return "resolving"
	case Fetching:
		return "fetching"
	case Normalizing:
		return "normalizing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Observer is told about every state transition of a lookup.
type Observer func(lookupID string, from, to State)

// Result is the single outcome of a lookup. Stats is set only when State is
// Done; Err only when State is Failed.
type Result struct {
	ID    string            `json:"id"`
	Seq   uint64            `json:"seq,omitempty"`
	Input string            `json:"input"`
	State State             `json:"-"`
	Stats *core.PlayerStats `json:"stats,omitempty"`
	Err   error             `json:"-"`
}

func (r Result) Failed() bool {
	return r.State == Failed
}

// Code returns the failure reason, empty for a resolved lookup.
func (r Result) Code() core.Code {
	if !r.Failed() {
		return ""
	}
	return core.CodeOf(r.Err)
}

type Resolver struct {
	provider providers.Provider
	observe  Observer
	logger   *log.Logger
}

type Option func(*Resolver)

func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		r.observe = o
	}
}

func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewResolver(p providers.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		provider: p,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// run tracks one lookup through the state machine.
type run struct {
	r     *Resolver
	id    string
	state State
}

func (l *run) enter(next State) {
	prev := l.state
	l.state = next
	if l.r.observe != nil {
		l.r.observe(l.id, prev, next)
	}
}

// Resolve performs one complete lookup for input. It never returns partial
// data: either every fetch succeeded and the result is Done, or the result is
// Failed and carries the first error.
func (r *Resolver) Resolve(ctx context.Context, input string) Result {
	l := &run{r: r, id: uuid.NewString(), state: Idle}
	ctx, span := tracer.Start(ctx, "lookup.Resolve", trace.WithAttributes(
		attribute.String("lookup.id", l.id),
		attribute.String("lookup.provider", r.provider.Name()),
	))
	defer span.End()

	stats, err := r.resolve(ctx, l, input)
	if err != nil {
		failedIn := l.state
		l.enter(Failed)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(core.CodeOf(err)))
		// A cancelled lookup was superseded or abandoned by its caller.
		if !errors.Is(err, context.Canceled) {
			r.logger.Printf("lookup %s: %q failed while %s: %v", l.id, input, failedIn, err)
		}
		return Result{ID: l.id, Input: input, State: Failed, Err: err}
	}

	l.enter(Done)
	return Result{ID: l.id, Input: input, State: Done, Stats: stats}
}

func (r *Resolver) resolve(ctx context.Context, l *run, input string) (*core.PlayerStats, error) {
	l.enter(Classifying)
	ident, err := core.Classify(input)
	if err != nil {
		return nil, err
	}

	id := core.SteamID(ident.Value)
	if ident.Kind == core.KindVanity {
		l.enter(Resolving)
		id, err = r.provider.ResolveVanity(ctx, ident.Value)
		if err != nil {
			return nil, err
		}
	}

	l.enter(Fetching)
	var (
		profile core.Profile
		raw     core.RawStats
		minutes int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = r.provider.FetchProfile(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		raw, err = r.provider.FetchStats(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		minutes, err = r.provider.FetchPlaytime(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.enter(Normalizing)
	return &core.PlayerStats{
		SteamID:       id,
		Profile:       profile,
		Groups:        core.Normalize(raw),
		PlaytimeHours: minutes / 60,
	}, nil
}
