package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/message"

	"github.com/vukan322/rustkit/internal/config"
	"github.com/vukan322/rustkit/internal/decay"
	"github.com/vukan322/rustkit/internal/i18n"
	"github.com/vukan322/rustkit/internal/lookup"
	"github.com/vukan322/rustkit/internal/providers"
	demoprovider "github.com/vukan322/rustkit/internal/providers/demo"
	steamprovider "github.com/vukan322/rustkit/internal/providers/steam"
	"github.com/vukan322/rustkit/internal/render"
	"github.com/vukan322/rustkit/internal/server"
	"github.com/vukan322/rustkit/internal/telemetry"
)

const serviceName = "rustkit"

func main() {
	_ = godotenv.Load()
	log.SetPrefix("[RUSTKIT] ")

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	tag, ok := i18n.ParseTag(cfg.Lang)
	if !ok {
		log.Printf("warning: unsupported language %q, using %s", cfg.Lang, i18n.Default())
	}
	printer := i18n.Printer(tag)

	if cfg.Material != "" {
		m, ok := decay.Find(cfg.Material)
		if !ok {
			log.Fatalf("unknown material %q", cfg.Material)
		}
		health := m.MaxHealth
		if cfg.Health >= 0 {
			health = decay.Clamp(m, cfg.Health)
		}
		est := decay.Project(m, health)
		fmt.Printf("%s (%.0f/%.0f)\n", m.Name, health, m.MaxHealth)
		fmt.Println(printer.Sprintf(i18n.MsgDecayResult, est.String()))
		fmt.Println(printer.Sprintf(i18n.MsgDecayNote))
		return
	}

	provider := newProvider(cfg)
	resolver := lookup.NewResolver(provider)

	switch {
	case cfg.Serve:
		srv, err := server.NewServer(server.Config{
			HTTPAddr: cfg.HTTPAddr,
			Resolver: resolver,
		})
		if err != nil {
			log.Fatalf("server: %v", err)
		}
		log.Printf("serving on %s via provider %s", cfg.HTTPAddr, provider.Name())
		if err := srv.ListenAndServe(ctx); err != nil {
			log.Fatalf("server: %v", err)
		}
	case cfg.Lookup:
		if err := lookupOnce(ctx, resolver, cfg, printer); err != nil {
			log.Fatalf("%v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func newProvider(cfg config.Config) providers.Provider {
	if cfg.Demo {
		log.Println("info: demo mode, serving fixed data")
		return demoprovider.New()
	}
	return steamprovider.New(cfg.SteamAPIKey,
		steamprovider.WithBaseURL(cfg.SteamBaseURL),
		steamprovider.WithTimeout(cfg.SteamTimeout),
	)
}

// lookupOnce resolves cfg.Player and prints the result, or writes the stat
// card when -out is set.
func lookupOnce(ctx context.Context, resolver *lookup.Resolver, cfg config.Config, printer *message.Printer) error {
	res := resolver.Resolve(ctx, cfg.Player)
	if res.Failed() {
		return fmt.Errorf("%s: %s", printer.Sprintf(i18n.MsgLookupFailed), i18n.ErrorMessage(printer, res.Code()))
	}

	if cfg.Output != "" {
		svg, err := render.RenderSVG(*res.Stats, printer)
		if err != nil {
			return fmt.Errorf("failed to render SVG: %w", err)
		}
		if err := os.WriteFile(cfg.Output, svg, 0o644); err != nil {
			return fmt.Errorf("failed to write SVG to %s: %w", cfg.Output, err)
		}
		fmt.Printf("rustkit: generated %s for %q (steam id %s)\n", cfg.Output, cfg.Player, res.Stats.SteamID)
		if !cfg.JSON {
			return nil
		}
	}

	if cfg.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printStats(res, printer)
	return nil
}

func printStats(res lookup.Result, printer *message.Printer) {
	stats := res.Stats
	name := stats.Profile.Name
	if name == "" {
		name = string(stats.SteamID)
	}
	fmt.Printf("%s (%s)\n", name, stats.SteamID)
	fmt.Println(printer.Sprintf(i18n.MsgHoursPlayed, stats.PlaytimeHours))
	for _, g := range stats.Groups {
		fmt.Printf("\n%s\n", i18n.Label(printer, g.Title))
		for _, e := range g.Entries {
			fmt.Printf("  %-24s %s\n", i18n.Label(printer, e.Label), i18n.FormatMetric(printer, e.Value))
		}
	}
}
