package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-scores/internal/app"
	"github.com/riskibarqy/football-scores/internal/config"
	"github.com/riskibarqy/football-scores/internal/interfaces/cli"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	var (
		leagueName = flag.String("league", "", "league name, slug or alias; empty shows every league")
		day        = flag.String("day", "today", "today, yesterday or tomorrow")
		offset     = flag.Int("offset", 0, "date offset in days; overrides -day when non-zero")
		table      = flag.Bool("table", false, "show league tables instead of matches")
		watch      = flag.Bool("watch", false, "refresh until interrupted")
		interval   = flag.Duration("interval", 0, "refresh interval for -watch (default SCORES_REFRESH_INTERVAL)")
		list       = flag.Bool("list", false, "list tracked leagues and exit")
		noColor    = flag.Bool("no-color", false, "disable ANSI colors")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	logger := logging.NewConsole(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	dateOffset, err := cli.ParseDay(*day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if *offset != 0 {
		dateOffset = *offset
	}

	scores := app.NewScoresService(cfg, logger, nil)
	if *list {
		for _, l := range scores.Registry().Leagues() {
			fmt.Printf("%-18s %s\n", l.Name, l.Slug)
		}
		return 0
	}

	renderer := cli.NewRenderer(os.Stdout, cli.RendererConfig{
		Color:    !*noColor && isTerminal(os.Stdout),
		Location: cfg.ScoresLocation,
	})
	runner := cli.NewApp(scores, renderer, logger)
	opts := cli.Options{League: *leagueName, DateOffset: dateOffset, Table: *table}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watch {
		refresh := cfg.ScoresRefreshInterval
		if *interval > 0 {
			refresh = *interval
		}
		if err := runner.Watch(ctx, opts, refresh); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		return 0
	}

	if err := runner.RunOnce(ctx, opts); err != nil {
		return 1
	}
	return 0
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

