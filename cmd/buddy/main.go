package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/woodmeone/Buddy/pkg/config"
	"github.com/woodmeone/Buddy/pkg/feed"
	"github.com/woodmeone/Buddy/pkg/persona"
	"github.com/woodmeone/Buddy/pkg/remote"
	"github.com/woodmeone/Buddy/pkg/repository"
	"github.com/woodmeone/Buddy/pkg/store"
	"github.com/woodmeone/Buddy/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug, !opts.NoColor)
	lgr.Printf("[INFO] starting buddy version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()
	lgr.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if u, perr := url.Parse(cfg.Remote.BaseURL); perr == nil && u.User != nil {
		if pass, ok := u.User.Password(); ok {
			SetupLog(opts.Debug, !opts.NoColor, pass) // credentials in base url are masked in logs
		}
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			lgr.Printf("[WARN] can't close database: %v", cerr)
		}
	}()

	rc := cfg.GetRemoteConfig()
	client := remote.New(remote.Config{BaseURL: rc.BaseURL, Timeout: rc.Timeout, UserAgent: rc.UserAgent})
	personas := store.New(persona.NewSyncer(client), repos.Setting,
		store.Options{LoadRetries: rc.LoadRetries, RetryDelay: rc.RetryDelay})

	// personas are loaded lazily by the api if the remote service is not reachable yet
	if err := personas.Load(ctx); err != nil {
		lgr.Printf("[WARN] personas not loaded on start: %v", err)
	}

	fc := cfg.GetFeedsConfig()
	checker := feed.NewChecker(feed.Options{
		Timeout:       fc.Timeout,
		UserAgent:     fc.UserAgent,
		MaxConcurrent: fc.MaxConcurrent,
		PreviewItems:  fc.PreviewItems,
	})

	srv := server.New(cfg, personas, checker, server.NewLibraryAdapter(client), revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// SetupLog configures lgr, colorized output unless disabled, secrets are masked
func SetupLog(dbg, colored bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if colored {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
