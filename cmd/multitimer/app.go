package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/storage"
	"github.com/akyairhashvil/multitimer/internal/timers"
	"github.com/akyairhashvil/multitimer/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	ephemeral  bool
	logLevel   string
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

// app bundles the storage and registry a command works against.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	store   storage.Store
	adapter *storage.Adapter
	reg     *timers.Registry
	closers []func() error
}

func openApp(ctx context.Context, cfg config.Config, ephemeral bool, logger *slog.Logger, extra ...timers.Option) (*app, error) {
	a := &app{cfg: cfg, logger: logger}
	if ephemeral {
		a.store = storage.NewMemoryStore()
	} else {
		s, err := storage.Open(ctx, cfg.DBPath())
		if err != nil {
			return nil, fmt.Errorf("open timer store: %w", err)
		}
		a.store = s
		a.closers = append(a.closers, s.Close)
		logger.Debug("store opened", "path", s.Path())
	}
	a.adapter = storage.NewAdapter(a.store, logger)

	opts := []timers.Option{
		timers.WithPersister(a.adapter),
		timers.WithNotifier(bellNotifier(os.Stderr)),
		timers.WithInterval(cfg.TickInterval),
		timers.WithResumeOnLoad(cfg.ResumeOnLoad),
		timers.WithLogger(logger),
	}
	a.reg = timers.New(timers.NewTickerScheduler(), append(opts, extra...)...)
	a.reg.Restore(a.adapter.Load(ctx))
	return a, nil
}

func (a *app) Close() error {
	a.reg.Close()
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// bellNotifier rings the terminal bell on completion when w is a terminal.
func bellNotifier(w io.Writer) timers.Notifier {
	return timers.NotifierFunc(func(string) {
		if isTerminal(w) {
			fmt.Fprint(w, "\a")
		}
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// withApp loads configuration, opens the app for one command and closes it
// afterwards. Commands log to stderr.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, a *app) error, extra ...timers.Option) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := util.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a, err := openApp(ctx, cfg, opts.ephemeral, logger, extra...)
	if err != nil {
		return err
	}
	defer func() { util.LogError(logger, "close app", a.Close()) }()
	return fn(ctx, a)
}
