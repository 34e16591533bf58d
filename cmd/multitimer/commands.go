package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/export"
	"github.com/akyairhashvil/multitimer/internal/models"
	"github.com/akyairhashvil/multitimer/internal/timers"
	"github.com/akyairhashvil/multitimer/internal/tui"
	"github.com/akyairhashvil/multitimer/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errNoTerminal = errors.New("the interactive UI needs a terminal; see --help for subcommands")

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Run several named countdown timers",
		Long:          `multitimer keeps named, categorized countdown timers and a history of the ones that finished. Without a subcommand it opens the interactive UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ./config.yaml or the user config dir)")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "keep state in memory for this run only")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newResetCmd(opts),
		newHistoryCmd(opts),
		newExportCmd(opts),
		newReportCmd(opts),
		newRunCmd(opts),
	)
	return cmd
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	if !isTerminal(os.Stdout) {
		return errNoTerminal
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logFile, err := util.OpenLogFile(cfg.DataDir, config.LogFileName)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := util.NewLogger(logFile, cfg.LogLevel)

	a, err := openApp(cmd.Context(), cfg, opts.ephemeral, logger)
	if err != nil {
		return err
	}
	defer func() { util.LogError(logger, "close app", a.Close()) }()

	events := a.reg.Subscribe(64)
	model := tui.NewModel(cmd.Context(), a.reg, tui.Options{
		Events:    events,
		ExportDir: cfg.ExportDir,
		Theme:     cfg.Theme,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		halfway  bool
	)
	cmd := &cobra.Command{
		Use:   "add NAME DURATION",
		Short: "Add a paused timer (DURATION in seconds or like 1m30s)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				t, err := a.reg.AddFromInput(ctx, args[0], args[1], category, halfway)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s)\n", t.Name, export.FormatSeconds(t.Duration), models.CategoryLabel(t.Category))
				return nil
			}, timers.WithResumeOnLoad(false))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category to group the timer under")
	cmd.Flags().BoolVar(&halfway, "halfway", false, "flag the timer for a halfway alert")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [QUERY...]",
		Short: "List timers grouped by category",
		Long:  `list prints timers grouped by category. An optional query narrows the output, e.g. "cat:kitchen status:running tea".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := util.ParseSearchQuery(strings.Join(args, " "))
			return withApp(cmd, opts, func(_ context.Context, a *app) error {
				printGroups(cmd.OutOrStdout(), models.GroupByCategory(filterTimers(a.reg.Timers(), query)))
				return nil
			}, timers.WithResumeOnLoad(false))
		},
	}
}

func filterTimers(all []models.Timer, q util.SearchQuery) []models.Timer {
	if q.Empty() {
		return all
	}
	var out []models.Timer
	for _, t := range all {
		if q.Match(t.Name, models.CategoryLabel(t.Category), string(t.Status)) {
			out = append(out, t)
		}
	}
	return out
}

func printGroups(w io.Writer, groups []models.CategoryGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No timers.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", models.CategoryLabel(g.Category))
		for _, t := range g.Timers {
			fmt.Fprintf(w, "  %-*s %8s / %-8s %s\n", config.MaxNameWidth, t.Name,
				export.FormatSeconds(t.RemainingTime), export.FormatSeconds(t.Duration), t.Status)
		}
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset NAME",
		Short: "Reset a timer to its full duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				if !a.reg.Reset(ctx, args[0]) {
					return fmt.Errorf("timer %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", args[0])
				return nil
			}, timers.WithResumeOnLoad(false))
		},
	}
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show completed timers, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(_ context.Context, a *app) error {
				history := a.reg.History()
				w := cmd.OutOrStdout()
				if len(history) == 0 {
					fmt.Fprintln(w, "No completed timers.")
					return nil
				}
				for _, h := range history {
					fmt.Fprintf(w, "[%s] %s\n", h.CompletedAt, h.Name)
				}
				return nil
			}, timers.WithResumeOnLoad(false))
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the completion history to timer_history.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(_ context.Context, a *app) error {
				dir := out
				if dir == "" {
					dir = a.cfg.ExportDir
				}
				path, err := export.WriteHistory(dir, a.reg.History(), f)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}, timers.WithResumeOnLoad(false))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "destination directory (default export_dir)")
	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF summary of timers and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(_ context.Context, a *app) error {
				dir := out
				if dir == "" {
					dir = a.cfg.ExportDir
				}
				path, err := export.WriteReport(dir, a.reg.Timers(), a.reg.History(), timers.SystemClock.Now())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}, timers.WithResumeOnLoad(false))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "destination directory (default export_dir)")
	return cmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run NAME",
		Short: "Count one timer down in the foreground until it completes",
		Long:  `run starts NAME and shows its countdown. Interrupting pauses the timer and keeps the remaining time.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				return countdown(ctx, a.reg, args[0], cmd.OutOrStdout())
			})
		},
	}
}

// countdown starts name and renders every change until it completes or ctx
// ends, in which case the timer is paused.
func countdown(ctx context.Context, reg *timers.Registry, name string, w io.Writer) error {
	t, ok := reg.Get(name)
	if !ok {
		return fmt.Errorf("timer %q not found", name)
	}
	if t.Status == models.StatusCompleted {
		fmt.Fprintf(w, "%s already completed; reset it first\n", name)
		return nil
	}

	events := reg.Subscribe(16)
	defer reg.Unsubscribe(events)
	reg.Start(ctx, name)

	tty := isTerminal(w)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(config.ProgressWidth))
	render := func(t models.Timer) {
		if tty {
			fmt.Fprintf(w, "\r%s %s %s ", t.Name, bar.ViewAs(t.Progress()), export.FormatSeconds(t.RemainingTime))
			return
		}
		fmt.Fprintf(w, "%s %s\n", t.Name, export.FormatSeconds(t.RemainingTime))
	}
	render(t)
	last := t.RemainingTime

	for {
		select {
		case <-ctx.Done():
			reg.Pause(context.Background(), name)
			t, _ = reg.Get(name)
			if tty {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "Paused %s at %s\n", name, export.FormatSeconds(t.RemainingTime))
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			// events may be dropped, so the timer state decides
			t, _ = reg.Get(name)
			if t.Status != models.StatusCompleted {
				if t.RemainingTime != last {
					render(t)
					last = t.RemainingTime
				}
				continue
			}
			if tty {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s completed!\n", name)
			return nil
		}
	}
}
