package main

import (
	"time"

	"github.com/cristianoliveira/notedeck/cmd"
	"github.com/cristianoliveira/notedeck/internal/auth"
	"github.com/cristianoliveira/notedeck/internal/colors"
	"github.com/cristianoliveira/notedeck/internal/config"
	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/logging"
	"github.com/cristianoliveira/notedeck/internal/settings"
	"github.com/cristianoliveira/notedeck/internal/tui"
	"github.com/cristianoliveira/notedeck/internal/workspace"
	"github.com/spf13/cobra"
)

// runTUI starts the terminal UI. Tests replace it.
var runTUI = tui.Run

// NewTUICmd creates the tui command.
func NewTUICmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewTUICmd: open dependency cannot be nil")
	}
	var archived bool

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		Long: `Open the terminal UI.

USAGE:
    notedeck [tui] [--archived]

Signing in or out from another terminal is picked up while it runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				route := domain.RouteActive
				if archived {
					route = domain.RouteArchived
				}
				opts := []workspace.Option{
					workspace.WithContext(cmd.Context()),
					workspace.WithRoute(route),
					workspace.WithPasswordChanger(a.auth),
					workspace.WithHooks(a.hooks),
					workspace.WithLogger(logging.With("component", "workspace")),
					workspace.WithToastDuration(time.Duration(config.GetInt("toast_seconds", 5)) * time.Second),
				}
				if provider, err := workspace.NewSearchProvider(config.Get("search_provider", "substring")); err == nil {
					opts = append(opts, workspace.WithSearchProvider(provider))
				}
				if prefs, err := settings.OpenDefault(); err == nil {
					opts = append(opts, workspace.WithPreferences(prefs))
				} else {
					colors.Warning("preferences will not be saved:", err.Error())
				}
				ws := workspace.New(a.store, a.auth, opts...)

				tuiOpts := tui.Options{CompactWidth: config.GetInt("compact_width", 100)}
				watcher, events, err := auth.WatchSession(a.auth.SessionPath())
				if err != nil {
					logging.Warn("session watch disabled", "error", err)
				} else {
					defer watcher.Close()
					tuiOpts.SessionEvents = events
				}
				return runTUI(cmd.Context(), ws, tuiOpts)
			})
		},
	}
	tuiCmd.Flags().BoolVar(&archived, "archived", false, "Start on the archived notes")
	return tuiCmd
}

func init() {
	tuiCmd := NewTUICmd(openApp)
	cmd.RootCmd.AddCommand(tuiCmd)
	cmd.RootCmd.RunE = tuiCmd.RunE
	cmd.RootCmd.Flags().AddFlagSet(tuiCmd.Flags())
}
