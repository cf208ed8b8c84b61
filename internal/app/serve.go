package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/webtime/internal/api"
	"github.com/blackwell-systems/webtime/internal/focus"
	"github.com/blackwell-systems/webtime/internal/output"
	"github.com/blackwell-systems/webtime/internal/store"
	"github.com/blackwell-systems/webtime/internal/tracker"
	"github.com/blackwell-systems/webtime/internal/watcher"
)

var (
	serveAddr        string
	serveWatchEvery  time.Duration
	serveDailyBudget int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON HTTP API",
	Long: `Start the daemon the browser extension talks to. It records visits,
serves analytics, and runs focus sessions with live expiry. Stops cleanly
on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().DurationVar(&serveWatchEvery, "watch-interval", 5*time.Minute, "How often to check usage for alerts")
	serveCmd.Flags().IntVar(&serveDailyBudget, "daily-budget", 0, "Alert when today's browsing exceeds this many minutes (0 disables)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	controller, err := buildController(db)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%s listening on %s\n", output.StyleBold.Render("webtime"), addr)
	srv := api.NewServer(db, controller, time.Now)

	w := watcher.New(db, serveWatchEvery, func(a watcher.Alert) {
		if err := watcher.Notify(a); err != nil {
			fmt.Printf("warning: delivering alert: %v\n", err)
		}
	})
	w.DailyBudgetMinutes = serveDailyBudget

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.ListenAndServe(ctx, addr) })
	g.Go(func() error {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}

	// Shutting down while a session is in flight leaves it open in the
	// store; the CLI settles it against the scheduled expiry on next use.
	fmt.Println("webtime stopped")
	return nil
}

// buildController assembles the focus controller for the daemon: blocklist
// seeded from the store, terminated sessions written back through onEnd, and
// any session left open by a previous run settled first.
func buildController(db *store.DB) (*focus.Controller, error) {
	if err := settleExpiredSession(db, time.Now()); err != nil {
		return nil, err
	}

	blocked, err := db.ListBlockedWebsites()
	if err != nil {
		return nil, fmt.Errorf("loading blocklist: %w", err)
	}
	domains := make([]string, len(blocked))
	for i, b := range blocked {
		domains[i] = b.Domain
	}

	onEnd := func(s tracker.FocusSession) {
		end := time.Now()
		if s.EndTime != nil {
			end = *s.EndTime
		}
		if _, err := db.CloseActiveFocusSession(end, s.Completed); err != nil {
			fmt.Printf("warning: closing focus session: %v\n", err)
		}
	}

	return focus.NewController(focus.RealClock(), focus.NewBlocklist(domains...), onEnd), nil
}
