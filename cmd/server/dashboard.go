package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexboard/internal/tui"
)

var dashboardLogFile string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse the snapshot in the terminal",
	Long:  `Open the interactive terminal dashboard over the local snapshot.`,
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardLogFile, "log-file", "", "Write logs here while the dashboard owns the terminal")
}

func runDashboard(_ *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The dashboard owns the terminal; logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if dashboardLogFile != "" {
		f, err := os.OpenFile(dashboardLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	slog.SetDefault(cfg.Log.Logger(logOut))

	svc, _, err := newDashboard(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	p := tea.NewProgram(tui.New(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return nil
}
