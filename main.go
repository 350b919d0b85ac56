package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRootCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segclock",
		Short: "Seven-segment terminal clock with ghost segments",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			closer := setupLog(cfg)
			defer closer.Close()

			if cfg.Plain || !isTerminal(os.Stdout) {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				log.Printf("plain output, flags=%+v", cfg.displayFlags())
				return runPlain(ctx, cmd.OutOrStdout(), cfg.displayFlags(), time.Second, clockwork.NewRealClock())
			}

			m := initialModel(cfg, clockwork.NewRealClock())

			// size to the real terminal BEFORE starting Bubble Tea
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
				m.resize(w, h)
			} else {
				m.resize(80, 24)
			}

			log.Printf("starting tui, scale=%d tint=%s", m.scale, m.tint)
			prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := prog.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg.Is24Hour, "24h", cfg.Is24Hour, "24-hour time")
	cmd.Flags().BoolVar(&cfg.ShowDayMonth, "date", cfg.ShowDayMonth, "show the weekday, month and day")
	cmd.Flags().BoolVar(&cfg.DarkMode, "dark", cfg.DarkMode, "white on black")
	cmd.Flags().IntVar(&cfg.Scale, "scale", cfg.Scale, fmt.Sprintf("digit size (%d-%d)", minScale, maxScale))
	cmd.Flags().StringVar(&cfg.Tint, "tint", cfg.Tint, "display tint: off, green, amber, white")
	cmd.Flags().BoolVar(&cfg.Scanlines, "scanlines", cfg.Scanlines, "enable CRT-like scanlines")
	cmd.Flags().BoolVar(&cfg.Plain, "plain", cfg.Plain, "print one line per second instead of the full-screen clock")
	cmd.Flags().StringVar(&cfg.Log, "log", cfg.Log, "log file (rotated); empty disables logging")
	return cmd
}

func main() {
	cfg, err := LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
