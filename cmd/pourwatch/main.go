// Package main is the entry point for the pourwatch TUI. It loads
// configuration, starts the service manager, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m-renshaw/pourwatch-tui/internal/app"
	"github.com/m-renshaw/pourwatch-tui/internal/config"
	"github.com/m-renshaw/pourwatch-tui/internal/logger"
	"github.com/m-renshaw/pourwatch-tui/internal/services"
	"github.com/m-renshaw/pourwatch-tui/internal/ui/tabs/dashboard"
	"github.com/m-renshaw/pourwatch-tui/internal/ui/tabs/drinks"
	"github.com/m-renshaw/pourwatch-tui/internal/ui/tabs/history"
	"github.com/m-renshaw/pourwatch-tui/internal/ui/tabs/info"
	"github.com/m-renshaw/pourwatch-tui/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if os.Getenv("POURWATCH_DEBUG") != "" {
		logger.SetVerbose(true)
	}

	mgr, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := mgr.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(mgr)

	// Each tab reads from the shared state the root model maintains.
	state := model.GetState()
	model.SetTabs([]app.Tab{
		dashboard.New(state, mgr, cfg.BACAlertGPerL),
		history.New(state, mgr),
		drinks.New(state, mgr),
		info.New(state, cfg),
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`pourwatch - alcohol intake log analytics in the terminal

Usage:
  pourwatch [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Dashboard, History, Drinks, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Scroll
  r               Refresh the report
  p               Cycle the analysis period (day/week/month/year)
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  POURWATCH_DB_PATH           SQLite database path
  POURWATCH_REFRESH_INTERVAL  Report refresh interval (default: 1m)
  POURWATCH_WEEK_START        First day of the week (default: Monday)
  POURWATCH_BAC_ALERT         BAC alert threshold in g/L (default: 0.5)
  POURWATCH_RESULT_LIMIT      Max rows in drink tables (default: 10)
  POURWATCH_PERIOD            Default analysis period (default: week)
  PROFILE_WEIGHT_KG           Body weight for BAC estimation
  PROFILE_GENDER              male or female, for BAC and risk limits

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/pourwatch/.env
  - ~/.pourwatch/.env

For more information, visit: https://github.com/m-renshaw/pourwatch-tui`)
}
