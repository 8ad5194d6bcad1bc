// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/gen2brain/beeep"

	"github.com/m-renshaw/pourwatch-tui/internal/config"
	"github.com/m-renshaw/pourwatch-tui/internal/db"
	"github.com/m-renshaw/pourwatch-tui/internal/logger"
	"github.com/m-renshaw/pourwatch-tui/internal/models"
	"github.com/m-renshaw/pourwatch-tui/internal/services/analysis"
	"github.com/m-renshaw/pourwatch-tui/internal/services/profile"
)

type (
	// ReportUpdatedEvent is emitted whenever a fresh report is computed.
	ReportUpdatedEvent struct {
		Report *models.Report
	}

	// StatsEvent is emitted when the stored log summary changes.
	StatsEvent struct {
		EventCount    int
		CategoryCount int
		FirstDate     string
		LastDate      string
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ReportUpdatedEvent) isServiceEvent() {}
func (StatsEvent) isServiceEvent()         {}
func (ErrorEvent) isServiceEvent()         {}

// Manager owns the store and the analyzer, recomputes the report on demand,
// on a timer, and when the database file changes underneath us, and fans
// typed events out to TUI subscribers.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	database    *db.DB
	profiles    *profile.Provider
	analyzer    *analysis.Analyzer
	watcher     *fsnotify.Watcher
	stopChan    chan struct{}
	subscribers []chan ServiceEvent

	period  models.PeriodType
	report  *models.Report
	lastBAC float64
}

// NewManager opens the database and starts the background refresh loops.
func NewManager(cfg *config.Config) (*Manager, error) {
	database, err := db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	profiles := profile.New(database, cfg.EnvProfile())

	m := &Manager{
		cfg:      cfg,
		database: database,
		profiles: profiles,
		analyzer: analysis.New(profiles),
		stopChan: make(chan struct{}),
		period:   cfg.DefaultPeriod,
	}

	if watcher, err := fsnotify.NewWatcher(); err != nil {
		logger.Warn("file watching disabled", "error", err)
	} else if err := watcher.Add(filepath.Dir(cfg.DatabasePath)); err != nil {
		logger.Warn("file watching disabled", "error", err)
		_ = watcher.Close()
	} else {
		m.watcher = watcher
	}

	go m.refreshLoop()

	return m, nil
}

// refreshLoop recomputes on the configured interval and on external writes
// to the database file (a phone sync or a sqlite3 shell).
func (m *Manager) refreshLoop() {
	ticker := time.NewTicker(m.cfg.RefreshInterval)
	defer ticker.Stop()

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if m.watcher != nil {
		watchEvents = m.watcher.Events
		watchErrors = m.watcher.Errors
	}

	dbBase := filepath.Base(m.cfg.DatabasePath)
	for {
		select {
		case <-ticker.C:
			m.Refresh()

		case ev, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			if strings.HasPrefix(filepath.Base(ev.Name), dbBase) && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debug("database changed on disk, refreshing", "file", ev.Name)
				m.Refresh()
			}

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			m.broadcast(ErrorEvent{Service: "watcher", Error: err})

		case <-m.stopChan:
			return
		}
	}
}

// Refresh recomputes the report for the current period and broadcasts it.
func (m *Manager) Refresh() {
	ctx := context.Background()

	m.mu.RLock()
	period := m.period
	m.mu.RUnlock()

	dateRange := rangeFor(period, time.Now())
	events, err := m.database.EventsInRange(ctx, dateRange)
	if err != nil {
		m.broadcast(ErrorEvent{Service: "db", Error: err})
		return
	}

	report := m.analyzer.Run(ctx, events, dateRange, analysis.Options{
		Limit:      m.cfg.ResultLimit,
		PeriodType: period,
		WeekStart:  m.cfg.WeekStart,
	})

	m.mu.Lock()
	m.report = &report
	previous := m.lastBAC
	if report.Health.BAC.Available {
		m.lastBAC = report.Health.BAC.GramsPerLiter
	}
	m.mu.Unlock()

	m.checkBACAlert(previous, report.Health.BAC)

	m.broadcast(ReportUpdatedEvent{Report: &report})
	m.broadcastStats(ctx)
}

// checkBACAlert sends a desktop notification when the estimate crosses the
// configured threshold upward. Crossing down or staying above stays quiet.
func (m *Manager) checkBACAlert(previous float64, estimate models.BACEstimate) {
	threshold := m.cfg.BACAlertGPerL
	if threshold <= 0 || !estimate.Available {
		return
	}
	if previous < threshold && estimate.GramsPerLiter >= threshold {
		title := "Blood alcohol estimate"
		body := fmt.Sprintf("Estimated BAC reached %.2f g/L (alert at %.2f)", estimate.GramsPerLiter, threshold)
		if err := beeep.Notify(title, body, ""); err != nil {
			logger.Debug("notification failed", "error", err)
		}
	}
}

func (m *Manager) broadcastStats(ctx context.Context) {
	stats, err := m.database.Stats(ctx)
	if err != nil {
		m.broadcast(ErrorEvent{Service: "db", Error: err})
		return
	}
	m.broadcast(StatsEvent{
		EventCount:    stats.EventCount,
		CategoryCount: stats.CategoryCount,
		FirstDate:     stats.FirstDate,
		LastDate:      stats.LastDate,
	})
}

// rangeFor maps a period type to the concrete calendar window ending today.
func rangeFor(period models.PeriodType, now time.Time) models.DateRange {
	today := now.Format(models.DateLayout)
	switch period {
	case models.PeriodDay:
		return models.DateRange{Start: today, End: today}
	case models.PeriodWeek:
		return models.DateRange{Start: now.AddDate(0, 0, -6).Format(models.DateLayout), End: today}
	case models.PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return models.DateRange{Start: first.Format(models.DateLayout), End: today}
	case models.PeriodYear:
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return models.DateRange{Start: first.Format(models.DateLayout), End: today}
	default:
		return models.DateRange{Start: now.AddDate(0, 0, -29).Format(models.DateLayout), End: today}
	}
}

// SetPeriod switches the analysis window and recomputes.
func (m *Manager) SetPeriod(period models.PeriodType) {
	m.mu.Lock()
	m.period = period
	m.mu.Unlock()
	m.Refresh()
}

// Period returns the current analysis period.
func (m *Manager) Period() models.PeriodType {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.period
}

// Report returns the most recently computed report, which may be nil before
// the first refresh completes.
func (m *Manager) Report() *models.Report {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.report
}

// AddEvent stores a new intake event and recomputes.
func (m *Manager) AddEvent(ctx context.Context, ev models.IntakeEvent) error {
	if err := m.database.InsertEvent(ctx, ev); err != nil {
		return err
	}
	m.Refresh()
	return nil
}

// Profiles exposes the profile provider for the settings UI.
func (m *Manager) Profiles() *profile.Provider {
	return m.profiles
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// broadcast sends an event to all subscribers without blocking.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events and a tea.Cmd
// that waits for the first one.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, WaitForEvent(ch)
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close stops the background loops and releases resources.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	return m.database.Close()
}
