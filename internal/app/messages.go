package app

import (
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
	"github.com/m-renshaw/pourwatch-tui/internal/services"
)

// TickMsg is sent periodically to trigger state housekeeping.
type TickMsg struct {
	Time time.Time
}

// ReportLoadedMsg carries a freshly computed analysis report.
type ReportLoadedMsg struct {
	Report *models.Report
}

// StatsLoadedMsg carries an updated log summary.
type StatsLoadedMsg struct {
	Stats services.StatsEvent
}

// RefreshMsg requests a recomputation of the report.
type RefreshMsg struct{}

// PeriodChangedMsg signals that the analysis period changed.
type PeriodChangedMsg struct {
	Period models.PeriodType
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
