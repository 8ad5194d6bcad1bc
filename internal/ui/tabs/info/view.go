package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/m-renshaw/pourwatch-tui/internal/ui/styles"
	"github.com/m-renshaw/pourwatch-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderConfigCard(),
		m.renderLogCard(),
		m.renderAboutCard(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and log summary")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"), "")

	if m.config != nil {
		rows = append(rows, m.renderRow("Database", m.config.DatabasePath))
		rows = append(rows, m.renderRow("Refresh interval", m.config.RefreshInterval.String()))
		rows = append(rows, m.renderRow("Week starts on", m.config.WeekStart.String()))
		rows = append(rows, m.renderRow("Default period", m.config.DefaultPeriod.String()))
		rows = append(rows, m.renderRow("BAC alert", fmt.Sprintf("%.2f g/L", m.config.BACAlertGPerL)))
		rows = append(rows, m.renderRow("Result limit", fmt.Sprintf("%d", m.config.ResultLimit)))

		if m.config.ProfileWeightKg > 0 && m.config.ProfileGender != "" {
			rows = append(rows, m.renderRow("Profile", fmt.Sprintf("%.0f kg, %s", m.config.ProfileWeightKg, m.config.ProfileGender)))
		} else {
			rows = append(rows, m.renderRow("Profile", "not configured"))
		}
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderLogCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Intake Log"), "")

	stats := m.state.Stats()
	if stats == nil {
		rows = append(rows, styles.HelpStyle.Render("No log summary yet"))
	} else {
		rows = append(rows, m.renderRow("Events", fmt.Sprintf("%d", stats.EventCount)))
		rows = append(rows, m.renderRow("Categories", fmt.Sprintf("%d", stats.CategoryCount)))
		if stats.FirstDate != "" {
			rows = append(rows, m.renderRow("First entry", stats.FirstDate))
			rows = append(rows, m.renderRow("Last entry", stats.LastDate))
		}
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About"), "")
	rows = append(rows, m.renderRow("Version", version.Info()))
	rows = append(rows, m.renderRow("Runtime", fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)))
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("BAC estimates use the Widmark formula and are"))
	rows = append(rows, styles.HelpStyle.Render("indicative only. Never use them to judge fitness"))
	rows = append(rows, styles.HelpStyle.Render("to drive."))
	rows = append(rows, "")

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	return fmt.Sprintf("  %-18s %s", label, styles.ValueStyle.Render(value))
}
