package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/m-renshaw/pourwatch-tui/internal/ui/components"
	"github.com/m-renshaw/pourwatch-tui/internal/ui/styles"
)

// View renders the history tab.
func (m *Model) View() string {
	if m.report == nil {
		return m.renderLoading()
	}
	if !m.report.HasData() {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(),
		m.renderHourlyPattern(),
		m.renderWeekdayPattern(),
		m.renderSessionCard(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderLoading() string {
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(styles.HelpStyle.Render("Computing report..."))
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("History"),
		"",
		styles.HelpStyle.Render("No intake events in the selected period."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("History")
	sub := styles.HelpStyle.Render(fmt.Sprintf("%s → %s (%s)",
		m.report.Range.Start, m.report.Range.End, m.report.Period))
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, "")
}

func (m *Model) renderHourlyPattern() string {
	cardWidth := max(m.width-6, 40)
	t := m.report.Temporal

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Hourly Pattern"), "")

	hourly := make([]float64, 24)
	total := 0
	for h, c := range t.HourHistogram {
		hourly[h] = float64(c)
		total += c
	}

	if total == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No timed events in this period"))
	} else {
		chartWidth := max(cardWidth-12, 30)
		chart := components.RenderLineChart(hourly, chartWidth, 8, "events per hour of day")
		for _, line := range strings.Split(chart, "\n") {
			rows = append(rows, "  "+line)
		}
		rows = append(rows, "", fmt.Sprintf("  Peak: %s",
			styles.ValueStyle.Render(fmt.Sprintf("%02d:00-%02d:00", t.PeakHour, (t.PeakHour+1)%24))))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderWeekdayPattern() string {
	cardWidth := max(m.width-6, 40)
	t := m.report.Temporal

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Weekday Pattern"), "")

	if len(t.WeekdayHistogram) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No dated events in this period"))
	} else {
		values := make([]float64, len(t.WeekdayHistogram))
		labels := make([]string, len(t.WeekdayHistogram))
		for i, bucket := range t.WeekdayHistogram {
			values[i] = float64(bucket.Count)
			labels[i] = bucket.Day.String()[:3]
		}

		chartWidth := max(cardWidth-12, 30)
		chart := components.RenderBarChart(values, labels, chartWidth)
		for _, line := range strings.Split(chart, "\n") {
			rows = append(rows, "  "+line)
		}

		rows = append(rows, "", fmt.Sprintf("  Peak day: %s",
			styles.ValueStyle.Render(t.PeakWeekday.String())))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderSessionCard() string {
	cardWidth := max(m.width-6, 40)
	t := m.report.Temporal

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Sessions"), "")

	rows = append(rows, fmt.Sprintf("  Sessions:         %s",
		styles.ValueStyle.Render(fmt.Sprintf("%d", t.SessionCount))))
	rows = append(rows, fmt.Sprintf("  Avg duration:     %s h",
		styles.ValueStyle.Render(fmt.Sprintf("%.1f", t.AvgSessionHours))))
	rows = append(rows, fmt.Sprintf("  Avg gap:          %s h",
		styles.ValueStyle.Render(fmt.Sprintf("%.1f", t.AvgGapHours))))
	rows = append(rows, fmt.Sprintf("  Drinking days:    %s of %d",
		styles.ValueStyle.Render(fmt.Sprintf("%d", t.DrinkingDays)), t.PeriodDays))

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
