package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/m-renshaw/pourwatch-tui/internal/ui/components"
	"github.com/m-renshaw/pourwatch-tui/internal/ui/styles"
)

// View renders the dashboard tab.
func (m *Model) View() string {
	if m.report == nil {
		return m.renderLoading()
	}
	if !m.report.HasData() {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(),
		m.renderBACCard(),
		m.renderSummaryCard(),
		m.renderRiskCard(),
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
		styles.TitleStyle.Render("Dashboard"),
		"",
		styles.HelpStyle.Render("No intake events in the selected period."),
		styles.HelpStyle.Render("Log a drink or widen the period with 'p'."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Dashboard")
	sub := styles.HelpStyle.Render(fmt.Sprintf("%s → %s (%s)",
		m.report.Range.Start, m.report.Range.End, m.report.Period))
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, "")
}

func (m *Model) renderBACCard() string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Blood Alcohol Estimate"), "")

	bac := m.report.Health.BAC
	if !bac.Available {
		rows = append(rows,
			styles.HelpStyle.Render("  No estimate: weight and gender are not configured."),
			styles.HelpStyle.Render("  Set PROFILE_WEIGHT_KG and PROFILE_GENDER to enable it."),
		)
	} else {
		gaugeWidth := max(cardWidth-24, 20)
		gauge := components.RenderGauge(bac.GramsPerLiter, m.bacThreshold, gaugeWidth)
		rows = append(rows, "  "+gauge+" g/L")
		if bac.GramsPerLiter >= m.bacThreshold {
			rows = append(rows, "  "+styles.ErrorTextStyle.Render("Above the configured alert level"))
		}
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderSummaryCard() string {
	cardWidth := max(m.width-6, 40)
	t := m.report.Temporal

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Period Summary"), "")

	rows = append(rows, fmt.Sprintf("  Events:         %s",
		styles.ValueStyle.Render(fmt.Sprintf("%d", m.report.Categories.TotalEvents))))
	rows = append(rows, fmt.Sprintf("  Drinking days:  %s of %d",
		styles.ValueStyle.Render(fmt.Sprintf("%d", t.DrinkingDays)), t.PeriodDays))
	rows = append(rows, fmt.Sprintf("  Volume:         %s cl",
		styles.ValueStyle.Render(fmt.Sprintf("%.1f", t.TotalVolumeCL))))
	rows = append(rows, fmt.Sprintf("  Pure alcohol:   %s g",
		styles.ValueStyle.Render(fmt.Sprintf("%.1f", t.TotalGrams))))
	if m.report.Drinks.Favorite != "" {
		rows = append(rows, fmt.Sprintf("  Favorite drink: %s",
			styles.ValueStyle.Render(m.report.Drinks.Favorite)))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRiskCard() string {
	cardWidth := max(m.width-6, 40)
	risk := m.report.Health.Risk

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Guideline Risk"), "")

	if !risk.Configured {
		rows = append(rows, styles.HelpStyle.Render("  No classification: profile is not configured."))
		rows = append(rows, "")
		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	badge := styles.RiskBadge(string(risk.Level)).Render(strings.ToUpper(string(risk.Level)))
	rows = append(rows, fmt.Sprintf("  %s  score %d, weekly avg %.1f g", badge, risk.Score, risk.WeeklyAvgGrams))
	rows = append(rows, "")

	if len(risk.Factors) > 0 {
		rows = append(rows, styles.HelpStyle.Render("  Factors:"))
		for _, f := range risk.Factors {
			rows = append(rows, "   • "+f)
		}
		rows = append(rows, "")
	}

	if len(risk.Recommendations) > 0 {
		rows = append(rows, styles.HelpStyle.Render("  Recommendations:"))
		for _, r := range risk.Recommendations {
			rows = append(rows, "   • "+r)
		}
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
