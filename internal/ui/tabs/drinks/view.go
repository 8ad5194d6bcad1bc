package drinks

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/m-renshaw/pourwatch-tui/internal/ui/styles"
)

// View renders the drinks tab.
func (m *Model) View() string {
	if m.report == nil {
		return styles.DocStyle.
			Width(m.width).
			Height(m.height).
			Render(styles.HelpStyle.Render("Computing report..."))
	}
	if !m.report.HasData() {
		content := lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Drinks"),
			"",
			styles.HelpStyle.Render("No intake events in the selected period."),
		)
		return styles.DocStyle.
			Width(m.width).
			Height(m.height).
			Render(content)
	}

	sections := []string{
		m.renderHeader(),
		m.table.View(),
		"",
		m.renderFooter(),
	}

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderHeader() string {
	label := "Drinks"
	if m.mode == modeCategories {
		label = "Categories"
	}
	title := styles.TitleStyle.Render(label)
	hint := styles.HelpStyle.Render("[t] toggle drinks/categories")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", hint), "")
}

func (m *Model) renderFooter() string {
	cats := m.report.Categories

	var spread string
	switch {
	case cats.Concentrated:
		spread = "concentrated on " + cats.TopCategory
	case cats.Balanced:
		spread = "balanced across categories"
	default:
		spread = "leaning towards " + cats.TopCategory
	}

	lines := []string{
		fmt.Sprintf("Favorite: %s", styles.ValueStyle.Render(m.report.Drinks.Favorite)),
		styles.HelpStyle.Render(fmt.Sprintf("%d events, %s", cats.TotalEvents, spread)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
