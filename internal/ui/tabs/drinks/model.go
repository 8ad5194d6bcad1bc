// Package drinks provides the drink and category aggregation tab.
package drinks

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m-renshaw/pourwatch-tui/internal/app"
	"github.com/m-renshaw/pourwatch-tui/internal/models"
	"github.com/m-renshaw/pourwatch-tui/internal/services"
	"github.com/m-renshaw/pourwatch-tui/internal/ui/styles"
)

// viewMode selects which aggregation the table shows.
type viewMode int

const (
	modeDrinks viewMode = iota
	modeCategories
)

// keyMap defines the key bindings specific to the drinks tab.
type keyMap struct {
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle drinks/categories"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// Model represents the drinks tab state.
type Model struct {
	state    *app.State
	services *services.Manager
	width    int
	height   int
	keys     keyMap
	table    table.Model
	mode     viewMode

	report *models.Report
}

// New creates a new drinks model.
func New(state *app.State, svc *services.Manager) *Model {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgLight).
		Bold(true)
	t.SetStyles(s)

	m := &Model{
		state:    state,
		services: svc,
		keys:     defaultKeyMap(),
		table:    t,
	}
	m.rebuildTable()
	return m
}

// Init initializes the drinks tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the drinks tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case app.ReportLoadedMsg:
		m.report = msg.Report
		m.rebuildTable()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Toggle) {
			if m.mode == modeDrinks {
				m.mode = modeCategories
			} else {
				m.mode = modeDrinks
			}
			m.rebuildTable()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// rebuildTable repopulates columns and rows for the current mode.
func (m *Model) rebuildTable() {
	if m.mode == modeCategories {
		m.table.SetColumns([]table.Column{
			{Title: "Category", Width: 18},
			{Title: "Count", Width: 6},
			{Title: "Share", Width: 6},
			{Title: "Volume cl", Width: 10},
			{Title: "Alcohol g", Width: 10},
			{Title: "Favorite", Width: 18},
		})
		var rows []table.Row
		if m.report != nil {
			for _, c := range m.report.Categories.Categories {
				rows = append(rows, table.Row{
					c.Name,
					fmt.Sprintf("%d", c.Count),
					fmt.Sprintf("%d%%", c.Percentage),
					fmt.Sprintf("%.1f", c.TotalVolumeCL),
					fmt.Sprintf("%.1f", c.TotalEthanolGrams),
					c.FavoriteDrink,
				})
			}
		}
		m.table.SetRows(rows)
		return
	}

	m.table.SetColumns([]table.Column{
		{Title: "Drink", Width: 22},
		{Title: "Category", Width: 14},
		{Title: "Count", Width: 6},
		{Title: "Share", Width: 6},
		{Title: "Alcohol g", Width: 10},
		{Title: "Regularity", Width: 10},
	})
	var rows []table.Row
	if m.report != nil {
		for _, d := range m.report.Drinks.Drinks {
			rows = append(rows, table.Row{
				d.Name,
				d.Category,
				fmt.Sprintf("%d", d.Count),
				fmt.Sprintf("%d%%", d.Percentage),
				fmt.Sprintf("%.1f", d.TotalEthanolGrams),
				fmt.Sprintf("%.0f", d.Regularity),
			})
		}
	}
	m.table.SetRows(rows)
}

// SetSize sets the available size for the drinks tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-10, 5))
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Toggle, m.keys.Up, m.keys.Down}
}
