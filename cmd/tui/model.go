package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pavel-webdev/file-organizer/app"
	"github.com/pavel-webdev/file-organizer/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	inputStyle = lipgloss.NewStyle().
			Margin(1, 0, 1, 0)
	tableStyle = lipgloss.NewStyle().
			Margin(0, 0, 1, 0)
)

type model struct {
	textInput textinput.Model
	table     table.Model
	catalog   *app.Catalog
	results   []models.OrganizedFile
	err       error
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) search(query string) {
	results, err := m.catalog.ListFiles(app.FileFilter{Query: query, Limit: 500})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.results = results
	m.updateTable()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	var enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "submit/open"),
	)
	var toggleFocus = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle focus"),
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, enter):
			if m.textInput.Focused() {
				m.search(m.textInput.Value())
				m.textInput.Blur()
				m.table.Focus()
				return m, nil
			} else if m.table.Focused() && len(m.results) > 0 {
				selectedIndex := m.table.Cursor()
				if selectedIndex < len(m.results) {
					if err := openFile(m.results[selectedIndex].DestPath); err != nil {
						m.err = err
					}
				}
				return m, nil
			}
		case key.Matches(msg, toggleFocus):
			if m.textInput.Focused() {
				m.textInput.Blur()
				m.table.Focus()
			} else {
				m.table.Blur()
				m.textInput.Focus()
			}
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "ctrl+c"))):
			return m, tea.Quit
		}

		if m.textInput.Focused() {
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if m.table.Focused() {
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		var tiCmd, tCmd tea.Cmd
		m.textInput, tiCmd = m.textInput.Update(msg)
		m.table, tCmd = m.table.Update(msg)
		return m, tea.Batch(tiCmd, tCmd)

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(inputStyle.Render(m.textInput.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\nPress Enter to filter (in input) or open file (in table), Tab to toggle focus, Esc to quit.\n")

	return baseStyle.Render(b.String())
}

func (m *model) updateTable() {
	rows := []table.Row{}
	for _, f := range m.results {
		rows = append(rows, table.Row{f.NewName, f.Category, f.Date, formatSize(f.Size)})
	}
	m.table.SetRows(rows)
}
