package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/pavel-webdev/file-organizer/app"
)

func main() {
	targetDir := flag.String("target", "", "Organized directory containing the catalog")
	configPath := flag.String("config", "", "Path to YAML configuration file")
	flag.Parse()

	if *targetDir == "" {
		fmt.Fprintln(os.Stderr, "Error: -target <organized directory> is required")
		os.Exit(1)
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	catalog, err := app.OpenCatalog(filepath.Join(*targetDir, cfg.Organizer.CatalogFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open catalog: %v\n", err)
		os.Exit(1)
	}
	defer catalog.Close()

	fd := os.Stdout.Fd()
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 100 // fallback
	}

	sizeCol := 10
	categoryCol := 12
	dateCol := 12
	nameCol := width - sizeCol - categoryCol - dateCol - 6
	if nameCol < 20 {
		nameCol = 20
	}

	ti := textinput.New()
	ti.Placeholder = "Filter by name (empty shows everything)..."
	ti.Focus()
	ti.Width = 50

	columns := []table.Column{
		{Title: "Name", Width: nameCol},
		{Title: "Category", Width: categoryCol},
		{Title: "Date", Width: dateCol},
		{Title: "Size", Width: sizeCol},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	m := model{
		textInput: ti,
		table:     t,
		catalog:   catalog,
	}
	m.search("")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting program: %v\n", err)
		os.Exit(1)
	}
}
