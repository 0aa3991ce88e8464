package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/brandkit/internal/model"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// Tab identifies one page of the preview.
type Tab int

const (
	TabColors Tab = iota
	TabTypography
	TabSpacing
	TabShadows
	TabTokens
)

var tabNames = []string{"colors", "typography", "spacing", "shadows", "tokens"}

var titleCaser = cases.Title(language.English)

// Title is the display name of the tab.
func (t Tab) Title() string {
	if int(t) < 0 || int(t) >= len(tabNames) {
		return ""
	}
	return titleCaser.String(tabNames[t])
}

const defaultTableHeight = 15

// tokenFilters is the cycle of the token table filter; "" shows every type.
var tokenFilters = []model.TokenType{
	"",
	model.TokenColor,
	model.TokenTypography,
	model.TokenSpacing,
	model.TokenShadow,
	model.TokenBorder,
}

// Model is the Bubbletea state of the design system preview.
type Model struct {
	system         *model.DesignSystem
	tab            Tab
	tokens         table.Model
	filter         int
	width          int
	quitting       bool
	nonInteractive bool
}

// NewModel builds a preview of ds. nonInteractive renders every tab at once.
func NewModel(ds *model.DesignSystem, nonInteractive bool) Model {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Type", Width: 11},
		{Title: "Category", Width: 12},
		{Title: "Value", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tokenRows(ds, "")),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)

	return Model{
		system:         ds,
		tokens:         t,
		nonInteractive: nonInteractive,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the tab currently displayed.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// TokenFilter is the token type shown in the token table, "" for all.
func (m Model) TokenFilter() model.TokenType {
	return tokenFilters[m.filter]
}

func (m *Model) nextFilter() {
	m.filter = (m.filter + 1) % len(tokenFilters)
	m.tokens.SetRows(tokenRows(m.system, m.TokenFilter()))
	m.tokens.SetCursor(0)
}

func tokenRows(ds *model.DesignSystem, filter model.TokenType) []table.Row {
	if ds == nil {
		return nil
	}

	list := ds.Tokens
	if filter != "" {
		list = tokens.Filter(list, filter)
	}

	rows := make([]table.Row, 0, len(list))
	for _, tok := range list {
		rows = append(rows, table.Row{tok.Name, string(tok.Type), tok.Category, truncate(tok.Value, 40)})
	}
	return rows
}

func (m *Model) nextTab() {
	m.tab = Tab((int(m.tab) + 1) % len(tabNames))
}

func (m *Model) previousTab() {
	m.tab = Tab((int(m.tab) + len(tabNames) - 1) % len(tabNames))
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return strings.TrimSpace(string(runes[:width-1])) + "…"
}
