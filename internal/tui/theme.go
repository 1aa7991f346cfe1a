package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Header       lipgloss.Style
	Item         lipgloss.Style
	DoneItem     lipgloss.Style
	Blocked      lipgloss.Style
	Input        lipgloss.Style
	PriorityHigh lipgloss.Style
	Focused      lipgloss.Style
	Dim          lipgloss.Style
	Highlight    lipgloss.Style
	Error        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("63"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Blocked:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		PriorityHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"mono": {
		Name:         "Mono",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("240"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Align(lipgloss.Center),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		DoneItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
		Blocked:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1).Width(50),
		PriorityHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	},
}

func themeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
