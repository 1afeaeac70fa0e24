package viewer

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	errorColor   = lipgloss.Color("196") // Red

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	// Header row style
	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor)

	// The column the sort cursor points at
	sortCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Underline(true)

	// Row styles
	rowStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	cursorRowStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(accentColor).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(primaryColor)

	// Status bar style
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	// Error line style
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Empty state style
	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2)

	// Disabled pagination control
	disabledControlStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Enabled pagination control
	enabledControlStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)
)
