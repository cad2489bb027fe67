package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

// Semantic aliases.
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// bucketColors tints each age group column heading.
var bucketColors = [4]lipgloss.Color{colorTeal, colorGreen, colorPeach, colorPink}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	footerStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
	statusStyle  = lipgloss.NewStyle().Foreground(colorInfo)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(colorWarning).Italic(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)
	dropStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	columnStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	targetStyle  = columnStyle.BorderForeground(colorSuccess)
	focusedStyle = columnStyle.BorderForeground(colorFocus)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorSurface0).Padding(0, 1)
	selectedCard = cardStyle.BorderForeground(colorFocus)
	draggedCard  = cardStyle.BorderForeground(colorWarning).Faint(true)
	modalStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
)
