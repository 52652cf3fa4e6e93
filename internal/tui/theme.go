package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// confettiColors cycles through the celebration burst.
var confettiColors = []lipgloss.Color{colorPink, colorMauve, colorPeach, colorYellow, colorGreen, colorSky, colorBlue}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 3)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	flameStyle  = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	candleStyle = lipgloss.NewStyle().Foreground(colorRosewater)
	cakeStyle   = lipgloss.NewStyle().Foreground(colorMauve)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)

	cellStyle         = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	cellCursorStyle   = cellStyle.Background(colorSurface1).Foreground(colorFocus).Bold(true)
	cellSelectedStyle = cellStyle.Background(colorBlue).Foreground(colorMantle).Bold(true)
	cellFoundStyle    = cellStyle.Foreground(colorSuccess).Bold(true)
	cellHintStyle     = cellStyle.Background(colorYellow).Foreground(colorMantle).Bold(true)

	indicatorActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	indicatorDoneStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	indicatorLockedStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	focusStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	footerStyle   = lipgloss.NewStyle().Background(colorMantle)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	toastStyle = lipgloss.NewStyle().Background(colorSurface0).Padding(0, 1)
)
