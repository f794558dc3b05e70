// Package terminal implementa los colaboradores de UI para la CLI: diálogos modales
// (bubbletea), notificaciones y tablas (lipgloss).
package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#5f9fb0")
	colorMuted   = lipgloss.Color("#6c757d")
	colorSuccess = lipgloss.Color("#2e9e5b")
	colorError   = lipgloss.Color("#d16d7a")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	styleButton       = lipgloss.NewStyle().Padding(0, 1)
	styleButtonActive = styleButton.Bold(true).Reverse(true)

	styleCursor   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleSelected = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
)
