package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F"))
)

func statusBadge(status entity.PaymentStatus) string {
	color := "#2563EB"
	switch {
	case status.IsPaid():
		color = "#16A34A"
	case status.IsFailure():
		color = "#DC2626"
	case status == "":
		status = entity.PaymentStatusPending
	}
	return badgeStyle.Background(lipgloss.Color(color)).Render(string(status))
}
