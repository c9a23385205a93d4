package growthcli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/uyouii/growth-percentiles/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	watchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9800"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true)
)

func bandStyle(band model.Band) lipgloss.Style {
	switch band {
	case model.Normal:
		return normalStyle
	case model.LowNormal, model.HighNormal:
		return watchStyle
	default:
		return alertStyle
	}
}

func renderBand(band model.Band) string {
	return bandStyle(band).Render(band.Label())
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}
