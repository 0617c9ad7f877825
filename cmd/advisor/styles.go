package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// Style definitions.
var (
	// TitleStyle for section headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// LabelStyle for field names.
	LabelStyle = lipgloss.NewStyle().Faint(true)

	// BuyStyle for bullish signals.
	BuyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

	// SellStyle for bearish signals.
	SellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	// HoldStyle for neutral signals.
	HoldStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// FormatSignal renders a signal with its direction color.
func FormatSignal(signal types.SignalType) string {
	switch signal {
	case types.SignalTypeStrongBuy, types.SignalTypeBuy:
		return BuyStyle.Render(string(signal))
	case types.SignalTypeSell, types.SignalTypeStrongSell:
		return SellStyle.Render(string(signal))
	default:
		return HoldStyle.Render(string(signal))
	}
}

// FormatDrawdown renders a drawdown ratio as a percentage, colored red
// once it reaches correction depth.
func FormatDrawdown(drawdown float64) string {
	text := fmt.Sprintf("%.1f%%", drawdown*100)
	if drawdown <= -0.10 {
		return SellStyle.Render(text)
	}
	return text
}
