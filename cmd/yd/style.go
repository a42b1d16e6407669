package main

import "github.com/charmbracelet/lipgloss"

var (
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorWarmup = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"} // amber
	colorKeep   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"} // emerald
)

var (
	styleHeader  = lipgloss.NewStyle().Foreground(colorDim).Bold(true)
	styleCount   = lipgloss.NewStyle().Foreground(colorBright)
	styleWarmup  = lipgloss.NewStyle().Foreground(colorWarmup).Bold(true)
	styleKeep    = lipgloss.NewStyle().Foreground(colorKeep)
	stylePath    = lipgloss.NewStyle().Foreground(colorDim)
	styleSummary = lipgloss.NewStyle().Foreground(colorDim)
)
