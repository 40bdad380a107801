package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var styleRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B785")).Bold(true)
var styleStopped = lipgloss.NewStyle().Foreground(lipgloss.Color("#e08dff")).Bold(true)
var styleFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("#e1244c")).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
