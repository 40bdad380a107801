package cmd

import (
	"github.com/aaraujo/ssbctl/pkg/ssb"
	"github.com/charmbracelet/lipgloss"
)

func jobStateLine(info ssb.JobStateInfo) string {
	switch info.State {
	case ssb.JobStateRunning:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleRunning.Render("▶︎"), " ",
			styleHighlight.Render(info.JobName), " (",
			styleRunning.Render(string(info.State)), "; job_id=",
			styleHighlight.Render(info.JobID), ")",
		)
	case ssb.JobStateStopped:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleStopped.Render("◼︎"), " ",
			styleHighlight.Render(info.JobName), " (",
			styleStopped.Render(string(info.State)), "; job_id=",
			styleHighlight.Render(info.JobID), ")",
		)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleFailed.Render("◼︎"), " ",
			styleHighlight.Render(info.JobName), " (",
			styleFailed.Render(string(info.State)), "; job_id=",
			styleHighlight.Render(info.JobID), ")",
		)
	}
}
