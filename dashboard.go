package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardModel struct {
	store  *Store
	table  []ActivityRecord
	goal   float64
	width  int
	height int
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second*30, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m dashboardModel) Init() tea.Cmd {
	return tickCmd()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		// Reload so records added from another session show up
		if table, err := m.store.Load(); err == nil {
			m.table = table
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	now := time.Now()
	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("🕐 Daily Reflection - %s", now.Format("Jan 2, 2006 15:04:05")),
	)
	footer := footerStyle.
		Width(m.width).
		Render("Press 'q' or Ctrl+C to quit • Updates every 30 seconds")

	sum := Summarize(m.table, now)
	if sum == nil {
		empty := boxStyle.Width(m.width - 4).Render("No activities recorded today.\n\nAdd one from the menu and come back.")
		return lipgloss.JoinVertical(lipgloss.Left, header, empty, footer)
	}

	leftColWidth := m.width/2 - 3
	rightColWidth := m.width/2 - 3

	productive := productiveHours(sum)
	summaryBox := boxStyle.Width(leftColWidth).Render(fmt.Sprintf(
		"📋 TODAY'S SUMMARY\n\n"+
			"%s Productive: %.1fh\n"+
			"%s Unproductive: %.1fh\n"+
			"Total: %s (%d activities)\n"+
			"Longest: %s (%.1fh)",
		productiveStyle.Render("●"), productive,
		unproductiveStyle.Render("●"), sum.TotalHours-productive,
		progressStyle.Render(fmt.Sprintf("%.1f hours", sum.TotalHours)),
		sum.RecordCount,
		sum.TopActivity.Activity, sum.TopActivity.Hours,
	))

	leftColumn := summaryBox
	if m.goal > 0 {
		goalPct := int(productive / m.goal * 100)
		progressBarWidth := leftColWidth - 10
		if progressBarWidth < 20 {
			progressBarWidth = 20
		}
		goalBox := boxStyle.Width(leftColWidth).Render(fmt.Sprintf(
			"🎯 PRODUCTIVE GOAL\n\n%s %d%%\n%s",
			createProgressBar(goalPct, progressBarWidth),
			goalPct,
			progressStyle.Render(formatGoalProgress(productive, m.goal)),
		))
		leftColumn = lipgloss.JoinVertical(lipgloss.Left, summaryBox, goalBox)
	}

	rightColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		renderActivityChart(sum.ByActivity, rightColWidth),
		renderCategoryChart(sum.ByCategory, rightColWidth),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
