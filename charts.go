package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1).
			MarginBottom(1)

	productiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4C91AF")).
			Bold(true)

	unproductiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F35F98")).
				Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Fixed category colors; anything outside the enum falls back to gray.
var categoryColors = map[Category]lipgloss.Color{
	CategoryProductive:   "#4C91AF",
	CategoryUnproductive: "#F35F98",
}

const fallbackCategoryColor = lipgloss.Color("#808080")

var activityPalette = []lipgloss.Color{
	"#7D56F4", "#04B575", "#F7DC6F", "#FF6B6B",
	"#4A90E2", "#50E3C2", "#FFA500", "#F35F98",
}

func categoryColor(label string) lipgloss.Color {
	if c, ok := categoryColors[Category(label)]; ok {
		return c
	}
	return fallbackCategoryColor
}

func renderActivityChart(slices []SliceTotal, width int) string {
	colors := make([]lipgloss.Color, len(slices))
	for i := range slices {
		colors[i] = activityPalette[i%len(activityPalette)]
	}
	return renderBreakdown("⏱  TIME BY ACTIVITY", slices, colors, width)
}

func renderCategoryChart(slices []SliceTotal, width int) string {
	colors := make([]lipgloss.Color, len(slices))
	for i, sl := range slices {
		colors[i] = categoryColor(sl.Label)
	}
	return renderBreakdown("📊 PRODUCTIVE VS UNPRODUCTIVE", slices, colors, width)
}

// renderBreakdown draws one proportional bar per slice, widths scaled to
// the slice's share of the total.
func renderBreakdown(title string, slices []SliceTotal, colors []lipgloss.Color, width int) string {
	var total float64
	for _, sl := range slices {
		total += sl.Hours
	}

	labelWidth := 0
	for _, sl := range slices {
		if n := lipgloss.Width(sl.Label); n > labelWidth {
			labelWidth = n
		}
	}
	barWidth := width - labelWidth - 22
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i, sl := range slices {
		var share float64
		if total > 0 {
			share = sl.Hours / total
		}
		filled := int(share*float64(barWidth) + 0.5)
		if filled < 1 {
			filled = 1
		}
		if filled > barWidth {
			filled = barWidth
		}
		bar := lipgloss.NewStyle().Foreground(colors[i]).Render(strings.Repeat("█", filled)) +
			strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(&b, "%-*s %s %.1fh (%.1f%%)\n", labelWidth, sl.Label, bar, sl.Hours, share*100)
	}
	return boxStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func createProgressBar(percentage int, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}
	filled := (percentage * width) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Render(bar)
}

func formatGoalProgress(productive, goal float64) string {
	if goal <= 0 {
		return ""
	}
	return fmt.Sprintf("%d%% of %.1fh", int(productive/goal*100), goal)
}
