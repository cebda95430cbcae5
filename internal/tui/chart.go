// ABOUTME: Terminal rendering of the 7-day mood trend window.
// ABOUTME: One row per day with a level-scaled bar; gaps render as gaps, not midpoints.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/haven/internal/models"
	"github.com/2389-research/haven/internal/trend"
)

var levelColors = map[int]lipgloss.Color{
	models.LevelVerySad:   lipgloss.Color("196"),
	models.LevelSad:       lipgloss.Color("208"),
	models.LevelNeutral:   lipgloss.Color("226"),
	models.LevelHappy:     lipgloss.Color("112"),
	models.LevelVeryHappy: lipgloss.Color("82"),
}

var gapStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderTrend renders the trend window as a horizontal bar chart, oldest
// day first.
func RenderTrend(w trend.Window) string {
	var b strings.Builder
	b.WriteString("Last 7 days\n\n")

	for _, slot := range w {
		b.WriteString(dayLabel(slot.Date))
		b.WriteString("  ")

		if !slot.HasData {
			b.WriteString(gapStyle.Render("· no entry"))
			b.WriteString("\n")
			continue
		}

		bar := strings.Repeat("█", slot.Level*2)
		style := lipgloss.NewStyle().Foreground(levelColors[slot.Level])
		b.WriteString(style.Render(bar))
		b.WriteString(" ")
		b.WriteString(models.MoodLabel(slot.Mood))
		b.WriteString("\n")
	}

	return b.String()
}

// dayLabel formats a record date as a fixed-width weekday + date label.
func dayLabel(date string) string {
	day, err := time.Parse(models.DateFormat, date)
	if err != nil {
		return fmt.Sprintf("%-11s", date)
	}
	return fmt.Sprintf("%-11s", day.Format("Mon Jan 2"))
}
