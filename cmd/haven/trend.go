// ABOUTME: CLI command for the 7-day mood trend chart.
// ABOUTME: Derives the rolling window and renders it with lipgloss.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/haven/internal/tui"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show your 7-day mood trend",
	Long:  "Show a chart of your mood over the last seven days, ending today.",
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	fmt.Print(tui.RenderTrend(globalApp.MoodTrend()))
	return nil
}
