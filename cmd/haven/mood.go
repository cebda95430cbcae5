// ABOUTME: CLI commands for mood tracking.
// ABOUTME: Provides save and list subcommands for daily mood check-ins.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2389-research/haven/internal/models"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Track your daily mood",
	Long:  "Save and list daily mood check-ins.",
}

var moodSaveCmd = &cobra.Command{
	Use:   "save <mood>",
	Short: "Save a mood check-in",
	Long: "Save a mood check-in for today.\n\nValid moods: " +
		strings.Join(models.ValidMoods, ", "),
	Args: cobra.ExactArgs(1),
	RunE: runMoodSave,
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent mood check-ins",
	Long:  "List mood check-ins, newest first.",
	RunE:  runMoodList,
}

var (
	moodNote  string
	moodLimit int
)

func init() {
	rootCmd.AddCommand(moodCmd)
	moodCmd.AddCommand(moodSaveCmd)
	moodCmd.AddCommand(moodListCmd)

	moodSaveCmd.Flags().StringVar(&moodNote, "note", "", "Optional note about today's mood")
	moodListCmd.Flags().IntVar(&moodLimit, "limit", 10, "Maximum number of check-ins to show")
}

func runMoodSave(cmd *cobra.Command, args []string) error {
	record, err := globalApp.SaveMood(args[0], moodNote)
	if err != nil {
		return err
	}

	fmt.Printf("Mood saved: %s (%s)\n", models.MoodLabel(record.Mood), record.Date)
	if record.Note != "" {
		fmt.Printf("Note: %s\n", record.Note)
	}
	return nil
}

func runMoodList(cmd *cobra.Command, args []string) error {
	records := globalApp.Moods().All()
	if len(records) == 0 {
		fmt.Println("No mood check-ins yet.")
		return nil
	}

	count := 0
	for i := len(records) - 1; i >= 0 && count < moodLimit; i-- {
		r := records[i]
		line := fmt.Sprintf("%s  %-10s", r.Date, models.MoodLabel(r.Mood))
		if r.Note != "" {
			line += "  " + r.Note
		}
		fmt.Println(line)
		count++
	}
	return nil
}
