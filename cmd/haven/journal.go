// ABOUTME: CLI commands for journal operations.
// ABOUTME: Provides write and list subcommands for the journal.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Keep a private journal",
	Long:  "Write and list free-text journal entries.",
}

var journalWriteCmd = &cobra.Command{
	Use:   "write <text>",
	Short: "Write a journal entry",
	Long:  "Write a free-text journal entry for today.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJournalWrite,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent journal entries",
	Long:  "List journal entries, newest first.",
	RunE:  runJournalList,
}

var journalLimit int

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalWriteCmd)
	journalCmd.AddCommand(journalListCmd)

	journalListCmd.Flags().IntVar(&journalLimit, "limit", 10, "Maximum number of entries to show")
}

func runJournalWrite(cmd *cobra.Command, args []string) error {
	record, err := globalApp.SaveJournal(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Journal entry saved for %s.\n", record.Date)
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	records := globalApp.Journal().All()
	if len(records) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	count := 0
	for i := len(records) - 1; i >= 0 && count < journalLimit; i-- {
		r := records[i]
		fmt.Printf("--- %s\n%s\n\n", r.Timestamp.Format("2006-01-02 15:04:05"), r.Content)
		count++
	}
	return nil
}
