// ABOUTME: CLI command to seed sample data into empty stores.
// ABOUTME: Fills the last seven days so the trend chart demonstrates itself.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/haven/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample data",
	Long:  "Fill empty mood and journal stores with a week of sample entries.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := globalApp.Seed(); err != nil {
		if errors.Is(err, app.ErrAlreadySeeded) {
			fmt.Println("Stores already contain data; nothing seeded.")
			return nil
		}
		return err
	}

	fmt.Println("Sample data seeded. Try: haven trend")
	return nil
}
