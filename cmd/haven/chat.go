// ABOUTME: CLI command for the support chat session.
// ABOUTME: Interactive bubbletea TUI by default, one-shot reply with --message.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/haven/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the support companion",
	Long: `Start an interactive chat session with the support companion.

With --message, print a single reply and exit.`,
	RunE: runChat,
}

var chatMessage string

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send one message and print the reply")
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatMessage != "" {
		reply, err := globalApp.ChatReply(chatMessage)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	model := tui.NewChatModel(globalApp.ChatReply, globalConfig.ReplyDelay())
	_, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
