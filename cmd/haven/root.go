// ABOUTME: Root Cobra command and global wiring for the haven CLI.
// ABOUTME: Opens the database and application context in lifecycle hooks.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/haven/internal/app"
	"github.com/2389-research/haven/internal/config"
	"github.com/2389-research/haven/internal/store"
)

var globalConfig *config.Config
var globalGateway store.Gateway
var globalApp *app.App

var rootCmd = &cobra.Command{
	Use:   "haven",
	Short: "A local-first wellness journal",
	Long: `haven is a personal wellness journal for your terminal.

Track your daily mood, keep a private journal, talk things through
with a small support companion, and watch your 7-day mood trend.
Everything stays on your machine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		dbPath, err := cfg.GetDBPath()
		if err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
		gateway, err := store.OpenSQLiteGateway(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		globalGateway = gateway

		application, err := app.Open(gateway)
		if err != nil {
			_ = gateway.Close()
			globalGateway = nil
			return fmt.Errorf("failed to open journal: %w", err)
		}
		globalApp = application

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalGateway != nil {
			_ = globalGateway.Close()
			globalGateway = nil
		}
		globalApp = nil
		return nil
	},
}
