package cmd

import (
	"github.com/akoirala/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Adaptive learning-path engine",
	Long:  "Pathwise drives a channelized learning path: it grades project submissions across idea, interface and code, and moves each student between difficulty channels based on mastery, frustration and retries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
