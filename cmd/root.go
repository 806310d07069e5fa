package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studybuddy",
	Short: "AI study buddy for the terminal",
	Long: `StudyBuddy explains any topic in plain language and quizzes you on it.

Type a topic, then ask for a simplified explanation or a five-question
multiple-choice quiz. Answers are graded locally.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYBUDDY_DB env var)")
	rootCmd.PersistentFlags().Bool("no-log", false, "Do not record LLM requests in the database")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYBUDDY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
