package cmd

import (
	"github.com/rahulnair/lingua/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "AI language-learning coach in the terminal",
	Long:  "Lingua — AI-native terminal app that turns a learning goal into a scenario-based course with drills, roleplay, and exams.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUA_DB env var)")
	rootCmd.Flags().String("lang", "en", "UI language: en or zh")
	rootCmd.Flags().String("locale", "en-US", "BCP 47 locale for speech capture")
	rootCmd.Flags().Bool("demo", false, "Use a scripted speech recognizer instead of a microphone")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGUA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
