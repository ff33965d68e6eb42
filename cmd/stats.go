package cmd

import (
	"fmt"
	"strings"

	"github.com/rahulnair/lingua/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.EventRepo()

		drill, err := repo.DrillStatsByMode(ctx)
		if err != nil {
			return fmt.Errorf("drill stats: %w", err)
		}
		quiz, err := repo.QuizStatsByLevel(ctx)
		if err != nil {
			return fmt.Errorf("quiz stats: %w", err)
		}

		if len(drill) == 0 && len(quiz) == 0 {
			fmt.Println("No practice recorded yet.")
			return nil
		}

		if len(drill) > 0 {
			fmt.Println("Drills")
			fmt.Printf("  %-15s  %8s  %8s  %8s\n", "Mode", "Attempts", "Correct", "Accuracy")
			fmt.Println("  " + strings.Repeat("─", 45))
			for _, d := range drill {
				acc := 0.0
				if d.Attempts > 0 {
					acc = float64(d.Correct) / float64(d.Attempts) * 100
				}
				fmt.Printf("  %-15s  %8d  %8d  %7.1f%%\n", d.Mode, d.Attempts, d.Correct, acc)
			}
			fmt.Println()
		}

		if len(quiz) > 0 {
			fmt.Println("Exams")
			fmt.Printf("  %-38s  %8s  %8s\n", "Level", "Answered", "Correct")
			fmt.Println("  " + strings.Repeat("─", 58))
			for _, q := range quiz {
				id := q.LevelID
				if len(id) > 38 {
					id = id[:35] + "..."
				}
				fmt.Printf("  %-38s  %8d  %8d\n", id, q.Answered, q.Correct)
			}
		}

		return nil
	},
}
