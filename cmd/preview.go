package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/llm"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a generated level for a scenario (no database)",
	Long: `Generate and print a full learning level for a scenario.

This is a stateless developer tool — no database, no progress tracking, no
events. Useful for evaluating generation quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("scenario", "", "Scenario to generate, e.g. \"Ordering coffee\" (required)")
	previewCmd.Flags().Bool("exam", false, "Answer the exam questions interactively")
	_ = previewCmd.MarkFlagRequired("scenario")
}

func runPreview(cmd *cobra.Command, args []string) error {
	scenario, _ := cmd.Flags().GetString("scenario")
	interactive, _ := cmd.Flags().GetBool("exam")

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := level.NewService(provider, level.DefaultConfig())
	fmt.Printf("Generating level for %q...\n\n", scenario)
	data, err := svc.Generate(ctx, scenario)
	if err != nil {
		return fmt.Errorf("generate level: %w", err)
	}

	fmt.Printf("%s — %s\n", data.Topic, data.LevelName)
	fmt.Println(strings.Repeat("═", 60))

	fmt.Printf("\nFlashcards (%d)\n", len(data.Flashcards))
	for i, fc := range data.Flashcards {
		fmt.Printf("  %d. %s\n", i+1, fc.Front)
		if fc.Pronunciation != "" {
			fmt.Printf("     /%s/\n", strings.Trim(fc.Pronunciation, "/"))
		}
		fmt.Printf("     %s\n", fc.Back)
	}

	fmt.Println("\nRoleplay")
	fmt.Printf("  Setting:   %s\n", data.RolePlay.Setting)
	fmt.Printf("  You are:   %s\n", data.RolePlay.UserRole)
	fmt.Printf("  Partner:   %s\n", data.RolePlay.AIRole)
	fmt.Printf("  Objective: %s\n", data.RolePlay.Objective)
	fmt.Printf("  Opening:   %s\n", data.RolePlay.OpeningLine)

	if len(data.Tasks) > 0 {
		fmt.Println("\nStudy plan")
		for _, task := range data.Tasks {
			fmt.Printf("  Day %d: %s — %s (%s)\n", task.Day, task.Focus, task.Task, task.Duration)
		}
	}

	if !interactive {
		fmt.Printf("\nExam (%d questions)\n", len(data.Exam))
		for i, q := range data.Exam {
			fmt.Printf("  %d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				marker := " "
				if j == q.CorrectIndex {
					marker = "*"
				}
				fmt.Printf("    %s %c) %s\n", marker, 'a'+j, opt)
			}
		}
		return nil
	}

	return runPreviewExam(data)
}

// runPreviewExam walks the exam on stdin.
func runPreviewExam(data *level.Data) error {
	scanner := bufio.NewScanner(os.Stdin)
	correct := 0

	for i, q := range data.Exam {
		fmt.Printf("\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Printf("   %d) %s\n", j+1, opt)
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Println("Skipped.")
			continue
		}
		if choice-1 == q.CorrectIndex {
			correct++
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite. Answer: %s\n", q.Options[q.CorrectIndex])
		}
		if q.Explanation != "" {
			fmt.Println(q.Explanation)
		}
	}

	fmt.Printf("\nScore: %d/%d\n", correct, len(data.Exam))
	return nil
}
