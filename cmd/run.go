package cmd

import (
	"fmt"

	"github.com/rahulnair/lingua/internal/app"
	"github.com/rahulnair/lingua/internal/i18n"
	"github.com/rahulnair/lingua/internal/llm"
	"github.com/rahulnair/lingua/internal/speech"
	"github.com/rahulnair/lingua/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\nSet GEMINI_API_KEY (or OPENAI_API_KEY / ANTHROPIC_API_KEY) and retry", err)
	}

	if demo, _ := cmd.Flags().GetBool("demo"); demo {
		speech.Register(&speech.Scripted{
			Updates: []string{"where is", "where is the gate", "where is the boarding gate"},
		})
	}

	lang, _ := cmd.Flags().GetString("lang")
	locale, _ := cmd.Flags().GetString("locale")

	return app.Run(app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		MediaRepo:    st.MediaRepo(),
		Provider:     provider,
		Lang:         i18n.Lang(lang),
		Locale:       locale,
	})
}
