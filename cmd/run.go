package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/app"
	"github.com/seonho/tutorkit/internal/composer"
	"github.com/seonho/tutorkit/internal/llm"
	"github.com/seonho/tutorkit/internal/logging"
	"github.com/seonho/tutorkit/internal/materials"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
	"github.com/seonho/tutorkit/internal/tutor"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	log, err := logging.New(os.Getenv("TUTORKIT_LOG_MODE"))
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	subjStore := subjects.NewStore(nil, log)
	subjStore.PreloadAll()

	opts := app.Options{
		Subjects: subjStore,
		Sessions: st.Sessions(),
		Turns:    st.Conversations(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutoring will be unavailable; history stays browsable.")
	} else {
		opts.LLMReady = true
		opts.Engine = tutor.NewEngine(tutor.Deps{
			Subjects: subjStore,
			Analyzer: analyzer.New(subjStore, analyzer.DefaultThresholds(), log),
			Composer: composer.New(nil, log),
			Selector: materials.NewSelector(provider, log),
			Provider: provider,
			Sessions: st.Sessions(),
			Turns:    st.Conversations(),
			Log:      log,
		})
	}

	return app.Run(opts)
}
