package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/composer"
	"github.com/seonho/tutorkit/internal/llm"
	"github.com/seonho/tutorkit/internal/logging"
	"github.com/seonho/tutorkit/internal/materials"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
	"github.com/seonho/tutorkit/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the tutor a single question without the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		sessionID, _ := cmd.Flags().GetString("session")
		message := strings.Join(args, " ")

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

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.Events(), log)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		subjStore := subjects.NewStore(nil, log)
		engine := tutor.NewEngine(tutor.Deps{
			Subjects: subjStore,
			Analyzer: analyzer.New(subjStore, analyzer.DefaultThresholds(), log),
			Composer: composer.New(nil, log),
			Selector: materials.NewSelector(provider, log),
			Provider: provider,
			Sessions: st.Sessions(),
			Turns:    st.Conversations(),
			Log:      log,
		})

		ctx := cmd.Context()
		if sessionID == "" {
			sess, err := engine.StartSession(ctx, subject, "", "")
			if err != nil {
				return fmt.Errorf("start session: %w", err)
			}
			sessionID = sess.ID
			fmt.Fprintf(os.Stderr, "session: %s\n", sessionID)
		}

		reply, err := engine.Respond(ctx, tutor.TurnInput{
			SessionID: sessionID,
			Subject:   subject,
			Message:   message,
		})
		if err != nil {
			return err
		}

		fmt.Println(reply.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("subject", "s", "science", "Subject configuration to use")
	askCmd.Flags().String("session", "", "Continue an existing session by id")
}
