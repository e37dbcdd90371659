package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seonho/tutorkit/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM API calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM API calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		// Over-fetch when filtering so the purpose filter still yields
		// up to limit rows.
		fetch := limit
		if purpose != "" {
			fetch = limit * 10
		}
		events, err := s.Events().ListLLMRequests(context.Background(), fetch)
		if err != nil {
			return fmt.Errorf("list llm events: %w", err)
		}
		if purpose != "" {
			filtered := events[:0]
			for _, ev := range events {
				if ev.Purpose == purpose {
					filtered = append(filtered, ev)
				}
			}
			events = filtered
			if len(events) > limit {
				events = events[:limit]
			}
		}
		if len(events) == 0 {
			fmt.Println("No LLM calls recorded yet.")
			return nil
		}

		fmt.Printf("%-6s  %-16s  %-20s  %-24s  %6s  %6s  %7s  %s\n",
			"Seq", "Time", "Purpose", "Model", "In", "Out", "Ms", "Status")
		fmt.Println(strings.Repeat("─", 104))
		for _, ev := range events {
			status := "ok"
			if !ev.Success {
				status = "error: " + ev.ErrorMessage
			}
			fmt.Printf("%-6d  %-16s  %-20s  %-24s  %6d  %6d  %7d  %s\n",
				ev.Sequence,
				ev.Timestamp.Local().Format("01-02 15:04:05"),
				ev.Purpose,
				ev.Model,
				ev.InputTokens,
				ev.OutputTokens,
				ev.LatencyMs,
				status)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show calls with this purpose (e.g. tutor-turn)")
	llmCmd.AddCommand(llmListCmd)
}
