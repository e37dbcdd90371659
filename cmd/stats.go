package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent tutoring sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.Sessions().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		subjStore := subjects.NewStore(nil, nil)

		fmt.Printf("%-36s  %-10s  %-16s  %-6s  %s\n",
			"Session", "Subject", "Student", "Turns", "Last Active")
		fmt.Println(strings.Repeat("─", 88))
		for _, sess := range sessions {
			name := sess.StudentName
			if name == "" {
				name = "-"
			}
			fmt.Printf("%-36s  %-10s  %-16s  %-6d  %s\n",
				sess.ID,
				subjStore.DisplayName(sess.Subject),
				name,
				sess.MessageCount,
				sess.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
