package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/subjects"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <message>",
	Short: "Classify a student message and print the analysis as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		message := strings.Join(args, " ")

		subjStore := subjects.NewStore(nil, nil)
		a := analyzer.New(subjStore, analyzer.DefaultThresholds(), nil)

		result := a.Analyze(message, subject, nil)

		out := struct {
			Type          string                     `json:"type"`
			Confidence    float64                    `json:"confidence"`
			Context       analyzer.Context           `json:"context"`
			Metacognitive analyzer.MetacognitiveNeeds `json:"metacognitive"`
			Reflective    analyzer.ReflectiveNeeds   `json:"reflective"`
			AnalysisError string                     `json:"analysis_error,omitempty"`
		}{
			Type:          string(result.Type),
			Confidence:    result.Confidence,
			Context:       result.Context,
			Metacognitive: result.Metacognitive,
			Reflective:    result.Reflective,
			AnalysisError: result.AnalysisError,
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List available subject configurations",
	RunE: func(cmd *cobra.Command, args []string) error {
		subjStore := subjects.NewStore(nil, nil)
		for _, id := range subjects.SupportedSubjects() {
			cfg, err := subjStore.Load(id)
			if err != nil {
				fmt.Printf("%-12s  (failed to load: %v)\n", id, err)
				continue
			}
			fmt.Printf("%-12s  %s  (%d response types)\n", id, cfg.Name, len(cfg.Types))
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("subject", "s", "science", "Subject configuration to use")
}
