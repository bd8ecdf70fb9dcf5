// strategist runs the strategy engine offline against a case-facts JSON
// file, without a database or server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/casemark/strategist/internal/engine"
	"github.com/casemark/strategist/internal/practice"
	"github.com/casemark/strategist/pkg/models"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strategist",
		Short: "Litigation strategy engine",
	}
	root.AddCommand(analyzeCmd(), areasCmd())
	return root
}

func analyzeCmd() *cobra.Command {
	var (
		practiceArea string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "analyze <case.json>",
		Short: "Run the full strategic work-up for a case-facts file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read case file: %w", err)
			}

			var input models.CaseInput
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("parse case file: %w", err)
			}
			if practiceArea != "" {
				input.PracticeArea = practiceArea
			}

			report := engine.New().Analyze(context.Background(), input)

			var out []byte
			switch format {
			case "yaml":
				out, err = yaml.Marshal(report)
			default:
				out, err = json.MarshalIndent(report, "", "  ")
			}
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&practiceArea, "practice-area", "", "override the case's practice area")
	cmd.Flags().StringVarP(&format, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func areasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List the built-in practice areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range practice.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
