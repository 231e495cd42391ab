package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"schemaforge/inference"
	"schemaforge/schema"
)

var (
	inferFile     string
	inferOut      string
	inferAdvanced bool
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Suggest relationships the model does not declare yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(inferFile)
		if err != nil {
			return err
		}

		var suggestions []schema.Suggestion
		if inferAdvanced {
			suggestions = inference.All(m)
		} else {
			suggestions = inference.Basic(m.Tables)
		}

		if inferOut != "" {
			out, err := json.MarshalIndent(suggestions, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode suggestions: %w", err)
			}
			return writeOutput(inferOut, string(out)+"\n")
		}

		if len(suggestions) == 0 {
			fmt.Println("No suggestions.")
			return nil
		}
		for _, s := range suggestions {
			fmt.Printf("[%.1f] %s -> %s (%s)\n      %s\n", s.Confidence, s.SourceTable, s.TargetTable, s.Type, s.Reason)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inferCmd)

	inferCmd.Flags().StringVarP(&inferFile, "file", "f", "", "model JSON or SQL file")
	inferCmd.Flags().StringVarP(&inferOut, "out", "o", "", "write suggestion JSON here instead of printing")
	inferCmd.Flags().BoolVar(&inferAdvanced, "advanced", false, "include structural and lexical heuristics")
	inferCmd.MarkFlagRequired("file")
}
