package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"schemaforge/parser"
)

var (
	parseFile string
	parseOut  string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse CREATE TABLE statements into a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(parseFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", parseFile, err)
		}

		m := parser.Parse(string(data))
		fmt.Fprintf(os.Stderr, "Parsed %d tables, %d relationships\n", len(m.Tables), len(m.Edges))

		out, err := marshalModel(m)
		if err != nil {
			return err
		}
		return writeOutput(parseOut, out)
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "SQL file to parse")
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "write model JSON here instead of stdout")
	parseCmd.MarkFlagRequired("file")
}
