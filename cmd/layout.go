package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"schemaforge/layout"
)

var (
	layoutFile      string
	layoutOut       string
	layoutAlgorithm string
	layoutDirection string
	layoutSpacing   float64
	layoutPadding   float64
	layoutIters     int
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute diagram positions for a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(layoutFile)
		if err != nil {
			return err
		}

		nodes := layout.NodesFromModel(m)
		edges := layout.EdgesFromModel(m)
		opts := layout.Options{
			Spacing:    layoutSpacing,
			Padding:    layoutPadding,
			Direction:  layout.Direction(layoutDirection),
			Iterations: layoutIters,
		}

		switch layoutAlgorithm {
		case "grid":
			nodes = layout.Grid(nodes, opts)
		case "radial":
			nodes = layout.Radial(nodes, opts)
		case "tree":
			nodes = layout.Tree(nodes, edges, opts)
		case "force":
			nodes = layout.ForceDirected(nodes, edges, opts)
		default:
			return fmt.Errorf("unknown algorithm %q (want grid, radial, tree or force)", layoutAlgorithm)
		}

		out, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode layout: %w", err)
		}
		return writeOutput(layoutOut, string(out)+"\n")
	},
}

func init() {
	RootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVarP(&layoutFile, "file", "f", "", "model JSON or SQL file")
	layoutCmd.Flags().StringVarP(&layoutOut, "out", "o", "", "write node positions here instead of stdout")
	layoutCmd.Flags().StringVar(&layoutAlgorithm, "algorithm", "grid", "grid, radial, tree or force")
	layoutCmd.Flags().StringVar(&layoutDirection, "direction", "", "tree direction: TB, LR, RL or BT")
	layoutCmd.Flags().Float64Var(&layoutSpacing, "spacing", 0, "distance between neighboring nodes")
	layoutCmd.Flags().Float64Var(&layoutPadding, "padding", 0, "offset from the canvas origin")
	layoutCmd.Flags().IntVar(&layoutIters, "iterations", 0, "force-directed simulation rounds")
	layoutCmd.MarkFlagRequired("file")
}
