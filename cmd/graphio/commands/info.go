package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphio/codec"
	"github.com/katalvlaran/graphio/core"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print a summary of a serialized graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		s := g.Stats()
		kind := "undirected"
		if s.Directed {
			kind = "directed"
		}
		policy := "multigraph"
		if s.Simple {
			policy = "simple"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file:   %s\n", args[0])
		fmt.Fprintf(out, "kind:   %s, %s\n", kind, policy)
		fmt.Fprintf(out, "nodes:  %d\n", s.NodeCount)
		fmt.Fprintf(out, "edges:  %d\n", s.EdgeCount)
		return nil
	},
}

// loadGraph decodes one graph file from disk.
func loadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	slog.Debug("graph loaded", "path", path,
		"nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}
