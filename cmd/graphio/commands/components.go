package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphio/unionfind"
)

var componentsCmd = &cobra.Command{
	Use:   "components FILE",
	Short: "List connected components of a serialized graph",
	Long: `List the connected components of a graph file, one per line.
Edge direction is ignored, so directed graphs yield weak components.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		d := unionfind.FromGraph(g)
		sets := d.Sets()

		out := cmd.OutOrStdout()
		for _, n := range g.Nodes() {
			members, ok := sets[n.ID]
			if !ok {
				continue // not a representative
			}
			fmt.Fprintf(out, "component %d:", n.ID)
			for _, m := range members {
				fmt.Fprintf(out, " %d", m)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
