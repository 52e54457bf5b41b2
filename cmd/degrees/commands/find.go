package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/degrees/internal/app"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/ui/reply"
)

func (c *CLI) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <source> <target>",
		Short: "Find the shortest chain of mutual follows between two profiles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxDepth, _ := cmd.Flags().GetInt("max-depth")
			res, err := c.app.Find(cmd.Context(), args[0], args[1], app.FindOptions{
				SourceOptions: sourceOptions(cmd),
				MaxDepth:      maxDepth,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), reply.Text(res))
			if !res.IsConnected() {
				return domain.ErrNotConnected
			}
			return nil
		},
	}
	cmd.Flags().IntP("max-depth", "d", 0, "Longest chain to look for (default from config)")
	cmd.Flags().StringP("graph", "g", "", "Search an offline graph file instead of relays")
	return cmd
}
