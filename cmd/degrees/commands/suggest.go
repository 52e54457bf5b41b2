package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/degrees/internal/app"
	"go.trai.ch/degrees/internal/ui/style"
)

func (c *CLI) newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <identity>",
		Short: "Suggest profiles two hops away, ranked by shared mutuals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			suggestions, err := c.app.Suggest(cmd.Context(), args[0], app.SuggestOptions{
				SourceOptions: sourceOptions(cmd),
				Limit:         limit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				_, _ = fmt.Fprintln(out, style.Muted.Render("no suggestions"))
				return nil
			}
			for _, s := range suggestions {
				_, _ = fmt.Fprintf(out, "%s %s\n", s.Identity.Display(), style.Muted.Render(fmt.Sprintf("(%d shared)", s.Shared)))
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "l", 10, "Maximum number of suggestions, 0 for all")
	cmd.Flags().StringP("graph", "g", "", "Use an offline graph file instead of relays")
	return cmd
}
