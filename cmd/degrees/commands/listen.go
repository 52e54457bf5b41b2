package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/degrees/internal/app"
)

func (c *CLI) newListenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Answer mentions of the bot until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.Listen(cmd.Context(), app.ListenOptions{ConfigPath: configPath})
		},
	}
}
