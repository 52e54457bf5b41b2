// Package commands implements the CLI commands for degrees.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/degrees/internal/app"
	"go.trai.ch/degrees/internal/build"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/ui/output"
)

// CLI represents the command line interface for degrees.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Find(ctx context.Context, source, target string, opts app.FindOptions) (domain.SearchResult, error)
	Suggest(ctx context.Context, identity string, opts app.SuggestOptions) ([]domain.Suggestion, error)
	Listen(ctx context.Context, opts app.ListenOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "degrees",
		Short:         "Find the chain of mutual follows between two nostr profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			lipgloss.SetColorProfile(output.ColorProfile())
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default degrees.yaml)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newFindCmd())
	rootCmd.AddCommand(c.newSuggestCmd())
	rootCmd.AddCommand(c.newListenCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func sourceOptions(cmd *cobra.Command) app.SourceOptions {
	configPath, _ := cmd.Flags().GetString("config")
	graphPath, _ := cmd.Flags().GetString("graph")
	return app.SourceOptions{ConfigPath: configPath, GraphPath: graphPath}
}
