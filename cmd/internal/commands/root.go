// Package commands implements the CLI shared by the minify binaries.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/squeeze/internal/app"
	"go.trai.ch/squeeze/internal/build"
	"go.trai.ch/squeeze/internal/core/domain"
)

// CLI represents the command line interface of one minifier.
type CLI struct {
	app     Application
	kind    domain.Kind
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, kind domain.Kind, opts app.RunOptions) error
}

// Name returns the binary name of the minifier for kind.
func Name(kind domain.Kind) string {
	return "minify-" + kind.Ext()[1:]
}

// New creates a new CLI that minifies sources of kind.
func New(a Application, kind domain.Kind) *CLI {
	c := &CLI{
		app:  a,
		kind: kind,
	}

	var watch bool
	rootCmd := &cobra.Command{
		Use:   Name(kind),
		Short: fmt.Sprintf("Minify every %s file under %s", kind.Ext(), kind.SourceDir()),
		Long: fmt.Sprintf(
			"Discovers %s sources under %s, writes <name>%s next to each one and skips outputs that are already up to date.",
			kind.Ext(), kind.SourceDir(), kind.MinExt(),
		),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), c.kind, app.RunOptions{Watch: watch})
		},
	}

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and re-minify sources as they change")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
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
