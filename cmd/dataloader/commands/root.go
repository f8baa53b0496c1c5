// Package commands implements the CLI commands for dataloader.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dataloader/internal/app"
	"go.trai.ch/dataloader/internal/build"
	"go.trai.ch/dataloader/internal/core/domain"
)

// CLI represents the command line interface for dataloader.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetBaseDir(dir string)
	Load(ctx context.Context, path string) (*domain.Document, error)
	LoadReader(ctx context.Context, r io.Reader, source string) (*domain.Document, error)
	Render(w io.Writer, doc *domain.Document, format string) error
	Resolve(ctx context.Context, given string) string
	Find(ctx context.Context, basePath, subdir, source string) app.FindResult
	Exists(ctx context.Context, path string) app.PathInfo
	List(ctx context.Context, path string) ([]string, error)
	Inspect(ctx context.Context, path string) (*app.Inspection, error)
	Encrypt(ctx context.Context, path, label string) ([]byte, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dataloader",
		Short:         "Load, decrypt and locate playbook data files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	rootCmd.PersistentFlags().StringP("basedir", "b", "", "Base directory for relative paths (defaults to the settings or the working directory)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		dir, err := cmd.Flags().GetString("basedir")
		if err != nil {
			return err
		}
		c.app.SetBaseDir(dir)
		return nil
	}

	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newFindCmd())
	rootCmd.AddCommand(c.newExistsCmd())
	rootCmd.AddCommand(c.newLsCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newEncryptCmd())
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

// SetInput sets the stream read by "load -".
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
