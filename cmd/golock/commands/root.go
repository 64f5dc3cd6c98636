// Package commands implements the CLI commands for golock.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/golock/internal/adapters/config"
	"go.trai.ch/golock/internal/app"
	"go.trai.ch/golock/internal/build"
	"go.trai.ch/golock/internal/core/domain"
)

// CLI represents the command line interface for golock.
type CLI struct {
	app     Application
	loader  OptionsLoader
	rootCmd *cobra.Command
	opts    domain.Options
	onLoad  func(domain.Options)
}

// Application represents the application logic interface.
type Application interface {
	Lock(opts app.LockOptions) (domain.LockResult, error)
	Locked(root string) (*domain.DependencySet, bool, error)
	Files(ctx context.Context, opts app.FilesOptions) ([]string, error)
	Status(root string) (domain.StatusReport, error)
}

// OptionsLoader resolves tool options from the parsed flags and the working directory.
type OptionsLoader interface {
	Load(flags *pflag.FlagSet, dir string) (domain.Options, error)
}

// New creates a new CLI instance with the given app and options loader.
func New(a Application, loader OptionsLoader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "golock",
		Short:         "Lock Go module dependencies into settings.toml",
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

	config.RegisterFlags(rootCmd.PersistentFlags())

	c := &CLI{
		app:     a,
		loader:  loader,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.loadOptions(cmd.Flags())
	}

	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newLockedCmd())
	rootCmd.AddCommand(c.newFilesCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// OnOptions registers a callback invoked once options are resolved, before the command runs.
func (c *CLI) OnOptions(fn func(domain.Options)) {
	c.onLoad = fn
}

func (c *CLI) loadOptions(flags *pflag.FlagSet) error {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	opts, err := c.loader.Load(flags, dir)
	if err != nil {
		return err
	}
	c.opts = opts

	if c.onLoad != nil {
		c.onLoad(opts)
	}
	return nil
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

func writeln(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
