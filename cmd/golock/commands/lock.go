package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/golock/internal/app"
)

func (c *CLI) newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Write the go.mod dependencies into the lock region of settings.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Lock(app.LockOptions{
				Root:    c.opts.Root,
				NoState: c.opts.NoState,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Changed {
				writeln(out, "%s is up to date (%d locked)", result.SettingsPath, result.Locked)
				return nil
			}
			writeln(out, "locked %d dependencies into %s (skipped %d)", result.Locked, result.SettingsPath, result.Skipped)
			return nil
		},
	}
}
