package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/golock/internal/ui/render"
)

func (c *CLI) newLockedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locked",
		Short: "Show the dependencies recorded in the lock region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")

			set, ok, err := c.app.Locked(c.opts.Root)
			if err != nil {
				return err
			}
			if !ok {
				writeln(cmd.OutOrStdout(), "no lock data")
				return nil
			}

			return render.Dependencies(cmd.OutOrStdout(), set, render.Format(output))
		},
	}

	cmd.Flags().StringP("output", "o", string(render.FormatTable), "Output format: table, yaml or plain")

	return cmd
}
