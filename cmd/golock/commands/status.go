package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/ui/render"
	"go.trai.ch/zerr"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the lock region still matches what golock wrote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			check, _ := cmd.Flags().GetBool("check")

			report, err := c.app.Status(c.opts.Root)
			if err != nil {
				return err
			}

			if err := render.Status(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			if check && report.Status != domain.StatusClean {
				return zerr.With(domain.ErrLockOutOfDate, "status", string(report.Status))
			}
			return nil
		},
	}

	cmd.Flags().Bool("check", false, "Exit with an error unless the lock region is clean")

	return cmd
}
