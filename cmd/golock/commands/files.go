package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/golock/internal/app"
)

func (c *CLI) newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files [subpackage...]",
		Short: "List the project files that belong to the given subpackages",
		Long: `List the project files that belong to the given subpackages.

A subpackage is "." for the files directly in the root, "dir" for the files
directly in dir, "dir/..." for everything below dir, and "..." for every file.
Without arguments every file is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ignores, _ := cmd.Flags().GetStringSlice("ignore")

			files, err := c.app.Files(cmd.Context(), app.FilesOptions{
				Root:        c.opts.Root,
				Subpackages: args,
				Ignores:     ignores,
				Workers:     c.opts.Workers,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, file := range files {
				writeln(out, "%s", file)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceP("ignore", "i", nil, "Glob patterns of file or directory names to skip while walking")

	return cmd
}
