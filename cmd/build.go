package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tvibe/internal/builder"
	"tvibe/pkg/logging"
)

func newBuildCmd() *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:    "build <dir>",
		Short:  "Pack a directory of Alacritty theme files into a collection blob",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.InitForCLI(level, cmd.ErrOrStderr())

			n, err := builder.WriteBlob(args[0], output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "packed %d themes into %s\n", n, output)
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "colorschemes.bin", "output file")
	return c
}
