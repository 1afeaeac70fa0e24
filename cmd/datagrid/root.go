package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "datagrid [config]",
		Short:         "datagrid displays tabular data with sorting, filtering and pagination",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The root command doubles as the view command.
			if len(args) == 1 {
				return runView(cmd, flags, args[0])
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newViewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
