package main

import (
	"fmt"

	"github.com/cristianoliveira/notedeck/cmd"
	"github.com/cristianoliveira/notedeck/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var verbose bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of notedeck.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "notedeck version %s\n", info)
			if verbose {
				fmt.Fprintf(w, "commit: %s\ngo: %s\n", info.Commit, info.GoVersion)
			}
			return nil
		},
	}
	versionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the commit and Go version")
	return versionCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd())
}
