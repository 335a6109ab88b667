// Package cmd holds the root command of notedeck. Subcommands register
// themselves from the binary package.
package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/notedeck/internal/colors"
	"github.com/cristianoliveira/notedeck/internal/config"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/logging"
	"github.com/cristianoliveira/notedeck/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "notedeck",
	Short:         "Notes with tags, search and an archive, in your terminal.",
	Long:          `Notes with tags, search and an archive, in your terminal.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// errorHandler reports command failures.
var errorHandler = apperrors.NewDefaultCLIHandler()

// Execute runs the root command and reports its error.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		errorHandler.Report(err)
	}
	return err
}

// setup loads configuration and starts logging.
func setup() error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning("logging disabled:", err.Error())
	}
	return nil
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			return
		}
		printHelpText(cmd)
	})
}

// commandOrder is the order commands are listed in the help text.
var commandOrder = []string{
	"tui",
	"list",
	"add",
	"edit",
	"rm",
	"archive",
	"tags",
	"signup",
	"login",
	"logout",
	"passwd",
	"version",
}

func printHelpText(cmd *cobra.Command) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`notedeck %s

Notes with tags, search and an archive, in your terminal.

USAGE:
    notedeck [COMMAND] [OPTIONS]

Without a command the terminal UI starts.

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.String(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
