// Package cli provides the listupdate command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/karlseguin/listupdate/internal/report"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "listupdate"})

type options struct {
	debug   bool
	noColor bool
}

// NewRootCommand builds the command tree. Output goes to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:   "listupdate",
		Short: "Evaluate the Move-To-Front and lookahead Move-To-Front list-update algorithms.",
		Long: `listupdate serves request sequences with self-organizing lists and ` +
			`reports the access cost of every request. Accessing the element at ` +
			`position p costs p+1.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug information")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newReportCommand(opts),
		newRunCommand(opts),
		newCaseCommand(opts, "best"),
		newCaseCommand(opts, "worst"),
		newCompareCommand(opts),
	)
	return root
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func (o *options) renderer(cmd *cobra.Command) *report.Renderer {
	out := cmd.OutOrStdout()
	colored := false
	if f, ok := out.(*os.File); ok && !o.noColor {
		colored = isatty.IsTerminal(f.Fd())
	}
	return report.NewRenderer(out, colored)
}
