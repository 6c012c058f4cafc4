package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karlseguin/listupdate"
	"github.com/karlseguin/listupdate/internal/report"
)

var defaultInitial = []int{0, 1, 2, 3, 4}

func newReportCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the demonstration scenarios and print a report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(file)
			if err != nil {
				return err
			}
			logger.Debug("loaded scenarios", "count", len(doc.Scenarios), "file", file)
			return report.Report(doc, opts.renderer(cmd))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML scenario document (defaults to the built-in scenarios)")
	return cmd
}

func loadDocument(file string) (*report.Document, error) {
	if file == "" {
		return report.Default()
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return report.Load(data)
}

func newRunCommand(opts *options) *cobra.Command {
	scenario := report.Scenario{Name: "run"}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Serve a request sequence with one algorithm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("running", "algorithm", scenario.Algorithm, "initial", scenario.Initial, "requests", len(scenario.Sequence))
			result, err := report.Run(scenario)
			if err != nil {
				return err
			}
			opts.renderer(cmd).Sequence(scenario.Initial, result, scenario.Verbose)
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenario.Algorithm, "algorithm", "a", report.AlgorithmMTF, "mtf or imtf")
	cmd.Flags().IntSliceVarP(&scenario.Initial, "initial", "i", defaultInitial, "initial configuration")
	cmd.Flags().IntSliceVarP(&scenario.Sequence, "sequence", "s", nil, "requests to serve")
	cmd.Flags().BoolVarP(&scenario.Verbose, "verbose", "v", false, "narrate every access")
	mustRequire(cmd, "sequence")
	return cmd
}

// best and worst only differ by the helper they call
func newCaseCommand(opts *options, name string) *cobra.Command {
	find, label := listupdate.BestCase[int], "Best"
	if name == "worst" {
		find, label = listupdate.WorstCase[int], "Worst"
	}

	var initial []int
	var length int
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Print the %s case MTF sequence for a configuration.", name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			optimization, err := find(initial, length)
			if err != nil {
				return err
			}
			opts.renderer(cmd).Optimization(label, optimization)
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&initial, "initial", "i", defaultInitial, "initial configuration")
	cmd.Flags().IntVarP(&length, "length", "n", 20, "number of requests")
	return cmd
}

func newCompareCommand(opts *options) *cobra.Command {
	var initial, sequence []int
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Serve a request sequence with both algorithms and compare their costs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := listupdate.Compare(initial, sequence)
			if err != nil {
				return err
			}
			opts.renderer(cmd).Comparison("given", comparison)
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&initial, "initial", "i", defaultInitial, "initial configuration")
	cmd.Flags().IntSliceVarP(&sequence, "sequence", "s", nil, "requests to serve")
	mustRequire(cmd, "sequence")
	return cmd
}

// Only fails when the flag was never defined, which is a bug in this package
func mustRequire(cmd *cobra.Command, flag string) {
	if err := cmd.MarkFlagRequired(flag); err != nil {
		panic(fmt.Sprintf("%s: %v", cmd.Name(), err))
	}
}
