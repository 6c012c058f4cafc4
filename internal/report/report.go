package report

import (
	"fmt"
	"strings"

	"github.com/karlseguin/listupdate"
)

// Run serves one scenario with the engine it names.
func Run(scenario Scenario) (*listupdate.SequenceResult[int], error) {
	var engine listupdate.Engine[int]
	switch scenario.Algorithm {
	case AlgorithmIMTF:
		engine = listupdate.NewIMTF(scenario.Initial)
	case AlgorithmMTF, "":
		engine = listupdate.NewMTF(scenario.Initial)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, scenario.Algorithm)
	}
	result, err := listupdate.Run(engine, scenario.Sequence)
	if err != nil {
		return nil, fmt.Errorf("report: %s: %w", scenario.Name, err)
	}
	return result, nil
}

// Report renders every scenario of doc, the best and worst MTF sequences for
// doc.Length, how IMTF fares on both, and a summary of the totals.
func Report(doc *Document, r *Renderer) error {
	var summary []SummaryLine
	for _, scenario := range doc.Scenarios {
		result, err := Run(scenario)
		if err != nil {
			return err
		}
		r.Heading(strings.ToUpper(scenario.Name))
		r.Sequence(scenario.Initial, result, scenario.Verbose)
		summary = append(summary, SummaryLine{Label: scenario.Name, Value: fmt.Sprint(result.TotalCost)})
	}

	best, err := listupdate.BestCase(doc.Initial, doc.Length)
	if err != nil {
		return fmt.Errorf("report: best case: %w", err)
	}
	r.Heading(fmt.Sprintf("MINIMUM COST SEQUENCE (%d requests)", doc.Length))
	r.Optimization("Best", best)

	worst, err := listupdate.WorstCase(doc.Initial, doc.Length)
	if err != nil {
		return fmt.Errorf("report: worst case: %w", err)
	}
	r.Heading(fmt.Sprintf("MAXIMUM COST SEQUENCE (%d requests)", doc.Length))
	r.Optimization("Worst", worst)

	summary = append(summary,
		SummaryLine{Label: fmt.Sprintf("Minimum cost (%d requests)", doc.Length), Value: fmt.Sprint(best.Cost)},
		SummaryLine{Label: fmt.Sprintf("Maximum cost (%d requests)", doc.Length), Value: fmt.Sprint(worst.Cost)},
	)

	r.Heading("IMTF COMPARED TO MTF")
	for _, candidate := range []struct {
		label    string
		sequence []int
	}{{"best", best.Sequence}, {"worst", worst.Sequence}} {
		comparison, err := listupdate.Compare(doc.Initial, candidate.sequence)
		if err != nil {
			return fmt.Errorf("report: comparing the %s sequence: %w", candidate.label, err)
		}
		r.Comparison(candidate.label, comparison)
		summary = append(summary, SummaryLine{
			Label: fmt.Sprintf("IMTF vs MTF, %s sequence", candidate.label),
			Value: fmt.Sprintf("IMTF=%d, MTF=%d", comparison.IMTF.TotalCost, comparison.MTF.TotalCost),
		})
	}

	r.Summary(summary)
	return nil
}
