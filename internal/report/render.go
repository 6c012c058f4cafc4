package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/karlseguin/listupdate"
	"github.com/wsxiaoys/terminal/color"
)

var (
	rule   = strings.Repeat("-", 60)
	banner = strings.Repeat("=", 80)
)

// Renderer writes results as text. Colors are ANSI escapes and only make
// sense on a terminal.
type Renderer struct {
	w       io.Writer
	colored bool
}

func NewRenderer(w io.Writer, colored bool) *Renderer {
	return &Renderer{w: w, colored: colored}
}

func (r *Renderer) Heading(title string) {
	fmt.Fprintf(r.w, "\n%s\n%s\n%s\n", banner, r.paint("c", title), banner)
}

// Sequence renders a run. When verbose, every access is narrated.
func (r *Renderer) Sequence(initial []int, result *listupdate.SequenceResult[int], verbose bool) {
	if verbose {
		fmt.Fprintf(r.w, "Initial list: %v\n%s\n", initial, rule)
		for i, access := range result.Accesses {
			fmt.Fprintf(r.w, "Request %d: %d\n", i+1, access.Element)
			fmt.Fprintf(r.w, "  Cost: %s\n", r.paint("y", fmt.Sprint(access.Cost)))
			move := "kept in place"
			if access.Promoted {
				move = "moved to front"
			}
			fmt.Fprintf(r.w, "  New configuration: %v (%s)\n%s\n", access.Configuration, move, rule)
		}
	}
	fmt.Fprintf(r.w, "Total access cost: %s\n", r.paint("g", fmt.Sprint(result.TotalCost)))
}

func (r *Renderer) Optimization(label string, o *listupdate.Optimization[int]) {
	kind := "maximum"
	if o.Minimal {
		kind = "minimum"
	}
	fmt.Fprintf(r.w, "%s sequence: %v\n", label, o.Sequence)
	fmt.Fprintf(r.w, "Total %s cost: %s\n", kind, r.paint("g", fmt.Sprint(o.Cost)))
}

func (r *Renderer) Comparison(label string, c *listupdate.Comparison[int]) {
	fmt.Fprintf(r.w, "\nIMTF with the %s sequence:\n%s\n", label, rule)
	fmt.Fprintf(r.w, "Sequence: %v\n", c.MTF.Sequence)
	fmt.Fprintf(r.w, "IMTF cost: %d\n", c.IMTF.TotalCost)
	fmt.Fprintf(r.w, "MTF cost: %d\n", c.MTF.TotalCost)
	difference := fmt.Sprint(c.Difference())
	switch {
	case c.Difference() < 0:
		difference = r.paint("g", difference)
	case c.Difference() > 0:
		difference = r.paint("r", difference)
	}
	fmt.Fprintf(r.w, "Difference: %s\n", difference)
}

type SummaryLine struct {
	Label string
	Value string
}

func (r *Renderer) Summary(lines []SummaryLine) {
	r.Heading("SUMMARY")
	for i, line := range lines {
		fmt.Fprintf(r.w, "%d. %s: %s\n", i+1, line.Label, line.Value)
	}
}

func (r *Renderer) paint(code string, s string) string {
	if !r.colored {
		return s
	}
	return color.Sprint("@" + code + s + "@|")
}
