// Package render displays problems and verification results in the terminal.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"bojctl/internal/problem"
	"bojctl/internal/solvedac"
	"bojctl/internal/verify"
)

// Panel border colors, matching the page section colors.
const (
	colorTitle    = "6" // cyan
	colorDesc     = "3" // yellow
	colorInput    = "2" // green
	colorOutput   = "4" // blue
	colorLimit    = "5" // magenta
	colorExpected = "3" // yellow
	colorActual   = "1" // red
)

// Reporter renders problems, verdicts and run summaries.
// Colors are disabled when the output is not a terminal.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	color := false
	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return &Reporter{out: out, color: color}
}

// ForceColor overrides terminal detection.
func (r *Reporter) ForceColor(on bool) {
	r.color = on
}

func (r *Reporter) styled(text, color string, bold bool) string {
	if !r.color {
		return text
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if bold {
		style = style.Bold(true)
	}
	return style.Render(text)
}

func (r *Reporter) panel(text, color string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if r.color {
		style = style.BorderForeground(lipgloss.Color(color))
	}
	return style.Render(text)
}

// Problem renders a scraped problem. With sampleOnly, only the sample
// I/O panels are shown.
func (r *Reporter) Problem(p *problem.Problem, baseURL string, sampleOnly bool) {
	if p.Title != "" {
		title := fmt.Sprintf("#%d %s", p.ID, p.Title)
		fmt.Fprintln(r.out, r.panel(r.styled(title, colorTitle, true), colorTitle))
	}

	if sampleOnly {
		if len(p.Samples) == 0 {
			fmt.Fprintln(r.out, r.styled("No sample I/O found", colorDesc, false))
			return
		}
		r.samples(p.Samples)
		return
	}

	if p.Description != "" {
		fmt.Fprintf(r.out, "\n%s\n", r.styled("Problem Description:", colorDesc, true))
		fmt.Fprintln(r.out, r.panel(p.Description, colorDesc))
	}
	if p.Input != "" {
		fmt.Fprintf(r.out, "\n%s\n", r.styled("Input:", colorInput, true))
		fmt.Fprintln(r.out, r.panel(p.Input, colorInput))
	}
	if p.Output != "" {
		fmt.Fprintf(r.out, "\n%s\n", r.styled("Output:", colorOutput, true))
		fmt.Fprintln(r.out, r.panel(p.Output, colorOutput))
	}
	if p.Limit != "" {
		fmt.Fprintf(r.out, "\n%s\n", r.styled("Limit:", colorLimit, true))
		fmt.Fprintln(r.out, r.panel(p.Limit, colorLimit))
	}
	if len(p.Samples) > 0 {
		fmt.Fprintf(r.out, "\n%s\n", r.styled("Sample I/O:", "7", true))
		r.samples(p.Samples)
	}

	fmt.Fprintf(r.out, "\nURL: %s\n", p.URL(baseURL))
}

// samples renders the flat sample block list as numbered input/output panels.
func (r *Reporter) samples(blocks []string) {
	for i := 0; i < len(blocks); i += 2 {
		num := i/2 + 1
		fmt.Fprintf(r.out, "\n%s\n", r.styled(fmt.Sprintf("Sample Input %d:", num), colorInput, true))
		fmt.Fprintln(r.out, r.panel(blocks[i], colorInput))

		if i+1 < len(blocks) {
			fmt.Fprintf(r.out, "\n%s\n", r.styled(fmt.Sprintf("Sample Output %d:", num), colorOutput, true))
			fmt.Fprintln(r.out, r.panel(blocks[i+1], colorOutput))
		}
	}
}

// Verdict renders one sample's verdict. All four kinds are visually distinct.
func (r *Reporter) Verdict(v verify.Verdict) {
	switch v.Kind {
	case verify.VerdictPassed:
		fmt.Fprintln(r.out, r.styled(fmt.Sprintf("Sample %d: PASSED", v.Sample), colorInput, true))
	case verify.VerdictFailed:
		fmt.Fprintln(r.out, r.styled(fmt.Sprintf("Sample %d: FAILED", v.Sample), colorActual, true))
		fmt.Fprintln(r.out, r.panel("Expected:\n"+v.Expected, colorExpected))
		fmt.Fprintln(r.out, r.panel("Actual:\n"+v.Actual, colorActual))
	case verify.VerdictTimedOut:
		fmt.Fprintln(r.out, r.styled(fmt.Sprintf("Sample %d: TIMEOUT", v.Sample), colorActual, true))
	case verify.VerdictErrored:
		fmt.Fprintln(r.out, r.styled(fmt.Sprintf("Sample %d: ERROR - %s", v.Sample, v.Message), colorActual, true))
	}
}

// Summary renders the per-kind counts and the aggregate line. Skipped
// samples are always reported so a malformed scrape stays visible.
func (r *Reporter) Summary(res verify.Result) {
	counts := map[verify.VerdictKind]int{}
	for _, v := range res.Verdicts {
		counts[v.Kind]++
	}

	fmt.Fprintln(r.out)
	table := tablewriter.NewWriter(r.out)
	table.Header([]string{"Result", "Count"})
	table.Append([]string{"Passed", fmt.Sprintf("%d", counts[verify.VerdictPassed])})
	table.Append([]string{"Failed", fmt.Sprintf("%d", counts[verify.VerdictFailed])})
	table.Append([]string{"Timed out", fmt.Sprintf("%d", counts[verify.VerdictTimedOut])})
	table.Append([]string{"Errored", fmt.Sprintf("%d", counts[verify.VerdictErrored])})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", res.Skipped)})
	table.Render()

	if res.Skipped > 0 {
		fmt.Fprintln(r.out, r.styled(
			fmt.Sprintf("%d sample(s) skipped: empty input scraped from the page", res.Skipped),
			colorDesc, false))
	}

	fmt.Fprintln(r.out)
	if res.AllPassed {
		fmt.Fprintln(r.out, r.styled("All tests passed!", colorInput, true))
	} else {
		fmt.Fprintln(r.out, r.styled("Some tests failed.", colorActual, true))
	}
}

// Recommendation renders a random problem pick.
func (r *Reporter) Recommendation(rec *solvedac.Recommendation) {
	fmt.Fprintf(r.out, "\n%s\n",
		r.styled(fmt.Sprintf("Recommended problem: #%d %s", rec.ProblemID, rec.Title), colorInput, true))
	fmt.Fprintf(r.out, "%s\n", r.styled("Difficulty: "+rec.Tier, colorTitle, false))
	fmt.Fprintf(r.out, "URL: %s\n", rec.URL)
}
