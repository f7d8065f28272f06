// Package verify runs a candidate solution against sample test vectors
// scraped from a problem page and classifies each attempt.
package verify

import (
	"context"
	"time"
)

// Sample is one scraped input/expected-output pair.
type Sample struct {
	// Input is fed to the candidate's standard input in full.
	Input string

	// Expected is the output the candidate must produce.
	Expected string

	// Truncated marks a sample whose expected output was missing from the
	// scraped list (odd number of sample blocks on the page). It is
	// reported as an error rather than executed.
	Truncated bool
}

// PairSamples pairs consecutive elements of the flat scraped sample list
// [in1, out1, in2, out2, ...] into Samples. An odd-length list yields a
// final Sample with an empty expected output, marked Truncated.
func PairSamples(blocks []string) []Sample {
	samples := make([]Sample, 0, (len(blocks)+1)/2)
	for i := 0; i < len(blocks); i += 2 {
		s := Sample{Input: blocks[i]}
		if i+1 < len(blocks) {
			s.Expected = blocks[i+1]
		} else {
			s.Truncated = true
		}
		samples = append(samples, s)
	}
	return samples
}

// VerdictKind classifies a single sample's verification attempt.
type VerdictKind string

const (
	VerdictPassed   VerdictKind = "passed"
	VerdictFailed   VerdictKind = "failed"
	VerdictTimedOut VerdictKind = "timed_out"
	VerdictErrored  VerdictKind = "errored"
)

// Verdict is the outcome of verifying one sample.
type Verdict struct {
	// Sample is the 1-based sample number in page order. Skipped samples
	// keep their number, so the sequence can have gaps.
	Sample int

	// Kind is the verdict classification.
	Kind VerdictKind

	// Expected and Actual carry both sides of a failed comparison,
	// after trailing-whitespace trimming.
	Expected string
	Actual   string

	// Message describes the fault for errored verdicts.
	Message string

	// Duration is how long the candidate ran for this sample.
	Duration time.Duration
}

// Result aggregates the verdicts of one verification run.
type Result struct {
	// Verdicts holds one entry per executed sample, in sample order.
	Verdicts []Verdict

	// Skipped counts samples that had an empty input and were not run.
	// A malformed scrape can produce these, so they are surfaced rather
	// than silently dropped.
	Skipped int

	// AllPassed is true iff every verdict is passed. A run with no
	// verdicts at all reports true.
	AllPassed bool
}

// Verifier executes a candidate against every sample in a set, one at a
// time, isolating each sample's fault to its own verdict.
type Verifier struct {
	runner *Runner
}

// NewVerifier creates a Verifier that executes candidates with the given runner.
func NewVerifier(runner *Runner) *Verifier {
	return &Verifier{runner: runner}
}

// Verify runs the candidate at solutionPath against every sample and
// returns the aggregate result. A timeout or execution fault on one
// sample never aborts the remaining samples; every failure mode is
// represented in the returned verdicts.
func (v *Verifier) Verify(ctx context.Context, solutionPath string, samples []Sample) Result {
	result := Result{AllPassed: true}

	for i, sample := range samples {
		num := i + 1

		if sample.Input == "" {
			result.Skipped++
			continue
		}

		if sample.Truncated {
			result.Verdicts = append(result.Verdicts, Verdict{
				Sample:  num,
				Kind:    VerdictErrored,
				Message: "no expected output scraped for this sample (odd number of sample blocks)",
			})
			result.AllPassed = false
			continue
		}

		outcome := v.runner.Run(ctx, solutionPath, sample.Input)
		verdict := Compare(outcome, sample.Expected)
		verdict.Sample = num

		if verdict.Kind != VerdictPassed {
			result.AllPassed = false
		}
		result.Verdicts = append(result.Verdicts, verdict)
	}

	return result
}
