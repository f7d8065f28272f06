package verify

import (
	"strings"
	"unicode"
)

// Compare classifies a single execution outcome against the expected
// output. Trailing whitespace (including any trailing newline) is
// stripped from both sides before comparison; no other normalization
// is applied.
func Compare(outcome Outcome, expected string) Verdict {
	if outcome.TimedOut {
		return Verdict{Kind: VerdictTimedOut, Duration: outcome.Duration}
	}
	if outcome.Err != nil {
		return Verdict{Kind: VerdictErrored, Message: outcome.Err.Error(), Duration: outcome.Duration}
	}

	actual := trimTrailing(outcome.Stdout)
	want := trimTrailing(expected)

	if actual == want {
		return Verdict{Kind: VerdictPassed, Duration: outcome.Duration}
	}
	return Verdict{
		Kind:     VerdictFailed,
		Expected: want,
		Actual:   actual,
		Duration: outcome.Duration,
	}
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
