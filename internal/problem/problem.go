// Package problem defines the data model for a scraped BOJ problem.
package problem

import "fmt"

// Problem holds the fields scraped from a BOJ problem page.
// Any field may be empty when the page does not carry the
// corresponding section; callers must tolerate absence.
type Problem struct {
	// ID is the numeric BOJ problem identifier.
	ID int

	// Title is the problem title.
	Title string

	// Description is the problem statement text.
	Description string

	// Input describes the input format.
	Input string

	// Output describes the output format.
	Output string

	// Limit holds extra constraints (e.g. a tighter time limit), when present.
	Limit string

	// Samples is the flat ordered list of sample blocks as they appear on
	// the page: input 1, output 1, input 2, output 2, and so on.
	Samples []string
}

// URL returns the canonical problem page URL for the given base URL.
func (p *Problem) URL(baseURL string) string {
	return fmt.Sprintf("%s%d", baseURL, p.ID)
}
