// Package template generates solution file scaffolds with the sample
// I/O embedded for reference.
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bojctl/internal/problem"
	"bojctl/internal/verify"
)

// ErrExists is returned when the solution file already exists and
// overwriting was not requested.
var ErrExists = errors.New("solution file already exists")

// Generate builds a python3 solution skeleton for the problem, with the
// scraped sample I/O appended as comments.
func Generate(p *problem.Problem) string {
	var lines []string

	if p.Title != "" {
		lines = append(lines, "# "+p.Title)
	}

	lines = append(lines,
		"import sys",
		"input = sys.stdin.readline",
		"",
		"def main():",
		"    # Write your solution here",
		"    pass",
		"",
		"if __name__ == \"__main__\":",
		"    main()",
		"",
	)

	if len(p.Samples) > 0 {
		lines = append(lines, "# Sample Input/Output for testing:")
		for i, sample := range verify.PairSamples(p.Samples) {
			lines = append(lines, fmt.Sprintf("# Sample %d:", i+1))
			lines = append(lines, "# Input:")
			for _, line := range strings.Split(sample.Input, "\n") {
				lines = append(lines, "# "+line)
			}
			lines = append(lines, "# Output:")
			if sample.Expected != "" {
				lines = append(lines, "# "+sample.Expected)
			}
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// CreateSolutionFile writes the template for the problem to
// <dir>/<id><ext>. An existing file is only overwritten when force is
// set; otherwise ErrExists is returned.
func CreateSolutionFile(dir string, id int, ext string, p *problem.Problem, force bool) (string, error) {
	if ext == "" {
		ext = ".py"
	}
	filename := fmt.Sprintf("%d%s", id, ext)
	path := filepath.Join(dir, filename)

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, filename)
	}

	if err := os.WriteFile(path, []byte(Generate(p)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write solution file: %w", err)
	}
	return filename, nil
}
