package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout is the wall-clock limit for one candidate execution.
const DefaultTimeout = 5 * time.Second

// DefaultMaxOutputBytes is the default captured-stdout cap (1MB).
const DefaultMaxOutputBytes = 1024 * 1024

// Outcome is the raw result of executing the candidate once.
// Exactly one of the three cases holds: Err is set (the candidate could
// not be launched or the harness faulted), TimedOut is set (the candidate
// exceeded the wall-clock limit and was killed), or neither is set and
// Stdout/ExitCode describe a completed run.
type Outcome struct {
	// Stdout is the candidate's standard output, captured verbatim up to
	// the configured cap. Comparison-time normalization happens later.
	Stdout string

	// ExitCode is the candidate's exit code. A non-zero exit within the
	// time limit is still a completed run; only its output matters.
	ExitCode int

	// TimedOut reports that the candidate was forcibly terminated.
	TimedOut bool

	// Err is the launch or harness fault, when one occurred.
	Err error

	// Duration is how long the candidate ran.
	Duration time.Duration
}

// Runner executes a candidate solution once per call, feeding one
// sample's input on stdin and capturing stdout under a timeout.
type Runner struct {
	command        []string
	timeout        time.Duration
	maxOutputBytes int
	logger         *zap.Logger
}

// NewRunner creates a Runner that launches candidates with the given
// interpreter argv prefix (e.g. ["python3"]); the solution path is
// appended as the final argument.
func NewRunner(command []string) *Runner {
	return &Runner{
		command:        command,
		timeout:        DefaultTimeout,
		maxOutputBytes: DefaultMaxOutputBytes,
		logger:         zap.NewNop(),
	}
}

// SetTimeout overrides the per-execution wall-clock limit.
// Non-positive values are ignored.
func (r *Runner) SetTimeout(d time.Duration) {
	if d > 0 {
		r.timeout = d
	}
}

// SetMaxOutputBytes overrides the captured-stdout cap.
// Output exceeding the cap is truncated.
func (r *Runner) SetMaxOutputBytes(size int) {
	r.maxOutputBytes = size
}

// SetLogger attaches a logger for execution debug lines.
func (r *Runner) SetLogger(logger *zap.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Run executes the candidate once with input as its entire standard-input
// stream. All failure modes are represented in the returned Outcome; Run
// never leaks the child process or the staged input file.
func (r *Runner) Run(ctx context.Context, solutionPath, input string) Outcome {
	if len(r.command) == 0 {
		return Outcome{Err: errors.New("run command is empty")}
	}
	if _, err := os.Stat(solutionPath); err != nil {
		return Outcome{Err: fmt.Errorf("candidate not found: %w", err)}
	}

	inputPath, err := r.stageInput(input)
	if err != nil {
		return Outcome{Err: fmt.Errorf("failed to stage input: %w", err)}
	}
	defer func() { _ = os.Remove(inputPath) }()

	stdin, err := os.Open(inputPath)
	if err != nil {
		return Outcome{Err: fmt.Errorf("failed to open staged input: %w", err)}
	}
	defer func() { _ = stdin.Close() }()

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	argv := append(append([]string{}, r.command...), solutionPath)
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Stdin = stdin
	// Bound the post-exit wait for output pipes, so a candidate that
	// leaves a background child holding stdout cannot stall the run.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Outcome{Err: fmt.Errorf("failed to start %s: %w", argv[0], err)}
	}

	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	// The deadline context guarantees the child was killed before Wait
	// returned, so the timeout path never leaks a process.
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		r.logger.Debug("candidate timed out",
			zap.String("solution", solutionPath),
			zap.Duration("timeout", r.timeout))
		return Outcome{TimedOut: true, Duration: elapsed}
	}
	if ctx.Err() != nil {
		return Outcome{Err: ctx.Err(), Duration: elapsed}
	}

	outcome := Outcome{
		Stdout:   r.truncateOutput(stdout.String()),
		Duration: elapsed,
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return Outcome{Err: fmt.Errorf("%w: %s", waitErr, msg), Duration: elapsed}
			}
			return Outcome{Err: waitErr, Duration: elapsed}
		}
		outcome.ExitCode = exitErr.ExitCode()
	}

	r.logger.Debug("candidate finished",
		zap.String("solution", solutionPath),
		zap.Int("exit_code", outcome.ExitCode),
		zap.Duration("elapsed", elapsed))

	return outcome
}

// stageInput writes the sample input to a transient file so the child
// reads a plain file-backed stdin, mirroring how judges feed test data.
func (r *Runner) stageInput(input string) (string, error) {
	path := filepath.Join(os.TempDir(), "bojctl-input-"+uuid.NewString()+".txt")
	if err := os.WriteFile(path, []byte(input), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// truncateOutput caps the captured output at maxOutputBytes.
func (r *Runner) truncateOutput(output string) string {
	if r.maxOutputBytes <= 0 || len(output) <= r.maxOutputBytes {
		return output
	}
	return output[:r.maxOutputBytes] + "\n... [output truncated]"
}
