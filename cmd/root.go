// Package cmd implements the bojctl CLI.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"bojctl/internal/boj"
	"bojctl/internal/config"
	"bojctl/internal/problem"
	"bojctl/internal/render"
	"bojctl/internal/solvedac"
	"bojctl/internal/template"
	"bojctl/internal/verify"
)

var (
	cfgFile string
	verbose bool
)

// Root command flags
var (
	rootSampleOnly bool
	rootInit       bool
	rootForce      bool
	rootTest       bool
	rootRandom     string
	rootTimeout    float64
)

// NewRootCmd creates the root command for the bojctl CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bojctl [problem-id]",
		Short: "View and test Baekjoon Online Judge problems in the terminal",
		Long: `bojctl fetches Baekjoon Online Judge problems so you can read them,
scaffold a solution file, and verify it against the scraped sample I/O
without leaving the terminal.

  bojctl 1000              show the full problem
  bojctl 1000 --sample     show only the sample I/O
  bojctl 1000 --init       create a solution file from a template
  bojctl 1000 --test       run the solution against every sample
  bojctl --random g3       recommend a random problem by tier`,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runRoot,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bojctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&rootSampleOnly, "sample", false, "show only sample I/O")
	rootCmd.Flags().BoolVar(&rootInit, "init", false, "create solution file with template")
	rootCmd.Flags().BoolVar(&rootForce, "force", false, "overwrite existing file when using --init")
	rootCmd.Flags().BoolVar(&rootTest, "test", false, "test solution file against sample I/O")
	rootCmd.Flags().StringVar(&rootRandom, "random", "", "recommend random problem by tier (b1-b4, s1-s4, g1-g4, p1-p4, d, r)")
	rootCmd.Flags().Float64Var(&rootTimeout, "timeout", 0, "per-sample timeout in seconds (0 uses config)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// newLogger builds the logger selected by --verbose.
func newLogger() *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reporter := render.NewReporter(cmd.OutOrStdout())

	if rootRandom != "" {
		return runRandom(cmd, cfg, logger, reporter)
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid problem ID %q", args[0])
	}

	if rootInit && rootTest {
		return errors.New("--init and --test cannot be combined; run --init first, then --test")
	}

	client := boj.NewClient(cfg.BOJ.BaseURL, time.Duration(cfg.BOJ.TimeoutSeconds)*time.Second)
	client.SetUserAgent(cfg.BOJ.UserAgent)
	client.SetLogger(logger)

	p, err := client.FetchProblem(cmd.Context(), id)
	if err != nil {
		return err
	}

	if rootInit {
		return runInit(cmd, cfg, id, p)
	}
	if rootTest {
		return runTest(cmd, cfg, logger, reporter, id, p)
	}

	reporter.Problem(p, cfg.BOJ.BaseURL, rootSampleOnly)
	return nil
}

func runRandom(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, reporter *render.Reporter) error {
	client := solvedac.NewClient(cfg.Solvedac.BaseURL, time.Duration(cfg.BOJ.TimeoutSeconds)*time.Second)
	client.SetUserAgent(cfg.BOJ.UserAgent)
	client.SetLogger(logger)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Fetching random problem from tier %s...\n", rootRandom)

	rec, err := client.RandomProblem(cmd.Context(), rootRandom)
	if err != nil {
		return err
	}
	reporter.Recommendation(rec)
	return nil
}

func runInit(cmd *cobra.Command, cfg *config.Config, id int, p *problem.Problem) error {
	filename, err := template.CreateSolutionFile(cfg.Solution.Dir, id, cfg.Solution.Extension, p, rootForce)
	if errors.Is(err, template.ErrExists) && !rootForce && isTerminal(cmd.InOrStdin()) {
		if confirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), id, cfg.Solution.Extension) {
			filename, err = template.CreateSolutionFile(cfg.Solution.Dir, id, cfg.Solution.Extension, p, true)
		}
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", filename)
	return nil
}

func runTest(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, reporter *render.Reporter, id int, p *problem.Problem) error {
	filename := fmt.Sprintf("%d%s", id, cfg.Solution.Extension)
	path := filepath.Join(cfg.Solution.Dir, filename)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("solution file %s does not exist (create it with --init)", filename)
	}

	runner := verify.NewRunner(cfg.Run.Command)
	runner.SetMaxOutputBytes(cfg.Run.MaxOutputBytes)
	runner.SetLogger(logger)

	timeout := cfg.Run.TimeoutSeconds
	if rootTimeout > 0 {
		timeout = rootTimeout
	}
	runner.SetTimeout(time.Duration(timeout * float64(time.Second)))

	verifier := verify.NewVerifier(runner)
	result := verifier.Verify(cmd.Context(), path, verify.PairSamples(p.Samples))

	for _, v := range result.Verdicts {
		reporter.Verdict(v)
	}
	reporter.Summary(result)
	return nil
}

// confirmOverwrite asks whether to overwrite an existing solution file.
func confirmOverwrite(out io.Writer, in io.Reader, id int, ext string) bool {
	_, _ = fmt.Fprintf(out, "File %d%s already exists. Overwrite? [y/N] ", id, ext)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// isTerminal checks if the reader is a terminal.
func isTerminal(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
