package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchmax/assign"
	"github.com/katalvlaran/matchmax/matio"
)

// newSolveCmd builds the "solve" subcommand: load a matrix file, run one or
// all strategies, print the selection(s) to stdout.
func newSolveCmd() *cobra.Command {
	var (
		algoName   string
		delimiter  string
		maxIter    int
		configPath string
		runAll     bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve the assignment problem for a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := defaultSettings()
			if configPath != "" {
				cfg, err := loadFileConfig(configPath)
				if err != nil {
					return err
				}
				if err = s.merge(cfg); err != nil {
					return err
				}
			}

			// Explicit flags override config-file values.
			if cmd.Flags().Changed("algo") {
				algo, err := assign.ParseAlgorithm(algoName)
				if err != nil {
					return err
				}
				s.algo = algo
			}
			if cmd.Flags().Changed("delimiter") {
				s.delimiter = delimiter
			}
			if cmd.Flags().Changed("max-iter") {
				s.maxIterations = maxIter
			}

			return runSolve(cmd, args[0], s, runAll, quiet)
		},
	}

	cmd.Flags().StringVarP(&algoName, "algo", "a", assign.AlgoBacktrack.String(), "strategy: backtrack, greedy or hungarian")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", matio.DefaultDelimiter, "value separator in the matrix file")
	cmd.Flags().IntVar(&maxIter, "max-iter", assign.DefaultMaxIterations, "iteration cap for the hungarian cover loop")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file (flags override its values)")
	cmd.Flags().BoolVar(&runAll, "all", false, "run all three strategies and report each")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the matrix echo, print results only")

	return cmd
}

// runSolve performs the load/solve/print pipeline for the solve command.
func runSolve(cmd *cobra.Command, path string, s settings, runAll, quiet bool) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	m, err := matio.ReadFile(path, matio.WithDelimiter(s.delimiter))
	if err != nil {
		return err
	}
	logger.Debug("matrix loaded", "path", path, "width", m.Width(), "height", m.Height())

	if !quiet {
		if err = matio.Fprint(out, m); err != nil {
			return err
		}
	}

	algos := []assign.Algorithm{s.algo}
	if runAll {
		algos = []assign.Algorithm{assign.AlgoBacktrack, assign.AlgoGreedy, assign.AlgoHungarian}
	}

	opts := assign.Options{MaxIterations: s.maxIterations}

	var failed error
	for _, algo := range algos {
		opts.Algo = algo

		track := newProgress(logger)
		res, solveErr := assign.Solve(m, opts)
		if solveErr != nil {
			if runAll {
				// Keep going: one strategy failing (hungarian may not
				// converge) should not hide the others' answers.
				logger.Warn("strategy failed", "algo", algo.String(), "err", solveErr)
				failed = errors.Join(failed, solveErr)

				continue
			}

			return solveErr
		}
		track.done("solved", "algo", algo.String(), "sum", res.Sum, "entries", res.Count())

		if runAll {
			if _, err = fmt.Fprintf(out, "%s:\n", algo); err != nil {
				return err
			}
		}
		if err = matio.FprintResult(out, res); err != nil {
			return err
		}
	}

	return failed
}
