// Command foppl is the CLI surface of §6: it selects an inference driver
// (prior-only, likelihood-weighting, single-site Metropolis-Hastings) or a
// single evaluate-once run, reads a JSON program document, and writes the
// resulting dataset. Exit codes follow §6: non-zero only on I/O or
// unrecoverable setup failures; runtime errors are reported to stderr and
// the process exits zero.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foppl-lang/foppl/internal/cache"
	"github.com/foppl-lang/foppl/internal/cliutil"
	"github.com/foppl-lang/foppl/internal/config"
	"github.com/foppl-lang/foppl/internal/driver"
	"github.com/foppl-lang/foppl/internal/driver/likelihood"
	"github.com/foppl-lang/foppl/internal/driver/mh"
	"github.com/foppl-lang/foppl/internal/driver/once"
	"github.com/foppl-lang/foppl/internal/driver/prior"
	"github.com/foppl-lang/foppl/internal/ferr"
	"github.com/foppl-lang/foppl/internal/program"
	"github.com/foppl-lang/foppl/internal/watch"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		samples  int
		skip     int
		out      string
		noColor  bool
		watchRun bool
		cacheOut string
		cfgPath  string
	)

	root := &cobra.Command{
		Use:           "foppl",
		Short:         "Run inference over a FOPPL program",
		SilenceErrors: true,
		SilenceUsage:  false,
	}
	root.PersistentFlags().IntVar(&samples, "samples", 1000, "number of top-level re-executions")
	root.PersistentFlags().IntVar(&skip, "skip", 1, "single-site MH thinning factor")
	root.PersistentFlags().StringVar(&out, "out", "", "output file (default stdout)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored error output")
	root.PersistentFlags().BoolVar(&watchRun, "watch", false, "rerun whenever the input file changes")
	root.PersistentFlags().StringVar(&cacheOut, "cache", "", "path to a CBOR addressed-program cache")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML file of default flag values")

	makeRunE := func(build func() driver.Driver, forceSamples int) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, posArgs []string) error {
			if forceSamples > 0 {
				samples = forceSamples
			} else if cfgPath != "" {
				defaults, err := config.Load(cfgPath)
				if err != nil {
					return &ferr.Error{Kind: ferr.KindIO, Message: "loading config", Cause: err}
				}
				if !cmd.Flags().Changed("samples") && defaults.Samples > 0 {
					samples = defaults.Samples
				}
				if !cmd.Flags().Changed("skip") && defaults.Skip > 0 {
					skip = defaults.Skip
				}
			}
			if len(posArgs) != 1 {
				return &ferr.Error{Kind: ferr.KindIO, Message: "expected exactly one input file argument"}
			}
			inputPath := posArgs[0]

			runOne := func() error {
				return runInference(inputPath, out, cacheOut, samples, build())
			}
			if watchRun {
				return watch.File(inputPath, func() bool {
					if err := runOne(); err != nil {
						cliutil.FormatError(os.Stderr, err, cliutil.ShouldUseColor(noColor))
					}
					return true
				})
			}
			return runOne()
		}
	}

	priorCmd := &cobra.Command{
		Use:   "prior [file]",
		Short: "Ancestral sampling from the prior (§4.4.1)",
		Args:  cobra.ExactArgs(1),
		RunE:  makeRunE(func() driver.Driver { return prior.New() }, 0),
	}
	likelihoodCmd := &cobra.Command{
		Use:   "likelihood [file]",
		Short: "Likelihood-weighted importance sampling (§4.4.2)",
		Args:  cobra.ExactArgs(1),
		RunE:  makeRunE(func() driver.Driver { return likelihood.New() }, 0),
	}
	mhCmd := &cobra.Command{
		Use:   "mh [file]",
		Short: "Single-site Metropolis-Hastings (§4.4.3)",
		Args:  cobra.ExactArgs(1),
		RunE:  makeRunE(func() driver.Driver { return mh.New(skip) }, 0),
	}
	evalCmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate the program once, with no inference",
		Args:  cobra.ExactArgs(1),
		RunE:  makeRunE(func() driver.Driver { return once.New() }, 1),
	}

	root.AddCommand(priorCmd, likelihoodCmd, mhCmd, evalCmd)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		useColor := cliutil.ShouldUseColor(noColor)
		var fe *ferr.Error
		if asFerr(err, &fe) && fe.Kind == ferr.KindIO {
			cliutil.FormatError(os.Stderr, err, useColor)
			return 1
		}
		cliutil.FormatError(os.Stderr, err, useColor)
		return 0
	}
	return 0
}

func asFerr(err error, target **ferr.Error) bool {
	fe, ok := err.(*ferr.Error)
	if ok {
		*target = fe
	}
	return ok
}

func runInference(inputPath, outPath, cachePath string, samples int, d driver.Driver) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return &ferr.Error{Kind: ferr.KindIO, Message: fmt.Sprintf("reading %s", inputPath), Cause: err}
	}

	var prog *program.DecodedProgram
	if cachePath != "" {
		prog, err = program.DecodeWithCache(raw, cachePath)
	} else {
		prog, err = program.DecodeFresh(raw)
	}
	if err != nil {
		return err
	}

	ds, err := prog.RunInference(samples, d)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return &ferr.Error{Kind: ferr.KindIO, Message: "encoding dataset", Cause: err}
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(data)
	} else {
		err = os.WriteFile(outPath, data, 0o644)
	}
	if err != nil {
		return &ferr.Error{Kind: ferr.KindIO, Message: "writing output", Cause: err}
	}
	return nil
}
