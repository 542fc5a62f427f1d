package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/calc"
	"github.com/katalvlaran/sparsecalc/config"
	"github.com/katalvlaran/sparsecalc/internal/version"
	"github.com/katalvlaran/sparsecalc/logging"
)

// options holds the persistent flags and the configuration they resolve to.
type options struct {
	verbosity  int
	configFile string
	sorted     bool
	strict     bool
	algorithm  string

	cfg *config.Config
}

// overrides returns the config keys of the flags the user actually set.
func (o *options) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	out := make(map[string]interface{})
	if flags.Changed("verbose") {
		out[config.KeyLogVerbosity] = o.verbosity
	}
	if flags.Changed("sorted") {
		out[config.KeyOutputSorted] = o.sorted
	}
	if flags.Changed("strict") {
		out[config.KeyParseStrict] = o.strict
	}
	if flags.Changed("algorithm") {
		out[config.KeyMultiplyAlgorithm] = o.algorithm
	}
	return out
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "sparsecalc",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				File:      opts.configFile,
				Overrides: opts.overrides(cmd),
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			opts.cfg = cfg

			logging.SetupLogger(cfg.Log.Verbosity, cmd.ErrOrStderr(), cfg.Log.File)
			if !logging.IsTerminal(cmd.OutOrStdout()) {
				pterm.DisableStyling()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	pf.BoolVar(&opts.sorted, "sorted", false, MsgFlagSorted)
	pf.BoolVar(&opts.strict, "strict", false, MsgFlagStrict)
	pf.StringVar(&opts.algorithm, "algorithm", "", MsgFlagAlgorithm)

	rootCmd.AddCommand(newOpCmd(opts, calc.OpAdd, MsgAddShort))
	rootCmd.AddCommand(newOpCmd(opts, calc.OpSubtract, MsgSubtractShort))
	rootCmd.AddCommand(newOpCmd(opts, calc.OpMultiply, MsgMultiplyShort))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newOpCmd builds the subcommand running op on two files.
func newOpCmd(opts *options, op calc.Operation, short string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   op.String() + " <left> <right>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, calc.Request{
				Op:     op,
				Left:   args[0],
				Right:  args[1],
				Output: output,
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// execute runs one request and reports the written path.
func execute(cmd *cobra.Command, opts *options, req calc.Request) error {
	logger := logging.GetLogger("cmd." + req.Op.String())
	logger.Info().
		Str("left", req.Left).
		Str("right", req.Right).
		Str("output", req.Output).
		Msg("Starting operation")

	runner := calc.NewRunner(opts.cfg)
	path, err := runner.Run(req)
	if err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), MsgResultSaved, path)
	return nil
}

// runPrompt asks for the operation and both files on stdin, then runs it.
func runPrompt(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(cmd.InOrStdin())
	printTitle(out)

	answer, err := ask(sc, out, MsgPromptOperation)
	if err != nil {
		return err
	}
	op, err := calc.ParseOperation(answer)
	if err != nil {
		return fmt.Errorf("%s: %w", MsgInvalidOp, err)
	}
	left, err := ask(sc, out, MsgPromptFirst)
	if err != nil {
		return err
	}
	right, err := ask(sc, out, MsgPromptSecond)
	if err != nil {
		return err
	}

	return execute(cmd, opts, calc.Request{Op: op, Left: left, Right: right})
}

// ask prints question and returns the next trimmed input line.
func ask(sc *bufio.Scanner, w io.Writer, question string) (string, error) {
	_, _ = fmt.Fprint(w, question)
	if !sc.Scan() {
		err := sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf(MsgErrNoInput, err)
	}
	return strings.TrimSpace(sc.Text()), nil
}
