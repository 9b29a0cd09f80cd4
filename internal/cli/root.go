// Package cli wires the minigrep command: flags, logger, configuration and runner
package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/runner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Options struct {
	Verbose bool
	LogFile string
	Workers int
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(func() (parser.Environment, error) {
		return parser.NewEnvironment()
	})
}

func newRootCommand(newEnv func() (parser.Environment, error)) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <filename> [case_sensitive]",
		Short: "Print lines of a file that contain the query",
		Long: `Print every line of <filename> containing <query>.

The optional third argument sets case sensitivity: "false", "no" or "0" (any case)
search ignoring case, anything else searches exactly. Without it the search ignores
case when the CASE_INSENSITIVE environment variable is set.

Flags are read only from the start of the command line and only while at least
<query> and <filename> remain after them, so "minigrep -1 file.txt" searches for "-1".
Use "--" to end flags explicitly: minigrep --verbose -- --verbose file.txt`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// одиночный -h/--help - справка, в остальных случаях это обычный запрос
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}

			positional, err := splitArgs(cmd.Flags(), args)
			if err != nil {
				return err
			}

			env, err := newEnv()
			if err != nil {
				return err
			}
			cfg, err := parser.Resolve(positional, env)
			if err != nil {
				return err
			}

			if opts.Workers < 0 {
				return errors.New("workers must be >= 0")
			}

			logOpts := logger.DefaultOptions()
			logOpts.Verbose = opts.Verbose
			logOpts.File = opts.LogFile
			log, closer, err := logger.New(cmd.ErrOrStderr(), logOpts)
			if err != nil {
				return err
			}
			defer closeLogSink(log, closer)

			r := runner.Runner{
				Processor: processor.Processor{Workers: opts.Workers},
				Log:       log,
			}
			if err := r.Run(cmd.Context(), cfg, cmd.OutOrStdout()); err != nil {
				log.Debug().Err(err).Msg("search failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "print debug diagnostics to stderr")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "also write diagnostics as JSON to a rotated log file")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "max goroutines scanning a large file (0 = GOMAXPROCS)")

	return cmd
}

// splitArgs sets the leading known flags and returns the rest as positionals.
// It stops at "--", at the first token that is not a known flag, and before a flag
// whose consumption would leave fewer than two positionals (that token is the query).
func splitArgs(fs *pflag.FlagSet, args []string) ([]string, error) {
	i := 0
	for i < len(args) {
		a := args[i]
		if a == "--" {
			return args[i+1:], nil
		}

		f, value, hasValue := lookupFlag(fs, a)
		if f == nil || f.Name == "help" {
			break
		}

		consumed := 1
		switch {
		case hasValue:
		case f.NoOptDefVal != "": // bool-флаг без значения
			value = f.NoOptDefVal
		default:
			if i+1 >= len(args) {
				return args[i:], nil
			}
			value = args[i+1]
			consumed = 2
		}

		if len(args)-(i+consumed) < 2 {
			break
		}
		if err := fs.Set(f.Name, value); err != nil {
			return nil, err
		}
		i += consumed
	}
	return args[i:], nil
}

// lookupFlag recognizes "--name", "--name=value", "-x" and "-x=value"
func lookupFlag(fs *pflag.FlagSet, arg string) (*pflag.Flag, string, bool) {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, value, hasValue := strings.Cut(arg[2:], "=")
		return fs.Lookup(name), value, hasValue
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		short, value, hasValue := strings.Cut(arg[1:], "=")
		if len(short) != 1 {
			return nil, "", false
		}
		return fs.ShorthandLookup(short), value, hasValue
	default:
		return nil, "", false
	}
}

func closeLogSink(log zerolog.Logger, closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close log file")
	}
}
