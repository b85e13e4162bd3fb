package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/randstr/internal/config"
	"github.com/mcoot/randstr/internal/factory"
	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/services/generator"
)

var (
	cfg *config.Config
	app *factory.App
)

type generateOptions struct {
	literals  []string
	files     []string
	classes   []string
	unique    bool
	seed      int64
	newline   bool
	verbosity int
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}
	loader := config.NewLoader(DefaultConfig())

	rootCmd := &cobra.Command{
		Use:   "randstr NUM_OR_RANGE",
		Short: "Generate a random string from a weighted alphabet",
		Long: `randstr prints one random string built from the given character sources.

The length is either a number N or an inclusive range LO-HI, in which case
the length itself is drawn at random. Characters come from literal strings
(-a), UTF-8 text files (-f) and character class flags (-c). Every occurrence
of a character adds one to its weight, so "-a abbccc" draws c three times as
often as a. With no sources the alphabet is ASCII letters and digits.

With -u each occurrence is used at most once, so the length may not exceed
the total number of occurrences.

Character class flags:
  S  whitespace       L  lowercase letters   U  uppercase letters
  A  letters          D  digits              H  hexadecimal digits
  O  octal digits     P  punctuation         *  printable (D, A, P and S)`,
		Example: `  randstr 16
  randstr 8-12 -c LD
  randstr 10 -u -c D -s 69
  randstr 20 -a abbccc -f words.txt -n`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loader.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			app, err = factory.New(factory.ConfigFrom(cfg, logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&opts.literals, "alphabet", "a", nil, "Literal characters to add to the alphabet (repeatable)")
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "UTF-8 text file whose characters are added to the alphabet (repeatable)")
	flags.StringArrayVarP(&opts.classes, "classes", "c", nil, "Character class flags to add to the alphabet (repeatable)")
	flags.BoolVarP(&opts.unique, "unique", "u", false, "Use each character occurrence at most once")
	flags.Int64VarP(&opts.seed, "seed", "s", 0, "Seed for the random number generator")
	flags.BoolVarP(&opts.newline, "newline", "n", false, "Print a trailing newline")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Print the seed to stderr; twice also prints the alphabet")

	loader.RegisterFlags(rootCmd.PersistentFlags(),
		config.KeyConfigFile,
		config.KeyStorageType,
		config.KeyRedisURL,
		config.KeyLogLevel,
	)

	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newReplayCmd())

	return rootCmd
}

func runGenerate(cmd *cobra.Command, lengthSpec string, opts *generateOptions) error {
	stderr := cmd.ErrOrStderr()

	req := generator.Request{
		Length:    lengthSpec,
		Literals:  opts.literals,
		FilePaths: opts.files,
		Classes:   opts.classes,
		Unique:    opts.unique,
		OnSeed: func(seed int64) {
			if opts.verbosity >= 1 {
				fmt.Fprintf(stderr, "SEED: %d\n", seed)
			}
		},
		OnAlphabet: func(alphabet model.WeightedAlphabet) {
			if opts.verbosity >= 2 {
				fmt.Fprintf(stderr, "ALPHABET: %s\n", alphabet)
			}
		},
	}
	if cmd.Flags().Changed("seed") {
		seed := opts.seed
		req.Seed = &seed
	}

	result, err := app.GeneratorService.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	printString(cmd.OutOrStdout(), result.Output, opts.newline)
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
