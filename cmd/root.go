package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/twentyone/internal/config"
	"github.com/arcanaland/twentyone/internal/deck"
	"github.com/arcanaland/twentyone/internal/game"
	"github.com/arcanaland/twentyone/internal/logging"
)

// ErrMissingSeed is returned when the game is started without a seed.
// Its message has already been printed on stdout when it is returned.
var ErrMissingSeed = errors.New("missing seed")

const missingSeedMessage = "Error - Please provide the seed value."

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	color    string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "twentyone [seed]",
		Short: "Play Twenty-One against the dealer",
		Long: `Twentyone is a console game of Twenty-One (Blackjack) against a dealer
that draws to 17. The seed makes every shuffle reproducible.

Examples:
  twentyone 42
  twentyone --color never 7 < moves.txt
  twentyone -- -5`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), missingSeedMessage)
				return ErrMissingSeed
			}
			seed := parseSeed(args[0])

			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			logger.Debug("Starting game", "seed", seed, "color", cfg.Color)

			g := game.New(cmd.InOrStdin(), out, deck.NewSeeded(seed),
				game.WithPalette(game.NewPalette(useColor(cfg.Color, out))),
				game.WithLogger(logger),
			)
			return g.Run()
		},
	}

	root.PersistentFlags().StringVar(&opts.color, "color", "", "Color outcome lines: auto, always or never")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Diagnostics level on stderr: debug, info, warn or error")

	root.AddCommand(newCardCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newDealCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// load reads the config file, applies flag overrides and builds the logger
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if o.color != "" {
		cfg.Color = o.color
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// useColor resolves a color mode against the output stream
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// parseSeed reads the leading integer of s the way C atoi does:
// leading whitespace and a sign are accepted, parsing stops at the first
// non-digit, and input without digits yields 0.
func parseSeed(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	// ParseInt clamps to the int64 range on overflow
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return n
}
