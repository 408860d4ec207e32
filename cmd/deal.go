package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/twentyone/internal/deck"
	"github.com/arcanaland/twentyone/internal/hand"
)

func newDealCmd(opts *rootOptions) *cobra.Command {
	var rounds int

	dealCmd := &cobra.Command{
		Use:   "deal [seed]",
		Short: "Show the shuffled deck order for a seed",
		Long: `Deal prints the deck order the game would use for each round with the
given seed. The first four cards go player, dealer, player, dealer and
later cards are drawn from the front in order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1, got %d", rounds)
			}

			_, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			seed := parseSeed(args[0])
			d := deck.NewSeeded(seed)
			out := cmd.OutOrStdout()

			for i := 1; i <= rounds; i++ {
				d.Shuffle()
				logger.Debug("Shuffled deck", "seed", seed, "round", i)
				fmt.Fprintf(out, "Round %d: %s\n", i, hand.Hand(d.Cards()))
			}
			return nil
		},
	}

	dealCmd.Flags().IntVarP(&rounds, "rounds", "n", 1, "Number of successive shuffles to show")

	return dealCmd
}
