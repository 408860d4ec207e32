package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/hand"
)

func newCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card [card_id...]",
		Short: "Display cards by identifier",
		Long: `Card prints the label and base value of each card identifier.
Identifiers run from 0 (2-H) to 51 (A-C); the rank is id%13 and the suit is id/13.

Examples:
  twentyone card 0 51`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parseCards(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range cards {
				fmt.Fprintf(out, "%2d  %-4s %2d\n", int(c), c, c.Value())
			}
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [card_id...]",
		Short: "Score a hand of cards",
		Long: `Score prints a hand and its best total, counting Aces as 11 and
softening them to 1 where that avoids a bust.

Examples:
  twentyone score 12 25     # A-H A-S scores 12
  twentyone score 5 18 6    # 7-H 7-S 8-H busts at 22`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parseCards(args)
			if err != nil {
				return err
			}

			h := hand.Hand(cards)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hand: %s\n", h)
			if h.Busted() {
				fmt.Fprintf(out, "Score: %d (bust)\n", h.BestScore())
			} else {
				fmt.Fprintf(out, "Score: %d\n", h.BestScore())
			}
			return nil
		},
	}
}

// parseCards converts command arguments into card identifiers
func parseCards(args []string) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(args))
	for _, arg := range args {
		c, err := card.Parse(arg)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
