package hand

import (
	"strings"

	"github.com/arcanaland/twentyone/internal/card"
)

// Blackjack is the highest score that does not bust
const Blackjack = 21

// Hand is the ordered, append-only set of cards held by the player or dealer
type Hand []card.Card

// Add appends a card to the hand
func (h *Hand) Add(c card.Card) {
	*h = append(*h, c)
}

// BestScore returns the total of the hand with Aces counted as 11 and
// softened to 1 where that avoids a bust.
//
// Softening is a single pass in hand order: each Ace subtracts 10 if the
// running total is still over 21 when it is reached. The result may exceed
// 21 when there is no Ace left to soften.
func (h Hand) BestScore() int {
	sum := 0
	for _, c := range h {
		sum += c.Value()
	}

	for _, c := range h {
		if sum > Blackjack && c.IsAce() {
			sum -= 10
		}
	}

	return sum
}

// Busted reports whether the best score is over 21
func (h Hand) Busted() bool {
	return h.BestScore() > Blackjack
}

// String renders each card followed by a space, e.g. "A-H 10-S "
func (h Hand) String() string {
	var b strings.Builder
	for _, c := range h {
		b.WriteString(c.String())
		b.WriteByte(' ')
	}
	return b.String()
}
