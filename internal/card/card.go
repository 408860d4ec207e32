package card

import (
	"fmt"
	"io"
	"strconv"
)

// Count is the number of cards in a standard deck
const Count = 52

var (
	suits  = [4]string{"H", "S", "D", "C"}
	ranks  = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	values = [13]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}
)

// Card is a playing card identifier in [0, 51].
// The rank is id%13 (Two through Ace) and the suit is id/13 (H, S, D, C).
type Card int

// Rank returns the rank index, 0 for a Two up to 12 for an Ace
func (c Card) Rank() int {
	return int(c) % 13
}

// Suit returns the suit index, 0=Hearts 1=Spades 2=Diamonds 3=Clubs
func (c Card) Suit() int {
	return int(c) / 13
}

// Value returns the base value of the card. Aces count 11.
func (c Card) Value() int {
	return values[c.Rank()]
}

// IsAce reports whether the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank() == 12
}

// Valid reports whether the identifier is inside the deck
func (c Card) Valid() bool {
	return c >= 0 && c < Count
}

// String returns the card as "<rank>-<suit>", e.g. "K-C" or "2-H"
func (c Card) String() string {
	return ranks[c.Rank()] + "-" + suits[c.Suit()]
}

// Print writes the card followed by a single space
func Print(w io.Writer, c Card) error {
	_, err := io.WriteString(w, c.String()+" ")
	return err
}

// Parse reads a card identifier from its decimal form
func Parse(s string) (Card, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid card id %q: %w", s, err)
	}

	c := Card(id)
	if !c.Valid() {
		return 0, fmt.Errorf("card id %d out of range [0, %d]", id, Count-1)
	}

	return c, nil
}
