package deck

import (
	"errors"
	"math/rand"

	"github.com/arcanaland/twentyone/internal/card"
)

// ErrExhausted is returned when every card in the deck has been dealt
var ErrExhausted = errors.New("deck exhausted")

// Deck represents a 52-card deck in shuffle order, consumed front to back
type Deck struct {
	cards [card.Count]card.Card
	next  int
	rng   *rand.Rand
}

// New creates a deck in identifier order that shuffles with rng
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.reset()
	return d
}

// NewSeeded creates a deck backed by a generator seeded with seed
func NewSeeded(seed int64) *Deck {
	return New(rand.New(rand.NewSource(seed)))
}

func (d *Deck) reset() {
	for i := range d.cards {
		d.cards[i] = card.Card(i)
	}
	d.next = 0
}

// Shuffle resets the deck to 0..51 and permutes it with the
// Fisher-Yates / Durstenfeld algorithm. The dealing cursor is rewound.
func (d *Deck) Shuffle() {
	d.reset()
	for k := len(d.cards) - 1; k > 0; k-- {
		j := d.rng.Intn(k + 1)
		d.cards[k], d.cards[j] = d.cards[j], d.cards[k]
	}
}

// Deal returns the next undealt card and advances the cursor
func (d *Deck) Deal() (card.Card, error) {
	if d.next >= len(d.cards) {
		return 0, ErrExhausted
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// Dealt returns how many cards have been taken from the deck
func (d *Deck) Dealt() int {
	return d.next
}

// Remaining returns how many cards are left to deal
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Cards returns the full deck order, dealt cards included
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards[:])
	return out
}
