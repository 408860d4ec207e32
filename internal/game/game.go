package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/hand"
	"github.com/arcanaland/twentyone/internal/logging"
)

// DealerStand is the score at which the dealer stops drawing
const DealerStand = 17

// Shoe is the card source for a game. Shuffle starts a fresh order and
// Deal hands out cards from its front.
type Shoe interface {
	Shuffle()
	Deal() (card.Card, error)
}

// Round holds the hands of a single deal
type Round struct {
	Player hand.Hand
	Dealer hand.Hand
}

// Game runs rounds of Twenty-One on a console
type Game struct {
	in      *bufio.Reader
	out     io.Writer
	shoe    Shoe
	palette Palette
	logger  *log.Logger
	err     error
}

// Option configures a Game
type Option func(*Game)

// WithPalette colors settlement lines
func WithPalette(p Palette) Option {
	return func(g *Game) {
		g.palette = p
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game reading choices from in and writing the table to out
func New(in io.Reader, out io.Writer, shoe Shoe, opts ...Option) *Game {
	g := &Game{
		in:     bufio.NewReader(in),
		out:    out,
		shoe:   shoe,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run plays rounds until the player declines to continue
func (g *Game) Run() error {
	for n := 1; ; n++ {
		g.logger.Debug("Starting round", "round", n)
		if _, err := g.PlayRound(); err != nil {
			return fmt.Errorf("round %d: %w", n, err)
		}

		g.println("")
		g.println("Play again? [y/n]")
		if g.err != nil {
			return g.err
		}

		answer, err := g.readChoice()
		if errors.Is(err, io.EOF) {
			g.logger.Debug("Input closed, leaving table")
			return nil
		}
		if err != nil {
			return err
		}
		if answer != 'y' {
			return nil
		}
	}
}

// PlayRound deals, runs the player and dealer turns and prints the settlement
func (g *Game) PlayRound() (*Round, error) {
	r := &Round{}

	g.shoe.Shuffle()
	g.logger.Debug("Shuffled deck")

	if err := g.deal(r); err != nil {
		return r, err
	}
	if err := g.playerTurn(r); err != nil {
		return r, err
	}
	if err := g.dealerTurn(r); err != nil {
		return r, err
	}

	player, dealer := r.Player.BestScore(), r.Dealer.BestScore()
	g.logger.Debug("Settling round", "player", player, "dealer", dealer)
	for _, res := range Settle(player, dealer) {
		g.println(g.palette.Render(res))
	}

	return r, g.err
}

func (g *Game) deal(r *Round) error {
	for i := 0; i < 2; i++ {
		if err := g.draw(&r.Player); err != nil {
			return err
		}
		if err := g.draw(&r.Dealer); err != nil {
			return err
		}
	}

	g.println("Dealer: ? " + r.Dealer[1].String() + " ")
	g.println("Player: " + r.Player.String())
	return g.err
}

func (g *Game) playerTurn(r *Round) error {
	soliciting := true
	for soliciting {
		if r.Player.BestScore() >= hand.Blackjack {
			break
		}

		g.println("Type 'h' to hit and 's' to stay:")
		if g.err != nil {
			return g.err
		}

		choice, err := g.readChoice()
		if errors.Is(err, io.EOF) {
			g.logger.Debug("Input closed, player stays")
			break
		}
		if err != nil {
			return err
		}

		switch choice {
		case 'h':
			if err := g.draw(&r.Player); err != nil {
				return err
			}
			g.logger.Debug("Player hit", "hand", r.Player.String(), "score", r.Player.BestScore())
			g.println("Player: " + r.Player.String())
		case 's':
			soliciting = false
		}
	}

	return g.err
}

func (g *Game) dealerTurn(r *Round) error {
	if !r.Player.Busted() {
		for r.Dealer.BestScore() < DealerStand {
			if err := g.draw(&r.Dealer); err != nil {
				return err
			}
		}
	}

	g.logger.Debug("Dealer stands", "hand", r.Dealer.String(), "score", r.Dealer.BestScore())
	g.println("Dealer: " + r.Dealer.String())
	return g.err
}

func (g *Game) draw(h *hand.Hand) error {
	c, err := g.shoe.Deal()
	if err != nil {
		return fmt.Errorf("dealing card: %w", err)
	}
	h.Add(c)
	return nil
}

// readChoice skips whitespace and returns the next character of input
func (g *Game) readChoice() (rune, error) {
	for {
		r, _, err := g.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// println writes a line to the table; the first write error sticks
func (g *Game) println(line string) {
	if g.err != nil {
		return
	}
	if _, err := io.WriteString(g.out, line+"\n"); err != nil {
		g.err = fmt.Errorf("writing output: %w", err)
	}
}
