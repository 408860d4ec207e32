package game

import "fmt"

// Outcome identifies one settlement line
type Outcome int

const (
	Win Outcome = iota
	Lose
	Tie
	PlayerBust
	DealerBust
)

// Result is a single line of round settlement
type Result struct {
	Outcome Outcome
	Player  int
	Dealer  int
}

// String formats the result the way it is printed at the end of a round
func (r Result) String() string {
	switch r.Outcome {
	case Win:
		return fmt.Sprintf("Win %d %d", r.Player, r.Dealer)
	case Lose:
		return fmt.Sprintf("Lose %d %d", r.Player, r.Dealer)
	case Tie:
		return fmt.Sprintf("Tie %d %d", r.Player, r.Dealer)
	case PlayerBust:
		return "Player busts"
	case DealerBust:
		return "Dealer busts"
	}
	return fmt.Sprintf("Outcome(%d)", int(r.Outcome))
}

// Settle compares final scores and returns every line the round prints.
//
// The checks are independent and run in a fixed order, so a degenerate
// pair of scores can produce more than one verdict.
func Settle(player, dealer int) []Result {
	var results []Result
	add := func(o Outcome) {
		results = append(results, Result{Outcome: o, Player: player, Dealer: dealer})
	}

	if player <= 21 && player > dealer {
		add(Win)
	}

	if player > 21 {
		add(PlayerBust)
		add(Lose)
	}

	if dealer <= 21 && player < dealer {
		add(Lose)
	}

	if dealer > 21 {
		add(DealerBust)
		add(Win)
	}

	if dealer == player {
		add(Tie)
	}

	return results
}
