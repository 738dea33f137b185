package reflex

import "fmt"

// Tally counts finished rounds for the current process. It is never saved.
type Tally struct {
	Rounds      int
	Wins        int
	Losses      int
	FalseStarts int
	best        float64
	hasBest     bool
	history     []Outcome
}

// MaxHistory bounds the outcomes a Tally keeps.
const MaxHistory = 100

// Outcome describes one counted round.
type Outcome struct {
	Round       int
	FalseStart  bool
	Correct     bool
	Side        Side
	ElapsedTime float64
}

// Label is a one-word summary: "win", "loss" or "false start".
func (o Outcome) Label() string {
	switch {
	case o.FalseStart:
		return "false start"
	case o.Correct:
		return "win"
	default:
		return "loss"
	}
}

// Record compares the states before and after a single event and counts the
// round if that event finished it. Returns true when a round was counted.
func (t *Tally) Record(prev, next State) bool {
	switch n := next.(type) {
	case Result:
		if _, ok := prev.(Running); !ok {
			return false
		}
		t.Rounds++
		t.push(Outcome{Round: t.Rounds, Correct: n.Correct, Side: n.Side, ElapsedTime: n.ElapsedTime})
		if !n.Correct {
			t.Losses++
			return true
		}
		t.Wins++
		if !t.hasBest || n.ElapsedTime < t.best {
			t.best = n.ElapsedTime
			t.hasBest = true
		}
		return true

	case FalseStart:
		if _, ok := prev.(Preparing); !ok {
			return false
		}
		t.Rounds++
		t.FalseStarts++
		t.push(Outcome{Round: t.Rounds, FalseStart: true})
		return true
	}
	return false
}

func (t *Tally) push(o Outcome) {
	t.history = append(t.history, o)
	if len(t.history) > MaxHistory {
		t.history = t.history[len(t.history)-MaxHistory:]
	}
}

// History returns the most recent outcomes, newest first.
func (t Tally) History() []Outcome {
	out := make([]Outcome, len(t.history))
	for i, o := range t.history {
		out[len(t.history)-1-i] = o
	}
	return out
}

// Best returns the fastest winning reaction time, if any round was won.
func (t Tally) Best() (float64, bool) {
	return t.best, t.hasBest
}

// String renders the tally as a single status line.
func (t Tally) String() string {
	best := "-"
	if t.hasBest {
		best = FormatTime(t.best)
	}
	return fmt.Sprintf("rounds: %d  wins: %d  losses: %d  false starts: %d  best: %s",
		t.Rounds, t.Wins, t.Losses, t.FalseStarts, best)
}
