package reflex

// State is the state of a round. Exactly one variant is current at any time
// and every transition replaces the whole value; variants share no fields.
type State interface {
	isState()
}

// Init is the state before the first round.
type Init struct{}

// Preparing counts down to the cue.
type Preparing struct {
	RemainingTime float64 // Seconds until the cue appears
}

// Running shows the cue and measures the reaction time.
type Running struct {
	ElapsedTime float64 // Seconds since the cue appeared
	Side        Side    // Cue side, fixed for the round
}

// FalseStart ends a round in which a key was pressed before the cue.
type FalseStart struct{}

// Result ends a round in which a direction was pressed after the cue.
type Result struct {
	ElapsedTime float64 // Reaction time in seconds
	Side        Side    // Cue side
	Correct     bool    // Whether the pressed direction matched Side
}

func (Init) isState()       {}
func (Preparing) isState()  {}
func (Running) isState()    {}
func (FalseStart) isState() {}
func (Result) isState()     {}
