package kalah

// OutcomeKind is the result of a sowing lap and, except for Continue, of a whole move.
type OutcomeKind int

const (
	// Continue - the lap landed in an occupied pit and sowing relays from there.
	Continue OutcomeKind = iota
	TurnEnded
	ExtraTurn
	Finished
)

func (that OutcomeKind) String() string {
	switch that {
	case Continue:
		return "continue"
	case TurnEnded:
		return "turn-ended"
	case ExtraTurn:
		return "extra-turn"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

func (that OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	// Next is the player to move; NoPlayer once the game is finished.
	Next   Turn `json:"next,omitempty"`
	Winner Turn `json:"winner,omitempty"`
}

func TurnEndedOutcome(next Turn) Outcome {
	return Outcome{Kind: TurnEnded, Next: next}
}

func ExtraTurnOutcome(turn Turn) Outcome {
	return Outcome{Kind: ExtraTurn, Next: turn}
}

func FinishedOutcome(winner Turn) Outcome {
	return Outcome{Kind: Finished, Winner: winner}
}

func (that Outcome) IsFinished() bool {
	return that.Kind == Finished
}
