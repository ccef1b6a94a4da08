package kalah

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

// Engine resolves relay-sowing moves. It keeps no state between calls besides its config,
// so one engine may serve any number of games concurrently. Moves on the same board must be
// serialized by the caller.
type Engine struct {
	config Config
}

func NewEngine(conf Config) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &Engine{config: conf}, nil
}

func (that *Engine) Config() Config {
	return that.config
}

// NewGame - a fresh board; Player1 moves first.
func (that *Engine) NewGame() Board {
	return newInitialBoard(that.config)
}

// ApplyMove sows from pitID for turn and returns the resulting board and outcome.
// The given board is left untouched.
func (that *Engine) ApplyMove(board Board, turn Turn, pitID int) (Board, Outcome, error) {
	if !turn.Valid() {
		return board, Outcome{}, fmt.Errorf("%w: %d", ErrUnknownPlayer, turn)
	}

	if board.Len() != that.config.PitCount() {
		return board, Outcome{}, fmt.Errorf("%w: %d pits, expected %d", ErrInvalidBoard, board.Len(), that.config.PitCount())
	}

	if winner := that.Winner(board); winner != NoPlayer {
		return board, Outcome{}, fmt.Errorf("%w: %s has won", apperror.ErrGameAlreadyFinished, winner)
	}

	if err := validateStart(board, turn, pitID); err != nil {
		return board, Outcome{}, err
	}

	result := board.Clone()

	var outcome Outcome
	for {
		var kind OutcomeKind
		kind, pitID = that.sowLap(result, turn, pitID)

		if kind == Continue {
			continue
		}

		switch kind {
		case ExtraTurn:
			outcome = ExtraTurnOutcome(turn)
		case TurnEnded:
			outcome = TurnEndedOutcome(turn.Opponent())
		case Finished:
			outcome = FinishedOutcome(that.Winner(result))
		}

		break
	}

	if winner := that.Winner(result); winner != NoPlayer {
		outcome = FinishedOutcome(winner)
	}

	return result, outcome, nil
}

// sowLap - one lap starting at pitID. Returns the lap result and the landing pit.
func (that *Engine) sowLap(board Board, turn Turn, pitID int) (OutcomeKind, int) {
	if err := validateLandingContinuation(board, turn, pitID); errors.Is(err, errStoppedAtOwnStore) {
		return ExtraTurn, pitID
	}

	// checked before pickup so a relay never sows past a decided game
	if that.Winner(board) != NoPlayer {
		return Finished, pitID
	}

	carry := board.pits[pitID-1]
	board.pits[pitID-1] = 0
	pitID = board.next(pitID)

	opponentStore := board.StoreIndex(turn.Opponent())
	for carry > 0 {
		if pitID == opponentStore {
			pitID = board.next(pitID)
			continue
		}

		board.pits[pitID-1]++
		carry--

		if carry > 0 {
			pitID = board.next(pitID)
		}
	}

	// own store relays so the next lap stops on it with an extra turn
	if pitID != board.StoreIndex(turn) && board.Pit(pitID) == 1 {
		return TurnEnded, pitID
	}

	return Continue, pitID
}
