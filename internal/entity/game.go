package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID        int64      `json:"id"`
	Pits      []int      `json:"pits"`
	Turn      kalah.Turn `json:"turn"`
	Winner    kalah.Turn `json:"winner"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewGame(id int64, board kalah.Board, now time.Time) *Game {
	return &Game{
		ID:        id,
		Pits:      board.Pits(),
		Turn:      kalah.Player1,
		Status:    StatusOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Board - the stored pits as an engine board.
func (that *Game) Board() (kalah.Board, error) {
	board, err := kalah.NewBoard(that.Pits)
	if err != nil {
		return kalah.Board{}, fmt.Errorf("game %d: %w", that.ID, err)
	}

	return board, nil
}

// ApplyOutcome - records the board and the outcome of an accepted move.
func (that *Game) ApplyOutcome(board kalah.Board, outcome kalah.Outcome, now time.Time) {
	that.Pits = board.Pits()
	that.UpdatedAt = now

	if outcome.IsFinished() {
		that.Winner = outcome.Winner
		that.Status = StatusFinished
		that.Turn = kalah.NoPlayer

		return
	}

	that.Turn = outcome.Next
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
