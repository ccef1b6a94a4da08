package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

func newBoard(t *testing.T) kalah.Board {
	t.Helper()

	engine, err := kalah.NewEngine(kalah.DefaultConfig())
	require.NoError(t, err)

	return engine.NewGame()
}

func TestNewGame(t *testing.T) {
	// Given: a fresh board and a creation time
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// When: a game record is created
	game := NewGame(42, newBoard(t), now)

	// Then: player 1 moves first on an ongoing game
	expectedGame := &Game{
		ID:        42,
		Pits:      []int{6, 6, 6, 6, 6, 6, 0, 6, 6, 6, 6, 6, 6, 0},
		Turn:      kalah.Player1,
		Winner:    kalah.NoPlayer,
		Status:    StatusOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_Board(t *testing.T) {
	t.Run("Returns the stored pits", func(t *testing.T) {
		game := NewGame(1, newBoard(t), time.Now())

		board, err := game.Board()

		require.NoError(t, err)
		assert.Equal(t, game.Pits, board.Pits())
	})

	t.Run("Returns an error for a corrupted record", func(t *testing.T) {
		game := &Game{ID: 1, Pits: []int{1, 2, 3}}

		_, err := game.Board()

		require.ErrorIs(t, err, kalah.ErrInvalidBoard)
	})
}

func TestGame_ApplyOutcome(t *testing.T) {
	t.Run("Passes the turn", func(t *testing.T) {
		// Given: an ongoing game
		game := NewGame(1, newBoard(t), time.Now())
		board, err := kalah.NewBoard([]int{7, 1, 7, 7, 7, 7, 1, 0, 7, 7, 7, 7, 7, 0})
		require.NoError(t, err)

		// When: a move ended the turn of player 1
		game.ApplyOutcome(board, kalah.TurnEndedOutcome(kalah.Player2), time.Now())

		// Then: player 2 is next and the pits are stored
		assert.Equal(t, kalah.Player2, game.Turn)
		assert.Equal(t, board.Pits(), game.Pits)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Finishes the game", func(t *testing.T) {
		// Given: an ongoing game
		game := NewGame(1, newBoard(t), time.Now())
		board, err := kalah.NewBoard([]int{0, 0, 0, 0, 0, 0, 37, 2, 5, 0, 0, 0, 0, 0})
		require.NoError(t, err)

		// When: a move finished the game
		game.ApplyOutcome(board, kalah.FinishedOutcome(kalah.Player1), time.Now())

		// Then: the winner is recorded and nobody is to move
		assert.Equal(t, kalah.Player1, game.Winner)
		assert.Equal(t, kalah.NoPlayer, game.Turn)
		assert.True(t, game.IsFinished())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}
