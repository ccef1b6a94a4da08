package kalah

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

func TestValidateStart(t *testing.T) {
	board := mustBoard(t, 6, 0, 6, 6, 6, 6, 0, 6, 6, 6, 6, 6, 0, 0)

	t.Run("Accepts a loaded pit of the mover's row", func(t *testing.T) {
		assert.NoError(t, validateStart(board, Player1, 1))
		assert.NoError(t, validateStart(board, Player2, 8))
	})

	t.Run("Rejects an empty pit", func(t *testing.T) {
		require.ErrorIs(t, validateStart(board, Player1, 2), apperror.ErrInvalidStartPit)
		require.ErrorIs(t, validateStart(board, Player2, 13), apperror.ErrInvalidStartPit)
	})

	t.Run("Rejects pits outside the mover's row", func(t *testing.T) {
		require.ErrorIs(t, validateStart(board, Player1, 9), apperror.ErrInvalidStartPit)
		require.ErrorIs(t, validateStart(board, Player2, 3), apperror.ErrInvalidStartPit)
		require.ErrorIs(t, validateStart(board, Player1, 7), apperror.ErrInvalidStartPit)
	})
}

func TestValidateLandingContinuation(t *testing.T) {
	board := newTestEngine(t).NewGame()

	assert.ErrorIs(t, validateLandingContinuation(board, Player1, 7), errStoppedAtOwnStore)
	assert.ErrorIs(t, validateLandingContinuation(board, Player2, 14), errStoppedAtOwnStore)
	assert.NoError(t, validateLandingContinuation(board, Player1, 14))
	assert.NoError(t, validateLandingContinuation(board, Player2, 7))
	assert.NoError(t, validateLandingContinuation(board, Player1, 9))
}
