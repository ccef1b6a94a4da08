package kalah

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

// errStoppedAtOwnStore ends a move cleanly: the next lap would start from the mover's store.
var errStoppedAtOwnStore = errors.New("stopped at own store")

// validateStart - checks the first pit of a move.
func validateStart(board Board, turn Turn, pitID int) error {
	if !board.InRow(turn, pitID) {
		return fmt.Errorf("%w: pit %d is not in the row of %s", apperror.ErrInvalidStartPit, pitID, turn)
	}

	if board.Pit(pitID) == 0 {
		return fmt.Errorf("%w: pit %d is empty", apperror.ErrInvalidStartPit, pitID)
	}

	return nil
}

// validateLandingContinuation - runs before every lap, the first one included.
func validateLandingContinuation(board Board, turn Turn, pitID int) error {
	if pitID == board.StoreIndex(turn) {
		return errStoppedAtOwnStore
	}

	return nil
}
