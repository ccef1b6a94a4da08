package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrGameNotFound        = errors.New("game not found")
	ErrInvalidStartPit     = errors.New("invalid start pit")
	ErrGameAlreadyFinished = errors.New("move on a finished board")
)
