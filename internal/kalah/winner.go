package kalah

// Winner returns the player whose store holds more than half of the stones, or NoPlayer.
// Equal stores never produce a winner, even above the threshold.
func (that *Engine) Winner(board Board) Turn {
	first, second := board.Store(Player1), board.Store(Player2)
	if first == second {
		return NoPlayer
	}

	threshold := that.config.WinThreshold()

	switch {
	case first > threshold:
		return Player1
	case second > threshold:
		return Player2
	default:
		return NoPlayer
	}
}
