package kalah

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid board config")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrUnknownPlayer = errors.New("unknown player")
)

// Turn identifies the player whose row may be sown and whose store scores.
type Turn int

const (
	NoPlayer Turn = iota
	Player1
	Player2
)

func (that Turn) Opponent() Turn {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (that Turn) Valid() bool {
	return that == Player1 || that == Player2
}

func (that Turn) String() string {
	switch that {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return ""
	}
}

func (that Turn) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Turn) UnmarshalText(text []byte) error {
	turn, err := ParseTurn(string(text))
	if err != nil {
		return err
	}

	*that = turn

	return nil
}

// ParseTurn - parses "P1", "P2" or an empty string (NoPlayer).
func ParseTurn(s string) (Turn, error) {
	switch s {
	case "P1":
		return Player1, nil
	case "P2":
		return Player2, nil
	case "":
		return NoPlayer, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
	}
}

// Config describes the board size. Store indices and the win threshold are derived from it.
type Config struct {
	PitsPerSide  int
	StonesPerPit int
}

func DefaultConfig() Config {
	return Config{PitsPerSide: 6, StonesPerPit: 6}
}

func (that Config) Validate() error {
	if that.PitsPerSide < 1 || that.StonesPerPit < 1 {
		return fmt.Errorf("%w: %d pits per side, %d stones per pit", ErrInvalidConfig, that.PitsPerSide, that.StonesPerPit)
	}

	return nil
}

// PitCount - number of pits including both stores.
func (that Config) PitCount() int {
	return 2 * (that.PitsPerSide + 1)
}

// TotalStones - stones on a fresh board.
func (that Config) TotalStones() int {
	return 2 * that.PitsPerSide * that.StonesPerPit
}

func (that Config) WinThreshold() int {
	return that.TotalStones() / 2
}

// Board is an ordered set of pits numbered from 1. The last pit of each half is a store.
type Board struct {
	pits []int
}

// NewBoard - builds a board from pit counts, pits[0] being pit 1.
func NewBoard(pits []int) (Board, error) {
	if len(pits) < 4 || len(pits)%2 != 0 {
		return Board{}, fmt.Errorf("%w: %d pits", ErrInvalidBoard, len(pits))
	}

	for i, stones := range pits {
		if stones < 0 {
			return Board{}, fmt.Errorf("%w: pit %d holds %d stones", ErrInvalidBoard, i+1, stones)
		}
	}

	board := Board{pits: make([]int, len(pits))}
	copy(board.pits, pits)

	return board, nil
}

func newInitialBoard(conf Config) Board {
	board := Board{pits: make([]int, conf.PitCount())}
	for pit := 1; pit <= board.Len(); pit++ {
		if !board.IsStore(pit) {
			board.pits[pit-1] = conf.StonesPerPit
		}
	}

	return board
}

func (that Board) Len() int {
	return len(that.pits)
}

func (that Board) Pit(id int) int {
	return that.pits[id-1]
}

// Pits - a copy of the pit counts.
func (that Board) Pits() []int {
	pits := make([]int, len(that.pits))
	copy(pits, that.pits)

	return pits
}

// StoreIndex - pit number of the player's store.
func (that Board) StoreIndex(turn Turn) int {
	if turn == Player2 {
		return len(that.pits)
	}

	return len(that.pits) / 2
}

func (that Board) Store(turn Turn) int {
	return that.Pit(that.StoreIndex(turn))
}

func (that Board) IsStore(id int) bool {
	return id == that.StoreIndex(Player1) || id == that.StoreIndex(Player2)
}

// InRow reports whether the pit is one of the player's sowable pits.
func (that Board) InRow(turn Turn, id int) bool {
	half := len(that.pits) / 2

	switch turn {
	case Player1:
		return id >= 1 && id < half
	case Player2:
		return id > half && id < len(that.pits)
	default:
		return false
	}
}

func (that Board) Total() int {
	total := 0
	for _, stones := range that.pits {
		total += stones
	}

	return total
}

func (that Board) Clone() Board {
	return Board{pits: that.Pits()}
}

func (that Board) Equal(other Board) bool {
	if len(that.pits) != len(other.pits) {
		return false
	}

	for i := range that.pits {
		if that.pits[i] != other.pits[i] {
			return false
		}
	}

	return true
}

// String - renders the board as <p1,p2,...,pN>.
func (that Board) String() string {
	var buf bytes.Buffer

	buf.WriteByte('<')
	for i, stones := range that.pits {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%d", stones)
	}
	buf.WriteByte('>')

	return buf.String()
}

func (that Board) next(id int) int {
	if id == len(that.pits) {
		return 1
	}

	return id + 1
}
