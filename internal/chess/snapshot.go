package chess

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Snapshot is the persisted form of a board: one byte per square, then the
// squares of the previous and active pieces.
type Snapshot [66]uint8

const (
	previousSlot = 64
	activeSlot   = 65
	noSquare     = 0xFF
)

// Snapshot captures the whole board, flags included.
func (board *Board) Snapshot() Snapshot {
	var s Snapshot
	for _, p := range board.Pieces() {
		s[p.Location.index()] = p.code()
	}
	s[previousSlot] = squareOf(board.previous)
	s[activeSlot] = squareOf(board.active)
	return s
}

func squareOf(p *Piece) uint8 {
	if p == nil {
		return noSquare
	}
	return uint8(p.Location.index())
}

// Restore rebuilds a board from a snapshot and refreshes every piece.
func Restore(s Snapshot) (*Board, error) {
	board := NewBoard()
	var kings [2]int
	for i := 0; i < 64; i++ {
		if s[i] == 0 {
			continue
		}
		loc := locationAt(i)
		p, ok := pieceFromCode(s[i], loc)
		if !ok {
			return nil, fmt.Errorf("%w: byte %#02x on %s", ErrInvalidSnapshot, s[i], loc)
		}
		board.set(loc, p)
		if p.Kind == King {
			kings[p.Color]++
			board.kings[p.Color] = p
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("%w: %d white and %d black kings", ErrInvalidSnapshot, kings[White], kings[Black])
	}
	var err error
	if board.previous, err = board.pieceAtSlot(s[previousSlot]); err != nil {
		return nil, err
	}
	if board.active, err = board.pieceAtSlot(s[activeSlot]); err != nil {
		return nil, err
	}
	board.Refresh()
	return board, nil
}

func (board *Board) pieceAtSlot(square uint8) (*Piece, error) {
	if square == noSquare {
		return nil, nil
	}
	if square >= 64 {
		return nil, fmt.Errorf("%w: square %d", ErrInvalidSnapshot, square)
	}
	p := board.At(locationAt(int(square)))
	if p == nil {
		return nil, fmt.Errorf("%w: empty square %s referenced", ErrInvalidSnapshot, locationAt(int(square)))
	}
	return p, nil
}

func (s Snapshot) String() string {
	return hex.EncodeToString(s[:])
}

// ParseSnapshot decodes the hex form produced by String.
func ParseSnapshot(text string) (Snapshot, error) {
	var s Snapshot
	src, err := hex.DecodeString(text)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if len(src) != len(s) {
		return s, fmt.Errorf("%w: length %d", ErrInvalidSnapshot, len(src))
	}
	copy(s[:], src)
	return s, nil
}

// Value implements driver.Valuer.
func (s Snapshot) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *Snapshot) Scan(cell interface{}) error {
	switch cell := cell.(type) {
	case string:
		state, err := ParseSnapshot(cell)
		if err != nil {
			return err
		}
		*s = state
	case []byte:
		state, err := ParseSnapshot(string(cell))
		if err != nil {
			return err
		}
		*s = state
	default:
		return fmt.Errorf("invalid format scanning %#v", cell)
	}
	return nil
}

// MarshalJSON encodes the snapshot as its hex string.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the hex string.
func (s *Snapshot) UnmarshalJSON(bytes []byte) error {
	var text string
	if err := json.Unmarshal(bytes, &text); err != nil {
		return err
	}
	state, err := ParseSnapshot(text)
	if err != nil {
		return err
	}
	*s = state
	return nil
}
