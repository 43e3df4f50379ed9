package chess

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move is a legal move in notation form: ♙e2e4, ♙d5xc5, ♙e7e8Q.
type Move struct {
	Piece     Kind
	Color     Color
	From      Location
	To        Location
	Capture   bool
	Promotion Kind
}

func (m Move) String() string {
	var b strings.Builder
	if m.Piece != None {
		b.WriteRune(Symbol(m.Piece, m.Color))
	}
	b.WriteString(m.From.String())
	if m.Capture {
		b.WriteByte('x')
	}
	b.WriteString(m.To.String())
	if m.Promotion != None {
		b.WriteByte(valueToLetter[m.Promotion])
	}
	return b.String()
}

// ParseMove reads a move written as by String. The piece symbol is optional.
func ParseMove(s string) (Move, error) {
	var m Move
	r := []rune(strings.TrimSpace(s))
	if len(r) > 0 {
		if kind, ok := symbolToValue[r[0]]; ok {
			m.Piece = kind
			if strings.ContainsRune("♔♕♖♗♘♙", r[0]) {
				m.Color = White
			} else {
				m.Color = Black
			}
			r = r[1:]
		}
	}
	if len(r) < 4 {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidNotation, s)
	}
	from, err := ParseLocation(string(r[:2]))
	if err != nil {
		return Move{}, err
	}
	r = r[2:]
	if r[0] == 'x' {
		m.Capture = true
		r = r[1:]
	}
	if len(r) < 2 {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidNotation, s)
	}
	to, err := ParseLocation(string(r[:2]))
	if err != nil {
		return Move{}, err
	}
	r = r[2:]
	switch len(r) {
	case 0:
	case 1:
		kind, err := ParseKind(string(r))
		if err != nil {
			return Move{}, fmt.Errorf("%w: promotion in %q", ErrInvalidNotation, s)
		}
		m.Promotion = kind
	default:
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidNotation, s)
	}
	m.From, m.To = from, to
	return m, nil
}

// Scan implements fmt.Scanner.
func (m *Move) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	move, err := ParseMove(string(token))
	if err != nil {
		return err
	}
	*m = move
	return nil
}

// MarshalJSON encodes the move as its notation string.
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a notation string.
func (m *Move) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	_, err := fmt.Sscan(s, m)
	return err
}
