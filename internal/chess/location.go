package chess

import (
	"fmt"
	"strings"
)

// Location is a zero-based (rank, file) pair. Rank 0 is black's home row,
// file 0 is the a-file.
type Location struct {
	Rank int
	File int
}

// Locations is an ordered set of squares.
type Locations []Location

// Contains reports whether l is in the set.
func (ls Locations) Contains(l Location) bool {
	for _, x := range ls {
		if x == l {
			return true
		}
	}
	return false
}

// Valid reports whether the location is on the board.
func (l Location) Valid() bool {
	return l.Rank >= 0 && l.Rank < 8 && l.File >= 0 && l.File < 8
}

func (l Location) offset(v vector) Location {
	return Location{Rank: l.Rank + v.rank, File: l.File + v.file}
}

func (l Location) index() int {
	return l.Rank*8 + l.File
}

func locationAt(i int) Location {
	return Location{Rank: i / 8, File: i % 8}
}

// String renders the square in algebraic notation, e.g. "e4".
func (l Location) String() string {
	if !l.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+l.File, 8-l.Rank)
}

// ParseLocation translates algebraic notation ("d2") into a Location.
func ParseLocation(s string) (Location, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Location{}, fmt.Errorf("%w: %q is not a square", ErrInvalidNotation, s)
	}
	return Location{Rank: 8 - int(s[1]-'0'), File: int(s[0] - 'a')}, nil
}

// MarshalText encodes the square in algebraic notation.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses algebraic notation.
func (l *Location) UnmarshalText(text []byte) error {
	loc, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
