package chess

import (
	"strconv"
	"strings"
)

// FEN describes the position in Forsyth-Edwards Notation. Move counters are
// not tracked and always read "0 1".
func (board *Board) FEN() string {
	var b strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			p := board.grid[rank][file]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := valueToLetter[p.Kind]
			if p.Color == Black {
				letter += 'a' - 'A'
			}
			b.WriteByte(letter)
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank < 7 {
			b.WriteByte('/')
		}
	}
	if board.Turn() == White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}
	b.WriteString(board.castlingRights())
	b.WriteByte(' ')
	b.WriteString(board.enPassantSquare())
	b.WriteString(" 0 1")
	return b.String()
}

func (board *Board) castlingRights() string {
	var rights strings.Builder
	for _, color := range []Color{White, Black} {
		king := board.kings[color]
		if king == nil || king.Moved || !king.onHomeSquare() {
			continue
		}
		for _, side := range castlingSides {
			rook := board.At(Location{Rank: king.Location.Rank, File: side.rookFile})
			if rook == nil || rook.Kind != Rook || rook.Color != color || rook.Moved {
				continue
			}
			letter := byte('K')
			if side.rookFile == 0 {
				letter = 'Q'
			}
			if color == Black {
				letter += 'a' - 'A'
			}
			rights.WriteByte(letter)
		}
	}
	if rights.Len() == 0 {
		return "-"
	}
	return rights.String()
}

// enPassantSquare is the square a pawn that just advanced two squares passed
// over.
func (board *Board) enPassantSquare() string {
	p := board.previous
	if p == nil || p.Kind != Pawn || !p.EnPassant {
		return "-"
	}
	return p.Location.offset(vector{-p.rankDirection(), 0}).String()
}
