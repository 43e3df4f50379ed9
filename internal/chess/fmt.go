package chess

import "strings"

// String draws the board from white's side, rank 8 at the top.
func (board *Board) String() string {
	var b strings.Builder
	for rank := 0; rank < 8; rank++ {
		b.WriteByte(byte('8' - rank))
		b.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if p := board.grid[rank][file]; p != nil {
				b.WriteRune(p.Symbol())
			} else {
				b.WriteByte('.')
			}
			if file < 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}
