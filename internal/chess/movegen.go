package chess

// PseudoMoves returns the empty squares the piece can reach, ignoring
// whether the move exposes its own king.
func (p *Piece) PseudoMoves(board *Board) Locations {
	switch p.Kind {
	case Bishop, Queen, Rook, Knight:
		moves, _ := board.walk(p)
		return moves
	case King:
		moves, _ := board.walk(p)
		return append(moves, board.castlingMoves(p)...)
	case Pawn:
		return board.pawnMoves(p)
	}
	return nil
}

// PseudoCaptures returns the squares holding an opposing piece the piece can
// take, including an en passant capture. En passant is only offered when it
// does not leave the capturing side in check.
func (p *Piece) PseudoCaptures(board *Board) Locations {
	captures := board.captures(p)
	if target, ok := board.enPassantCapture(p); ok {
		captures = append(captures, target)
	}
	return captures
}

// captures is PseudoCaptures without en passant.
func (board *Board) captures(p *Piece) Locations {
	if p.Kind == Pawn {
		return board.pawnCaptures(p)
	}
	_, captures := board.walk(p)
	return captures
}

// walk follows each direction vector from the piece: once for steppers,
// until blocked for sliders.
func (board *Board) walk(p *Piece) (moves, captures Locations) {
	for _, v := range p.vectors() {
		for end := p.Location.offset(v); end.Valid(); end = end.offset(v) {
			occupant := board.At(end)
			if occupant != nil {
				if occupant.Color != p.Color {
					captures = append(captures, end)
				}
				break
			}
			moves = append(moves, end)
			if !p.sliding() {
				break
			}
		}
	}
	return moves, captures
}

func (board *Board) pawnMoves(p *Piece) Locations {
	forward := p.vectors()[0]
	one := p.Location.offset(forward)
	if !one.Valid() || board.At(one) != nil {
		return nil
	}
	moves := Locations{one}
	if !p.Moved {
		two := one.offset(forward)
		if two.Valid() && board.At(two) == nil {
			moves = append(moves, two)
		}
	}
	return moves
}

func (board *Board) pawnDiagonals(p *Piece) Locations {
	var squares Locations
	for _, file := range []int{1, -1} {
		end := p.Location.offset(vector{p.rankDirection(), file})
		if end.Valid() {
			squares = append(squares, end)
		}
	}
	return squares
}

func (board *Board) pawnCaptures(p *Piece) Locations {
	var captures Locations
	for _, end := range board.pawnDiagonals(p) {
		if occupant := board.At(end); occupant != nil && occupant.Color != p.Color {
			captures = append(captures, end)
		}
	}
	return captures
}

// enPassantCapture returns the square of the pawn p may take en passant. The
// target is the captured pawn's square; p lands one rank beyond it.
func (board *Board) enPassantCapture(p *Piece) (Location, bool) {
	prev := board.previous
	if p.Kind != Pawn || prev == nil || prev == p || prev.Kind != Pawn || prev.Color == p.Color || !prev.EnPassant {
		return Location{}, false
	}
	if !p.enPassantRank() || prev.Location.Rank != p.Location.Rank || abs(prev.Location.File-p.Location.File) != 1 {
		return Location{}, false
	}
	if board.At(p.Location) != p || board.At(prev.Location) != prev {
		return Location{}, false
	}
	if !board.legalEnPassant(p, prev) {
		return Location{}, false
	}
	return prev.Location, true
}

func (board *Board) legalEnPassant(p, captured *Piece) bool {
	scratch := board.Clone()
	scratch.set(captured.Location, nil)
	landing := captured.Location.offset(vector{p.rankDirection(), 0})
	return len(scratch.legalize(p.Location, Locations{landing})) > 0
}

func (board *Board) castlingMoves(king *Piece) Locations {
	if king.Moved || !king.onHomeSquare() || board.At(king.Location) != king {
		return nil
	}
	var moves Locations
	for _, side := range castlingSides {
		if board.canCastle(king, side) {
			moves = append(moves, Location{Rank: king.Location.Rank, File: side.kingFile})
		}
	}
	return moves
}

func (board *Board) canCastle(king *Piece, side castlingSide) bool {
	rank := king.Location.Rank
	rook := board.At(Location{Rank: rank, File: side.rookFile})
	if rook == nil || rook.Kind != Rook || rook.Color != king.Color || rook.Moved {
		return false
	}
	for _, file := range side.between {
		if board.At(Location{Rank: rank, File: file}) != nil {
			return false
		}
	}
	enemy := king.Color.Other()
	if board.attacked(king.Location, enemy) {
		return false
	}
	return !board.attacked(Location{Rank: rank, File: side.rookTarget}, enemy)
}

// attacks reports whether p could take a piece standing on target.
func (board *Board) attacks(p *Piece, target Location) bool {
	if p.Kind == Pawn {
		return board.pawnDiagonals(p).Contains(target)
	}
	moves, captures := board.walk(p)
	return moves.Contains(target) || captures.Contains(target)
}

// attacked reports whether any piece of color by attacks target.
func (board *Board) attacked(target Location, by Color) bool {
	for _, p := range board.Pieces() {
		if p.Color == by && board.attacks(p, target) {
			return true
		}
	}
	return false
}
