package chess

// Piece is one of the six chess pieces. Moves and Captures hold its legal
// destinations as of the last Refresh.
type Piece struct {
	Kind     Kind
	Color    Color
	Location Location
	Moved    bool
	// EnPassant is set only on the ply right after a pawn's two-square
	// advance.
	EnPassant bool
	Moves     Locations
	Captures  Locations
}

func newPiece(kind Kind, color Color, loc Location) *Piece {
	return &Piece{Kind: kind, Color: color, Location: loc}
}

// Symbol returns the piece glyph.
func (p *Piece) Symbol() rune {
	return Symbol(p.Kind, p.Color)
}

// vectors returns the piece's direction set.
func (p *Piece) vectors() []vector {
	switch p.Kind {
	case Bishop:
		return bishopVectors
	case King:
		return kingVectors
	case Knight:
		return knightVectors
	case Pawn:
		if p.Color == White {
			return whitePawn
		}
		return blackPawn
	case Queen:
		return queenVectors
	case Rook:
		return rookVectors
	}
	return nil
}

func (p *Piece) sliding() bool {
	return p.Kind == Bishop || p.Kind == Queen || p.Kind == Rook
}

// rankDirection is -1 for white (toward rank 0) and 1 for black.
func (p *Piece) rankDirection() int {
	if p.Color == White {
		return -1
	}
	return 1
}

func (p *Piece) promotionRank() int {
	if p.Color == White {
		return 0
	}
	return 7
}

// onHomeSquare reports whether a king stands where castling starts from.
func (p *Piece) onHomeSquare() bool {
	rank := 7
	if p.Color == Black {
		rank = 0
	}
	return p.Location == Location{Rank: rank, File: 4}
}

func (p *Piece) enPassantRank() bool {
	return (p.Color == White && p.Location.Rank == 3) || (p.Color == Black && p.Location.Rank == 4)
}

func (p *Piece) updateLocation(loc Location) {
	if p.Kind == Pawn {
		p.EnPassant = abs(loc.Rank-p.Location.Rank) == 2
	}
	p.Location = loc
	p.Moved = true
}

func (p *Piece) clear() {
	p.Moves = nil
	p.Captures = nil
}

func (p *Piece) code() uint8 {
	code := uint8(p.Kind) | uint8(p.Color)
	if p.Moved {
		code |= movedBit
	}
	if p.EnPassant {
		code |= passedBit
	}
	return code
}

func pieceFromCode(code uint8, loc Location) (*Piece, bool) {
	kind := Kind(code & kindMask)
	if _, ok := kindNames[kind]; !ok || code&^(kindMask|colorMask|movedBit|passedBit) != 0 {
		return nil, false
	}
	p := newPiece(kind, Color(code&colorMask), loc)
	p.Moved = code&movedBit != 0
	p.EnPassant = code&passedBit != 0
	return p, true
}

func (p *Piece) clone() *Piece {
	cp := *p
	cp.Moves = append(Locations(nil), p.Moves...)
	cp.Captures = append(Locations(nil), p.Captures...)
	return &cp
}
