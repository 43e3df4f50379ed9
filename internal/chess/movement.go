package chess

import "fmt"

// Movement names the applier that governs a move.
type Movement uint8

const (
	BasicMovement Movement = iota
	EnPassantMovement
	PawnPromotionMovement
	CastlingMovement
)

func (m Movement) String() string {
	switch m {
	case EnPassantMovement:
		return "EnPassant"
	case PawnPromotionMovement:
		return "PawnPromotion"
	case CastlingMovement:
		return "Castling"
	}
	return "Basic"
}

// MovementType classifies a move of the active piece to dest. The first
// matching rule wins: en passant, promotion, castling, basic.
func (board *Board) MovementType(dest Location) Movement {
	p := board.active
	if p == nil {
		return BasicMovement
	}
	if target, ok := board.enPassantCapture(p); ok && target == dest {
		return EnPassantMovement
	}
	if p.Kind == Pawn && dest.Rank == p.promotionRank() {
		return PawnPromotionMovement
	}
	if p.Kind == King && abs(dest.File-p.Location.File) == 2 {
		return CastlingMovement
	}
	return BasicMovement
}

func (board *Board) apply(m Movement, dest Location) error {
	switch m {
	case EnPassantMovement:
		board.applyEnPassant(dest)
	case PawnPromotionMovement:
		return board.applyPromotion(dest)
	case CastlingMovement:
		board.applyCastling(dest)
	default:
		board.relocate(board.active, dest)
	}
	return nil
}

// relocate moves p to dest, taking whatever stood there out of play.
func (board *Board) relocate(p *Piece, dest Location) {
	if captured := board.At(dest); captured != nil {
		board.remove(captured)
	}
	board.set(p.Location, nil)
	board.set(dest, p)
	p.updateLocation(dest)
}

func (board *Board) remove(p *Piece) {
	board.set(p.Location, nil)
	p.clear()
}

// applyEnPassant takes the pawn on target and lands the active pawn one rank
// beyond it.
func (board *Board) applyEnPassant(target Location) {
	p := board.active
	board.remove(board.At(target))
	board.relocate(p, target.offset(vector{p.rankDirection(), 0}))
}

func (board *Board) applyCastling(dest Location) {
	king := board.active
	board.relocate(king, dest)
	side, ok := castlingSideFor(dest.File)
	if !ok {
		return
	}
	rank := dest.Rank
	if rook := board.At(Location{Rank: rank, File: side.rookFile}); rook != nil {
		board.relocate(rook, Location{Rank: rank, File: side.rookTarget})
	}
}

// applyPromotion replaces the active pawn with a new piece on dest, which
// becomes the active piece.
func (board *Board) applyPromotion(dest Location) error {
	pawn := board.active
	kind := Queen
	if board.Promoter != nil {
		kind = board.Promoter(pawn.Color)
	}
	if !promotable(kind) {
		return fmt.Errorf("%w: %s", ErrInvalidPromotion, kind)
	}
	if captured := board.At(dest); captured != nil {
		board.remove(captured)
	}
	board.remove(pawn)
	promoted := board.Place(kind, pawn.Color, dest)
	promoted.Moved = true
	board.active = promoted
	return nil
}

func promotable(kind Kind) bool {
	for _, k := range promotions {
		if k == kind {
			return true
		}
	}
	return false
}
