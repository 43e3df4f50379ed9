package chess

import (
	"errors"

	. "gopkg.in/check.v1"
)

type MovementSuite struct{}

var _ = Suite(&MovementSuite{})

// enPassantBoard has a black pawn about to pass an advanced white pawn.
func (s *MovementSuite) enPassantBoard() (*Board, *Piece, *Piece) {
	board := kingsOnly(Location{7, 4}, Location{0, 4})
	white := moved(board.Place(Pawn, White, Location{3, 3}))
	black := board.Place(Pawn, Black, Location{1, 2})
	board.Refresh()
	return board, white, black
}

func (s *MovementSuite) TestClassifier(c *C) {
	board := startBoard()
	board.SelectPiece(Location{6, 4})
	c.Assert(board.MovementType(Location{4, 4}), Equals, BasicMovement)

	board = kingsOnly(Location{7, 4}, Location{0, 0})
	board.Place(Rook, White, Location{7, 7})
	board.Place(Pawn, White, Location{1, 6})
	board.Refresh()
	board.SelectPiece(Location{7, 4})
	c.Assert(board.MovementType(Location{7, 6}), Equals, CastlingMovement)
	c.Assert(board.MovementType(Location{7, 5}), Equals, BasicMovement)
	board.SelectPiece(Location{1, 6})
	c.Assert(board.MovementType(Location{0, 6}), Equals, PawnPromotionMovement)
	c.Assert(PawnPromotionMovement.String(), Equals, "PawnPromotion")
}

func (s *MovementSuite) TestEnPassantCapture(c *C) {
	board, white, black := s.enPassantBoard()
	board.SelectPiece(Location{1, 2})
	c.Assert(board.ApplyMove(Location{3, 2}), IsNil)
	c.Assert(black.EnPassant, Equals, true)
	c.Assert(white.Captures, DeepEquals, Locations{{3, 2}})

	board.SelectPiece(Location{3, 3})
	c.Assert(board.IsEnPassantOpportunity(), Equals, true)
	c.Assert(board.MovementType(Location{3, 2}), Equals, EnPassantMovement)
	c.Assert(board.ApplyMove(Location{3, 2}), IsNil)
	c.Assert(board.At(Location{3, 2}), IsNil)
	c.Assert(board.At(Location{3, 3}), IsNil)
	c.Assert(board.At(Location{2, 2}), Equals, white)
	c.Assert(white.Location, Equals, Location{2, 2})
	c.Assert(black.Moves, HasLen, 0)
	for _, p := range board.Pieces() {
		c.Assert(p, Not(Equals), black)
	}
}

func (s *MovementSuite) TestEnPassantWindowCloses(c *C) {
	board, white, black := s.enPassantBoard()
	board.SelectPiece(Location{1, 2})
	c.Assert(board.ApplyMove(Location{3, 2}), IsNil)
	board.SelectPiece(Location{7, 4})
	c.Assert(board.ApplyMove(Location{7, 3}), IsNil)
	c.Assert(black.EnPassant, Equals, false)
	c.Assert(white.Captures, HasLen, 0)
	board.SelectPiece(Location{0, 4})
	c.Assert(board.ApplyMove(Location{0, 3}), IsNil)
	board.SelectPiece(Location{3, 3})
	c.Assert(white.Captures, HasLen, 0)
	c.Assert(board.IsEnPassantOpportunity(), Equals, false)
}

func (s *MovementSuite) TestSingleStepClearsFlag(c *C) {
	board := startBoard()
	play(c, board, "e2e4")
	pawn := board.At(Location{4, 4})
	c.Assert(pawn.EnPassant, Equals, true)
	play(c, board, "e7e6", "e4e5")
	c.Assert(pawn.EnPassant, Equals, false)
}

func (s *MovementSuite) TestKingSideCastling(c *C) {
	board := kingsOnly(Location{7, 4}, Location{0, 0})
	rook := board.Place(Rook, White, Location{7, 7})
	board.Refresh()
	king := board.SelectPiece(Location{7, 4})
	c.Assert(board.ApplyMove(Location{7, 6}), IsNil)
	c.Assert(board.At(Location{7, 6}), Equals, king)
	c.Assert(board.At(Location{7, 5}), Equals, rook)
	c.Assert(board.At(Location{7, 4}), IsNil)
	c.Assert(board.At(Location{7, 7}), IsNil)
	c.Assert(rook.Location, Equals, Location{7, 5})
	c.Assert(rook.Moved, Equals, true)
	c.Assert(king.Moved, Equals, true)
	c.Assert(board.PreviousPiece(), Equals, king)
}

func (s *MovementSuite) TestQueenSideCastling(c *C) {
	board := kingsOnly(Location{7, 7}, Location{0, 4})
	rook := board.Place(Rook, Black, Location{0, 0})
	board.Refresh()
	king := board.SelectPiece(Location{0, 4})
	c.Assert(king.Moves.Contains(Location{0, 2}), Equals, true)
	c.Assert(board.ApplyMove(Location{0, 2}), IsNil)
	c.Assert(board.At(Location{0, 2}), Equals, king)
	c.Assert(board.At(Location{0, 3}), Equals, rook)
	c.Assert(board.At(Location{0, 0}), IsNil)
}

func (s *MovementSuite) promotionBoard() (*Board, *Piece) {
	board := kingsOnly(Location{7, 4}, Location{0, 4})
	pawn := moved(board.Place(Pawn, White, Location{1, 0}))
	board.Refresh()
	return board, pawn
}

func (s *MovementSuite) TestPromotionToQueen(c *C) {
	board, pawn := s.promotionBoard()
	board.SelectPiece(pawn.Location)
	c.Assert(board.ApplyMove(Location{0, 0}), IsNil)
	queen := board.At(Location{0, 0})
	c.Assert(queen.Kind, Equals, Queen)
	c.Assert(queen.Color, Equals, White)
	c.Assert(board.PreviousPiece(), Equals, queen)
	c.Assert(board.ActivePiece(), IsNil)
	c.Assert(board.At(Location{1, 0}), IsNil)
	c.Assert(queen.Moves.Contains(Location{7, 0}), Equals, true)
	c.Assert(queen.Moves.Contains(Location{1, 1}), Equals, true)
	c.Assert(board.KingInCheck(Black), Equals, true)
	for _, p := range board.Pieces() {
		c.Assert(p, Not(Equals), pawn)
	}
}

func (s *MovementSuite) TestPromotionChoice(c *C) {
	board, pawn := s.promotionBoard()
	board.Place(Rook, Black, Location{0, 1})
	board.Refresh()
	board.Promoter = func(color Color) Kind {
		c.Assert(color, Equals, White)
		return Knight
	}
	board.SelectPiece(pawn.Location)
	c.Assert(board.ApplyMove(Location{0, 1}), IsNil)
	knight := board.At(Location{0, 1})
	c.Assert(knight.Kind, Equals, Knight)
	c.Assert(knight.Color, Equals, White)
	c.Assert(board.Pieces(), HasLen, 3)
}

func (s *MovementSuite) TestPromotionThroughPlay(c *C) {
	board, _ := s.promotionBoard()
	play(c, board, "a7a8R")
	c.Assert(board.At(Location{0, 0}).Kind, Equals, Rook)
	c.Assert(board.Promoter, IsNil)
}

func (s *MovementSuite) TestInvalidPromotionLeavesBoard(c *C) {
	board, pawn := s.promotionBoard()
	before := board.Snapshot()
	board.Promoter = func(Color) Kind { return King }
	board.SelectPiece(pawn.Location)
	err := board.ApplyMove(Location{0, 0})
	c.Assert(errors.Is(err, ErrInvalidPromotion), Equals, true)
	c.Assert(board.At(Location{1, 0}), Equals, pawn)
	c.Assert(board.At(Location{0, 0}), IsNil)
	c.Assert(board.PreviousPiece(), IsNil)
	board.active = nil
	c.Assert(board.Snapshot(), Equals, before)
}

func (s *MovementSuite) TestMovesExpandPromotions(c *C) {
	board, _ := s.promotionBoard()
	var promotionsSeen []Kind
	for _, m := range board.Moves(White) {
		if m.Piece == Pawn {
			promotionsSeen = append(promotionsSeen, m.Promotion)
		}
	}
	c.Assert(promotionsSeen, DeepEquals, []Kind{Queen, Rook, Bishop, Knight})
}
