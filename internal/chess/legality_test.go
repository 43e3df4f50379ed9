package chess

import (
	. "gopkg.in/check.v1"
)

type LegalitySuite struct{}

var _ = Suite(&LegalitySuite{})

func (s *LegalitySuite) TestPinnedPieceCannotLeaveLine(c *C) {
	board := kingsOnly(Location{7, 4}, Location{0, 0})
	bishop := board.Place(Bishop, White, Location{6, 4})
	board.Place(Rook, Black, Location{0, 4})
	board.Refresh()
	c.Assert(len(bishop.PseudoMoves(board)) > 0, Equals, true)
	c.Assert(bishop.Moves, HasLen, 0)
	c.Assert(bishop.Captures, HasLen, 0)
	c.Assert(board.IsMovable(bishop), Equals, false)
}

func (s *LegalitySuite) TestPinnedPieceMovesAlongLine(c *C) {
	board := kingsOnly(Location{7, 4}, Location{0, 0})
	rook := board.Place(Rook, White, Location{6, 4})
	board.Place(Rook, Black, Location{0, 4})
	board.Refresh()
	c.Assert(rook.Moves, DeepEquals, Locations{{5, 4}, {4, 4}, {3, 4}, {2, 4}, {1, 4}})
	c.Assert(rook.Captures, DeepEquals, Locations{{0, 4}})
}

func (s *LegalitySuite) TestKingAvoidsAttackedSquares(c *C) {
	board := kingsOnly(Location{7, 4}, Location{0, 0})
	board.Place(Rook, Black, Location{0, 3})
	board.Refresh()
	king := board.King(White)
	c.Assert(king.Moves.Contains(Location{7, 3}), Equals, false)
	c.Assert(king.Moves.Contains(Location{6, 3}), Equals, false)
	c.Assert(king.Moves.Contains(Location{6, 4}), Equals, true)
	c.Assert(king.Moves.Contains(Location{7, 5}), Equals, true)
}

func (s *LegalitySuite) TestKingCannotTakeDefendedPiece(c *C) {
	board := kingsOnly(Location{7, 4}, Location{0, 0})
	board.Place(Knight, Black, Location{6, 4})
	board.Place(Rook, Black, Location{0, 4})
	board.Refresh()
	king := board.King(White)
	c.Assert(king.PseudoCaptures(board), DeepEquals, Locations{{6, 4}})
	c.Assert(king.Captures, HasLen, 0)
}

func (s *LegalitySuite) TestCheckMustBeAnswered(c *C) {
	board := kingsOnly(Location{7, 4}, Location{0, 0})
	knight := board.Place(Knight, White, Location{7, 1})
	board.Place(Rook, Black, Location{3, 4})
	board.Refresh()
	c.Assert(board.KingInCheck(White), Equals, true)
	// No knight square blocks the e-file.
	c.Assert(knight.Moves, HasLen, 0)
	c.Assert(board.King(White).Moves, DeepEquals, Locations{{7, 5}, {7, 3}, {6, 5}, {6, 3}})
}

func (s *LegalitySuite) TestLegalizeLeavesBoardUntouched(c *C) {
	board := kingsOnly(Location{7, 4}, Location{0, 0})
	board.Place(Bishop, White, Location{6, 4})
	board.Place(Rook, Black, Location{0, 4})
	board.Refresh()
	before := board.Snapshot()
	bishop := board.At(Location{6, 4})
	candidates := Locations{{5, 3}, {5, 5}}
	c.Assert(Legalize(board, bishop.Location, candidates), HasLen, 0)
	c.Assert(board.Snapshot(), Equals, before)
	c.Assert(bishop.Location, Equals, Location{6, 4})
	c.Assert(board.At(Location{5, 3}), IsNil)
}

func (s *LegalitySuite) TestEnPassantRefusedWhenItExposesKing(c *C) {
	board := kingsOnly(Location{3, 0}, Location{0, 4})
	pawn := moved(board.Place(Pawn, White, Location{3, 3}))
	board.Place(Pawn, Black, Location{1, 2})
	board.Place(Rook, Black, Location{3, 7})
	board.Refresh()
	board.SelectPiece(Location{1, 2})
	c.Assert(board.ApplyMove(Location{3, 2}), IsNil)
	c.Assert(board.PreviousPiece().EnPassant, Equals, true)
	c.Assert(pawn.Captures, HasLen, 0)
	c.Assert(pawn.PseudoCaptures(board), HasLen, 0)
}
