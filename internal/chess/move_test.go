package chess

import (
	"encoding/json"
	"errors"
	"fmt"

	. "gopkg.in/check.v1"
)

type MoveSuite struct{}

var _ = Suite(&MoveSuite{})

func (s *MoveSuite) TestParseLocation(c *C) {
	c.Assert(sq(c, "d2"), Equals, Location{6, 3})
	c.Assert(sq(c, "a8"), Equals, Location{0, 0})
	c.Assert(sq(c, "H1"), Equals, Location{7, 7})
	for _, bad := range []string{"", "i1", "a9", "a0", "e44"} {
		_, err := ParseLocation(bad)
		c.Assert(errors.Is(err, ErrInvalidNotation), Equals, true, Commentf("%q", bad))
	}
}

func (s *MoveSuite) TestLocationString(c *C) {
	c.Assert(Location{4, 4}.String(), Equals, "e4")
	c.Assert(Location{0, 7}.String(), Equals, "h8")
	c.Assert(Location{8, 0}.String(), Equals, "-")
	text, err := json.Marshal(map[string]Location{"to": {5, 5}})
	c.Assert(err, IsNil)
	c.Assert(string(text), Equals, `{"to":"f3"}`)
}

func (s *MoveSuite) TestMoveString(c *C) {
	m := Move{Piece: Pawn, Color: White, From: Location{6, 4}, To: Location{4, 4}}
	c.Assert(m.String(), Equals, "♙e2e4")
	m = Move{Piece: Pawn, Color: Black, From: Location{1, 4}, To: Location{0, 3}, Capture: true, Promotion: Queen}
	c.Assert(m.String(), Equals, "♟e7xd8Q")
	m = Move{From: Location{7, 6}, To: Location{5, 5}}
	c.Assert(m.String(), Equals, "g1f3")
}

func (s *MoveSuite) TestParseMove(c *C) {
	m, err := ParseMove("♟e7xd8Q")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, Move{Piece: Pawn, Color: Black, From: Location{1, 4}, To: Location{0, 3}, Capture: true, Promotion: Queen})
	m, err = ParseMove(" g1f3 ")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, Move{From: Location{7, 6}, To: Location{5, 5}})
	m, err = ParseMove("♘g1f3")
	c.Assert(err, IsNil)
	c.Assert(m.Piece, Equals, Knight)
	c.Assert(m.Color, Equals, White)
	for _, bad := range []string{"", "e2", "e2e", "e2xe", "e2e4QQ", "e2e4Z", "z2e4"} {
		_, err := ParseMove(bad)
		c.Assert(errors.Is(err, ErrInvalidNotation), Equals, true, Commentf("%q", bad))
	}
}

func (s *MoveSuite) TestScan(c *C) {
	var first, second Move
	n, err := fmt.Sscan("e2e4 e7e5", &first, &second)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, 2)
	c.Assert(first.To, Equals, Location{4, 4})
	c.Assert(second.To, Equals, Location{3, 4})
}

func (s *MoveSuite) TestJSON(c *C) {
	want := Move{Piece: Knight, Color: White, From: Location{7, 6}, To: Location{5, 5}}
	text, err := json.Marshal(want)
	c.Assert(err, IsNil)
	c.Assert(string(text), Equals, `"♘g1f3"`)
	var got Move
	c.Assert(json.Unmarshal(text, &got), IsNil)
	c.Assert(got, Equals, want)
	c.Assert(json.Unmarshal([]byte(`"e9e4"`), &got), NotNil)
}

func (s *MoveSuite) TestMovesRoundTripThroughPlay(c *C) {
	board := startBoard()
	for _, m := range board.Moves(White) {
		parsed, err := ParseMove(m.String())
		c.Assert(err, IsNil)
		c.Assert(parsed, Equals, m)
		c.Assert(board.Clone().Play(parsed), IsNil)
	}
}
