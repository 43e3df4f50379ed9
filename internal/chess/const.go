package chess

// Color is one of the two sides.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// MarshalText encodes the color as "white" or "black".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts "white" or "black".
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return ErrInvalidNotation
	}
	return nil
}

// Kind tags a piece variant. Kinds leave bit 0 free so a kind and a color fit
// in one byte.
type Kind uint8

const (
	None   Kind = iota << 1
	Bishop Kind = iota << 1
	King   Kind = iota << 1
	Knight Kind = iota << 1
	Pawn   Kind = iota << 1
	Queen  Kind = iota << 1
	Rook   Kind = iota << 1
)

const (
	kindMask  uint8 = 0xE
	colorMask uint8 = 0x1
	movedBit  uint8 = 0x10
	passedBit uint8 = 0x20
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "none"
}

var kindNames = map[Kind]string{
	Bishop: "bishop",
	King:   "king",
	Knight: "knight",
	Pawn:   "pawn",
	Queen:  "queen",
	Rook:   "rook",
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

var promotions = []Kind{Queen, Rook, Bishop, Knight}

var valueToSymbolBlack = map[Kind]rune{
	Bishop: '♝',
	King:   '♚',
	Knight: '♞',
	Pawn:   '♟',
	Queen:  '♛',
	Rook:   '♜',
}
var valueToSymbolWhite = map[Kind]rune{
	Bishop: '♗',
	King:   '♔',
	Knight: '♘',
	Pawn:   '♙',
	Queen:  '♕',
	Rook:   '♖',
}
var symbolToValue = map[rune]Kind{
	'♝': Bishop, '♗': Bishop,
	'♚': King, '♔': King,
	'♞': Knight, '♘': Knight,
	'♟': Pawn, '♙': Pawn,
	'♛': Queen, '♕': Queen,
	'♜': Rook, '♖': Rook,
}
var letterToValue = map[rune]Kind{
	'B': Bishop, 'b': Bishop,
	'K': King, 'k': King,
	'N': Knight, 'n': Knight,
	'P': Pawn, 'p': Pawn,
	'Q': Queen, 'q': Queen,
	'R': Rook, 'r': Rook,
}
var valueToLetter = map[Kind]byte{
	Bishop: 'B',
	King:   'K',
	Knight: 'N',
	Pawn:   'P',
	Queen:  'Q',
	Rook:   'R',
}

// ParseKind reads a promotion choice: a letter (Q, R, B, N, ...) or a piece
// symbol.
func ParseKind(s string) (Kind, error) {
	r := []rune(s)
	if len(r) != 1 {
		return None, ErrInvalidNotation
	}
	if kind, ok := letterToValue[r[0]]; ok {
		return kind, nil
	}
	if kind, ok := symbolToValue[r[0]]; ok {
		return kind, nil
	}
	return None, ErrInvalidNotation
}

// Symbol returns the unicode glyph for a kind of the given color.
func Symbol(kind Kind, color Color) rune {
	if color == White {
		return valueToSymbolWhite[kind]
	}
	return valueToSymbolBlack[kind]
}

type vector struct {
	rank, file int
}

var (
	rookVectors   = []vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopVectors = []vector{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenVectors  = []vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightVectors = []vector{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}}
	kingVectors   = []vector{{0, 1}, {0, -1}, {-1, 0}, {1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	whitePawn     = []vector{{-1, 0}}
	blackPawn     = []vector{{1, 0}}
)

// castlingSide describes one wing. The rook lands on the square the king
// passes over.
type castlingSide struct {
	rookFile   int
	kingFile   int
	rookTarget int
	between    []int
}

var castlingSides = []castlingSide{
	{rookFile: 7, kingFile: 6, rookTarget: 5, between: []int{5, 6}},
	{rookFile: 0, kingFile: 2, rookTarget: 3, between: []int{1, 2, 3}},
}

func castlingSideFor(kingFile int) (castlingSide, bool) {
	for _, side := range castlingSides {
		if side.kingFile == kingFile {
			return side, true
		}
	}
	return castlingSide{}, false
}
