package chess

import "fmt"

// Board is the authoritative game state: the grid, the piece selected for the
// current turn, the piece that made the last move and both kings.
type Board struct {
	grid     [8][8]*Piece
	active   *Piece
	previous *Piece
	kings    [2]*Piece

	// Promoter chooses the kind a pawn promotes to. Queen when nil.
	Promoter func(Color) Kind
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the piece on l, or nil.
func (board *Board) At(l Location) *Piece {
	if !l.Valid() {
		return nil
	}
	return board.grid[l.Rank][l.File]
}

func (board *Board) set(l Location, p *Piece) {
	board.grid[l.Rank][l.File] = p
}

// Place puts a new piece on l, replacing whatever stood there. Callers
// building a position call Refresh once done.
func (board *Board) Place(kind Kind, color Color, l Location) *Piece {
	p := newPiece(kind, color, l)
	board.set(l, p)
	if kind == King {
		board.kings[color] = p
	}
	return p
}

// PlaceInitialPieces sets up the standard starting position.
func (board *Board) PlaceInitialPieces() {
	for file, kind := range backRank {
		board.Place(kind, Black, Location{Rank: 0, File: file})
		board.Place(Pawn, Black, Location{Rank: 1, File: file})
		board.Place(Pawn, White, Location{Rank: 6, File: file})
		board.Place(kind, White, Location{Rank: 7, File: file})
	}
	board.Refresh()
}

// Pieces lists every piece on the board in rank then file order.
func (board *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, 32)
	for rank := range board.grid {
		for _, p := range board.grid[rank] {
			if p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// King returns the king of the given color.
func (board *Board) King(color Color) *Piece {
	return board.kings[color]
}

// ActivePiece is the piece selected for the current turn.
func (board *Board) ActivePiece() *Piece {
	return board.active
}

// PreviousPiece is the piece that completed the last move.
func (board *Board) PreviousPiece() *Piece {
	return board.previous
}

// Turn is the color to move: the side that did not make the last move.
func (board *Board) Turn() Color {
	if board.previous == nil {
		return White
	}
	return board.previous.Color.Other()
}

// SelectPiece makes the piece on l the active piece. The square may be
// empty; ownership is the caller's concern.
func (board *Board) SelectPiece(l Location) *Piece {
	board.active = board.At(l)
	return board.active
}

// ValidateSelection checks that l holds a movable piece of color.
func (board *Board) ValidateSelection(l Location, color Color) error {
	p := board.At(l)
	if p == nil {
		return fmt.Errorf("%w: no piece on %s", ErrInvalidSelection, l)
	}
	if p.Color != color {
		return fmt.Errorf("%w: %s holds a %s piece", ErrInvalidSelection, l, p.Color)
	}
	if !board.IsMovable(p) {
		return fmt.Errorf("%w: %s on %s", ErrImmovablePiece, p.Kind, l)
	}
	return nil
}

// IsMovable reports whether p has a legal move or capture.
func (board *Board) IsMovable(p *Piece) bool {
	return p != nil && (len(p.Moves) > 0 || len(p.Captures) > 0)
}

// IsLegalDestination reports whether dest is a legal move or capture of p.
func (board *Board) IsLegalDestination(p *Piece, dest Location) bool {
	return p != nil && (p.Moves.Contains(dest) || p.Captures.Contains(dest))
}

// ApplyMove moves the active piece to dest, then hands the turn over and
// refreshes every piece. The board is left untouched on error.
func (board *Board) ApplyMove(dest Location) error {
	mover := board.active
	if mover == nil || board.At(mover.Location) != mover {
		return fmt.Errorf("%w: no active piece", ErrInvalidSelection)
	}
	if !board.IsLegalDestination(mover, dest) {
		return fmt.Errorf("%w: %s cannot reach %s", ErrIllegalDestination, mover.Kind, dest)
	}
	if err := board.apply(board.MovementType(dest), dest); err != nil {
		return err
	}
	board.previous = board.active
	board.active = nil
	for _, p := range board.Pieces() {
		if p != board.previous {
			p.EnPassant = false
		}
	}
	board.Refresh()
	return nil
}

// Refresh recomputes the legal moves and captures of every piece.
func (board *Board) Refresh() {
	for _, p := range board.Pieces() {
		p.Moves = Legalize(board, p.Location, p.PseudoMoves(board))
		p.Captures = Legalize(board, p.Location, board.captures(p))
		if target, ok := board.enPassantCapture(p); ok {
			p.Captures = append(p.Captures, target)
		}
	}
}

// KingInCheck reports whether color's king is attacked. It scans the
// opposing pieces afresh rather than trusting their cached sets.
func (board *Board) KingInCheck(color Color) bool {
	king := board.kings[color]
	if king == nil {
		return false
	}
	return board.attacked(king.Location, color.Other())
}

// IsGameOver reports whether the side to move has no legal move or capture.
// KingInCheck tells checkmate from stalemate.
func (board *Board) IsGameOver() bool {
	turn := board.Turn()
	for _, p := range board.Pieces() {
		if p.Color == turn && board.IsMovable(p) {
			return false
		}
	}
	return true
}

// IsEnPassantOpportunity reports whether the active pawn can capture en
// passant.
func (board *Board) IsEnPassantOpportunity() bool {
	if board.active == nil {
		return false
	}
	target, ok := board.enPassantCapture(board.active)
	return ok && board.active.Captures.Contains(target)
}

// IsCastlingOpportunity reports whether the active king can castle.
func (board *Board) IsCastlingOpportunity() bool {
	p := board.active
	if p == nil || p.Kind != King {
		return false
	}
	for _, end := range p.Moves {
		if abs(end.File-p.Location.File) == 2 {
			return true
		}
	}
	return false
}

// Clone returns a structurally independent copy of the board.
func (board *Board) Clone() *Board {
	clone := &Board{Promoter: board.Promoter}
	copies := make(map[*Piece]*Piece, 32)
	for rank := range board.grid {
		for file, p := range board.grid[rank] {
			if p == nil {
				continue
			}
			cp := p.clone()
			copies[p] = cp
			clone.grid[rank][file] = cp
		}
	}
	clone.active = copies[board.active]
	clone.previous = copies[board.previous]
	clone.kings[White] = copies[board.kings[White]]
	clone.kings[Black] = copies[board.kings[Black]]
	return clone
}

// Play selects m.From for the side to move and applies the move, promoting
// to m.Promotion when the move reaches the last rank. When m names a piece
// it must match the piece on m.From. On error the active piece and board are
// as they were.
func (board *Board) Play(m Move) error {
	if err := board.ValidateSelection(m.From, board.Turn()); err != nil {
		return err
	}
	if p := board.At(m.From); m.Piece != None && (p.Kind != m.Piece || p.Color != m.Color) {
		return fmt.Errorf("%w: %s is not %c", ErrInvalidSelection, m.From, Symbol(m.Piece, m.Color))
	}
	active, promoter := board.active, board.Promoter
	defer func() {
		board.Promoter = promoter
	}()
	if m.Promotion != None {
		board.Promoter = func(Color) Kind { return m.Promotion }
	}
	board.SelectPiece(m.From)
	if err := board.ApplyMove(m.To); err != nil {
		board.active = active
		return err
	}
	return nil
}

// Moves lists every legal move of color. A pawn reaching the last rank
// yields one move per promotion kind.
func (board *Board) Moves(color Color) []Move {
	var moves []Move
	for _, p := range board.Pieces() {
		if p.Color != color {
			continue
		}
		add := func(end Location, capture bool) {
			m := Move{Piece: p.Kind, Color: p.Color, From: p.Location, To: end, Capture: capture}
			if p.Kind != Pawn || end.Rank != p.promotionRank() {
				moves = append(moves, m)
				return
			}
			for _, kind := range promotions {
				m.Promotion = kind
				moves = append(moves, m)
			}
		}
		for _, end := range p.Moves {
			add(end, false)
		}
		for _, end := range p.Captures {
			add(end, true)
		}
	}
	return moves
}
