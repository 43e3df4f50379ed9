package chess

import "errors"

// Caller input violations. None of them change the board.
var (
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrImmovablePiece     = errors.New("piece has no legal moves")
	ErrIllegalDestination = errors.New("illegal destination")
	ErrInvalidPromotion   = errors.New("invalid promotion piece")
	ErrInvalidNotation    = errors.New("invalid notation")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)
