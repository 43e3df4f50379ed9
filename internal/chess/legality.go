package chess

// Legalize returns the candidates for the piece on from that do not leave its
// own king attacked. The probing happens on a copy of board.
func Legalize(board *Board, from Location, candidates Locations) Locations {
	if len(candidates) == 0 {
		return nil
	}
	return board.Clone().legalize(from, candidates)
}

// legalize probes every candidate on board by placing the mover there and
// restoring the square afterwards. board must be a scratch copy.
func (board *Board) legalize(from Location, candidates Locations) Locations {
	mover := board.At(from)
	if mover == nil {
		return nil
	}
	enemy := mover.Color.Other()
	kingSquare, tracked := Location{}, false
	if mover.Kind != King {
		king := board.King(mover.Color)
		if king == nil {
			return append(Locations(nil), candidates...)
		}
		kingSquare, tracked = king.Location, true
	}

	board.set(from, nil)
	defer board.set(from, mover)

	legal := make(Locations, 0, len(candidates))
	for _, end := range candidates {
		occupant := board.At(end)
		board.set(end, mover)
		target := end
		if tracked {
			target = kingSquare
		}
		if !board.attacked(target, enemy) {
			legal = append(legal, end)
		}
		board.set(end, occupant)
	}
	return legal
}
