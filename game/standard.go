package game

// StandardRules implements movement on the regular Thud board.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Destinations(b *Board, from Coordinate) []Destination {
	switch b.Piece(from) {
	case Dwarf:
		return sr.dwarfDestinations(b, from)
	case Troll:
		return sr.trollDestinations(b, from)
	}
	return nil
}

// Dwarves slide any distance through empty squares. A troll blocking the line
// can be hurled onto when the dwarves lined up behind the mover, the mover
// included, are at least as many as the distance to the troll.
func (sr *StandardRules) dwarfDestinations(b *Board, from Coordinate) []Destination {
	var result []Destination
	for _, direction := range Directions {
		distance := 1
		candidate := from.Add(direction)
		for b.IsInsideBounds(candidate) && b.Piece(candidate) == Empty {
			result = append(result, Destination{To: candidate})
			distance++
			candidate = from.Add(direction.Scale(distance))
		}

		if !b.IsInsideBounds(candidate) || b.Piece(candidate) != Troll {
			continue
		}

		dwarvesInARow := 1
		behind := from.Add(direction.Scale(-1))
		for dwarvesInARow < distance && b.IsInsideBounds(behind) && b.Piece(behind) == Dwarf {
			dwarvesInARow++
			behind = behind.Add(direction.Scale(-1))
		}
		if dwarvesInARow >= distance {
			result = append(result, Destination{To: candidate})
		}
	}
	return result
}

// Trolls step onto any adjacent empty square. The step counts as a shove when
// another troll stands right behind the mover. Longer shoves need one more
// troll behind for each extra square and must land next to a dwarf.
func (sr *StandardRules) trollDestinations(b *Board, from Coordinate) []Destination {
	var result []Destination
	for _, direction := range Directions {
		step := from.Add(direction)
		if !b.IsInsideBounds(step) || b.Piece(step) != Empty {
			continue
		}
		pusher := from.Add(direction.Scale(-1))
		result = append(result, Destination{
			To:    step,
			Shove: b.IsInsideBounds(pusher) && b.Piece(pusher) == Troll,
		})

		for distance := 1; ; distance++ {
			candidate := from.Add(direction.Scale(distance + 1))
			shover := from.Add(direction.Scale(-distance))
			if !b.IsInsideBounds(candidate) || b.Piece(candidate) != Empty ||
				!b.IsInsideBounds(shover) || b.Piece(shover) != Troll {
				break
			}
			if len(b.Neighbors(Dwarf, candidate)) > 0 {
				result = append(result, Destination{To: candidate, Shove: true})
			}
		}
	}
	return result
}
