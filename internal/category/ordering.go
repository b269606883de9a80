package category

// Move returns a copy of list with the element at from relocated to to.
// Positions are not touched; call Renumber afterwards.
func Move(list []*Category, from, to int) ([]*Category, error) {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return nil, ErrInvalidMove
	}

	out := make([]*Category, 0, len(list))
	moved := list[from]
	for i, c := range list {
		if i != from {
			out = append(out, c)
		}
	}

	out = append(out, nil)
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, nil
}

// MoveRelative places id right before or after refID.
func MoveRelative(list []*Category, id, refID string, placement Placement) ([]*Category, error) {
	if id == refID || !placement.Valid() {
		return nil, ErrInvalidMove
	}

	from, ref := indexOf(list, id), indexOf(list, refID)
	if from < 0 || ref < 0 {
		return nil, ErrCategoryNotFound
	}

	// ref shifts down by one once id is taken out ahead of it
	if from < ref {
		ref--
	}
	to := ref
	if placement == PlaceAfter {
		to = ref + 1
	}
	return Move(list, from, to)
}

// Renumber rewrites positions to the dense sequence 1..N in slice order.
func Renumber(list []*Category) []*Category {
	for i, c := range list {
		c.Position = i + 1
	}
	return list
}

func indexOf(list []*Category, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}
