package service

// reorderIDs computes the permutation produced by dragging movedID onto
// targetID: the moved id is removed from its current index and reinserted
// immediately before the target's index after removal. The result is always
// a permutation of the input; no ids are added or dropped.
//
// ok is false when the move is a no-op: the ids are equal, either id is
// absent, or the set has fewer than two elements. Callers must not persist
// or log anything in that case.
func reorderIDs(ids []string, movedID, targetID string) ([]string, bool) {
	if movedID == targetID || len(ids) < 2 {
		return nil, false
	}

	movedIndex := indexOf(ids, movedID)
	targetIndex := indexOf(ids, targetID)
	if movedIndex < 0 || targetIndex < 0 {
		return nil, false
	}

	reordered := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != movedID {
			reordered = append(reordered, id)
		}
	}

	insertAt := indexOf(reordered, targetID)
	reordered = append(reordered, "")
	copy(reordered[insertAt+1:], reordered[insertAt:])
	reordered[insertAt] = movedID

	if equalIDs(ids, reordered) {
		return nil, false
	}

	return reordered, true
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
