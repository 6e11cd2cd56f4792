// Package reorder interprets drag gestures over the rendered grid and
// computes the order to commit back to the store.
package reorder

// Session tracks one in-flight drag. Hover moves are visual only; nothing
// touches the store until the caller commits the result of Drop.
type Session struct {
	draggedID string
	order     []string
	active    bool
}

// Start begins a drag of the given app over the currently visible IDs.
func Start(draggedID string, visibleIDs []string) *Session {
	order := make([]string, len(visibleIDs))
	copy(order, visibleIDs)
	return &Session{draggedID: draggedID, order: order, active: true}
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	return s.active
}

// DraggedID returns the ID captured at drag start.
func (s *Session) DraggedID() string {
	return s.draggedID
}

// Order returns the current visual order.
func (s *Session) Order() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Hover repositions the dragged app before or after the hovered target.
// Hovering over the dragged app itself, or an unknown target, is ignored.
func (s *Session) Hover(targetID string, before bool) {
	if !s.active || targetID == s.draggedID {
		return
	}
	if indexOf(s.order, targetID) < 0 || indexOf(s.order, s.draggedID) < 0 {
		return
	}

	without := make([]string, 0, len(s.order))
	for _, id := range s.order {
		if id != s.draggedID {
			without = append(without, id)
		}
	}

	at := indexOf(without, targetID)
	if !before {
		at++
	}

	order := make([]string, 0, len(s.order))
	order = append(order, without[:at]...)
	order = append(order, s.draggedID)
	order = append(order, without[at:]...)
	s.order = order
}

// Drop ends the drag and returns the final visual order.
func (s *Session) Drop() []string {
	s.active = false
	return s.Order()
}

// Cancel ends the drag, discarding any visual movement.
func (s *Session) Cancel() {
	s.active = false
}

// MergeVisible splices a reordered visible subset back into the full
// collection order. Every ID hidden by the current filter keeps its absolute
// position; the slots previously held by visible IDs are refilled in the new
// visible order. The result is always a permutation of full.
func MergeVisible(full, before, after []string) []string {
	visible := make(map[string]bool, len(before))
	for _, id := range before {
		visible[id] = true
	}

	// Drop IDs from the gesture that are not part of the collection
	known := make(map[string]bool, len(full))
	for _, id := range full {
		known[id] = true
	}
	replacement := make([]string, 0, len(after))
	used := make(map[string]bool, len(after))
	for _, id := range after {
		if visible[id] && known[id] && !used[id] {
			replacement = append(replacement, id)
			used[id] = true
		}
	}
	// Visible IDs the gesture lost keep their relative order at the end
	for _, id := range full {
		if visible[id] && !used[id] {
			replacement = append(replacement, id)
			used[id] = true
		}
	}

	merged := make([]string, 0, len(full))
	next := 0
	for _, id := range full {
		if visible[id] {
			merged = append(merged, replacement[next])
			next++
		} else {
			merged = append(merged, id)
		}
	}

	return merged
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
