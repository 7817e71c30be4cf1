package palette

const (
	// Capacity is the fixed number of storage slots in a palette.
	Capacity = 9
	// MinOccupied is the smallest palette Remove will leave behind.
	MinOccupied = 3
	// DefaultOccupied is how many slots a fresh palette starts with.
	DefaultOccupied = 5
)

// Slot is one occupied storage cell: a color plus its lock flag. Locked
// slots are never touched by the harmony engine.
type Slot struct {
	Color  Color
	Locked bool
}

// Store is a sparse, fixed-capacity collection of color slots. Storage
// indices are stable: removing a slot leaves a hole instead of shifting its
// neighbors. All position-taking operations address slots by logical
// position, the dense 0-based rank of an occupied slot among all occupied
// slots in ascending storage-index order, which is recomputed on demand
// and never stored.
//
// Out-of-range positions are deliberate no-ops, not errors. The store backs
// an interactive UI that tolerates stale key presses.
type Store struct {
	slots    [Capacity]*Slot
	selected int
}

// NewStore returns a store seeded with DefaultOccupied neutral, unlocked
// slots in the lowest storage indices.
func NewStore() *Store {
	s := &Store{}
	for i := 0; i < DefaultOccupied; i++ {
		s.slots[i] = &Slot{}
	}
	return s
}

// Count returns the number of occupied slots.
func (s *Store) Count() int {
	n := 0
	for _, sl := range s.slots {
		if sl != nil {
			n++
		}
	}
	return n
}

// indexFor maps a logical position to its storage index.
func (s *Store) indexFor(pos int) (int, bool) {
	if pos < 0 {
		return 0, false
	}
	seen := 0
	for i, sl := range s.slots {
		if sl == nil {
			continue
		}
		if seen == pos {
			return i, true
		}
		seen++
	}
	return 0, false
}

// each visits every occupied slot in storage-index order, passing its
// logical position. Callbacks may mutate the slot in place.
func (s *Store) each(fn func(pos int, sl *Slot)) {
	pos := 0
	for _, sl := range s.slots {
		if sl != nil {
			fn(pos, sl)
			pos++
		}
	}
}

// Add creates a neutral unlocked slot at the lowest free storage index.
// No-op when the palette is already full.
func (s *Store) Add() bool {
	if s.Count() >= Capacity {
		return false
	}
	for i, sl := range s.slots {
		if sl == nil {
			s.slots[i] = &Slot{}
			return true
		}
	}
	return false
}

// Remove empties the slot at the given logical position and clamps the
// selection into the new occupied range. No-op at or below MinOccupied, or
// when the position maps to nothing.
func (s *Store) Remove(pos int) bool {
	if s.Count() <= MinOccupied {
		return false
	}
	idx, ok := s.indexFor(pos)
	if !ok {
		return false
	}
	s.slots[idx] = nil
	s.clampSelection()
	return true
}

// ToggleLock flips the lock flag of the slot at the given logical position.
func (s *Store) ToggleLock(pos int) {
	if idx, ok := s.indexFor(pos); ok {
		s.slots[idx].Locked = !s.slots[idx].Locked
	}
}

// ToggleLockOrdinal flips the lock flag of the slot at storage index n-1.
// This is the alt+1..9 fast path: it addresses storage indices directly,
// bypassing the logical mapping on purpose so "lock slot 4" always means
// the fourth cell on screen. No-op when n is out of range or the cell is
// empty.
func (s *Store) ToggleLockOrdinal(n int) bool {
	if n < 1 || n > Capacity {
		return false
	}
	if sl := s.slots[n-1]; sl != nil {
		sl.Locked = !sl.Locked
		return true
	}
	return false
}

// SetHex overwrites the color at the given logical position from a hex
// string. Lock state is ignored: a direct edit is a user override.
func (s *Store) SetHex(pos int, text string) {
	if idx, ok := s.indexFor(pos); ok {
		s.slots[idx].Color = ColorFromHex(text)
	}
}

// At returns a copy of the slot at the given logical position.
func (s *Store) At(pos int) (Slot, bool) {
	idx, ok := s.indexFor(pos)
	if !ok {
		return Slot{}, false
	}
	return *s.slots[idx], true
}

// AtOrdinal returns a copy of the slot at storage index n-1, if occupied.
func (s *Store) AtOrdinal(n int) (Slot, bool) {
	if n < 1 || n > Capacity {
		return Slot{}, false
	}
	if sl := s.slots[n-1]; sl != nil {
		return *sl, true
	}
	return Slot{}, false
}

// HexAt returns the hex form of the color at the given logical position.
func (s *Store) HexAt(pos int) (string, bool) {
	sl, ok := s.At(pos)
	if !ok {
		return "", false
	}
	return sl.Color.Hex(), true
}

// Locked returns the colors of all occupied, locked slots in storage-index
// order. This is the anchor source for the harmony engine.
func (s *Store) Locked() []Color {
	var out []Color
	for _, sl := range s.slots {
		if sl != nil && sl.Locked {
			out = append(out, sl.Color)
		}
	}
	return out
}

// Selected returns the tracked logical selection.
func (s *Store) Selected() int {
	return s.selected
}

// SelectNext moves the selection one logical position forward. It reports
// whether the selection actually moved.
func (s *Store) SelectNext() bool {
	prev := s.selected
	s.selected++
	s.clampSelection()
	return s.selected != prev
}

// SelectPrev moves the selection one logical position back. It reports
// whether the selection actually moved.
func (s *Store) SelectPrev() bool {
	prev := s.selected
	s.selected--
	s.clampSelection()
	return s.selected != prev
}

func (s *Store) clampSelection() {
	n := s.Count()
	if n == 0 {
		s.selected = 0
		return
	}
	if s.selected < 0 {
		s.selected = 0
	}
	if s.selected > n-1 {
		s.selected = n - 1
	}
}
