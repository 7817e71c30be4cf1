package palette

import "testing"

func TestNewStoreSeedsDefaultSlots(t *testing.T) {
	s := NewStore()
	if got := s.Count(); got != DefaultOccupied {
		t.Fatalf("fresh store count = %d want %d", got, DefaultOccupied)
	}
	sl, ok := s.At(0)
	if !ok {
		t.Fatalf("expected slot at logical position 0")
	}
	if sl.Locked || sl.Color != (Color{}) {
		t.Fatalf("fresh slot should be neutral and unlocked, got %+v", sl)
	}
}

func TestAddStopsAtCapacity(t *testing.T) {
	s := NewStore()
	for i := DefaultOccupied; i < Capacity; i++ {
		if !s.Add() {
			t.Fatalf("Add failed at count %d", i)
		}
	}
	if s.Add() {
		t.Fatalf("Add on a full palette should be a no-op")
	}
	if got := s.Count(); got != Capacity {
		t.Fatalf("count after overfill attempts = %d want %d", got, Capacity)
	}
}

func TestRemoveStopsAtMinimum(t *testing.T) {
	s := NewStore()
	s.Remove(0)
	s.Remove(0)
	if got := s.Count(); got != MinOccupied {
		t.Fatalf("count = %d want %d", got, MinOccupied)
	}
	before, _ := s.HexAt(0)
	if s.Remove(0) {
		t.Fatalf("Remove at minimum occupancy should be a no-op")
	}
	after, _ := s.HexAt(0)
	if got := s.Count(); got != MinOccupied || before != after {
		t.Fatalf("minimum palette changed: count=%d hex %s -> %s", got, before, after)
	}
}

func TestRemoveLeavesHoleAndLogicalOrderSkipsIt(t *testing.T) {
	s := NewStore()
	s.SetHex(0, "ff0000")
	s.SetHex(1, "00ff00")
	s.SetHex(2, "0000ff")

	// Removing logical position 1 empties storage index 1; position 1 now
	// maps to storage index 2.
	s.Remove(1)
	hex, ok := s.HexAt(1)
	if !ok || hex != "0000ff" {
		t.Fatalf("logical position 1 after remove = %q want 0000ff", hex)
	}

	// Add refills the hole at the lowest free index, so the new slot lands
	// back at logical position 1.
	s.Add()
	sl, ok := s.At(1)
	if !ok || sl.Color != (Color{}) {
		t.Fatalf("refilled hole should hold a neutral slot, got %+v", sl)
	}
}

func TestAddRemoveChurnStaysInBounds(t *testing.T) {
	s := NewStore()
	for i := 0; i < 50; i++ {
		s.Add()
		s.Add()
		s.Remove(0)
		if n := s.Count(); n < MinOccupied || n > Capacity {
			t.Fatalf("occupied count %d escaped [%d,%d]", n, MinOccupied, Capacity)
		}
	}
}

func TestToggleLock(t *testing.T) {
	s := NewStore()
	s.ToggleLock(2)
	sl, _ := s.At(2)
	if !sl.Locked {
		t.Fatalf("expected logical position 2 to be locked")
	}
	s.ToggleLock(2)
	sl, _ = s.At(2)
	if sl.Locked {
		t.Fatalf("expected lock to toggle off")
	}

	// Out of range is silent.
	s.ToggleLock(99)
	s.ToggleLock(-1)
}

func TestToggleLockOrdinalAddressesStorageDirectly(t *testing.T) {
	s := NewStore()
	s.Remove(0) // hole at storage index 0; logical 0 is now storage 1

	s.ToggleLockOrdinal(2) // storage index 1
	sl, _ := s.At(0)
	if !sl.Locked {
		t.Fatalf("ordinal 2 should lock storage index 1 (logical 0)")
	}

	// Ordinal pointing at the hole is a no-op.
	s.ToggleLockOrdinal(1)
	if got := len(s.Locked()); got != 1 {
		t.Fatalf("locked count = %d want 1", got)
	}
}

func TestToggleLockOrdinalOnEmptyCellIsNoop(t *testing.T) {
	s := NewStore()
	s.Remove(0)
	s.Remove(0) // three occupied, storage indices 2..4

	s.ToggleLockOrdinal(3) // storage index 2, occupied
	if got := len(s.Locked()); got != 1 {
		t.Fatalf("locked count = %d want 1", got)
	}

	// Sparse palette with only storage indices 0 and 1 occupied: ordinal 3
	// points at an empty cell and must do nothing.
	s2 := &Store{}
	s2.slots[0] = &Slot{}
	s2.slots[1] = &Slot{}
	s2.ToggleLockOrdinal(3)
	if got := len(s2.Locked()); got != 0 {
		t.Fatalf("locking an empty ordinal should do nothing, locked=%d", got)
	}
}

func TestSetHexOverridesLockedSlot(t *testing.T) {
	s := NewStore()
	s.ToggleLock(1)
	s.SetHex(1, "ff8800")
	hex, _ := s.HexAt(1)
	if hex != "ff8800" {
		t.Fatalf("direct edit of a locked slot = %s want ff8800", hex)
	}

	// Out-of-range edit is silent.
	s.SetHex(42, "ffffff")
}

func TestLockedReturnsStorageOrder(t *testing.T) {
	s := NewStore()
	s.SetHex(3, "0000ff")
	s.SetHex(1, "00ff00")
	s.ToggleLock(3)
	s.ToggleLock(1)

	locked := s.Locked()
	if len(locked) != 2 {
		t.Fatalf("locked count = %d want 2", len(locked))
	}
	if locked[0].Hex() != "00ff00" || locked[1].Hex() != "0000ff" {
		t.Fatalf("locked order = %s,%s want 00ff00,0000ff", locked[0].Hex(), locked[1].Hex())
	}
}

func TestSelectionClampsToOccupiedRange(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.SelectNext()
	}
	if got := s.Selected(); got != DefaultOccupied-1 {
		t.Fatalf("selection = %d want %d", got, DefaultOccupied-1)
	}

	s.Remove(4)
	s.Remove(3)
	if got := s.Selected(); got != s.Count()-1 {
		t.Fatalf("selection after removals = %d want %d", got, s.Count()-1)
	}

	for i := 0; i < 10; i++ {
		s.SelectPrev()
	}
	if got := s.Selected(); got != 0 {
		t.Fatalf("selection = %d want 0", got)
	}
}
