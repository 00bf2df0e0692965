package model

import "testing"

func TestHistoryStillLife(t *testing.T) {
	h := NewHistory(0)
	u := mustParse(t, paddedBlock, Bounded)

	for range 3 {
		if h.IsStagnant(u) {
			t.Fatalf("stagnant after only %d generations", h.Len())
		}
		h.Record(u)
		u = u.Step()
	}
	if !h.IsStagnant(u) {
		t.Errorf("block should be detected as stagnant")
	}
}

func TestHistoryOscillator(t *testing.T) {
	h := NewHistory(DefaultHistorySize)
	u := mustParse(t, ".....\n.....\n.###.\n.....\n.....", Toroidal)

	for range 3 {
		h.Record(u)
		u = u.Step()
	}
	if !h.IsStagnant(u) {
		t.Errorf("blinker should be detected as stagnant")
	}
}

func TestHistoryActive(t *testing.T) {
	h := NewHistory(DefaultHistorySize)
	u := mustParse(t, ".#......\n..#.....\n###.....\n........\n........\n........\n........\n........", Bounded)

	for range 4 {
		h.Record(u)
		u = u.Step()
	}
	if h.IsStagnant(u) {
		t.Errorf("a travelling glider is not stagnant")
	}
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(2)
	u := NewEmpty(3, 3, Bounded)
	for range 10 {
		h.Record(u)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	h.Reset()
	if h.Len() != 0 || h.IsStagnant(u) {
		t.Errorf("Reset did not clear the history")
	}
}
