package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestSlotForKnownTables(t *testing.T) {
	slot := SlotFor(18, 0)
	if slot.Extra {
		t.Error("table 18 is on the plan, should not be extra")
	}
	if !almostEqual(slot.Pos.X, 600) || !almostEqual(slot.Pos.Y, 150) {
		t.Errorf("table 18 at (%v, %v), want (600, 150)", slot.Pos.X, slot.Pos.Y)
	}

	if !SlotFor(1, 0).VIP || !SlotFor(4, 0).VIP {
		t.Error("tables 1 and 4 belong to the VIP area")
	}
	if SlotFor(6, 0).VIP {
		t.Error("table 6 is not VIP")
	}
	if !SlotFor(5, 0).Destacada {
		t.Error("table 5 is the highlighted table")
	}
}

func TestSlotForOverflowRow(t *testing.T) {
	first := SlotFor(29, 0)
	if !first.Extra {
		t.Error("table 29 has no slot on the plan, should be extra")
	}
	if !almostEqual(first.Pos.X, 100) || !almostEqual(first.Pos.Y, 820) {
		t.Errorf("first overflow table at (%v, %v), want (100, 820)", first.Pos.X, first.Pos.Y)
	}

	second := SlotFor(30, 1)
	if !almostEqual(second.Pos.X, 220) || !almostEqual(second.Pos.Y, 820) {
		t.Errorf("second overflow table at (%v, %v), want (220, 820)", second.Pos.X, second.Pos.Y)
	}
}

func TestOnPlan(t *testing.T) {
	for numero := uint32(1); numero <= 28; numero++ {
		if !OnPlan(numero) {
			t.Errorf("table %d should be on the plan", numero)
		}
	}
	if OnPlan(0) || OnPlan(29) {
		t.Error("tables 0 and 29 are not on the plan")
	}
}

func TestSeatAngleStartsAtTop(t *testing.T) {
	if got := SeatAngle(0, 10); !almostEqual(got, -math.Pi/2) {
		t.Errorf("SeatAngle(0, 10) = %v, want -π/2", got)
	}
	// Quarter of the way around from the top is due east.
	if got := SeatAngle(1, 4); !almostEqual(got, 0) {
		t.Errorf("SeatAngle(1, 4) = %v, want 0", got)
	}
}

func TestSeatPositions(t *testing.T) {
	center := Point{X: 100, Y: 100}
	pts := SeatPositions(4, center, 35)
	if len(pts) != 4 {
		t.Fatalf("got %d positions, want 4", len(pts))
	}

	want := []Point{
		{100, 65},  // top
		{135, 100}, // east
		{100, 135}, // bottom
		{65, 100},  // west
	}
	for i, w := range want {
		if !almostEqual(pts[i].X, w.X) || !almostEqual(pts[i].Y, w.Y) {
			t.Errorf("seat %d at (%v, %v), want (%v, %v)", i, pts[i].X, pts[i].Y, w.X, w.Y)
		}
	}
}

func TestSeatPositionsEmpty(t *testing.T) {
	if pts := SeatPositions(0, Point{}, 35); pts != nil {
		t.Errorf("expected nil for zero seats, got %v", pts)
	}
	if pts := SeatPositions(-1, Point{}, 35); pts != nil {
		t.Errorf("expected nil for negative seats, got %v", pts)
	}
}
