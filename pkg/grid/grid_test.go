package grid

import "testing"

type piece struct {
	name string
	x, y int
}

func (p *piece) Cell() (int, int) { return p.x, p.y }
func (p *piece) SetCell(x, y int) { p.x, p.y = x, y }

func snapshot(g *Grid) map[[2]int]Occupant {
	out := map[[2]int]Occupant{}
	g.Each(func(x, y int, o Occupant) { out[[2]int{x, y}] = o })
	return out
}

func TestPlaceIntoFreeCell(t *testing.T) {
	g := New(12, 4)
	p := &piece{name: "a"}

	if !g.Place(p, 6, 3) {
		t.Fatal("Expected placement to succeed")
	}
	if p.x != 6 || p.y != 3 {
		t.Errorf("Expected unit at (6,3), got (%d,%d)", p.x, p.y)
	}
	if g.At(6, 3) != p {
		t.Error("Expected grid cell to hold the unit")
	}
}

func TestPlaceMovesAndClearsPreviousCell(t *testing.T) {
	g := New(12, 4)
	p := &piece{}
	g.Place(p, 2, 2)
	g.Place(p, 3, 2)

	if g.At(2, 2) != nil {
		t.Error("Expected previous cell to be cleared")
	}
	if g.At(3, 2) != p {
		t.Error("Expected new cell to hold the unit")
	}
	if g.Occupied() != 1 {
		t.Errorf("Expected 1 occupied cell, got %d", g.Occupied())
	}
}

func TestSentinelDoesNotClearForeignCell(t *testing.T) {
	g := New(4, 4)
	first := &piece{name: "first"}
	g.Place(first, 0, 0)

	// second ещё не на поле, но хранит (0,0)
	second := &piece{name: "second"}
	g.Place(second, 2, 1)

	if g.At(0, 0) != first {
		t.Error("Placing an unplaced unit must not clear (0,0) owned by another unit")
	}
}

func TestPlaceProbesColumnMajor(t *testing.T) {
	g := New(3, 3)
	blockers := []*piece{{}, {}, {}, {}}
	g.Place(blockers[0], 1, 1)
	g.Place(blockers[1], 1, 2)
	g.Place(blockers[2], 2, 0)

	p := &piece{name: "mover", x: -1, y: -1}
	// (1,1) занята -> (1,2) занята -> перенос на (2,0) занята -> (2,1) свободна
	if !g.Place(p, 1, 1) {
		t.Fatal("Expected placement to succeed")
	}
	if p.x != 2 || p.y != 1 {
		t.Errorf("Expected probe to land on (2,1), got (%d,%d)", p.x, p.y)
	}
}

func TestPlaceWrapsLastColumn(t *testing.T) {
	g := New(2, 2)
	g.Place(&piece{}, 1, 1)

	p := &piece{x: -1, y: -1}
	if !g.Place(p, 1, 1) {
		t.Fatal("Expected placement to succeed")
	}
	if p.x != 0 || p.y != 0 {
		t.Errorf("Expected wrap to (0,0), got (%d,%d)", p.x, p.y)
	}
}

func TestPlaceOwnCellIsFree(t *testing.T) {
	g := New(3, 3)
	p := &piece{}
	g.Place(p, 1, 1)
	if !g.Place(p, 1, 1) {
		t.Fatal("Expected re-placing into own cell to succeed")
	}
	if p.x != 1 || p.y != 1 || g.At(1, 1) != p {
		t.Error("Expected unit to stay in place")
	}
}

func TestPlaceFullGridFailsWithoutChanges(t *testing.T) {
	g := New(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			g.Place(&piece{x: -1, y: -1}, x, y)
		}
	}
	before := snapshot(g)

	p := &piece{x: -1, y: -1}
	if g.Place(p, 0, 0) {
		t.Fatal("Expected placement into a full grid to fail")
	}
	after := snapshot(g)
	for k, v := range before {
		if after[k] != v {
			t.Errorf("Cell %v changed after failed placement", k)
		}
	}
	if p.x != -1 || p.y != -1 {
		t.Error("Failed placement must not touch unit coordinates")
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	g := New(3, 3)
	if g.Place(&piece{}, 3, 0) || g.Place(&piece{}, 0, -1) {
		t.Error("Expected out-of-bounds placement to fail")
	}
}

func TestRemove(t *testing.T) {
	g := New(3, 3)
	p := &piece{}
	g.Place(p, 2, 2)

	if !g.Remove(p) {
		t.Fatal("Expected Remove to report success")
	}
	if g.At(2, 2) != nil {
		t.Error("Expected cell to be cleared")
	}
	if g.Remove(p) {
		t.Error("Expected second Remove to report false")
	}
}

func TestGeometry(t *testing.T) {
	geo := NewGeometry(1200, 900, 12, 4)
	if geo.CellSize != 100 {
		t.Fatalf("Expected cell size 100, got %v", geo.CellSize)
	}
	if geo.OffsetX != 0 || geo.OffsetY != 900-400-BottomMargin {
		t.Errorf("Unexpected offsets (%v,%v)", geo.OffsetX, geo.OffsetY)
	}

	cx, cy := geo.CellCenter(2, 1)
	if cx != 250 || cy != geo.OffsetY+150 {
		t.Errorf("Unexpected center (%v,%v)", cx, cy)
	}

	ax, ay := geo.SpriteAnchor(0, 0, 98)
	if ax != 1 || ay != geo.OffsetY+1 {
		t.Errorf("Unexpected sprite anchor (%v,%v)", ax, ay)
	}
}

func TestGeometryCentersHorizontally(t *testing.T) {
	geo := NewGeometry(1920, 1080, 12, 4)
	// 1920/12 = 160, 1080/8 = 135
	if geo.CellSize != 135 {
		t.Fatalf("Expected cell size 135, got %v", geo.CellSize)
	}
	if geo.OffsetX != float64((1920-12*135)/2) {
		t.Errorf("Unexpected OffsetX %v", geo.OffsetX)
	}
}
