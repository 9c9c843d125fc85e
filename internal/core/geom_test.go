package core

import "testing"

func TestCoordIn(t *testing.T) {
	tests := []struct {
		name     string
		c        Coord
		expected bool
	}{
		{"origin", C(0, 0), true},
		{"last cell", C(2, 3), true},
		{"negative row", C(-1, 0), false},
		{"negative col", C(0, -1), false},
		{"row past bottom", C(3, 0), false},
		{"col past right", C(0, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.In(3, 4); got != tc.expected {
				t.Errorf("%v.In(3, 4) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestCoordNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		c        Coord
		expected int
	}{
		{"corner", C(0, 0), 3},
		{"opposite corner", C(2, 2), 3},
		{"edge", C(0, 1), 5},
		{"center", C(1, 1), 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen := make(map[Coord]bool)
			tc.c.Neighbors(3, 3, func(n Coord) {
				if n == tc.c {
					t.Errorf("Neighbors yielded the cell itself")
				}
				if !n.In(3, 3) {
					t.Errorf("Neighbors yielded out-of-bounds %v", n)
				}
				seen[n] = true
			})
			if len(seen) != tc.expected {
				t.Errorf("Neighbors(%v) count = %d, expected %d", tc.c, len(seen), tc.expected)
			}
		})
	}
}

func TestNeighborsSingleCell(t *testing.T) {
	count := 0
	C(0, 0).Neighbors(1, 1, func(Coord) { count++ })
	if count != 0 {
		t.Errorf("1x1 grid should have no neighbors, got %d", count)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{3, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestActionDelta(t *testing.T) {
	tests := []struct {
		a      Action
		dr, dc int
		move   bool
	}{
		{ActionUp, -1, 0, true},
		{ActionDown, 1, 0, true},
		{ActionLeft, 0, -1, true},
		{ActionRight, 0, 1, true},
		{ActionReveal, 0, 0, false},
		{ActionFlag, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.a.String(), func(t *testing.T) {
			dr, dc := tc.a.Delta()
			if dr != tc.dr || dc != tc.dc {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dr, dc, tc.dr, tc.dc)
			}
			if tc.a.IsMove() != tc.move {
				t.Errorf("IsMove() = %v, expected %v", tc.a.IsMove(), tc.move)
			}
		})
	}
}
