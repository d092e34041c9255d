package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false},
		{2, 8, false},
		{1, 4, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 21, 11)
	inner := outer.Centered(5, 3)

	if inner.X != 8 || inner.Y != 4 {
		t.Errorf("Centered position = (%d, %d), expected (8, 4)", inner.X, inner.Y)
	}
	if cx, cy := inner.Center(); cx != 10 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (10, 5)", cx, cy)
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value    int
		expected Color
	}{
		{0, ColorDefault},
		{2, ColorTile2},
		{4, ColorTile4},
		{128, ColorTile128},
		{2048, ColorTile2048},
		{4096, ColorTileSuper},
		{1 << 20, ColorTileSuper},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.expected {
			t.Errorf("TileColor(%d) = %d, expected %d", tt.value, got, tt.expected)
		}
	}
}
