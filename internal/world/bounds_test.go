package world

import "testing"

func TestIndexCoordRoundTrip(t *testing.T) {
	b := ChunkBounds{XMin: -2, XMax: 3, YMin: -1, YMax: 1, ZMin: 0, ZMax: 4}

	seen := make(map[int]bool)
	for cx := b.XMin; cx <= b.XMax; cx++ {
		for cy := b.YMin; cy <= b.YMax; cy++ {
			for cz := b.ZMin; cz <= b.ZMax; cz++ {
				i, ok := b.Index(cx, cy, cz)
				if !ok {
					t.Fatalf("Index(%d,%d,%d) reported out of bounds", cx, cy, cz)
				}
				if i < 0 || i >= b.Count() {
					t.Fatalf("Index(%d,%d,%d) = %d, outside [0,%d)", cx, cy, cz, i, b.Count())
				}
				if seen[i] {
					t.Fatalf("Index(%d,%d,%d) = %d collides with an earlier coordinate", cx, cy, cz, i)
				}
				seen[i] = true

				gx, gy, gz := b.Coord(i)
				if gx != cx || gy != cy || gz != cz {
					t.Errorf("Coord(%d) = (%d,%d,%d), want (%d,%d,%d)", i, gx, gy, gz, cx, cy, cz)
				}
			}
		}
	}
	if len(seen) != b.Count() {
		t.Errorf("covered %d indices, want %d", len(seen), b.Count())
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	b := ChunkBounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1, ZMin: 0, ZMax: 1}
	cases := [][3]int{
		{-1, 0, 0}, {2, 0, 0},
		{0, -1, 0}, {0, 2, 0},
		{0, 0, -1}, {0, 0, 2},
	}
	for _, c := range cases {
		if _, ok := b.Index(c[0], c[1], c[2]); ok {
			t.Errorf("Index(%d,%d,%d) accepted an out-of-bounds coordinate", c[0], c[1], c[2])
		}
	}
}

func TestChunkCoordAtNegative(t *testing.T) {
	cases := []struct {
		wx, wy, wz int
		cx, cy, cz int
	}{
		{0, 0, 0, 0, 0, 0},
		{15, 15, 15, 0, 0, 0},
		{16, 0, 0, 1, 0, 0},
		{-1, -1, -1, -1, -1, -1},
		{-16, -16, -16, -1, -1, -1},
		{-17, 0, 0, -2, 0, 0},
		{31, -33, 47, 1, -3, 2},
	}
	for _, c := range cases {
		cx, cy, cz := ChunkCoordAt(c.wx, c.wy, c.wz)
		if cx != c.cx || cy != c.cy || cz != c.cz {
			t.Errorf("ChunkCoordAt(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
				c.wx, c.wy, c.wz, cx, cy, cz, c.cx, c.cy, c.cz)
		}
	}
}

func TestLocalOffsetMatchesChunkCoord(t *testing.T) {
	for _, w := range []int{-33, -17, -16, -1, 0, 1, 15, 16, 31, 100} {
		cx, _, _ := ChunkCoordAt(w, 0, 0)
		lx, _, _ := LocalOffset(w, 0, 0)
		if lx < 0 || lx >= ChunkSize {
			t.Errorf("LocalOffset(%d) = %d, outside [0,%d)", w, lx, ChunkSize)
		}
		if cx*ChunkSize+lx != w {
			t.Errorf("chunk %d * %d + local %d = %d, want %d", cx, ChunkSize, lx, cx*ChunkSize+lx, w)
		}
	}
}
