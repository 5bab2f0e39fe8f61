package meshing

import (
	"testing"

	"voxelcore/internal/world"
)

func benchWorld() (*world.World, *world.Chunk) {
	w := world.New(world.ChunkBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, ZMin: -1, ZMax: 1})
	gen := world.NewGenerator(1337, world.DefaultGeneratorParams())
	b := w.Bounds()
	for cx := b.XMin; cx <= b.XMax; cx++ {
		for cy := b.YMin; cy <= b.YMax; cy++ {
			for cz := b.ZMin; cz <= b.ZMax; cz++ {
				gen.Generate(w.ChunkAt(cx, cy, cz))
			}
		}
	}
	return w, w.ChunkAt(0, 0, 0)
}

func BenchmarkMeshChunk(b *testing.B) {
	w, c := benchWorld()
	m := NewMesher()
	out := NewChunkGeometry()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Mesh(w, c, out)
	}
}
