package world

import (
	"math"

	"voxelcore/internal/profiling"
)

// GeneratorParams holds every tuning constant of the terrain generator. The
// hue channel intentionally runs at its own seed offset and spatial frequency;
// the defaults reproduce the stock terrain.
type GeneratorParams struct {
	DensityScale float64 // spatial frequency of the density fbm
	Threshold    float64 // center of the solidity ramp
	BandWidth    float64 // width of the solidity ramp
	Octaves      int
	Lacunarity   float64
	Gain         float64

	HueScale      float64 // spatial frequency of the hue fbm
	HueSeedOffset int     // added to the world seed for the hue channel
	HueOctaves    int
	HueGain       float64

	Saturation    float64
	Value         float64
	SolidityFloor float64 // voxels below this solidity are left untouched
}

// DefaultGeneratorParams returns the stock terrain tuning.
func DefaultGeneratorParams() GeneratorParams {
	return GeneratorParams{
		DensityScale:  0.0125,
		Threshold:     0.05,
		BandWidth:     0.4,
		Octaves:       5,
		Lacunarity:    2.0,
		Gain:          0.5,
		HueScale:      0.004,
		HueSeedOffset: 1000,
		HueOctaves:    3,
		HueGain:       0.6,
		Saturation:    0.8,
		Value:         1.0,
		SolidityFloor: 0.01,
	}
}

// Generator fills chunks with fbm-derived terrain. Chunks generate
// independently; seams line up because the noise is continuous in world
// coordinates, not because neighbors are consulted.
type Generator struct {
	seed   int
	params GeneratorParams
}

// NewGenerator creates a generator for the given seed and tuning.
func NewGenerator(seed int, params GeneratorParams) *Generator {
	return &Generator{seed: seed, params: params}
}

// Generate fills every voxel of the chunk. Density comes from fbm noise
// pushed through a smoothstep ramp around the threshold; color comes from an
// independently seeded hue fbm converted HSV→RGB and scaled by the same
// solidity factor. Voxels below the solidity floor keep whatever they held
// before. Recomputes the chunk sum and marks the chunk dirty.
func (g *Generator) Generate(c *Chunk) {
	defer profiling.Track("world.Generate")()

	p := g.params
	rampStart := p.Threshold - p.BandWidth/2

	for lz := 0; lz < ChunkSize; lz++ {
		for ly := 0; ly < ChunkSize; ly++ {
			for lx := 0; lx < ChunkSize; lx++ {
				wx := float64(c.X*ChunkSize + lx)
				wy := float64(c.Y*ChunkSize + ly)
				wz := float64(c.Z*ChunkSize + lz)

				n := fbm3(wx*p.DensityScale, wy*p.DensityScale, wz*p.DensityScale,
					g.seed, p.Octaves, p.Lacunarity, p.Gain)

				t := (n - rampStart) / p.BandWidth
				t = math.Max(0, math.Min(1, t))
				solidity := t * t * (3 - 2*t)
				if solidity <= p.SolidityFloor {
					continue
				}

				// Hue samples the axes rotated (z, x, y) so the color field
				// does not track the density field.
				h := (fbm3(wz*p.HueScale, wx*p.HueScale, wy*p.HueScale,
					g.seed+p.HueSeedOffset, p.HueOctaves, p.Lacunarity, p.HueGain) + 1) * 0.5
				r, gc, b := hsvToRGB(h, p.Saturation, p.Value)

				i := voxelIndex(lx, ly, lz)
				c.density[i] = uint8(solidity * 255)
				c.color[i*3] = uint8(r * solidity * 255)
				c.color[i*3+1] = uint8(gc * solidity * 255)
				c.color[i*3+2] = uint8(b * solidity * 255)
			}
		}
	}

	c.RecomputeSum()
	c.MarkDirty()
}

// hsvToRGB converts h in [0,1), s and v in [0,1] to RGB in [0,1].
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	ih := int(math.Floor(h * 6))
	f := h*6 - float64(ih)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch ih % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
