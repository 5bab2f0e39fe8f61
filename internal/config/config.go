package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"voxelcore/internal/world"
)

// Config is the full runtime configuration, loadable from YAML. Zero or
// missing fields fall back to Default() values before unmarshalling, so a
// partial file only overrides what it names.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
}

// WorldConfig fixes the chunk lattice extent and the generation seed.
type WorldConfig struct {
	XMin int `yaml:"x_min"`
	XMax int `yaml:"x_max"`
	YMin int `yaml:"y_min"`
	YMax int `yaml:"y_max"`
	ZMin int `yaml:"z_min"`
	ZMax int `yaml:"z_max"`
	Seed int `yaml:"seed"`
}

// GenerationConfig tunes the procedural terrain: the density field and the
// hue field layered on top of it.
type GenerationConfig struct {
	DensityScale float64 `yaml:"density_scale"`
	Threshold    float64 `yaml:"threshold"`
	BandWidth    float64 `yaml:"band_width"`
	Octaves      int     `yaml:"octaves"`
	Lacunarity   float64 `yaml:"lacunarity"`
	Gain         float64 `yaml:"gain"`

	HueScale      float64 `yaml:"hue_scale"`
	HueSeedOffset int     `yaml:"hue_seed_offset"`
	HueOctaves    int     `yaml:"hue_octaves"`
	HueGain       float64 `yaml:"hue_gain"`
	Saturation    float64 `yaml:"saturation"`
	Value         float64 `yaml:"value"`
	SolidityFloor float64 `yaml:"solidity_floor"`
}

// Default returns the built-in configuration: a 9x3x9 chunk world centered on
// the origin and the stock terrain parameters.
func Default() Config {
	p := world.DefaultGeneratorParams()
	return Config{
		World: WorldConfig{
			XMin: -4, XMax: 4,
			YMin: -1, YMax: 1,
			ZMin: -4, ZMax: 4,
			Seed: 1337,
		},
		Generation: GenerationConfig{
			DensityScale:  p.DensityScale,
			Threshold:     p.Threshold,
			BandWidth:     p.BandWidth,
			Octaves:       p.Octaves,
			Lacunarity:    p.Lacunarity,
			Gain:          p.Gain,
			HueScale:      p.HueScale,
			HueSeedOffset: p.HueSeedOffset,
			HueOctaves:    p.HueOctaves,
			HueGain:       p.HueGain,
			Saturation:    p.Saturation,
			Value:         p.Value,
			SolidityFloor: p.SolidityFloor,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot run with.
func (c Config) Validate() error {
	if c.World.XMin > c.World.XMax {
		return errors.Errorf("world bounds: x_min %d > x_max %d", c.World.XMin, c.World.XMax)
	}
	if c.World.YMin > c.World.YMax {
		return errors.Errorf("world bounds: y_min %d > y_max %d", c.World.YMin, c.World.YMax)
	}
	if c.World.ZMin > c.World.ZMax {
		return errors.Errorf("world bounds: z_min %d > z_max %d", c.World.ZMin, c.World.ZMax)
	}
	if c.Generation.Octaves < 1 {
		return errors.Errorf("generation: octaves must be >= 1, got %d", c.Generation.Octaves)
	}
	if c.Generation.HueOctaves < 1 {
		return errors.Errorf("generation: hue_octaves must be >= 1, got %d", c.Generation.HueOctaves)
	}
	if c.Generation.BandWidth <= 0 {
		return errors.Errorf("generation: band_width must be > 0, got %v", c.Generation.BandWidth)
	}
	return nil
}

// Bounds converts the world section to chunk bounds.
func (c Config) Bounds() world.ChunkBounds {
	return world.ChunkBounds{
		XMin: c.World.XMin, XMax: c.World.XMax,
		YMin: c.World.YMin, YMax: c.World.YMax,
		ZMin: c.World.ZMin, ZMax: c.World.ZMax,
	}
}

// Params converts the generation section to generator parameters.
func (c Config) Params() world.GeneratorParams {
	return world.GeneratorParams{
		DensityScale:  c.Generation.DensityScale,
		Threshold:     c.Generation.Threshold,
		BandWidth:     c.Generation.BandWidth,
		Octaves:       c.Generation.Octaves,
		Lacunarity:    c.Generation.Lacunarity,
		Gain:          c.Generation.Gain,
		HueScale:      c.Generation.HueScale,
		HueSeedOffset: c.Generation.HueSeedOffset,
		HueOctaves:    c.Generation.HueOctaves,
		HueGain:       c.Generation.HueGain,
		Saturation:    c.Generation.Saturation,
		Value:         c.Generation.Value,
		SolidityFloor: c.Generation.SolidityFloor,
	}
}
