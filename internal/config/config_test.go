package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := writeTemp(t, `
world:
  seed: 99
generation:
  octaves: 7
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.World.Seed)
	}
	if cfg.Generation.Octaves != 7 {
		t.Errorf("octaves = %d, want 7", cfg.Generation.Octaves)
	}

	// Fields the file does not name keep their defaults.
	def := Default()
	if cfg.World.XMin != def.World.XMin || cfg.World.XMax != def.World.XMax {
		t.Errorf("x bounds = [%d,%d], want defaults [%d,%d]",
			cfg.World.XMin, cfg.World.XMax, def.World.XMin, def.World.XMax)
	}
	if cfg.Generation.DensityScale != def.Generation.DensityScale {
		t.Errorf("density_scale = %v, want default %v",
			cfg.Generation.DensityScale, def.Generation.DensityScale)
	}
}

func TestLoadRejectsInvertedBounds(t *testing.T) {
	path := writeTemp(t, `
world:
  x_min: 2
  x_max: -2
`)
	if _, err := Load(path); err == nil {
		t.Error("inverted x bounds accepted")
	}
}

func TestLoadRejectsBadOctaves(t *testing.T) {
	path := writeTemp(t, `
generation:
  octaves: 0
`)
	if _, err := Load(path); err == nil {
		t.Error("zero octaves accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeTemp(t, "world: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestBoundsAndParamsConversion(t *testing.T) {
	cfg := Default()
	b := cfg.Bounds()
	if b.XMin != cfg.World.XMin || b.ZMax != cfg.World.ZMax {
		t.Errorf("Bounds() = %+v does not mirror the world section %+v", b, cfg.World)
	}
	p := cfg.Params()
	if p.DensityScale != cfg.Generation.DensityScale || p.HueOctaves != cfg.Generation.HueOctaves {
		t.Error("Params() does not mirror the generation section")
	}
}
