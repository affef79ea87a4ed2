package scenedef

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefinitionPath is the scene file, relative to the asset root.
const DefinitionPath = "globe.yaml"

// Definition is the scene's tunables. Zero-valued fields in the YAML keep their defaults,
// so a field cannot be overridden to zero.
type Definition struct {
	Fovy     float32 `yaml:"fovy"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`

	SpinPerTick float32 `yaml:"spin_per_tick"`

	AmbientColor   [3]float32 `yaml:"ambient_color"`
	LightColor     [3]float32 `yaml:"light_color"`
	LightIntensity float32    `yaml:"light_intensity"`
	LightPosition  [3]float32 `yaml:"light_position"`

	GlobeRadius   float32    `yaml:"globe_radius"`
	GlobeRings    int        `yaml:"globe_rings"`
	GlobeSlices   int        `yaml:"globe_slices"`
	BumpScale     float32    `yaml:"bump_scale"`
	Shininess     float32    `yaml:"shininess"`
	SpecularColor [3]float32 `yaml:"specular_color"`

	StarRadius float32 `yaml:"star_radius"`
	StarRings  int     `yaml:"star_rings"`
	StarSlices int     `yaml:"star_slices"`

	ColorMap string `yaml:"color_map"`
	BumpMap  string `yaml:"bump_map"`
	StarMap  string `yaml:"star_map"`
}

// Default is the stock earth scene.
func Default() Definition {
	const grey33 = float32(0x33) / 255
	const grey11 = float32(0x11) / 255
	return Definition{
		Fovy:     45,
		Near:     0.001,
		Far:      1000,
		Distance: 7,

		SpinPerTick: 0.0005,

		AmbientColor:   [3]float32{grey33, grey33, grey33},
		LightColor:     [3]float32{1, 1, 1},
		LightIntensity: 1,
		LightPosition:  [3]float32{4, 3, 4},

		GlobeRadius:   2,
		GlobeRings:    32,
		GlobeSlices:   32,
		BumpScale:     0.1,
		Shininess:     30,
		SpecularColor: [3]float32{grey11, grey11, grey11},

		StarRadius: 4,
		StarRings:  4,
		StarSlices: 24,

		ColorMap: "images/1_earth_8k.jpg",
		BumpMap:  "images/elev_bump_8k.jpg",
		StarMap:  "images/starfield.jpg",
	}
}

// Parse decodes YAML and lays the non-zero fields over Default().
func Parse(data []byte) (Definition, error) {
	var override Definition
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Default(), fmt.Errorf("scenedef: %w", err)
	}
	def := Default()
	if err := copier.CopyWithOption(&def, &override, copier.Option{IgnoreEmpty: true}); err != nil {
		return Default(), fmt.Errorf("scenedef: %w", err)
	}
	return def, nil
}

// Load reads the definition at path. A missing file is not an error and yields Default().
// An unreadable or invalid file yields Default() and the error.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("scenedef: %w", err)
	}
	return Parse(data)
}
