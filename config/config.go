// Package config loads runtime settings from defaults, an optional TOML file and the environment
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix scopes environment overrides
const EnvPrefix = "TEMPLEWALK_"

// Duration is a time.Duration read from strings like "100ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	FrameInterval Duration         `toml:"frame_interval" env:"FRAME_INTERVAL"`
	Locomotion    LocomotionConfig `toml:"locomotion" envPrefix:"LOCOMOTION_"`
	Camera        CameraConfig     `toml:"camera" envPrefix:"CAMERA_"`
	Scene         SceneConfig      `toml:"scene" envPrefix:"SCENE_"`
	Model         ModelConfig      `toml:"model" envPrefix:"MODEL_"`
	Panel         PanelConfig      `toml:"panel" envPrefix:"PANEL_"`
	Audio         AudioConfig      `toml:"audio" envPrefix:"AUDIO_"`
}

type LocomotionConfig struct {
	TickInterval Duration `toml:"tick_interval" env:"TICK_INTERVAL"`
	GlideStep    float64  `toml:"glide_step" env:"GLIDE_STEP"`
	KeyStep      float64  `toml:"key_step" env:"KEY_STEP"`
}

type CameraConfig struct {
	FOV          float64    `toml:"fov" env:"FOV"`
	Near         float64    `toml:"near" env:"NEAR"`
	Far          float64    `toml:"far" env:"FAR"`
	Position     [3]float64 `toml:"position"`
	OrbitTarget  [3]float64 `toml:"orbit_target"`
	RigPosition  [3]float64 `toml:"rig_position"`
	OrbitEnabled bool       `toml:"orbit_enabled" env:"ORBIT_ENABLED"`
}

type SceneConfig struct {
	Background  uint32  `toml:"background" env:"BACKGROUND"`
	GroundColor uint32  `toml:"ground_color" env:"GROUND_COLOR"`
	GroundY     float64 `toml:"ground_y" env:"GROUND_Y"`
	GroundSize  float64 `toml:"ground_size" env:"GROUND_SIZE"`
}

type ModelConfig struct {
	// Path to a .glb or .gltf file, empty uses the built-in colonnade
	Path   string     `toml:"path" env:"PATH"`
	Name   string     `toml:"name" env:"NAME"`
	Scale  float64    `toml:"scale" env:"SCALE"`
	Offset [3]float64 `toml:"offset"`
}

type PanelConfig struct {
	Text      string     `toml:"text" env:"TEXT"`
	Width     float64    `toml:"width" env:"WIDTH"`
	Height    float64    `toml:"height" env:"HEIGHT"`
	Padding   float64    `toml:"padding" env:"PADDING"`
	FontSize  float64    `toml:"font_size" env:"FONT_SIZE"`
	Position  [3]float64 `toml:"position"`
	RotationX float64    `toml:"rotation_x" env:"ROTATION_X"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"`
}

// Default returns the stock settings
func Default() Config {
	return Config{
		FrameInterval: Duration{16 * time.Millisecond},
		Locomotion: LocomotionConfig{
			TickInterval: Duration{100 * time.Millisecond},
			GlideStep:    0.1,
			KeyStep:      1,
		},
		Camera: CameraConfig{
			FOV:          35,
			Near:         1,
			Far:          500,
			Position:     [3]float64{0, 40, 0},
			OrbitTarget:  [3]float64{0, 20, 0},
			OrbitEnabled: true,
		},
		Scene: SceneConfig{
			Background:  0xa0a0a0,
			GroundColor: 0x00ff00,
			GroundY:     11,
			GroundSize:  1000,
		},
		Model: ModelConfig{
			Path:   "temple.glb",
			Name:   "model",
			Scale:  0.01,
			Offset: [3]float64{-20, 0, -10},
		},
		Panel: PanelConfig{
			Text:      "Please Take off your shoes.",
			Width:     1.2,
			Height:    0.5,
			Padding:   0.05,
			FontSize:  0.099,
			Position:  [3]float64{0, 2, -2},
			RotationX: -0.3,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
	}
}

// Load applies the TOML file at path, if any, then environment overrides, then validates
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
