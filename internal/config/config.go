// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene asset settings.
type SceneConfig struct {
	TextureDir string     `yaml:"texture_dir"` // directory holding the tagged scene textures
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the starting camera pose and controls.
type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Front    [3]float32 `yaml:"front"`
	FOV      float32    `yaml:"fov"`   // degrees
	Speed    float32    `yaml:"speed"` // world units per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
// The camera pose frames the counter scene the way the reference photo does.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1000,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			TextureDir: "textures",
			ClearColor: [3]float32{0.12, 0.12, 0.14},
		},
		Camera: CameraConfig{
			Position: [3]float32{0.5, 5.5, 10.0},
			Front:    [3]float32{0.0, -0.5, -2.0},
			FOV:      80,
			Speed:    10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
