package config

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// Scene detection defaults, overridable per run via CLI flags
	Detect DetectConfig `yaml:"detect"`

	// FFmpeg settings
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`
}

type DetectConfig struct {
	Threshold   float64 `yaml:"threshold"`
	MinSceneLen int     `yaml:"min_scene_len"`
	Window      int     `yaml:"window"`
	OutputDir   string  `yaml:"output_dir"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
	Threads    int    `yaml:"threads"`
	VideoCodec string `yaml:"video_codec"`
	AudioCodec string `yaml:"audio_codec"`
	CRF        int    `yaml:"crf"`
	Preset     string `yaml:"preset"`
}

// Load reads configuration from file or returns defaults. Environment
// variables (optionally from a .env file) override the ffmpeg paths.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	return &Config{
		Detect: DetectConfig{
			Threshold:   2.0,
			MinSceneLen: 15,
			Window:      20,
			OutputDir:   "clips",
		},
		FFmpeg: FFmpegConfig{
			BinaryPath: "ffmpeg",
			ProbePath:  "ffprobe",
			Threads:    0,
			VideoCodec: "libx264",
			AudioCodec: "aac",
			CRF:        23,
			Preset:     "medium",
		},
	}
}

// applyEnv overlays FFMPEG_* environment variables on the loaded config.
// A .env file in the working directory is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("FFMPEG_PATH"); v != "" {
		c.FFmpeg.BinaryPath = v
	}
	if v := os.Getenv("FFPROBE_PATH"); v != "" {
		c.FFmpeg.ProbePath = v
	}
	if v := os.Getenv("FFMPEG_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.FFmpeg.Threads = n
		}
	}
}

func findConfigFile() string {
	candidates := []string{
		"./videoreimagine.yaml",
		"./videoreimagine.yml",
		filepath.Join(os.Getenv("HOME"), ".videoreimagine", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
