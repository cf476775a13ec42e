package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Detect.Threshold)
	assert.Equal(t, 15, cfg.Detect.MinSceneLen)
	assert.Equal(t, 20, cfg.Detect.Window)
	assert.Equal(t, "clips", cfg.Detect.OutputDir)
	assert.Equal(t, "ffmpeg", cfg.FFmpeg.BinaryPath)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
detect:
  threshold: 1.5
  min_scene_len: 10
  window: 30
  output_dir: out
ffmpeg:
  preset: fast
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.Detect.Threshold)
	assert.Equal(t, 10, cfg.Detect.MinSceneLen)
	assert.Equal(t, 30, cfg.Detect.Window)
	assert.Equal(t, "out", cfg.Detect.OutputDir)
	assert.Equal(t, "fast", cfg.FFmpeg.Preset)

	// Unset fields keep their defaults.
	assert.Equal(t, "libx264", cfg.FFmpeg.VideoCodec)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("detect: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FFMPEG_PATH", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("FFPROBE_PATH", "/opt/ffmpeg/bin/ffprobe")
	t.Setenv("FFMPEG_THREADS", "8")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpeg.BinaryPath)
	assert.Equal(t, "/opt/ffmpeg/bin/ffprobe", cfg.FFmpeg.ProbePath)
	assert.Equal(t, 8, cfg.FFmpeg.Threads)
}

func TestEnvOverrideIgnoresBadThreads(t *testing.T) {
	t.Setenv("FFMPEG_THREADS", "many")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.FFmpeg.Threads)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := defaultConfig()
	cfg.Detect.Threshold = 3.5
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, loaded.Detect.Threshold)
}

func TestContextRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Detect.Window = 42

	ctx := WithConfig(context.Background(), cfg)
	assert.Equal(t, 42, FromContext(ctx).Detect.Window)

	// Missing config falls back to defaults.
	assert.Equal(t, 20, FromContext(context.Background()).Detect.Window)
}
