package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CANDLECARD_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "candlecard", "candlecard.db"), cfg.Database.Path)
	require.Equal(t, 40.0, cfg.Intro.Threshold)
	require.Equal(t, 1, cfg.Trivia.MaxTypos)
	require.Equal(t, 12, cfg.WordSearch.Size)
	require.Equal(t, 100, cfg.WordSearch.WordAttempts)
	require.Equal(t, 50, cfg.WordSearch.GridAttempts)
	require.Equal(t, time.Second, cfg.Timing.Advance)
	require.Equal(t, 1500*time.Millisecond, cfg.Timing.Reveal)
	require.Equal(t, 3*time.Second, cfg.Timing.Feedback)
	require.Equal(t, "dark", cfg.UI.GlamourStyle)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[intro]
threshold = 25.5

[wordsearch]
size = 10

[ui]
recipient = "Amara"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CANDLECARD_CONFIG", path)
	t.Setenv("CANDLECARD_TRIVIA_MAX_TYPOS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 25.5, cfg.Intro.Threshold)
	require.Equal(t, 10, cfg.WordSearch.Size)
	require.Equal(t, "Amara", cfg.UI.Recipient)
	require.Equal(t, 0, cfg.Trivia.MaxTypos)
}

func TestValidateRejectsTinyGrid(t *testing.T) {
	cfg := Default()
	cfg.WordSearch.Size = 3
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Intro.Threshold = 300
	require.Error(t, cfg.Validate())

	require.NoError(t, Default().Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("CANDLECARD_CONFIG", path)

	cfg := Default()
	cfg.UI.Recipient = "Sam"
	cfg.Timing.Hint = 2 * time.Second
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Sam", loaded.UI.Recipient)
	require.Equal(t, 2*time.Second, loaded.Timing.Hint)
}
