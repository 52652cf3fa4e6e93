package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Content    ContentConfig
	Log        LogConfig
	Intro      IntroConfig
	Trivia     TriviaConfig
	WordSearch WordSearchConfig `mapstructure:"wordsearch"`
	Timing     TimingConfig
	UI         UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ContentConfig points at an optional YAML content pack imported on start.
type ContentConfig struct {
	Pack string
}

// LogConfig holds file logger settings. The terminal belongs to the UI.
type LogConfig struct {
	Path  string
	Level string
}

// IntroConfig tunes the candle gate.
type IntroConfig struct {
	Threshold float64
	Skip      bool
}

// TriviaConfig tunes answer matching.
type TriviaConfig struct {
	MaxTypos int `mapstructure:"max_typos"`
}

// WordSearchConfig tunes grid generation.
type WordSearchConfig struct {
	Size         int
	WordAttempts int `mapstructure:"word_attempts"`
	GridAttempts int `mapstructure:"grid_attempts"`
}

// TimingConfig holds the UI delays.
type TimingConfig struct {
	Advance   time.Duration
	Reveal    time.Duration
	Feedback  time.Duration
	Selection time.Duration
	Hint      time.Duration
	Blow      time.Duration
	Card      time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Recipient    string
	GlamourStyle string `mapstructure:"glamour_style"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "candlecard")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(dataDir(), "candlecard.db"))
	v.SetDefault("content.pack", "")
	v.SetDefault("log.path", filepath.Join(dataDir(), "candlecard.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("intro.threshold", 40.0)
	v.SetDefault("intro.skip", false)
	v.SetDefault("trivia.max_typos", 1)
	v.SetDefault("wordsearch.size", 12)
	v.SetDefault("wordsearch.word_attempts", 100)
	v.SetDefault("wordsearch.grid_attempts", 50)
	v.SetDefault("timing.advance", "1s")
	v.SetDefault("timing.reveal", "1500ms")
	v.SetDefault("timing.feedback", "3s")
	v.SetDefault("timing.selection", "1s")
	v.SetDefault("timing.hint", "4s")
	v.SetDefault("timing.blow", "2s")
	v.SetDefault("timing.card", "2s")
	v.SetDefault("ui.recipient", "you")
	v.SetDefault("ui.glamour_style", "dark")
}

// Default returns the built-in configuration without reading files or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// defaults are static; a failure here is a programming error
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix CANDLECARD_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CANDLECARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "candlecard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CANDLECARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the puzzles cannot run with.
func (c Config) Validate() error {
	if c.WordSearch.Size < 5 {
		return fmt.Errorf("config: wordsearch.size must be at least 5, got %d", c.WordSearch.Size)
	}
	if c.WordSearch.WordAttempts < 1 || c.WordSearch.GridAttempts < 1 {
		return fmt.Errorf("config: wordsearch attempts must be positive")
	}
	if c.Intro.Threshold < 0 || c.Intro.Threshold > 255 {
		return fmt.Errorf("config: intro.threshold out of range: %v", c.Intro.Threshold)
	}
	if c.Trivia.MaxTypos < 0 {
		return fmt.Errorf("config: trivia.max_typos must not be negative")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("CANDLECARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "candlecard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("content.pack", cfg.Content.Pack)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("intro.threshold", cfg.Intro.Threshold)
	v.Set("intro.skip", cfg.Intro.Skip)
	v.Set("trivia.max_typos", cfg.Trivia.MaxTypos)
	v.Set("wordsearch.size", cfg.WordSearch.Size)
	v.Set("wordsearch.word_attempts", cfg.WordSearch.WordAttempts)
	v.Set("wordsearch.grid_attempts", cfg.WordSearch.GridAttempts)
	v.Set("timing.advance", cfg.Timing.Advance.String())
	v.Set("timing.reveal", cfg.Timing.Reveal.String())
	v.Set("timing.feedback", cfg.Timing.Feedback.String())
	v.Set("timing.selection", cfg.Timing.Selection.String())
	v.Set("timing.hint", cfg.Timing.Hint.String())
	v.Set("timing.blow", cfg.Timing.Blow.String())
	v.Set("timing.card", cfg.Timing.Card.String())
	v.Set("ui.recipient", cfg.UI.Recipient)
	v.Set("ui.glamour_style", cfg.UI.GlamourStyle)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
