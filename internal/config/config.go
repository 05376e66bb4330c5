package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const appName = "storynook"

// Config holds application configuration.
type Config struct {
	Reader  ReaderConfig
	Speech  SpeechConfig
	Splash  SplashConfig
	Gesture GestureConfig
	Catalog CatalogConfig
	Log     LogConfig
}

// ReaderConfig holds the story reader's starting display settings.
type ReaderConfig struct {
	FontSize  int     `mapstructure:"font_size"`
	DarkMode  bool    `mapstructure:"dark_mode"`
	PageWidth float64 `mapstructure:"page_width"`
}

// SpeechConfig selects the read-aloud engine.
type SpeechConfig struct {
	Engine string
	Rate   float64
}

type SplashConfig struct {
	Duration time.Duration
}

// GestureConfig scales terminal cells to swipe units.
type GestureConfig struct {
	ColumnUnits float64 `mapstructure:"column_units"`
	RowUnits    float64 `mapstructure:"row_units"`
}

// CatalogConfig points at an optional catalog file replacing the built-in one.
type CatalogConfig struct {
	Path string
}

type LogConfig struct {
	File  string
	Level string
}

const (
	defaultFontSize    = 16
	minFontSize        = 12
	defaultPageWidth   = 80
	defaultRate        = 0.85
	defaultSplash      = 5 * time.Second
	defaultColumnUnits = 8
	defaultRowUnits    = 16
)

var speechEngines = map[string]bool{
	"auto":      true,
	"none":      true,
	"espeak":    true,
	"espeak-ng": true,
	"say":       true,
	"spd-say":   true,
}

// Load reads configuration from file and env. Env var overrides use prefix
// STORYNOOK_. An empty path falls back to STORYNOOK_CONFIG, then to
// config.toml under the XDG config directory. Only an explicitly named file
// that cannot be read is an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("reader.font_size", defaultFontSize)
	v.SetDefault("reader.dark_mode", false)
	v.SetDefault("reader.page_width", defaultPageWidth)
	v.SetDefault("speech.engine", "auto")
	v.SetDefault("speech.rate", defaultRate)
	v.SetDefault("splash.duration", defaultSplash)
	v.SetDefault("gesture.column_units", defaultColumnUnits)
	v.SetDefault("gesture.row_units", defaultRowUnits)
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.file", DefaultLogFile())
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("STORYNOOK_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STORYNOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing or unreadable discovered file falls back to defaults
	if err := v.ReadInConfig(); err != nil && explicit {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	normalize(&c)
	return c, nil
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Reader:  ReaderConfig{FontSize: defaultFontSize, PageWidth: defaultPageWidth},
		Speech:  SpeechConfig{Engine: "auto", Rate: defaultRate},
		Splash:  SplashConfig{Duration: defaultSplash},
		Gesture: GestureConfig{ColumnUnits: defaultColumnUnits, RowUnits: defaultRowUnits},
		Log:     LogConfig{File: DefaultLogFile(), Level: "info"},
	}
}

// DefaultLogFile is the log location under the XDG state directory.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func normalize(c *Config) {
	if c.Reader.FontSize < minFontSize {
		c.Reader.FontSize = minFontSize
	}
	if c.Reader.PageWidth <= 0 {
		c.Reader.PageWidth = defaultPageWidth
	}
	c.Speech.Engine = strings.ToLower(strings.TrimSpace(c.Speech.Engine))
	if !speechEngines[c.Speech.Engine] {
		c.Speech.Engine = "auto"
	}
	if c.Speech.Rate <= 0 || c.Speech.Rate > 4 {
		c.Speech.Rate = defaultRate
	}
	if c.Splash.Duration <= 0 {
		c.Splash.Duration = defaultSplash
	}
	if c.Gesture.ColumnUnits <= 0 {
		c.Gesture.ColumnUnits = defaultColumnUnits
	}
	if c.Gesture.RowUnits <= 0 {
		c.Gesture.RowUnits = defaultRowUnits
	}
	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)
	if strings.TrimSpace(c.Log.File) == "" {
		c.Log.File = DefaultLogFile()
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if _, err := log.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
