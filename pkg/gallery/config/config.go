// Package config loads gallery settings from a YAML file, GALLERY_ environment
// variables and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	configFileName = "gallery"
	configFileType = "yaml"
	envPrefix      = "GALLERY"
)

// Config holds every tunable of the gallery.
type Config struct {
	Grid       GridConfig       `mapstructure:"grid"`
	Navigation NavigationConfig `mapstructure:"navigation"`
	Cards      CardsConfig      `mapstructure:"cards"`
	Loader     LoaderConfig     `mapstructure:"loader"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Locale     LocaleConfig     `mapstructure:"locale"`
	Log        LogConfig        `mapstructure:"log"`
	Window     WindowConfig     `mapstructure:"window"`
}

// GridConfig sizes the card lattice, in world units.
type GridConfig struct {
	ItemWidth  float64 `mapstructure:"item_width"`
	ItemHeight float64 `mapstructure:"item_height"`
	Padding    float64 `mapstructure:"padding"`
	MinCols    int     `mapstructure:"min_cols"`
	MinRows    int     `mapstructure:"min_rows"`
	CullRadius float64 `mapstructure:"cull_radius"`
	// Seed fixes the card shuffle. Zero shuffles differently on every build.
	Seed        int64   `mapstructure:"seed"`
	MaxRotation float64 `mapstructure:"max_rotation"`
}

// NavigationConfig tunes dragging, snapping and clicking.
type NavigationConfig struct {
	DragThreshold float64       `mapstructure:"drag_threshold"`
	ScaleFactor   float64       `mapstructure:"scale_factor"`
	SnapDuration  time.Duration `mapstructure:"snap_duration"`
	ClickCooldown time.Duration `mapstructure:"click_cooldown"`
}

// CardsConfig controls card rasterisation.
type CardsConfig struct {
	PixelsPerUnit float64 `mapstructure:"pixels_per_unit"`
	ThumbSize     string  `mapstructure:"thumb_size"`
}

// LoaderConfig controls background image loading.
type LoaderConfig struct {
	Concurrency int `mapstructure:"concurrency"`
	// ImageRoot, when set, serves card images from a local directory instead
	// of the API.
	ImageRoot string `mapstructure:"image_root"`
}

// CatalogConfig locates the dataset and the file API.
type CatalogConfig struct {
	Dataset string `mapstructure:"dataset"`
	APIBase string `mapstructure:"api_base"`
	Watch   bool   `mapstructure:"watch"`
}

// LocaleConfig selects the label translations.
type LocaleConfig struct {
	Language string `mapstructure:"language"`
	Dir      string `mapstructure:"dir"`
	Domain   string `mapstructure:"domain"`
}

// LogConfig selects the log level and encoder.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

var current atomic.Pointer[Config]

// Current returns the most recently loaded configuration, or the defaults
// when nothing has been loaded yet.
func Current() *Config {
	if cfg := current.Load(); cfg != nil {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// SetCurrent replaces the configuration returned by Current.
func SetCurrent(cfg *Config) {
	current.Store(cfg)
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.item_width", 2.0)
	v.SetDefault("grid.item_height", 3.2)
	v.SetDefault("grid.padding", 0.4)
	v.SetDefault("grid.min_cols", 5)
	v.SetDefault("grid.min_rows", 5)
	v.SetDefault("grid.cull_radius", 8.0)
	v.SetDefault("grid.seed", 0)
	v.SetDefault("grid.max_rotation", 0.3)

	v.SetDefault("navigation.drag_threshold", 5.0)
	v.SetDefault("navigation.scale_factor", 200.0)
	v.SetDefault("navigation.snap_duration", "500ms")
	v.SetDefault("navigation.click_cooldown", "500ms")

	v.SetDefault("cards.pixels_per_unit", 100.0)
	v.SetDefault("cards.thumb_size", "0x600")

	v.SetDefault("loader.concurrency", 4)
	v.SetDefault("loader.image_root", "")

	v.SetDefault("catalog.dataset", "gallery.data.yaml")
	v.SetDefault("catalog.api_base", "http://localhost:8090/")
	v.SetDefault("catalog.watch", false)

	v.SetDefault("locale.language", "en_US")
	v.SetDefault("locale.dir", "locales")
	v.SetDefault("locale.domain", "default")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Gallery")
}

// Load reads the configuration. With an empty path it looks for gallery.yaml
// in the working directory and tolerates its absence; an explicit path must
// exist. Environment variables such as GALLERY_GRID_CULL_RADIUS override file
// values. The result becomes Current.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	SetCurrent(&cfg)
	return &cfg, nil
}

// Validate checks ranges. Every error wraps ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Grid.ItemWidth > 0, "grid.item_width must be positive, got %v", c.Grid.ItemWidth)
	check(c.Grid.ItemHeight > 0, "grid.item_height must be positive, got %v", c.Grid.ItemHeight)
	check(c.Grid.Padding >= 0, "grid.padding must not be negative, got %v", c.Grid.Padding)
	check(c.Grid.MinCols >= 1, "grid.min_cols must be at least 1, got %d", c.Grid.MinCols)
	check(c.Grid.MinRows >= 1, "grid.min_rows must be at least 1, got %d", c.Grid.MinRows)
	check(c.Grid.CullRadius > 0, "grid.cull_radius must be positive, got %v", c.Grid.CullRadius)
	check(c.Grid.MaxRotation >= 0, "grid.max_rotation must not be negative, got %v", c.Grid.MaxRotation)
	check(c.Navigation.DragThreshold >= 0, "navigation.drag_threshold must not be negative, got %v", c.Navigation.DragThreshold)
	check(c.Navigation.ScaleFactor > 0, "navigation.scale_factor must be positive, got %v", c.Navigation.ScaleFactor)
	check(c.Navigation.SnapDuration >= 0, "navigation.snap_duration must not be negative, got %v", c.Navigation.SnapDuration)
	check(c.Navigation.ClickCooldown >= 0, "navigation.click_cooldown must not be negative, got %v", c.Navigation.ClickCooldown)
	check(c.Cards.PixelsPerUnit > 0, "cards.pixels_per_unit must be positive, got %v", c.Cards.PixelsPerUnit)
	check(c.Loader.Concurrency >= 1, "loader.concurrency must be at least 1, got %d", c.Loader.Concurrency)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)

	return errors.Join(errs...)
}
