package arbor

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Resolution is a logical screen size in points.
type Resolution struct {
	Width  float64 `mapstructure:"width" validate:"gt=0"`
	Height float64 `mapstructure:"height" validate:"gt=0"`
}

// Size returns r as a Size.
func (r Resolution) Size() Size { return Size{r.Width, r.Height} }

// Config holds the director settings.
type Config struct {
	Title            string     `mapstructure:"title"`
	DesignResolution Resolution `mapstructure:"design_resolution"`
	// VisibleRect is the part of the design resolution shown on screen. A zero
	// rect means the whole design resolution.
	VisibleRect Rect `mapstructure:"visible_rect"`
	// EditorMode enables editor behavior: scene accessors are rejected and
	// widgets adjust their margins when their node is moved.
	EditorMode bool   `mapstructure:"editor_mode"`
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level" validate:"oneof=panic fatal error warn warning info debug trace"`
	TPS        int    `mapstructure:"tps" validate:"min=1,max=240"`
}

// DefaultConfig returns a 960x640 design resolution at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Title:            "arbor",
		DesignResolution: Resolution{Width: 960, Height: 640},
		LogLevel:         "info",
		TPS:              60,
	}
}

var configValidate = validator.New()

// Validate checks the config values.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("arbor: invalid config: %w", err)
	}
	if c.VisibleRect.Width < 0 || c.VisibleRect.Height < 0 {
		return fmt.Errorf("arbor: invalid config: negative visible rect %v", c.VisibleRect)
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.DesignResolution.Width <= 0 || c.DesignResolution.Height <= 0 {
		c.DesignResolution = def.DesignResolution
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.VisibleRect.Width == 0 || c.VisibleRect.Height == 0 {
		c.VisibleRect = Rect{Width: c.DesignResolution.Width, Height: c.DesignResolution.Height}
	}
	return c
}

// LoadConfig reads a YAML, JSON or TOML file (chosen by extension) on top of
// DefaultConfig. Environment variables prefixed with ARBOR_ override file
// values, e.g. ARBOR_DESIGN_RESOLUTION_WIDTH. An empty path loads only the
// defaults and the environment.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("title", def.Title)
	v.SetDefault("design_resolution.width", def.DesignResolution.Width)
	v.SetDefault("design_resolution.height", def.DesignResolution.Height)
	v.SetDefault("visible_rect.x", 0)
	v.SetDefault("visible_rect.y", 0)
	v.SetDefault("visible_rect.width", 0)
	v.SetDefault("visible_rect.height", 0)
	v.SetDefault("editor_mode", false)
	v.SetDefault("debug", false)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("tps", def.TPS)

	v.SetEnvPrefix("ARBOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("arbor: read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("arbor: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}
