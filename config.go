package mapview

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the tunables of a Controller.
type Config struct {
	// MinScale and MaxScale bound the content scale.
	MinScale float64 `mapstructure:"min_scale"`
	MaxScale float64 `mapstructure:"max_scale"`
	// DefaultScale is applied by Controller.Start.
	DefaultScale float64 `mapstructure:"default_scale"`
	// MoveOffset is the per-axis tolerance, in screen pixels, a single
	// contact must exceed before it pans.
	MoveOffset float64 `mapstructure:"move_offset"`
	// WheelRate divides wheel scroll amounts into scale steps.
	WheelRate float64 `mapstructure:"wheel_rate"`
	// StrictContacts drops contacts whose start lies outside the container.
	StrictContacts bool `mapstructure:"strict_contacts"`
	// TapOnCancel lets a cancel event report a tap like an end event does.
	TapOnCancel bool `mapstructure:"tap_on_cancel"`
	// ResetOnLock clears tracked contacts and the movement latch when the
	// operation lock engages.
	ResetOnLock bool `mapstructure:"reset_on_lock"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MinScale:       1,
		MaxScale:       3,
		DefaultScale:   1.1,
		MoveOffset:     2,
		WheelRate:      10000,
		StrictContacts: true,
		TapOnCancel:    true,
		ResetOnLock:    true,
	}
}

// Validate returns a copy of c with unusable values replaced: non-positive
// scales and wheel rate fall back to defaults, swapped bounds are swapped
// back, a negative tolerance becomes zero, and DefaultScale is clamped into
// [MinScale, MaxScale].
func (c Config) Validate() Config {
	d := DefaultConfig()
	if c.MinScale <= 0 || !isFinite(c.MinScale) {
		c.MinScale = d.MinScale
	}
	if c.MaxScale <= 0 || !isFinite(c.MaxScale) {
		c.MaxScale = d.MaxScale
	}
	if c.MaxScale < c.MinScale {
		c.MinScale, c.MaxScale = c.MaxScale, c.MinScale
	}
	if c.MoveOffset < 0 || !isFinite(c.MoveOffset) {
		c.MoveOffset = 0
	}
	if c.WheelRate <= 0 || !isFinite(c.WheelRate) {
		c.WheelRate = d.WheelRate
	}
	if !isFinite(c.DefaultScale) {
		c.DefaultScale = d.DefaultScale
	}
	c.DefaultScale = clampf(c.DefaultScale, c.MinScale, c.MaxScale)
	return c
}

// LoadConfig reads configuration from path (TOML, YAML, or JSON, chosen by
// extension) on top of DefaultConfig. An empty path skips the file. Env var
// overrides use the prefix MAPVIEW_, e.g. MAPVIEW_MAX_SCALE=4.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("min_scale", d.MinScale)
	v.SetDefault("max_scale", d.MaxScale)
	v.SetDefault("default_scale", d.DefaultScale)
	v.SetDefault("move_offset", d.MoveOffset)
	v.SetDefault("wheel_rate", d.WheelRate)
	v.SetDefault("strict_contacts", d.StrictContacts)
	v.SetDefault("tap_on_cancel", d.TapOnCancel)
	v.SetDefault("reset_on_lock", d.ResetOnLock)

	v.SetEnvPrefix("MAPVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c = c.Validate()
	Logger().Info("config loaded", "path", path,
		"min_scale", c.MinScale, "max_scale", c.MaxScale, "move_offset", c.MoveOffset)
	return c, nil
}
