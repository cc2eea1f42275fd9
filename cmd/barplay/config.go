package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the runtime configuration of barplay.
type Config struct {
	Speed      time.Duration
	FPS        int
	Categories int
	Series     []string // fill color per series
	Width      int      // canvas size in pixels
	Height     int
	LogFile    string
	LogLevel   string
	Snapshot   string // path of the PNG snapshot
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("animation.speed", "600ms")
	v.SetDefault("animation.fps", 30)

	v.SetDefault("chart.categories", 6)
	v.SetDefault("chart.series", []string{"#3366cc", "#dc3912"})
	v.SetDefault("chart.width", 320)
	v.SetDefault("chart.height", 160)

	v.SetDefault("log.file", "barplay.log")
	v.SetDefault("log.level", "info")

	v.SetDefault("snapshot.file", "barplay.png")
}

// loadConfig reads the configuration from file, or from barplay.yaml in
// the working directory if file is empty. A missing default file is fine,
// a missing explicit one is not.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	setDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("barplay")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		Speed:      v.GetDuration("animation.speed"),
		FPS:        v.GetInt("animation.fps"),
		Categories: v.GetInt("chart.categories"),
		Series:     v.GetStringSlice("chart.series"),
		Width:      v.GetInt("chart.width"),
		Height:     v.GetInt("chart.height"),
		LogFile:    v.GetString("log.file"),
		LogLevel:   v.GetString("log.level"),
		Snapshot:   v.GetString("snapshot.file"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Speed < 0:
		return fmt.Errorf("animation.speed %s is negative", c.Speed)
	case c.FPS <= 0:
		return fmt.Errorf("animation.fps must be positive, got %d", c.FPS)
	case c.Categories < 0:
		return fmt.Errorf("chart.categories must not be negative, got %d", c.Categories)
	case len(c.Series) == 0:
		return fmt.Errorf("chart.series is empty")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("chart size %dx%d is not positive", c.Width, c.Height)
	}
	return nil
}

// Frame is the interval between two frames.
func (c Config) Frame() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
