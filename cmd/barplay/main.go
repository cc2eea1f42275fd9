// Command barplay shows an animated column chart in the terminal.
//
// Keys change the data and so drive the three animations of a column:
// growing out of the baseline, moving to new values and shrinking back
// into the baseline. Snapshots of the chart can be written as PNG or SVG.
//
// Usage:
//
//	barplay [--config barplay.yaml] [--speed 600ms] [--fps 30] [--snapshot out.png] [--log-file barplay.log]
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var configFile string

func main() {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "barplay",
		Short: "Animated column chart in the terminal",
		Long: `barplay draws random values as animated columns. New columns grow
out of the baseline, changed ones move, dropped ones shrink away.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return run(v) },
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "Config file (default: ./barplay.yaml if present)")
	flags.Duration("speed", 600*time.Millisecond, "Duration of each animation")
	flags.Int("fps", 30, "Frames per second")
	flags.String("snapshot", "barplay.png", "File for PNG snapshots")
	flags.String("log-file", "barplay.log", "Log file")

	if err := bindFlags(v, flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// flagKeys maps config keys to the flags overriding them.
var flagKeys = map[string]string{
	"animation.speed": "speed",
	"animation.fps":   "fps",
	"snapshot.file":   "snapshot",
	"log.file":        "log-file",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func run(v *viper.Viper) error {
	cfg, err := loadConfig(v, configFile)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()
	log := newLogger(file, cfg.LogLevel)
	log.Info().Str("loglevel", log.GetLevel().String()).
		Dur("speed", cfg.Speed).Int("fps", cfg.FPS).
		Int("series", len(cfg.Series)).Msg("barplay starting")

	now := uint64(time.Now().UnixNano())
	m := New(cfg, log, rand.New(rand.NewPCG(now, now>>1)))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("Program failed")
		return err
	}
	log.Info().Msg("barplay done")
	return nil
}
