package utils

import (
	"fmt"
	"time"

	"github.com/matjam/pagefx/internal/transition"
	"github.com/matjam/pagefx/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// TransitionConfig builds the default transition settings from viper.
func TransitionConfig() (transition.Config, error) {
	style, err := transition.ParseStyle(viper.GetString("style"))
	if err != nil {
		return transition.Config{}, err
	}
	motion, err := transition.ParseMotion(viper.GetString("motion"))
	if err != nil {
		return transition.Config{}, err
	}

	cfg := transition.Config{
		Style:     style,
		Duration:  time.Duration(viper.GetFloat64("duration") * float64(time.Second)),
		Direction: viper.GetInt("direction"),
		Motion:    motion,
		Easing:    types.EasingMode(viper.GetString("easing")),
		ScaleMode: types.ScalingMode(viper.GetString("scale_mode")),
		Seed:      viper.GetUint64("seed"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// AddTransitionFlags adds the per-command overrides ApplyTransitionFlags
// reads.
func AddTransitionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("style", "s", "", "Transition style (see `pagefx styles`)")
	cmd.Flags().Float64("duration", 0, "Duration in seconds")
	cmd.Flags().Int("direction", 0, "Direction in degrees, -1 for undirected")
	cmd.Flags().String("motion", "", "inward or outward")
}

// ApplyTransitionFlags overrides cfg with the flags the user set.
func ApplyTransitionFlags(cmd *cobra.Command, cfg transition.Config) (transition.Config, error) {
	flags := cmd.Flags()

	if flags.Changed("style") {
		name, _ := flags.GetString("style")
		style, err := transition.ParseStyle(name)
		if err != nil {
			return cfg, err
		}
		cfg.Style = style
	}
	if flags.Changed("duration") {
		secs, _ := flags.GetFloat64("duration")
		cfg.Duration = time.Duration(secs * float64(time.Second))
	}
	if flags.Changed("direction") {
		cfg.Direction, _ = flags.GetInt("direction")
	}
	if flags.Changed("motion") {
		name, _ := flags.GetString("motion")
		motion, err := transition.ParseMotion(name)
		if err != nil {
			return cfg, err
		}
		cfg.Motion = motion
	}
	return cfg, cfg.Validate()
}
