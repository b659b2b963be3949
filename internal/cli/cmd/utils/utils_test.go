package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matjam/pagefx"
	"github.com/matjam/pagefx/internal/transition"
	"github.com/matjam/pagefx/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	t.Setenv("HOME", "/home/page")

	assert.Equal(t, "", CanonicalPath(""))
	assert.Equal(t, "/home/page", CanonicalPath("~"))
	assert.Equal(t, "/home/page/slides", CanonicalPath("~/slides"))
	assert.Equal(t, "/tmp/a~b", CanonicalPath("/tmp/a~b"))
}

func TestFormatJSON(t *testing.T) {
	plain, err := FormatJSON(map[string]int{"a": 1}, false)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", string(plain))

	colored, err := FormatJSON(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Contains(t, string(colored), "\x1b[")

	_, err = FormatJSON(func() {}, false)
	assert.Error(t, err)
}

func TestInstallDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := InstallDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pagefx", "pagefx.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pagefx.DefaultConfig, string(data))

	require.NoError(t, os.WriteFile(path, []byte("style = \"wipe\"\n"), 0644))
	_, err = InstallDefaultConfig()
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "style = \"wipe\"\n", string(data), "existing config is left alone")
}

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetDefault("style", "fade")
	viper.SetDefault("duration", 1.0)
	viper.SetDefault("direction", 0)
	viper.SetDefault("motion", "inward")
	viper.SetDefault("easing", "linear")
	viper.SetDefault("scale_mode", "stretched")
	viper.SetDefault("seed", 0)
}

func TestTransitionConfigDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := TransitionConfig()
	require.NoError(t, err)
	assert.Equal(t, transition.StyleFade, cfg.Style)
	assert.Equal(t, time.Second, cfg.Duration)
	assert.Equal(t, 0, cfg.Direction)
	assert.Equal(t, transition.MotionInward, cfg.Motion)
	assert.Equal(t, types.EasingLinear, cfg.Easing)
	assert.Equal(t, types.ScalingModeStretch, cfg.ScaleMode)
}

func TestTransitionConfigFromFile(t *testing.T) {
	resetViper(t)
	viper.SetConfigType("toml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(`
style = "glitter"
duration = 0.25
direction = 315
motion = "outward"
seed = 7
`)))

	cfg, err := TransitionConfig()
	require.NoError(t, err)
	assert.Equal(t, transition.StyleGlitter, cfg.Style)
	assert.Equal(t, 250*time.Millisecond, cfg.Duration)
	assert.Equal(t, 315, cfg.Direction)
	assert.Equal(t, transition.MotionOutward, cfg.Motion)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestTransitionConfigErrors(t *testing.T) {
	resetViper(t)

	viper.Set("style", "sparkle")
	_, err := TransitionConfig()
	assert.Error(t, err)

	viper.Set("style", "wipe")
	viper.Set("direction", 45)
	_, err = TransitionConfig()
	assert.Error(t, err)
}

func TestApplyTransitionFlags(t *testing.T) {
	base := transition.Config{Style: transition.StyleFade, Duration: time.Second}

	cmd := &cobra.Command{Use: "x"}
	AddTransitionFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--style", "push", "--direction", "180", "--duration", "2"}))

	cfg, err := ApplyTransitionFlags(cmd, base)
	require.NoError(t, err)
	assert.Equal(t, transition.StylePush, cfg.Style)
	assert.Equal(t, 180, cfg.Direction)
	assert.Equal(t, 2*time.Second, cfg.Duration)
	assert.Equal(t, transition.MotionInward, cfg.Motion)

	untouched := &cobra.Command{Use: "y"}
	AddTransitionFlags(untouched)
	cfg, err = ApplyTransitionFlags(untouched, base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)

	bad := &cobra.Command{Use: "z"}
	AddTransitionFlags(bad)
	require.NoError(t, bad.ParseFlags([]string{"--motion", "sideways"}))
	_, err = ApplyTransitionFlags(bad, base)
	assert.Error(t, err)
}
