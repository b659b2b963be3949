package transition

import (
	"testing"
	"time"

	"github.com/matjam/pagefx/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestConfigNewTransition(t *testing.T) {
	cfg := Config{
		Style:     StyleSplit,
		Duration:  2 * time.Second,
		Direction: 90,
		Motion:    MotionOutward,
		Easing:    types.EasingEaseOut,
	}
	tr := cfg.NewTransition()

	assert.Equal(t, StyleSplit, tr.Style())
	assert.Equal(t, 2*time.Second, tr.Duration())
	assert.Equal(t, 90, tr.Direction())
	assert.Equal(t, MotionOutward, tr.Motion())
	assert.Equal(t, types.EasingEaseOut, tr.Easing())
	assert.False(t, tr.IsRunning())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Style: StyleWipe, Direction: 270}.Validate())
	assert.NoError(t, Config{Style: StyleBox, Direction: Undirected}.Validate())
	assert.Error(t, Config{Style: StyleWipe, Direction: 45}.Validate())
	assert.Error(t, Config{Style: Style(99)}.Validate())
}
