package transition

import (
	"fmt"
	"strings"
)

// Style selects how a transition blends the outgoing frame into the
// incoming one. The set is closed; Sample switches over every value.
type Style int

const (
	StyleReplace Style = iota
	StyleSplit
	StyleBlinds
	StyleBox
	StyleWipe
	StyleDissolve
	StyleGlitter
	StyleFly
	StylePush
	StyleCover
	StyleUncover
	StyleFade
)

var styleNames = [...]string{
	StyleReplace:  "replace",
	StyleSplit:    "split",
	StyleBlinds:   "blinds",
	StyleBox:      "box",
	StyleWipe:     "wipe",
	StyleDissolve: "dissolve",
	StyleGlitter:  "glitter",
	StyleFly:      "fly",
	StylePush:     "push",
	StyleCover:    "cover",
	StyleUncover:  "uncover",
	StyleFade:     "fade",
}

// Styles returns every style in declaration order.
func Styles() []Style {
	styles := make([]Style, len(styleNames))
	for i := range styleNames {
		styles[i] = Style(i)
	}
	return styles
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle accepts the style names case-insensitively, which also covers
// the PDF /S names (/R is accepted for replace).
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "r" {
		return StyleReplace, nil
	}
	for i, s := range styleNames {
		if s == n {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transition style %q", name)
}

// Directions lists the directions that are meaningful for the style.
// Undirected appears when the style ignores direction or has an
// undirected variant.
func (s Style) Directions() []int {
	switch s {
	case StyleSplit, StyleBlinds:
		return []int{0, 90}
	case StyleWipe:
		return []int{0, 90, 180, 270}
	case StyleGlitter:
		return []int{0, 270, 315}
	case StyleFly:
		return []int{Undirected, 0, 90, 180, 270}
	case StylePush, StyleCover, StyleUncover:
		return []int{0, 90, 180, 270}
	default:
		return []int{Undirected}
	}
}

// UsesMotion reports whether the style distinguishes inward from outward.
func (s Style) UsesMotion() bool {
	return s == StyleSplit || s == StyleBox || s == StyleFly
}

// Randomized reports whether the style reads a noise field.
func (s Style) Randomized() bool {
	return s == StyleDissolve || s == StyleGlitter
}

// Motion is the direction of travel for split, box and fly.
type Motion int

const (
	MotionInward Motion = iota
	MotionOutward
)

func (m Motion) String() string {
	if m == MotionOutward {
		return "outward"
	}
	return "inward"
}

func ParseMotion(name string) (Motion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "inward", "in", "i":
		return MotionInward, nil
	case "outward", "out", "o":
		return MotionOutward, nil
	}
	return 0, fmt.Errorf("unknown motion %q", name)
}

// Undirected is the direction of styles that have no sweep direction.
const Undirected = -1

// ValidDirection reports whether d is Undirected or one of the angles
// 0, 90, 180, 270 and 315.
func ValidDirection(d int) bool {
	switch d {
	case Undirected, 0, 90, 180, 270, 315:
		return true
	}
	return false
}
