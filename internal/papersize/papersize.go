// Package papersize names page sizes after the standard paper they match.
package papersize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is how far, in millimetres, each side of a page may be from a
// standard paper and still match it.
const Tolerance = 2.0

const (
	mmPerInch  = 25.4
	ptPerInch  = 72.0
	multiplied = "×"
)

// Unit is the unit a paper is specified in.
type Unit int

const (
	Millimeter Unit = iota
	Inch
	Point
)

func (u Unit) String() string {
	switch u {
	case Inch:
		return "in"
	case Point:
		return "pt"
	default:
		return "mm"
	}
}

// ParseUnit accepts mm, in and pt (and a few spelled out variants).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimetre":
		return Millimeter, nil
	case "in", "inch", "\"":
		return Inch, nil
	case "pt", "point", "bp", "pdf":
		return Point, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

func (u Unit) toMillimeter(v float64) float64 {
	switch u {
	case Inch:
		return v * mmPerInch
	case Point:
		return v / ptPerInch * mmPerInch
	default:
		return v
	}
}

// Paper is a standard paper in portrait orientation.
type Paper struct {
	Name   string
	Width  float64
	Height float64
	Unit   Unit
}

func (p Paper) millimeters() (float64, float64) {
	return p.Unit.toMillimeter(p.Width), p.Unit.toMillimeter(p.Height)
}

// Papers is the table sizes are matched against.
var Papers = []Paper{
	{"DIN A0", 841, 1189, Millimeter},
	{"DIN A1", 594, 841, Millimeter},
	{"DIN A2", 420, 594, Millimeter},
	{"DIN A3", 297, 420, Millimeter},
	{"DIN A4", 210, 297, Millimeter},
	{"DIN A5", 148, 210, Millimeter},
	{"DIN A6", 105, 148, Millimeter},
	{"DIN A7", 74, 105, Millimeter},
	{"DIN A8", 52, 74, Millimeter},
	{"DIN A9", 37, 52, Millimeter},
	{"DIN A10", 26, 37, Millimeter},
	{"DIN B0", 1000, 1414, Millimeter},
	{"DIN B1", 707, 1000, Millimeter},
	{"DIN B2", 500, 707, Millimeter},
	{"DIN B3", 353, 500, Millimeter},
	{"DIN B4", 250, 353, Millimeter},
	{"DIN B5", 176, 250, Millimeter},
	{"DIN B6", 125, 176, Millimeter},
	{"DIN B7", 88, 125, Millimeter},
	{"DIN B8", 62, 88, Millimeter},
	{"DIN B9", 44, 62, Millimeter},
	{"DIN B10", 31, 44, Millimeter},
	{"DIN C0", 917, 1297, Millimeter},
	{"DIN C1", 648, 917, Millimeter},
	{"DIN C2", 458, 648, Millimeter},
	{"DIN C3", 324, 458, Millimeter},
	{"DIN C4", 229, 324, Millimeter},
	{"DIN C5", 162, 229, Millimeter},
	{"DIN C6", 114, 162, Millimeter},
	{"DIN C7", 81, 114, Millimeter},
	{"DIN C8", 57, 81, Millimeter},
	{"DIN C9", 40, 57, Millimeter},
	{"DIN C10", 28, 40, Millimeter},
	{"Letter (ANSI A)", 8.5, 11, Inch},
	{"Legal", 8.5, 14, Inch},
	{"Tabloid (ANSI B)", 11, 17, Inch},
	{"ANSI C", 17, 22, Inch},
	{"ANSI D", 22, 34, Inch},
	{"ANSI E", 34, 44, Inch},
	{"Executive", 7.25, 10.5, Inch},
}

// PaperSize is the result of a lookup: the requested size in millimetres
// and the paper it matched, if any.
type PaperSize struct {
	width  float64
	height float64
	paper  *Paper
}

// FindForMillimeter classifies a width x height size given in millimetres.
func FindForMillimeter(width, height float64) PaperSize {
	return find(width, height)
}

// FindForInch classifies a size given in inches.
func FindForInch(width, height float64) PaperSize {
	return find(Inch.toMillimeter(width), Inch.toMillimeter(height))
}

// FindForPDFSize classifies a size given in PDF points (1/72 in).
func FindForPDFSize(width, height float64) PaperSize {
	return find(Point.toMillimeter(width), Point.toMillimeter(height))
}

// Find classifies a size given in unit.
func Find(width, height float64, unit Unit) PaperSize {
	return find(unit.toMillimeter(width), unit.toMillimeter(height))
}

func find(width, height float64) PaperSize {
	short, long := math.Min(width, height), math.Max(width, height)

	ps := PaperSize{width: width, height: height}
	best := math.Inf(1)
	for i := range Papers {
		pw, ph := Papers[i].millimeters()
		dw, dh := math.Abs(short-pw), math.Abs(long-ph)
		if dw > Tolerance || dh > Tolerance {
			continue
		}
		if d := dw + dh; d < best {
			best = d
			ps.paper = &Papers[i]
		}
	}
	return ps
}

// Known reports whether the size matched a standard paper.
func (ps PaperSize) Known() bool { return ps.paper != nil }

// Name is the paper name, or "" for unknown sizes.
func (ps PaperSize) Name() string {
	if ps.paper == nil {
		return ""
	}
	return ps.paper.Name
}

// Size returns the requested width and height in millimetres.
func (ps PaperSize) Size() (float64, float64) { return ps.width, ps.height }

func (ps PaperSize) Landscape() bool { return ps.width > ps.height }

// Label describes the size, e.g. "DIN A4 [210 × 297 mm]". Known papers use
// their nominal dimensions in their own unit and follow the orientation of
// the request. Unknown sizes are given in millimetres, e.g. "210 × 294 mm".
func (ps PaperSize) Label() string {
	if ps.paper == nil {
		return dimensions(round(ps.width), round(ps.height), Millimeter)
	}
	w, h := ps.paper.Width, ps.paper.Height
	if ps.Landscape() {
		w, h = h, w
	}
	return fmt.Sprintf("%s [%s]", ps.paper.Name, dimensions(w, h, ps.paper.Unit))
}

func (ps PaperSize) String() string { return ps.Label() }

func dimensions(w, h float64, unit Unit) string {
	return fmt.Sprintf("%s %s %s %v", format(w), multiplied, format(h), unit)
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round(v float64) float64 {
	return math.Round(v*10) / 10
}

// ParseDimensions parses "210x297", "210 × 297" or "8.5*11".
func ParseDimensions(s string) (float64, float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == 'x' || r == 'X' || r == '*' || r == '×' || r == ' '
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	w, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("dimensions must be positive, got %q", s)
	}
	return w, h, nil
}
