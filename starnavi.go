package starnavi

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default label and line color.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// image returns the integer rectangle covering r.
func (r Rect) image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

// ClusterMode selects how a galaxy groups its files into sectors.
type ClusterMode uint8

const (
	ClusterHierarchy ClusterMode = iota // one sector per subdirectory, plus loose files
	ClusterName                         // groups by shared name prefix
	ClusterDate                         // reserved, produces no sectors
	ClusterSize                         // reserved, produces no sectors
	ClusterType                         // reserved, produces no sectors
	ClusterTags                         // one sector per vocabulary tag
	ClusterNone                         // explicit file list, clustered like hierarchy
)

var clusterModeNames = [...]string{
	ClusterHierarchy: "hierarchy",
	ClusterName:      "name",
	ClusterDate:      "date",
	ClusterSize:      "size",
	ClusterType:      "type",
	ClusterTags:      "tags",
	ClusterNone:      "none",
}

func (m ClusterMode) String() string {
	if int(m) < len(clusterModeNames) {
		return clusterModeNames[m]
	}
	return fmt.Sprintf("ClusterMode(%d)", m)
}

// ParseClusterMode parses a mode name as produced by ClusterMode.String.
// "directory" is accepted as an alias for hierarchy.
func ParseClusterMode(s string) (ClusterMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "directory" {
		return ClusterHierarchy, nil
	}
	for i, name := range clusterModeNames {
		if name == s {
			return ClusterMode(i), nil
		}
	}
	return 0, fmt.Errorf("starnavi: unknown cluster mode %q", s)
}
