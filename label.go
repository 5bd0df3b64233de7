package starnavi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelMeasurer is the interface for text measurement.
type LabelMeasurer interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// --- CellMeasurer ---

// CellMeasurer measures text on a fixed grid: each terminal cell (as
// reported by go-runewidth, so wide runes count twice) is CellWidth wide.
// It needs no font and is used for sizing labels in galaxy units.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultCellMeasurer returns the measurer galaxies use by default.
func DefaultCellMeasurer() CellMeasurer {
	return CellMeasurer{CellWidth: 2, CellHeight: 4}
}

// MeasureString returns the width of the widest line and the total height.
func (m CellMeasurer) MeasureString(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, float64(runewidth.StringWidth(line))*m.CellWidth)
	}
	return width, float64(len(lines)) * m.CellHeight
}

// LineHeight returns CellHeight.
func (m CellMeasurer) LineHeight() float64 {
	return m.CellHeight
}

// ScaledMeasurer multiplies every size reported by Measurer by Scale. A
// galaxy wraps its screen font in one to measure labels in galaxy units.
type ScaledMeasurer struct {
	Measurer LabelMeasurer
	Scale    float64
}

// MeasureString returns the scaled size of s.
func (m ScaledMeasurer) MeasureString(s string) (width, height float64) {
	w, h := m.Measurer.MeasureString(s)
	return w * m.Scale, h * m.Scale
}

// LineHeight returns the scaled line height.
func (m ScaledMeasurer) LineHeight() float64 {
	return m.Measurer.LineHeight() * m.Scale
}

// --- TTFMeasurer ---

// TTFMeasurer wraps Ebitengine's text/v2 for TrueType measurement. The
// renderer draws with the same face.
type TTFMeasurer struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFMeasurer loads a TrueType font from raw TTF/OTF data at the given
// size.
func LoadTTFMeasurer(ttfData []byte, size float64) (*TTFMeasurer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("starnavi: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFMeasurer{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// NewDefaultTTFMeasurer loads Go Regular at the given size.
func NewDefaultTTFMeasurer(size float64) (*TTFMeasurer, error) {
	return LoadTTFMeasurer(goregular.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFMeasurer) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFMeasurer) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for drawing.
func (f *TTFMeasurer) Face() *text.GoTextFace {
	return f.face
}
