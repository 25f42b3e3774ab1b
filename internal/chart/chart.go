// Package chart renders numeric sequences as fixed-width ASCII charts.
//
// The resampling rule is fixed for reproducibility: column c of a
// width-w chart shows values[floor(c*len(values)/w)], which downsamples
// long sequences by striding and upsamples short ones by repetition.
package chart

import (
	"fmt"
	"math"
	"strings"
)

const (
	defaultWidth  = 70
	defaultHeight = 15

	// Y-axis label column: "%7.2f |" and the matching axis stub.
	labelFormat = "%7.2f |"
	labelBlank  = "        |"
	axisStub    = "        +"
)

// Option configures chart rendering.
type Option func(*config)

type config struct {
	width  int
	height int
}

// WithWidth sets the plot width in columns (axis labels excluded).
func WithWidth(width int) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
	}
}

// WithHeight sets the plot height in rows (axis row excluded).
func WithHeight(height int) Option {
	return func(c *config) {
		if height > 1 {
			c.height = height
		}
	}
}

// Render returns a text block plotting values.
//
// The block holds height plot rows and one x-axis row, each exactly
// len(labelBlank)+width runes wide. Rows span [min, max] of the
// rendered values; a flat sequence is drawn against a unit range, so
// all-zero input yields a flat baseline instead of a division by zero.
func Render(values []float64, opts ...Option) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("chart input must not be empty")
	}

	cfg := config{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	vMin, vMax := values[0], values[0]
	for _, v := range values[1:] {
		vMin = math.Min(vMin, v)
		vMax = math.Max(vMax, v)
	}
	vRange := vMax - vMin
	if vRange == 0 {
		vRange = 1
	}

	resampled := make([]float64, cfg.width)
	for col := range resampled {
		idx := col * len(values) / cfg.width
		if idx > len(values)-1 {
			idx = len(values) - 1
		}
		resampled[col] = values[idx]
	}

	var b strings.Builder
	line := make([]byte, cfg.width)
	for row := 0; row < cfg.height; row++ {
		switch row {
		case 0:
			fmt.Fprintf(&b, labelFormat, vMax)
		case cfg.height - 1:
			fmt.Fprintf(&b, labelFormat, vMin)
		case cfg.height / 2:
			fmt.Fprintf(&b, labelFormat, (vMax+vMin)/2)
		default:
			b.WriteString(labelBlank)
		}

		for col, v := range resampled {
			// Row the value lands on: top row is vMax, bottom is vMin.
			valRow := (vMax - v) / vRange * float64(cfg.height-1)
			if math.Abs(valRow-float64(row)) < 0.5 {
				line[col] = '*'
			} else {
				line[col] = ' '
			}
		}
		b.Write(line)
		b.WriteByte('\n')
	}

	b.WriteString(axisStub)
	b.WriteString(strings.Repeat("-", cfg.width))
	b.WriteByte('\n')

	return b.String(), nil
}
