package signal

import (
	"fmt"
	"math"
	"strings"

	"github.com/GaryLuck/Fourier/dsp/core"
)

// Kind identifies a waveform shape.
type Kind int

const (
	Sine Kind = iota
	Square
	Sawtooth
)

// String returns the lower-case waveform name.
func (k Kind) String() string {
	switch k {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind resolves a waveform name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "sawtooth":
		return Sawtooth, nil
	default:
		return 0, fmt.Errorf("unknown waveform kind: %q", name)
	}
}

// Generator creates deterministic waveforms from a shared configuration.
type Generator struct {
	cfg core.Config
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...core.Option) *Generator {
	return &Generator{cfg: core.ApplyOptions(opts...)}
}

// NewGeneratorFromConfig creates a waveform generator for an existing config.
func NewGeneratorFromConfig(cfg core.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Config returns the generator configuration.
func (g *Generator) Config() core.Config {
	return g.cfg
}

// Sine generates a sine wave: amplitude * sin(2*pi*freq*t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("sine", freqHz, amplitude, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Square generates a square wave: +amplitude for the first half of each
// period, -amplitude for the second half.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("square", freqHz, amplitude, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		if frac(step*float64(i)) < 0.5 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// Sawtooth generates a sawtooth wave: a linear ramp from -amplitude to
// +amplitude that resets at each period boundary.
func (g *Generator) Sawtooth(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("sawtooth", freqHz, amplitude, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * (2*frac(step*float64(i)) - 1)
	}
	return out, nil
}

// Generate dispatches to the closed-form generator for kind.
func (g *Generator) Generate(kind Kind, freqHz, amplitude float64, samples int) ([]float64, error) {
	switch kind {
	case Sine:
		return g.Sine(freqHz, amplitude, samples)
	case Square:
		return g.Square(freqHz, amplitude, samples)
	case Sawtooth:
		return g.Sawtooth(freqHz, amplitude, samples)
	default:
		return nil, fmt.Errorf("unknown waveform kind: %d", int(kind))
	}
}

// Frame generates one frame of kind using the configured frequency,
// amplitude, and frame size.
func (g *Generator) Frame(kind Kind) ([]float64, error) {
	return g.Generate(kind, g.cfg.Frequency, g.cfg.Amplitude, g.cfg.FrameSize)
}

func (g *Generator) validate(op string, freqHz, amplitude float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", op, samples)
	}
	if freqHz <= 0 {
		return fmt.Errorf("%s frequency must be > 0: %f", op, freqHz)
	}
	if amplitude <= 0 {
		return fmt.Errorf("%s amplitude must be > 0: %f", op, amplitude)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", op, g.cfg.SampleRate)
	}
	return nil
}

// frac returns the fractional part of x in [0, 1).
func frac(x float64) float64 {
	return x - math.Floor(x)
}
