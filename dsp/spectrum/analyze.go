package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/GaryLuck/Fourier/dsp/window"
)

// Analyzer computes half-spectrum magnitudes of real-valued frames.
//
// An Analyzer caches its FFT plan between calls with the same frame
// size. It is not safe for concurrent use.
type Analyzer struct {
	winType window.Type

	planSize int
	plan     *algofft.Plan[complex128]
	input    []complex128
	output   []complex128
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithWindow applies the given window before the transform.
// The default is rectangular (no windowing).
func WithWindow(t window.Type) AnalyzerOption {
	return func(a *Analyzer) {
		a.winType = t
	}
}

// NewAnalyzer creates a configured spectrum analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{winType: window.TypeRectangular}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// MagnitudeSpectrum returns the magnitude of each non-negative
// frequency bin of sig.
//
// The signal is windowed, zero-padded to the next power of two n, and
// transformed. The returned slice holds n/2 values: bin 0 is the DC
// magnitude |X[0]|/n; bin k is 2*|X[k]|/n, folding the symmetric
// negative-frequency half back in. Bin k corresponds to frequency
// k*sampleRate/n.
func (a *Analyzer) MagnitudeSpectrum(sig []float64) ([]float64, error) {
	if len(sig) == 0 {
		return nil, fmt.Errorf("spectrum input must not be empty")
	}

	n := nextPowerOf2(len(sig))
	if n < 2 {
		n = 2
	}

	if err := a.preparePlan(n); err != nil {
		return nil, err
	}

	coeffs := window.Generate(a.winType, len(sig), window.WithPeriodic())
	windowed, err := window.ApplyCoefficients(sig, coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum window: %w", err)
	}

	for i := range a.input {
		a.input[i] = 0
	}
	for i, v := range windowed {
		a.input[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.output, a.input); err != nil {
		return nil, fmt.Errorf("spectrum fft forward: %w", err)
	}

	mags := Magnitude(a.output[:n/2])
	inv := 1 / float64(n)
	mags[0] *= inv
	for k := 1; k < len(mags); k++ {
		mags[k] *= 2 * inv
	}
	return mags, nil
}

// PeakBin returns the index of the largest non-DC magnitude.
// It returns 0 when mags holds no bins beyond DC.
func PeakBin(mags []float64) int {
	bestBin := 0
	bestVal := -1.0
	for i := 1; i < len(mags); i++ {
		if mags[i] > bestVal {
			bestVal = mags[i]
			bestBin = i
		}
	}
	return bestBin
}

// BinFrequency returns the center frequency in Hz of bin k for a
// spectrum of binCount non-negative bins at the given sample rate.
func BinFrequency(k, binCount int, sampleRate float64) float64 {
	if binCount <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(2*binCount)
}

func (a *Analyzer) preparePlan(n int) error {
	if a.plan != nil && a.planSize == n {
		return nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("spectrum fft plan: %w", err)
	}

	a.plan = plan
	a.planSize = n
	a.input = make([]complex128, n)
	a.output = make([]complex128, n)
	return nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
