package spectrum_test

import (
	"fmt"

	"github.com/GaryLuck/Fourier/dsp/core"
	"github.com/GaryLuck/Fourier/dsp/signal"
	"github.com/GaryLuck/Fourier/dsp/spectrum"
)

func ExampleAnalyzer_MagnitudeSpectrum() {
	g := signal.NewGenerator(core.WithSampleRate(8))
	sig, err := g.Sine(1, 1, 8)
	if err != nil {
		panic(err)
	}

	a := spectrum.NewAnalyzer()
	mags, err := a.MagnitudeSpectrum(sig)
	if err != nil {
		panic(err)
	}

	fmt.Printf("bins=%d peak=%d mag=%.2f\n",
		len(mags), spectrum.PeakBin(mags), mags[spectrum.PeakBin(mags)])

	// Output:
	// bins=4 peak=1 mag=1.00
}

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}
