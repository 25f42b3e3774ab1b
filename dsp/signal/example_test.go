package signal_test

import (
	"fmt"
	"math"

	"github.com/GaryLuck/Fourier/dsp/core"
	"github.com/GaryLuck/Fourier/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	x, err := g.Sine(250, 1, 5)
	if err != nil {
		panic(err)
	}
	if math.Abs(x[4]) < 1e-12 {
		x[4] = 0
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleGenerator_Sawtooth() {
	g := signal.NewGenerator(core.WithSampleRate(8))
	x, err := g.Sawtooth(2, 1, 5)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.1f %.1f %.1f %.1f %.1f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// -1.0 -0.5 0.0 0.5 -1.0
}
