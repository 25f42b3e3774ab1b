// Package termdemo drives the interactive Fourier demonstration:
// a menu loop that generates a chosen waveform, charts it, and charts
// its magnitude spectrum.
package termdemo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/GaryLuck/Fourier/dsp/core"
	"github.com/GaryLuck/Fourier/dsp/signal"
	"github.com/GaryLuck/Fourier/dsp/spectrum"
	"github.com/GaryLuck/Fourier/dsp/window"
	"github.com/GaryLuck/Fourier/internal/chart"
)

// Spectra are long: only the low bins carry the demo waveforms'
// energy, so the frequency chart shows at most this many.
const defaultDisplayBins = 32

// Session runs the demo over an injected reader and writer, so the
// loop can be scripted in tests.
type Session struct {
	cfg core.Config
	gen *signal.Generator
	an  *spectrum.Analyzer

	in  *bufio.Scanner
	out io.Writer

	chartOpts   []chart.Option
	displayBins int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithChartSize sets the chart dimensions.
func WithChartSize(width, height int) SessionOption {
	return func(s *Session) {
		s.chartOpts = []chart.Option{chart.WithWidth(width), chart.WithHeight(height)}
	}
}

// WithWindow applies a window before the spectrum transform.
func WithWindow(t window.Type) SessionOption {
	return func(s *Session) {
		s.an = spectrum.NewAnalyzer(spectrum.WithWindow(t))
	}
}

// WithDisplayBins caps how many spectrum bins the frequency chart shows.
func WithDisplayBins(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.displayBins = n
		}
	}
}

// NewSession creates a session reading menu choices from in and
// writing all user-facing output to out.
func NewSession(cfg core.Config, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		cfg:         cfg,
		gen:         signal.NewGeneratorFromConfig(cfg),
		an:          spectrum.NewAnalyzer(),
		in:          bufio.NewScanner(in),
		out:         out,
		displayBins: defaultDisplayBins,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run executes the menu loop until the user quits or input ends.
func (s *Session) Run() error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	for {
		s.printMenu()

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("read menu choice: %w", err)
			}
			fmt.Fprintf(s.out, "\n  Goodbye!\n")
			return nil
		}

		choice := strings.ToLower(strings.TrimSpace(s.in.Text()))
		var kind signal.Kind
		switch choice {
		case "q", "0":
			fmt.Fprintf(s.out, "\n  Goodbye!\n")
			return nil
		case "1":
			kind = signal.Sine
		case "2":
			kind = signal.Square
		case "3":
			kind = signal.Sawtooth
		default:
			fmt.Fprintf(s.out, "  Invalid choice. Try again.\n")
			continue
		}

		if err := s.RenderOnce(kind); err != nil {
			return err
		}
	}
}

// RenderOnce generates one frame of kind and writes the time-domain
// and frequency-domain charts.
func (s *Session) RenderOnce(kind signal.Kind) error {
	frame, err := s.gen.Frame(kind)
	if err != nil {
		return err
	}
	log.Debugf("generated %d %s samples", len(frame), kind)

	name := waveTitle(kind)

	timeChart, err := chart.Render(frame, s.chartOpts...)
	if err != nil {
		return fmt.Errorf("render time domain: %w", err)
	}
	fmt.Fprintf(s.out, "\n  === Time Domain - %s ===\n\n%s", name, timeChart)

	mags, err := s.an.MagnitudeSpectrum(frame)
	if err != nil {
		return err
	}
	log.Debugf("computed %d spectrum bins", len(mags))

	shown := mags
	if len(shown) > s.displayBins {
		shown = shown[:s.displayBins]
	}

	freqChart, err := chart.Render(shown, s.chartOpts...)
	if err != nil {
		return fmt.Errorf("render frequency domain: %w", err)
	}
	fmt.Fprintf(s.out, "\n  === Frequency Domain - %s (magnitude) ===\n\n%s", name, freqChart)

	fmt.Fprintf(s.out, "\n  Peak frequency bin: %d (expect ~%.0f)\n",
		spectrum.PeakBin(mags), s.cfg.Periods())
	return nil
}

func (s *Session) printMenu() {
	banner := strings.Repeat("=", 50)
	fmt.Fprintf(s.out, "\n%s\n", banner)
	fmt.Fprintf(s.out, "   FOURIER TRANSFORM DEMONSTRATION\n")
	fmt.Fprintf(s.out, "%s\n", banner)
	fmt.Fprintf(s.out, "\n  Select a waveform:\n\n")
	fmt.Fprintf(s.out, "    1. Sine wave\n")
	fmt.Fprintf(s.out, "    2. Square wave\n")
	fmt.Fprintf(s.out, "    3. Sawtooth wave\n")
	fmt.Fprintf(s.out, "    q. Quit\n")
	fmt.Fprintf(s.out, "\n  Enter choice (1/2/3/q): ")
}

func waveTitle(kind signal.Kind) string {
	switch kind {
	case signal.Sine:
		return "Sine Wave"
	case signal.Square:
		return "Square Wave"
	case signal.Sawtooth:
		return "Sawtooth Wave"
	default:
		return kind.String()
	}
}
