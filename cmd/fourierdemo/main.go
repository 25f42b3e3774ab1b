// Command fourierdemo renders synthetic waveforms and their magnitude
// spectra as ASCII charts in the terminal.
//
// Without arguments it starts an interactive menu loop. The render
// subcommand draws a single waveform non-interactively:
//
//	fourierdemo
//	fourierdemo render --wave square
//	fourierdemo render --wave sine --periods 4.5 --window hann
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/GaryLuck/Fourier/dsp/core"
	"github.com/GaryLuck/Fourier/dsp/signal"
	"github.com/GaryLuck/Fourier/dsp/window"
	"github.com/GaryLuck/Fourier/internal/termdemo"
)

var windowTypes = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
}

func main() {
	var (
		verbose  bool
		waveName string
		winName  string
		samples  int
		periods  float64
		width    int
		height   int
	)

	app := &cli.App{
		Name:                 "fourierdemo",
		Usage:                "Explore Fourier transforms of synthetic waveforms",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Enable debug logging",
				Destination: &verbose,
			},
		},
		Before: func(cCtx *cli.Context) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Action: func(cCtx *cli.Context) error {
			cfg := core.ApplyOptions()
			if err := cfg.Validate(); err != nil {
				return err
			}
			session := termdemo.NewSession(cfg, os.Stdin, os.Stdout)
			return session.Run()
		},
		Commands: []*cli.Command{
			{
				Name:    "render",
				Aliases: []string{"r"},
				Usage:   "Render one waveform and its spectrum, then exit",
				Action: func(cCtx *cli.Context) error {
					kind, err := signal.ParseKind(waveName)
					if err != nil {
						return err
					}

					winType, ok := windowTypes[strings.ToLower(strings.TrimSpace(winName))]
					if !ok {
						return fmt.Errorf("unknown window type: %q", winName)
					}

					// One frame spans one second, so frequency and
					// periods-per-frame coincide.
					cfg := core.ApplyOptions(
						core.WithSampleRate(float64(samples)),
						core.WithFrameSize(samples),
						core.WithFrequency(periods),
					)
					if err := cfg.Validate(); err != nil {
						return err
					}

					session := termdemo.NewSession(cfg, os.Stdin, os.Stdout,
						termdemo.WithChartSize(width, height),
						termdemo.WithWindow(winType),
					)
					return session.RenderOnce(kind)
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "wave",
						Aliases:     []string{"w"},
						Usage:       "Waveform to render: sine, square, or sawtooth",
						Value:       "sine",
						Destination: &waveName,
					},
					&cli.IntFlag{
						Name:        "samples",
						Aliases:     []string{"n"},
						Usage:       "Samples per frame",
						Value:       128,
						Destination: &samples,
					},
					&cli.Float64Flag{
						Name:        "periods",
						Aliases:     []string{"p"},
						Usage:       "Waveform periods per frame",
						Value:       4,
						Destination: &periods,
					},
					&cli.StringFlag{
						Name:        "window",
						Usage:       "Analysis window: rectangular, hann, hamming, or blackman",
						Value:       "rectangular",
						Destination: &winName,
					},
					&cli.IntFlag{
						Name:        "width",
						Usage:       "Chart width in columns",
						Value:       70,
						Destination: &width,
					},
					&cli.IntFlag{
						Name:        "height",
						Usage:       "Chart height in rows",
						Value:       15,
						Destination: &height,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
