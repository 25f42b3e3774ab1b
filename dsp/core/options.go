package core

import "fmt"

// Config defines the compiled-in parameters of a demo run.
//
// The defaults describe one second of signal: 128 samples at 128 Hz
// holding four full periods of the base waveform.
type Config struct {
	SampleRate float64
	FrameSize  int
	Frequency  float64
	Amplitude  float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the compiled-in demo defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate: 128,
		FrameSize:  128,
		Frequency:  4,
		Amplitude:  1,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrameSize sets the number of samples generated per frame.
func WithFrameSize(frameSize int) Option {
	return func(cfg *Config) {
		if frameSize > 0 {
			cfg.FrameSize = frameSize
		}
	}
}

// WithFrequency sets the base waveform frequency in Hz.
func WithFrequency(freqHz float64) Option {
	return func(cfg *Config) {
		if freqHz > 0 {
			cfg.Frequency = freqHz
		}
	}
}

// WithAmplitude sets the peak amplitude of generated waveforms.
func WithAmplitude(amplitude float64) Option {
	return func(cfg *Config) {
		if amplitude > 0 {
			cfg.Amplitude = amplitude
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid configuration value.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("config sample rate must be > 0: %f", c.SampleRate)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("config frame size must be > 0: %d", c.FrameSize)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("config frequency must be > 0: %f", c.Frequency)
	}
	if c.Amplitude <= 0 {
		return fmt.Errorf("config amplitude must be > 0: %f", c.Amplitude)
	}
	return nil
}

// Periods returns how many full waveform periods one frame spans.
func (c Config) Periods() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return c.Frequency * float64(c.FrameSize) / c.SampleRate
}
