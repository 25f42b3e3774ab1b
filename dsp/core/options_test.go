package core

import "testing"

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(
		WithSampleRate(256),
		WithFrameSize(512),
		WithFrequency(8),
		WithAmplitude(0.5),
	)
	if cfg.SampleRate != 256 {
		t.Fatalf("sample rate = %v, want 256", cfg.SampleRate)
	}
	if cfg.FrameSize != 512 {
		t.Fatalf("frame size = %d, want 512", cfg.FrameSize)
	}
	if cfg.Frequency != 8 {
		t.Fatalf("frequency = %v, want 8", cfg.Frequency)
	}
	if cfg.Amplitude != 0.5 {
		t.Fatalf("amplitude = %v, want 0.5", cfg.Amplitude)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(
		WithSampleRate(0),
		WithFrameSize(-1),
		WithFrequency(-4),
		WithAmplitude(0),
	)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"sample rate", Config{SampleRate: 0, FrameSize: 128, Frequency: 4, Amplitude: 1}},
		{"frame size", Config{SampleRate: 128, FrameSize: 0, Frequency: 4, Amplitude: 1}},
		{"frequency", Config{SampleRate: 128, FrameSize: 128, Frequency: 0, Amplitude: 1}},
		{"amplitude", Config{SampleRate: 128, FrameSize: 128, Frequency: 4, Amplitude: -1}},
	}
	for _, tc := range cases {
		if err := tc.cfg.Validate(); err == nil {
			t.Fatalf("Validate() with invalid %s: expected error", tc.name)
		}
	}
}

func TestPeriods(t *testing.T) {
	cfg := DefaultConfig()
	if p := cfg.Periods(); p != 4 {
		t.Fatalf("Periods() = %v, want 4", p)
	}

	cfg.SampleRate = 0
	if p := cfg.Periods(); p != 0 {
		t.Fatalf("Periods() with zero rate = %v, want 0", p)
	}
}
