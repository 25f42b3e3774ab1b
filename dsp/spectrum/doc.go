// Package spectrum computes magnitude spectra of real-valued frames.
//
// The FFT itself comes from an external backend; this package wraps it
// with windowing, zero-padding, and the half-spectrum magnitude scaling
// used by the demo, plus low-level helpers for complex spectrum bins.
package spectrum
