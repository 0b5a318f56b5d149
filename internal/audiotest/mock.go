// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests. The sources
// satisfy audio.Source implicitly, without importing the audio package.
package audiotest

import (
	"io"
	"math"
)

// MockSource streams generated samples. The waveform function is evaluated
// per frame and channel, so tests can produce any deterministic signal.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate in total
	emitted    int // frames generated so far
	waveform   func(frame, channel int) float32
}

// NewMockSource returns a source that generates frames frames of audio at
// sampleRate, with per-sample values supplied by waveform.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource returns a source producing only zero samples.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		return 0
	})
}

// NewSineSource returns a source producing a full-scale sine at the given
// frequency, identical on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		at := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * at))
	})
}

// NewConstantSource returns a source producing the same value everywhere.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BitDepth() int   { return 16 }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() { m.emitted = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.emitted >= m.frames {
		return 0, io.EOF
	}

	want := len(dst) / m.channels
	left := m.frames - m.emitted
	if want > left {
		want = left
	}

	for f := 0; f < want; f++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[f*m.channels+ch] = m.waveform(m.emitted+f, ch)
		}
	}
	m.emitted += want

	n := want * m.channels
	if m.emitted >= m.frames {
		return n, io.EOF
	}
	return n, nil
}
