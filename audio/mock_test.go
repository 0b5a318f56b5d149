// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// sineBuffer builds a buffer where every channel carries a sine wave at the
// given frequency.
func sineBuffer(rate, channels, frames int, frequency float64) *Buffer {
	data := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		t := float64(f) / float64(rate)
		v := float32(math.Sin(2 * math.Pi * frequency * t))
		for ch := 0; ch < channels; ch++ {
			data[f*channels+ch] = v
		}
	}
	return &Buffer{Data: data, Channels: channels}
}

// constantBuffer builds a buffer filled with a single value.
func constantBuffer(channels, frames int, value float32) *Buffer {
	data := make([]float32, frames*channels)
	for i := range data {
		data[i] = value
	}
	return &Buffer{Data: data, Channels: channels}
}
