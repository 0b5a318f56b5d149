// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// BitDepth of the originating stream in bits per sample.
	BitDepth() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input stream.
type Decoder interface {
	Decode(r io.ReadSeeker) (Source, error)
}

// StreamDescriptor describes a fully decoded PCM stream. Immutable once
// produced by ReadAll.
type StreamDescriptor struct {
	SampleRate int
	BitDepth   int
	Channels   int
	Frames     int
}

// Buffer holds interleaved float32 samples in [-1,1]. Its length is always
// a multiple of Channels. Pipeline stages never mutate a Buffer they were
// given; each stage returns a new one.
type Buffer struct {
	Data     []float32
	Channels int
}

// Frames is the number of frames (samples per channel) in the buffer.
func (b *Buffer) Frames() int {
	if b == nil || b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Deinterleave splits the buffer into one slice per channel. The returned
// slices are freshly allocated and safe for concurrent reads.
func (b *Buffer) Deinterleave() [][]float32 {
	frames := b.Frames()
	out := make([][]float32, b.Channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for i := 0; i < frames; i++ {
			out[c][i] = b.Data[i*b.Channels+c]
		}
	}
	return out
}

// ReadAll drains src into a single Buffer and returns it together with the
// stream descriptor. The descriptor's frame count reflects what was actually
// read, not what the container header claimed.
func ReadAll(src Source) (*Buffer, StreamDescriptor, error) {
	var desc StreamDescriptor

	channels := src.Channels()
	if channels <= 0 {
		return nil, desc, ErrInvalidChannels
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Keep reads frame-aligned.
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	var data []float32
	tmp := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(tmp)
		if n > 0 {
			data = append(data, tmp[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, desc, fmt.Errorf("%w", err)
		}
	}

	// Drop a truncated trailing frame, if any.
	data = data[:len(data)-len(data)%channels]

	buf := &Buffer{Data: data, Channels: channels}
	desc = StreamDescriptor{
		SampleRate: src.SampleRate(),
		BitDepth:   src.BitDepth(),
		Channels:   channels,
		Frames:     buf.Frames(),
	}
	return buf, desc, nil
}

// Registry for decoders by format key (e.g., "wav", "flac").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
