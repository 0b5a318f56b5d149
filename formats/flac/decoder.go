// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	mewflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/nvik/transaudio/audio"
	"github.com/nvik/transaudio/utils"
)

// flacStream is an interface for mewflac.Stream frame parsing to allow testing
type flacStream interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     flacStream
	sampleRate int
	channels   int

	// Interleaved samples decoded from the last parsed frame that have not
	// been handed out yet.
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return 16 }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

// fill parses the next FLAC frame and interleaves its subframes.
func (s *source) fill() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.eof = true
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}

	if len(f.Subframes) != s.channels {
		return ErrCorruptStream
	}

	frames := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes {
		if len(sub.Samples) != frames {
			return ErrCorruptStream
		}
	}

	need := frames * s.channels
	if cap(s.pending) < need {
		s.pending = make([]float32, need)
	}
	s.pending = s.pending[:need]

	for i := 0; i < frames; i++ {
		for c, sub := range f.Subframes {
			s.pending[i*s.channels+c] = utils.Int16ToFloat32(int16(sub.Samples[i]))
		}
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for len(s.pending) == 0 {
		if s.eof {
			return 0, io.EOF
		}
		if err := s.fill(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	stream, err := mewflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.BitsPerSample != 16 {
		return nil, ErrUnsupportedBitDepth
	}
	if info.NChannels == 0 || info.SampleRate == 0 {
		return nil, ErrNotFlacFile
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
	}, nil
}
