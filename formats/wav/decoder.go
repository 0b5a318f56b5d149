// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/nvik/transaudio/audio"
	"github.com/nvik/transaudio/utils"
)

// wavReader is an interface for gowav.Decoder to allow testing
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return 16 }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	for i := 0; i < n; i++ {
		dst[i] = utils.Int16ToFloat32(int16(s.intBuf.Data[i]))
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}
	if dec.BitDepth != 16 {
		return nil, ErrUnsupportedBitDepth
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, ErrNotWavFile
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}
