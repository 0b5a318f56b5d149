// SPDX-License-Identifier: EPL-2.0

// Package probe identifies an input file's container format from its leading
// bytes and, where the format allows it, reads the stream parameters the
// dispatcher needs before any decoding starts: sample rate, channel count
// and declared bit depth.
package probe

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	gowav "github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	mewflac "github.com/mewkiz/flac"
)

// Format is a sniffed container format.
type Format string

const (
	FormatUnknown Format = ""
	FormatWAV     Format = "wav"
	FormatFLAC    Format = "flac"
	FormatMP3     Format = "mp3"
	FormatVorbis  Format = "ogg"
	FormatAIFF    Format = "aiff"
)

// Info holds the parameters read from an input's headers. BitDepth is zero
// for formats that don't declare one up front (MP3, Vorbis).
type Info struct {
	Format     Format
	SampleRate int
	Channels   int
	BitDepth   int
}

// sniffLen is how many leading bytes Sniff inspects.
const sniffLen = 12

// Sniff identifies the container format from the file's first bytes.
func Sniff(header []byte) Format {
	switch {
	case len(header) >= 12 &&
		bytes.HasPrefix(header, []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE")):
		return FormatWAV
	case bytes.HasPrefix(header, []byte("fLaC")):
		return FormatFLAC
	case len(header) >= 12 &&
		bytes.HasPrefix(header, []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return FormatAIFF
	case bytes.HasPrefix(header, []byte("OggS")):
		return FormatVorbis
	case bytes.HasPrefix(header, []byte("ID3")):
		return FormatMP3
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		// Bare MPEG frame sync, no ID3 tag.
		return FormatMP3
	default:
		return FormatUnknown
	}
}

// File sniffs path and reads its stream parameters. An unrecognized
// signature returns an Info with FormatUnknown and no error; the caller
// decides how to route it. Header parse failures after a positive sniff are
// reported as errors.
func File(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return Info{}, fmt.Errorf("%w", err)
	}

	format := Sniff(header[:n])
	if format == FormatUnknown {
		return Info{Format: FormatUnknown}, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	return describe(format, f)
}

func describe(format Format, r io.ReadSeeker) (Info, error) {
	switch format {
	case FormatWAV:
		dec := gowav.NewDecoder(r)
		if !dec.IsValidFile() {
			return Info{}, fmt.Errorf("wav: malformed header")
		}
		return Info{
			Format:     FormatWAV,
			SampleRate: int(dec.SampleRate),
			Channels:   int(dec.NumChans),
			BitDepth:   int(dec.BitDepth),
		}, nil

	case FormatFLAC:
		stream, err := mewflac.New(r)
		if err != nil {
			return Info{}, fmt.Errorf("flac: %w", err)
		}
		return Info{
			Format:     FormatFLAC,
			SampleRate: int(stream.Info.SampleRate),
			Channels:   int(stream.Info.NChannels),
			BitDepth:   int(stream.Info.BitsPerSample),
		}, nil

	case FormatMP3:
		dec, err := gomp3.NewDecoder(r)
		if err != nil {
			return Info{}, fmt.Errorf("mp3: %w", err)
		}
		// go-mp3 always decodes to stereo.
		return Info{
			Format:     FormatMP3,
			SampleRate: dec.SampleRate(),
			Channels:   2,
		}, nil

	case FormatVorbis:
		dec, err := oggvorbis.NewReader(r)
		if err != nil {
			return Info{}, fmt.Errorf("vorbis: %w", err)
		}
		return Info{
			Format:     FormatVorbis,
			SampleRate: dec.SampleRate(),
			Channels:   dec.Channels(),
		}, nil

	case FormatAIFF:
		dec := aiff.NewDecoder(r)
		if !dec.IsValidFile() {
			return Info{}, fmt.Errorf("aiff: malformed header")
		}
		dec.ReadInfo()
		af := dec.Format()
		if af == nil {
			return Info{}, fmt.Errorf("aiff: missing common chunk")
		}
		return Info{
			Format:     FormatAIFF,
			SampleRate: af.SampleRate,
			Channels:   af.NumChannels,
			BitDepth:   int(dec.BitDepth),
		}, nil

	default:
		return Info{Format: FormatUnknown}, nil
	}
}
