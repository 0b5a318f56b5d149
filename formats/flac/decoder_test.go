// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/nvik/transaudio/audio"
)

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not flac", data: []byte("definitely not a flac stream")},
		{name: "truncated marker", data: []byte("fLa")},
		{name: "marker without metadata", data: []byte("fLaC")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotFlacFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotFlacFile)
			}
		})
	}
}

func TestDecoder_Rejects24Bit(t *testing.T) {
	t.Parallel()

	data := flacHeader(44100, 2, 24)

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode() error = %v, want %v", err, ErrUnsupportedBitDepth)
	}
}

func TestDecoder_Accepts16BitHeader(t *testing.T) {
	t.Parallel()

	data := flacHeader(48000, 2, 16)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BitDepth() != 16 {
		t.Errorf("BitDepth() = %d, want 16", src.BitDepth())
	}

	// No audio frames follow the header; the stream is just empty.
	buf, desc, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if desc.Frames != 0 || buf.Frames() != 0 {
		t.Errorf("read %d frames from headerless stream, want 0", desc.Frames)
	}
}

// flacHeader builds a minimal FLAC file: the stream marker plus a single
// STREAMINFO metadata block and no audio frames.
func flacHeader(sampleRate, channels, bitsPerSample int) []byte {
	var buf bytes.Buffer
	buf.WriteString("fLaC")

	// Metadata block header: last-block flag set, type 0 (STREAMINFO),
	// 34-byte body.
	buf.Write([]byte{0x80, 0x00, 0x00, 0x22})

	body := make([]byte, 34)
	binary.BigEndian.PutUint16(body[0:2], 4096) // min block size
	binary.BigEndian.PutUint16(body[2:4], 4096) // max block size
	// min/max frame size: unknown (zero)

	// 64-bit field: sample rate (20 bits), channels-1 (3), bps-1 (5),
	// total samples (36, zero = unknown).
	packed := uint64(sampleRate)<<44 |
		uint64(channels-1)<<41 |
		uint64(bitsPerSample-1)<<36
	binary.BigEndian.PutUint64(body[10:18], packed)

	// MD5 left zeroed.
	buf.Write(body)
	return buf.Bytes()
}
