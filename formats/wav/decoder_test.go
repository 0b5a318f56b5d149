// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/nvik/transaudio/audio"
	"github.com/nvik/transaudio/utils"
)

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not riff", data: []byte("this is not audio data at all, not even close")},
		{name: "truncated riff", data: []byte("RIFF\x04\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotWavFile)
			}
		})
	}
}

func TestDecoder_Rejects24Bit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deep.wav")
	write24BitWav(t, path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, err = Decoder{}.Decode(f)
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode() error = %v, want %v", err, ErrUnsupportedBitDepth)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	const (
		rate   = 8000
		frames = 2000
	)

	orig := &audio.Buffer{Channels: 2, Data: make([]float32, frames*2)}
	for f := 0; f < frames; f++ {
		at := float64(f) / rate
		orig.Data[f*2] = float32(math.Sin(2 * math.Pi * 440 * at))
		orig.Data[f*2+1] = float32(math.Sin(2 * math.Pi * 220 * at))
	}

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := Encode(path, orig, rate); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != rate {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), rate)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	got, desc, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if desc.Frames != frames {
		t.Fatalf("decoded %d frames, want %d", desc.Frames, frames)
	}

	// Decoded samples must match the original after 16-bit quantization.
	for i := range orig.Data {
		want := utils.Int16ToFloat32(utils.Float32ToInt16(orig.Data[i]))
		if got.Data[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, got.Data[i], want)
		}
	}
}

func TestEncode_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	buf := &audio.Buffer{Channels: 1, Data: make([]float32, 100)}
	if err := Encode(path, buf, 8000); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.wav" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only out.wav", names)
	}
}

func TestEncode_RejectsEmptyBuffer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")

	err := Encode(path, &audio.Buffer{Channels: 1}, 8000)
	if !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("Encode() error = %v, want %v", err, ErrEmptyOutput)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Encode() created output despite failing")
	}
}

// write24BitWav creates a small 24-bit PCM WAV the decoder must reject.
func write24BitWav(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, 8000, 24, 1, 1)
	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: 24,
		Data:           make([]int, 64),
	}
	if err := enc.Write(ib); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}
