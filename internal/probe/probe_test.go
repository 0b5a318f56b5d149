// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvik/transaudio/audio"
	wavfmt "github.com/nvik/transaudio/formats/wav"
)

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   Format
	}{
		{name: "wav", header: []byte("RIFF\x24\x08\x00\x00WAVE"), want: FormatWAV},
		{name: "flac", header: []byte("fLaC\x80\x00\x00\x22"), want: FormatFLAC},
		{name: "aiff", header: []byte("FORM\x00\x00\x08\x00AIFF"), want: FormatAIFF},
		{name: "aifc", header: []byte("FORM\x00\x00\x08\x00AIFC"), want: FormatAIFF},
		{name: "ogg", header: []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00"), want: FormatVorbis},
		{name: "mp3 with id3", header: []byte("ID3\x04\x00\x00\x00\x00\x00\x00\x00\x00"), want: FormatMP3},
		{name: "mp3 frame sync", header: []byte{0xFF, 0xFB, 0x90, 0x00}, want: FormatMP3},
		{name: "riff but not wave", header: []byte("RIFF\x24\x08\x00\x00AVI "), want: FormatUnknown},
		{name: "empty", header: nil, want: FormatUnknown},
		{name: "text", header: []byte("hello world!"), want: FormatUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Sniff(tt.header))
		})
	}
}

func TestFile_WAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "probe.wav")
	buf := &audio.Buffer{Channels: 2, Data: make([]float32, 400)}
	require.NoError(t, wavfmt.Encode(path, buf, 44100))

	info, err := File(path)
	require.NoError(t, err)

	assert.Equal(t, FormatWAV, info.Format)
	assert.Equal(t, 44100, info.SampleRate)
	assert.Equal(t, 2, info.Channels)
	assert.Equal(t, 16, info.BitDepth)
}

func TestFile_FLACReportsDeclaredBitDepth(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deep.flac")
	require.NoError(t, os.WriteFile(path, flacHeader(96000, 2, 24), 0o644))

	info, err := File(path)
	require.NoError(t, err)

	assert.Equal(t, FormatFLAC, info.Format)
	assert.Equal(t, 96000, info.SampleRate)
	assert.Equal(t, 2, info.Channels)
	assert.Equal(t, 24, info.BitDepth)
}

func TestFile_UnknownContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mystery.bin")
	require.NoError(t, os.WriteFile(path, []byte("no audio to be found here"), 0o644))

	info, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, FormatUnknown, info.Format)
}

func TestFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := File(filepath.Join(t.TempDir(), "nope.wav"))
	assert.Error(t, err)
}

func TestFile_TinyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tiny")
	require.NoError(t, os.WriteFile(path, []byte("ab"), 0o644))

	info, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, FormatUnknown, info.Format)
}

// flacHeader builds a stream marker plus a STREAMINFO block, enough for
// sniffing and header parsing.
func flacHeader(sampleRate, channels, bitsPerSample int) []byte {
	var buf bytes.Buffer
	buf.WriteString("fLaC")
	buf.Write([]byte{0x80, 0x00, 0x00, 0x22})

	body := make([]byte, 34)
	binary.BigEndian.PutUint16(body[0:2], 4096)
	binary.BigEndian.PutUint16(body[2:4], 4096)
	packed := uint64(sampleRate)<<44 |
		uint64(channels-1)<<41 |
		uint64(bitsPerSample-1)<<36
	binary.BigEndian.PutUint64(body[10:18], packed)
	buf.Write(body)
	return buf.Bytes()
}
