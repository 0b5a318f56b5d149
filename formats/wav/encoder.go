// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/nvik/transaudio/audio"
	"github.com/nvik/transaudio/utils"
)

// encodeChunkFrames bounds the int conversion buffer during encoding.
const encodeChunkFrames = 8192

// Encode writes buf as a 16-bit PCM WAV file at path.
//
// The file is written to a temporary name in the destination directory,
// synced, and atomically renamed over path, so a failed or interrupted
// encode never leaves a partial file at the final location.
func Encode(path string, buf *audio.Buffer, sampleRate int) error {
	if buf == nil || len(buf.Data) == 0 {
		return ErrEmptyOutput
	}
	if sampleRate <= 0 || buf.Channels <= 0 {
		return fmt.Errorf("invalid output spec: rate=%d channels=%d", sampleRate, buf.Channels)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	tmpPath := tmp.Name()

	// Any failure below discards the temporary file.
	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	enc := gowav.NewEncoder(tmp, sampleRate, 16, buf.Channels, 1)

	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
	}

	chunk := encodeChunkFrames * buf.Channels
	for off := 0; off < len(buf.Data); off += chunk {
		end := min(off+chunk, len(buf.Data))
		part := buf.Data[off:end]

		if cap(ib.Data) < len(part) {
			ib.Data = make([]int, len(part))
		}
		ib.Data = ib.Data[:len(part)]
		for i, s := range part {
			ib.Data[i] = int(utils.Float32ToInt16(s))
		}

		if err := enc.Write(ib); err != nil {
			return cleanup(fmt.Errorf("%w", err))
		}
	}

	if err := enc.Close(); err != nil {
		return cleanup(fmt.Errorf("%w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("%w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w", err)
	}
	return nil
}
