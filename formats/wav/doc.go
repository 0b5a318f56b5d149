// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes 16-bit PCM WAV files.
//
// Decoding wraps go-audio/wav behind the audio.Source interface:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Only uncompressed 16-bit PCM is accepted; other layouts return
// ErrOnlyPCMSupported or ErrUnsupportedBitDepth.
//
// Encoding writes a complete container with a temp-file-and-rename scheme so
// that the destination path only ever holds a fully written file:
//
//	err := wav.Encode("out.wav", buf, 48000)
package wav
