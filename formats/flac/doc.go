// SPDX-License-Identifier: EPL-2.0

// Package flac decodes 16-bit FLAC files behind the audio.Source interface.
//
//	src, err := flac.Decoder{}.Decode(file)
//
// Decoding is frame-by-frame via mewkiz/flac; subframe channels are
// interleaved into the normalized float32 stream. Bit depths other than 16
// return ErrUnsupportedBitDepth, malformed data ErrNotFlacFile or
// ErrCorruptStream.
package flac
