// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Like WAV,
// AIFF carries uncompressed PCM, so the same header conversion applies.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("snare.aif")
//	defer file.Close()
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(source)
//
// Samples come out as float32 normalized to [-1.0, 1.0]. Frames reports the
// frame count from the COMM chunk.
package aiff
