// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into float32 samples.
//
// Container parsing is done by github.com/go-audio/wav. Samples are read
// straight from the data chunk and normalized to [-1.0, 1.0].
//
// # Supported Encodings
//
//   - PCM 8-bit (unsigned), 16, 24 and 32-bit (signed)
//   - WAVE_FORMAT_EXTENSIBLE carrying integer PCM
//   - IEEE float 32 and 64-bit
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("kick.wav")
//	defer file.Close()
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src)
//
// The source reports the frame count declared by the data chunk, so
// audio.ReadAll detects truncated files.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrNoPCMData: no data chunk was found
//   - ErrUnsupportedEncoding: compressed or unusual sample encodings
package wav
