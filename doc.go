// SPDX-License-Identifier: EPL-2.0

// Package wav2h turns audio sample files into C++ headers that embed the
// decoded samples as std::vector<float> literals, ready to be compiled into
// firmware or any other program.
//
// # Single Files
//
//	res, err := wav2h.Convert("kick.wav")
//	if err != nil {
//	    // errors.Is(err, wav2h.ErrOpen) or errors.Is(err, wav2h.ErrRead)
//	}
//	fmt.Println(res.Text) // std::vector<float> kick = { ... };
//
// ConvertFile does the same and hands the text to a Sink, targeting
// <identifier>.h beside the input.
//
// # Directories
//
// ConvertDirectory converts every .wav file directly inside a directory in
// path order and then writes samples.h, which lists a pointer to every array
// and, in parallel, the original file names:
//
//	idx, err := wav2h.ConvertDirectory("drums", wav2h.Files{Logger: logger},
//	    wav2h.WithIncludes(true),
//	    wav2h.WithLogger(logger),
//	)
//
// Files that fail to decode are logged and skipped. A failed write stops the
// run.
//
// # Sinks
//
// Console prints each text to a writer. Files writes each text to its path.
//
// # Formats
//
// Decoding goes through DefaultRegistry: WAV (integer PCM 8-32 bit, IEEE
// float) via formats/wav and AIFF via formats/aiff. Samples are always
// emitted as float32 values in [-1.0, 1.0], interleaved by channel.
package wav2h
