// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"path/filepath"

	"github.com/ik5/wav2h/codegen"
)

// HeaderExt is the extension of every generated file.
const HeaderExt = ".h"

// Result is the outcome of converting one audio file.
type Result struct {
	// Name is the sanitized identifier, used as variable and header name.
	Name string
	// Filename is the base name of the source file.
	Filename string
	// Text is the generated array declaration.
	Text string
	// Samples is the number of values in the array.
	Samples int
}

// HeaderName returns the file name the result is written to.
func (r *Result) HeaderName() string {
	return r.Name + HeaderExt
}

// Convert decodes path and renders its samples as an array declaration
// named after the file's stem. Decode errors are returned unchanged.
func Convert(path string) (*Result, error) {
	buf, err := Load(path)
	if err != nil {
		return nil, err
	}

	name := codegen.Sanitize(codegen.Stem(path))

	return &Result{
		Name:     name,
		Filename: filepath.Base(path),
		Text:     codegen.Array(name, buf.Samples),
		Samples:  len(buf.Samples),
	}, nil
}

// ConvertFile converts path and hands the text to sink, targeting
// <identifier>.h next to the input.
func ConvertFile(path string, sink Sink) (*Result, error) {
	res, err := Convert(path)
	if err != nil {
		return nil, err
	}

	if err := sink.Write(filepath.Join(filepath.Dir(path), res.HeaderName()), res.Text); err != nil {
		return nil, err
	}

	return res, nil
}
