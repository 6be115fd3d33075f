// SPDX-License-Identifier: EPL-2.0

package codegen

import (
	"path/filepath"
	"strings"
)

// gremlins are replaced one for one, so positions in the name are kept.
var gremlins = strings.NewReplacer(
	" ", "_",
	":", "_",
	".", "_",
	",", "_",
	";", "_",
	"/", "_",
	"-", "_",
	"+", "_",
	`\`, "_",
)

// Sanitize turns a raw file name stem into an identifier usable as a C++
// variable name and as a header base name.
//
// A name whose first byte is neither an ASCII letter nor an underscore gets
// an "m" prefix. Every space, colon, period, comma, semicolon, slash, hyphen,
// plus sign and backslash becomes an underscore. Other bytes are kept, length
// is not limited and an empty name stays empty.
func Sanitize(raw string) string {
	if raw != "" && !isIdentStart(raw[0]) {
		raw = "m" + raw
	}
	return gremlins.Replace(raw)
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Stem returns the final element of path without its last extension.
// Names whose only dot is the leading one (".wav") have no extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, Ext(base))
}

// Ext returns the extension of the final element of path, including the
// dot, or "" when there is none.
func Ext(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}
