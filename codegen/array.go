// SPDX-License-Identifier: EPL-2.0

package codegen

import (
	"math"
	"strconv"
	"strings"
)

// ValuesPerLine is the number of samples written on each line of an array.
const ValuesPerLine = 4

// Array renders samples as a std::vector<float> declaration named name.
//
// Every value is followed by ",\t" and a new line (indented by a tab) starts
// before every ValuesPerLine-th value.
func Array(name string, samples []float32) string {
	var b strings.Builder
	// "-0.000000,\t" is 11 bytes, plus room for line breaks
	b.Grow(len(name) + 32 + len(samples)*12)

	b.WriteString("std::vector<float> ")
	b.WriteString(name)
	b.WriteString(" = {\n\t")

	for i, s := range samples {
		if i%ValuesPerLine == 0 && i > 0 {
			b.WriteString("\n\t")
		}
		b.WriteString(FormatSample(s))
		b.WriteString(",\t")
	}

	b.WriteString("\n};")

	return b.String()
}

// FormatSample renders s the way printf("%f") renders a float promoted to
// double: fixed point with six fractional digits.
func FormatSample(s float32) string {
	v := float64(s)
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
