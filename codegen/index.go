// SPDX-License-Identifier: EPL-2.0

package codegen

import "strings"

// Entry pairs a generated array name with the file it was generated from.
type Entry struct {
	Name     string
	Filename string
}

// Index renders the aggregate header listing every array in entries, in
// order, next to a parallel list of the original file names. When includes
// is set, each array's header is included first.
func Index(entries []Entry, includes bool) string {
	var b strings.Builder

	if includes {
		for _, e := range entries {
			b.WriteString(`#include "`)
			b.WriteString(e.Name)
			b.WriteString(".h\"\n")
		}
	}

	b.WriteString("\n\nstd::vector<std::vector<float>*> samples = {\n")
	for _, e := range entries {
		b.WriteString("\t&")
		b.WriteString(e.Name)
		b.WriteString(",\n")
	}
	b.WriteString("};\n\n")

	b.WriteString("\n\nstd::vector<std::string> sampleNames = {\n")
	for _, e := range entries {
		b.WriteString("\t\"")
		b.WriteString(escapeString(e.Filename))
		b.WriteString("\",\n")
	}
	b.WriteString("};\n\n")

	return b.String()
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeString(s string) string {
	return stringEscaper.Replace(s)
}
