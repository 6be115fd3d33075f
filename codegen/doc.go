// SPDX-License-Identifier: EPL-2.0

// Package codegen renders decoded samples as C++ source text.
//
// Sanitize derives a variable name from a file name stem, Array renders one
// std::vector<float> declaration and Index renders the aggregate header that
// references every generated array.
package codegen
