// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: a mock
// audio source and writers for valid, truncated and foreign-format WAV files.
package audiotest
