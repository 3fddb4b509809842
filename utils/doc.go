// SPDX-License-Identifier: EPL-2.0

// Package utils holds the scalar helpers shared by the audio and formats
// packages: four-point interpolation and PCM sample scaling.
package utils
