// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float natively, so samples pass through unscaled.
//
//	f, _ := os.Open("horn.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
