// SPDX-License-Identifier: EPL-2.0

// Package viewer serves an interactive Doppler simulation over HTTP.
//
// An Engine holds one decoded recording and its trajectory. Moving the
// listener (POST /api/listener) schedules a debounced recomputation; once it
// completes, a summary is pushed to every /ws client and the plots
// (/api/state) and rendered audio (/api/audio.wav) switch to the new frame.
// Submissions that are superseded before finishing are never published.
package viewer
