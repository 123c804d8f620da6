//go:build !cgo

// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// Without cgo there is no libmp3lame binding; encoder construction fails
// cleanly while decoding keeps working.
func newEngine() (engine, error) {
	return nil, errors.New("mp3 encoding requires cgo and libmp3lame - rebuild with CGO_ENABLED=1")
}
