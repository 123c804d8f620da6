// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrUnsupportedChannelLayout = errors.New("mp3 encoder supports mono and stereo only")
	ErrAllocationFailure        = errors.New("could not allocate mp3 encoder")
	ErrConfigurationRejected    = errors.New("mp3 encoder rejected configuration")
	ErrOutputBufferTooSmall     = errors.New("mp3 output buffer too small")
	ErrEncodeFailed             = errors.New("mp3 encode failed")
	ErrUnsupportedFrameFormat   = errors.New("free format mp3 streams not supported")
	ErrInvalidFrameHeader       = errors.New("invalid mp3 frame header")
	ErrInvalidBlockSize         = errors.New("pcm block does not match encoder block size")
)
