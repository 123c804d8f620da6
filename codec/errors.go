// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	ErrUnknownCodec          = errors.New("unknown codec")
	ErrUnsupportedSampleRate = errors.New("unsupported sample rate")
	ErrUnknownOption         = errors.New("unknown codec option")
	ErrOptionOutOfRange      = errors.New("codec option out of range")
)
