package opus

import "errors"

var (
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
	ErrUnsupportedSampleRate    = errors.New("unsupported sample rate")
	ErrEncoderInit              = errors.New("opus encoder initialization failed")
	ErrEncodeFailed             = errors.New("opus encoding failed")
	ErrInvalidBlockSize         = errors.New("invalid block size")
)
