//go:build cgo

package opus

import (
	"fmt"

	hraban "gopkg.in/hraban/opus.v2"
)

func newPacketEncoder(cfg Config) (packetEncoder, error) {
	enc, err := hraban.NewEncoder(cfg.SampleRate, cfg.Channels, hraban.AppAudio)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoderInit, err)
	}

	if cfg.BitRate > 0 {
		if err := enc.SetBitrate(cfg.BitRate); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoderInit, err)
		}
	}

	if cfg.DTX {
		if err := enc.SetDTX(true); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoderInit, err)
		}
	}

	return enc, nil
}
