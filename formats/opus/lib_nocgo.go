//go:build !cgo

package opus

import "errors"

func newPacketEncoder(cfg Config) (packetEncoder, error) {
	return nil, errors.New("opus encoding requires cgo and libopus - rebuild with CGO_ENABLED=1")
}
