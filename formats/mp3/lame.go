//go:build cgo

// SPDX-License-Identifier: EPL-2.0

package mp3

/*
#cgo LDFLAGS: -lmp3lame
#include <lame/lame.h>
*/
import "C"

import (
	"errors"
	"unsafe"
)

// lameEngine implements engine on top of libmp3lame.
type lameEngine struct {
	gfp *C.lame_global_flags
}

func newEngine() (engine, error) {
	gfp := C.lame_init()
	if gfp == nil {
		return nil, errors.New("lame_init returned no instance")
	}
	return &lameEngine{gfp: gfp}, nil
}

func (l *lameEngine) setInSampleRate(hz int)  { C.lame_set_in_samplerate(l.gfp, C.int(hz)) }
func (l *lameEngine) setOutSampleRate(hz int) { C.lame_set_out_samplerate(l.gfp, C.int(hz)) }
func (l *lameEngine) setChannels(n int)       { C.lame_set_num_channels(l.gfp, C.int(n)) }
func (l *lameEngine) setQuality(q int)        { C.lame_set_quality(l.gfp, C.int(q)) }
func (l *lameEngine) setMode(m mpegMode)      { C.lame_set_mode(l.gfp, C.MPEG_mode(m)) }
func (l *lameEngine) setBitRateKbps(kbps int) { C.lame_set_brate(l.gfp, C.int(kbps)) }
func (l *lameEngine) setVBR(mode vbrMode)     { C.lame_set_VBR(l.gfp, C.vbr_mode(mode)) }

func (l *lameEngine) setVBRQuality(q float32) {
	C.lame_set_VBR_quality(l.gfp, C.float(q))
}

func (l *lameEngine) setDisableReservoir(disable bool) {
	C.lame_set_disable_reservoir(l.gfp, cBool(disable))
}

func (l *lameEngine) setWriteVBRTag(write bool) {
	C.lame_set_bWriteVbrTag(l.gfp, cBool(write))
}

func (l *lameEngine) initParams() int {
	return int(C.lame_init_params(l.gfp))
}

func (l *lameEngine) blockSize() int {
	return int(C.lame_get_framesize(l.gfp))
}

func (l *lameEngine) encodeInterleaved(pcm []int16, out []byte) int {
	return int(C.lame_encode_buffer_interleaved(l.gfp,
		(*C.short)(unsafe.Pointer(&pcm[0])), C.int(len(pcm)/2),
		bytePtr(out), C.int(len(out))))
}

func (l *lameEngine) encodeMono(pcm []int16, out []byte) int {
	// The library's mono calling convention takes the same buffer as
	// both the left and the right channel argument.
	p := (*C.short)(unsafe.Pointer(&pcm[0]))
	return int(C.lame_encode_buffer(l.gfp, p, p, C.int(len(pcm)),
		bytePtr(out), C.int(len(out))))
}

func (l *lameEngine) flush(out []byte) int {
	return int(C.lame_encode_flush(l.gfp, bytePtr(out), C.int(len(out))))
}

func (l *lameEngine) close() {
	C.lame_close(l.gfp)
	l.gfp = nil
}

func bytePtr(b []byte) *C.uchar {
	if len(b) == 0 {
		return nil
	}
	return (*C.uchar)(unsafe.Pointer(&b[0]))
}

func cBool(v bool) C.int {
	if v {
		return 1
	}
	return 0
}
