package intra

import (
	"sync"

	"github.com/dav1dgo/intra/internal/dsp"
)

// Re-exported so callers never need to import the internal dsp package
// directly to name a mode, layout, or tx-size constant.
const (
	ModeDC      = dsp.ModeDC
	ModeVert    = dsp.ModeVert
	ModeHor     = dsp.ModeHor
	ModeDC128   = dsp.ModeDC128
	ModeTopDC   = dsp.ModeTopDC
	ModeLeftDC  = dsp.ModeLeftDC
	ModePaeth   = dsp.ModePaeth
	ModeSmooth  = dsp.ModeSmooth
	ModeSmoothV = dsp.ModeSmoothV
	ModeSmoothH = dsp.ModeSmoothH
	ModeZ1      = dsp.ModeZ1
	ModeZ2      = dsp.ModeZ2
	ModeZ3      = dsp.ModeZ3
	ModeFilter  = dsp.ModeFilter
)

const (
	LayoutI420 = dsp.LayoutI420
	LayoutI422 = dsp.LayoutI422
	LayoutI444 = dsp.LayoutI444
)

const (
	TxSize4x4    = dsp.TxSize4x4
	TxSize8x8    = dsp.TxSize8x8
	TxSize16x16  = dsp.TxSize16x16
	TxSize32x32  = dsp.TxSize32x32
	TxSizeR4x8   = dsp.TxSizeR4x8
	TxSizeR8x4   = dsp.TxSizeR8x4
	TxSizeR4x16  = dsp.TxSizeR4x16
	TxSizeR16x4  = dsp.TxSizeR16x4
	TxSizeR8x16  = dsp.TxSizeR8x16
	TxSizeR16x8  = dsp.TxSizeR16x8
	TxSizeR8x32  = dsp.TxSizeR8x32
	TxSizeR32x8  = dsp.TxSizeR32x8
	TxSizeR16x32 = dsp.TxSizeR16x32
	TxSizeR32x16 = dsp.TxSizeR32x16
)

var (
	dispatch8Once  sync.Once
	dispatch8      *dsp.Dispatch[uint8]
	dispatch10Once sync.Once
	dispatch10     *dsp.Dispatch[uint16]
	dispatch12Once sync.Once
	dispatch12     *dsp.Dispatch[uint16]
)

// Dispatch8 returns the process-wide kernel dispatch table for 8-bit
// content, building it on first use.
func Dispatch8() *dsp.Dispatch[uint8] {
	dispatch8Once.Do(func() { dispatch8 = dsp.NewDispatch[uint8](dsp.BitDepth8) })
	return dispatch8
}

// Dispatch10 returns the process-wide kernel dispatch table for 10-bit
// content, building it on first use.
func Dispatch10() *dsp.Dispatch[uint16] {
	dispatch10Once.Do(func() { dispatch10 = dsp.NewDispatch[uint16](dsp.BitDepth10) })
	return dispatch10
}

// Dispatch12 returns the process-wide kernel dispatch table for 12-bit
// content, building it on first use.
func Dispatch12() *dsp.Dispatch[uint16] {
	dispatch12Once.Do(func() { dispatch12 = dsp.NewDispatch[uint16](dsp.BitDepth12) })
	return dispatch12
}
