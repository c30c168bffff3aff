// Package dsp implements the reference (scalar, architecture-neutral)
// AV1 intra-prediction kernels: the non-directional modes (DC family,
// vertical, horizontal, Paeth, smooth), the directional modes (Z1/Z2/Z3),
// recursive filter-intra prediction, chroma-from-luma derivation and
// prediction, and palette expansion.
//
// Every kernel is pure and stateless: it reads caller-supplied neighbor
// samples and writes a caller-owned destination rectangle, with no heap
// allocation and no retained state between calls. Kernels are bound to a
// mode enumerator through a [Dispatch] record built once per bit depth by
// [NewDispatch] and treated as immutable thereafter — the same
// "construct once, publish, read-only forever" discipline this codebase's
// original dsp.Init() used for its own predictor tables, generalized from
// package globals to an owned value since the kernel set is now generic
// over the sample type.
package dsp

// Pixel is the sample type a [Dispatch] is instantiated over: uint8 for
// 8-bit content, uint16 for 10/12-bit content.
type Pixel interface{ ~uint8 | ~uint16 }

// BitDepth selects the sample range and the handful of magic constants
// (DC_128 value, non-square DC correction multiplier) that vary with it.
type BitDepth int

const (
	BitDepth8  BitDepth = 8
	BitDepth10 BitDepth = 10
	BitDepth12 BitDepth = 12
)

// maxValue returns 2^bd - 1, the clip ceiling for this bit depth.
func (bd BitDepth) maxValue() int { return (1 << uint(bd)) - 1 }

// Intra prediction mode enumeration. Bit-exact with the AV1 specification
// and dav1d's Dav1dIntraPredDSPContext indexing.
const (
	ModeDC = iota
	ModeVert
	ModeHor
	ModeLeftDC
	ModeTopDC
	ModeDC128
	ModeZ1
	ModeZ2
	ModeZ3
	ModeSmooth
	ModeSmoothV
	ModeSmoothH
	ModePaeth
	ModeFilter
	numIntraPredModes
)

// Chroma subsampling layout, matching DAV1D_PIXEL_LAYOUT_{I420,I422,I444}
// minus one (so the enum is directly usable as an array index).
const (
	LayoutI420 = iota
	LayoutI422
	LayoutI444
	numLayouts
)

// Transform-size tags used to index the CFL AC dispatch table. Square
// tags cover square blocks; R-prefixed tags cover non-square blocks. Only
// the sizes CFL actually supports (4..32 per side) are represented.
const (
	TxSize4x4 = iota
	TxSize8x8
	TxSize16x16
	TxSize32x32
	TxSizeR4x8
	TxSizeR8x4
	TxSizeR4x16
	TxSizeR16x4
	TxSizeR8x16
	TxSizeR16x8
	TxSizeR8x32
	TxSizeR32x8
	TxSizeR16x32
	TxSizeR32x16
	numTxSizes
)

// PredFunc is the signature every intra prediction kernel shares. dst is
// a slice into the caller-owned destination rectangle; stride is a
// sample count. edge is the caller-owned neighbor buffer and tl is the
// index within edge of the topleft corner sample: edge[tl] is the
// corner, edge[tl+1:tl+1+width] the top row, edge[tl-1], edge[tl-2], ...
// the left column going down — the same layout dav1d addresses via
// negative pointer offsets from a topleft pointer, expressed as a
// non-negative buffer index since Go slices disallow negative indexing.
// aux carries the packed (is_sm<<9 | angle) for Z1/Z2/Z3 and the filter
// bank index for FILTER; other kernels ignore it.
type PredFunc[P Pixel] func(dst []P, stride int, edge []P, tl, width, height, aux int)

// CflAcFunc derives the chroma-from-luma AC signal for one (layout,
// tx-size) specialization from a luma source plane.
type CflAcFunc[P Pixel] func(ac []int16, ypx []P, stride, wPad, hPad int)

// CflPred1Func applies a single alpha to one chroma plane on top of its
// existing DC baseline (dst[0] on entry).
type CflPred1Func[P Pixel] func(dst []P, stride int, ac []int16, alpha int8, height int)

// CflPredFunc applies independent alphas to a U/V plane pair in one pass.
type CflPredFunc[P Pixel] func(dstU, dstV []P, stride int, ac []int16, alphas [2]int8, height int)

// PalPredFunc expands a per-pixel palette index array into samples.
type PalPredFunc[P Pixel] func(dst []P, stride int, pal []uint16, idx []uint8, width, height int)

// Dispatch is the published table of kernel entries for one bit depth.
// Built once by [NewDispatch] and safe for concurrent unsynchronized
// reads thereafter; nothing in this package mutates a Dispatch value
// after it is returned.
type Dispatch[P Pixel] struct {
	BitDepth  BitDepth
	IntraPred [numIntraPredModes]PredFunc[P]
	CflAc     [numLayouts][numTxSizes]CflAcFunc[P]
	CflPred1  [4]CflPred1Func[P]
	CflPred   [4]CflPredFunc[P]
	PalPred   PalPredFunc[P]
}

// NewDispatch builds and publishes a fully-populated Dispatch for bd. It
// installs every reference kernel, including the CFL AC specializations
// indexed by (layout, tx-size); no architecture-specific overrides are
// applied, so every entry is a reference scalar kernel. Idempotent and
// side-effect free beyond constructing the returned value.
func NewDispatch[P Pixel](bd BitDepth) *Dispatch[P] {
	d := &Dispatch[P]{BitDepth: bd}

	d.IntraPred[ModeDC] = dcPred[P](bd)
	d.IntraPred[ModeDC128] = dc128Pred[P](bd)
	d.IntraPred[ModeTopDC] = topDCPred[P]
	d.IntraPred[ModeLeftDC] = leftDCPred[P]
	d.IntraPred[ModeHor] = horPred[P]
	d.IntraPred[ModeVert] = vertPred[P]
	d.IntraPred[ModePaeth] = paethPred[P]
	d.IntraPred[ModeSmooth] = smoothPred[P]
	d.IntraPred[ModeSmoothV] = smoothVPred[P]
	d.IntraPred[ModeSmoothH] = smoothHPred[P]
	d.IntraPred[ModeZ1] = z1Pred[P](bd)
	d.IntraPred[ModeZ2] = z2Pred[P](bd)
	d.IntraPred[ModeZ3] = z3Pred[P](bd)
	d.IntraPred[ModeFilter] = filterPred[P](bd)

	initCflAcTable(&d.CflAc)

	d.CflPred1[0] = cflPred1N[P](bd, 4)
	d.CflPred1[1] = cflPred1N[P](bd, 8)
	d.CflPred1[2] = cflPred1N[P](bd, 16)
	d.CflPred1[3] = cflPred1N[P](bd, 32)

	d.CflPred[0] = cflPredN[P](bd, 4)
	d.CflPred[1] = cflPredN[P](bd, 8)
	d.CflPred[2] = cflPredN[P](bd, 16)
	d.CflPred[3] = cflPredN[P](bd, 32)

	d.PalPred = palPred[P]

	return d
}
