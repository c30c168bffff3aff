package dsp

// Chroma-from-luma: AC signal derivation from the co-located luma plane
// and the two CFL prediction kernels (single-plane and dual U/V) that
// apply it on top of an existing DC baseline. The reference collapses
// dav1d's 31 cfl_ac_fn macro instantiations (one per (layout, tx-size)
// pair) into one generic kernel parameterized the same way cfl_ac_c is,
// closed over per-combination (cw, ch, ss_hor, ss_ver) and
// wired into the dispatch table exactly per
// original_source/src/ipred.c's dav1d_intra_pred_dsp_init.

// cflAcCore derives the zero-mean AC signal for a cw x ch chroma block
// from its co-located lw x ch luma source, padding the right/bottom
// wPad/hPad macroblocks worth of columns/rows by edge replication
// before computing and subtracting the block mean. Bit-exact against
// ipred.c's cfl_ac_c; indices are tracked as row/offset counters into
// the caller's flat ac/ypx buffers rather than re-pointed sub-slices,
// since the reference's backward memcpy (copying row y-1 into row y)
// has no non-negative-index Go slice equivalent.
func cflAcCore[P Pixel](ac []int16, ypx []P, stride, wPad, hPad, width, height, ssHor, ssVer, log2sz int) {
	assertf(wPad >= 0 && wPad*4 < width, "cflAcCore: w_pad %d out of range for width %d", wPad, width)
	assertf(hPad >= 0 && hPad*4 < height, "cflAcCore: h_pad %d out of range for height %d", hPad, height)

	notSsVer, notSsHor := 0, 0
	if ssVer == 0 {
		notSsVer = 1
	}
	if ssHor == 0 {
		notSsHor = 1
	}
	shift := uint(1 + notSsVer + notSsHor)

	yOff, row, y := 0, 0, 0
	for ; y < height-4*hPad; y++ {
		x := 0
		for ; x < width-4*wPad; x++ {
			acSum := int(ypx[yOff+(x<<uint(ssHor))])
			if ssHor != 0 {
				acSum += int(ypx[yOff+x*2+1])
			}
			if ssVer != 0 {
				acSum += int(ypx[yOff+(x<<uint(ssHor))+stride])
				if ssHor != 0 {
					acSum += int(ypx[yOff+x*2+1+stride])
				}
			}
			ac[row+x] = int16(acSum << shift)
		}
		for ; x < width; x++ {
			ac[row+x] = ac[row+x-1]
		}
		row += width
		yOff += stride << uint(ssVer)
	}
	for ; y < height; y++ {
		copy(ac[row:row+width], ac[row-width:row])
		row += width
	}

	sum := (1 << uint(log2sz)) >> 1
	for i := 0; i < width*height; i++ {
		sum += int(ac[i])
	}
	sum >>= uint(log2sz)

	for i := 0; i < width*height; i++ {
		ac[i] -= int16(sum)
	}
}

// cflAcKernel closes cflAcCore over one (layout, tx-size) specialization's
// fixed chroma dimensions, mirroring one cfl_ac_fn instantiation (whose
// lw/lh macro parameters likewise only feed the generated function's
// name, never its body). log2sz is derived from cw*ch (always a power
// of two) rather than threaded through the wiring table by hand.
func cflAcKernel[P Pixel](cw, ch, ssHor, ssVer int) CflAcFunc[P] {
	log2sz := ctz(cw * ch)
	return func(ac []int16, ypx []P, stride, wPad, hPad int) {
		cflAcCore(ac, ypx, stride, wPad, hPad, cw, ch, ssHor, ssVer, log2sz)
	}
}

// txSizeDims gives the chroma (width, height) for each tx-size tag, the
// Go equivalent of dav1d's tx size lookup tables.
var txSizeDims = [numTxSizes][2]int{
	TxSize4x4:    {4, 4},
	TxSize8x8:    {8, 8},
	TxSize16x16:  {16, 16},
	TxSize32x32:  {32, 32},
	TxSizeR4x8:   {4, 8},
	TxSizeR8x4:   {8, 4},
	TxSizeR4x16:  {4, 16},
	TxSizeR16x4:  {16, 4},
	TxSizeR8x16:  {8, 16},
	TxSizeR16x8:  {16, 8},
	TxSizeR8x32:  {8, 32},
	TxSizeR32x8:  {32, 8},
	TxSizeR16x32: {16, 32},
	TxSizeR32x16: {32, 16},
}

// layoutSubsampling gives (ss_hor, ss_ver) per chroma layout.
var layoutSubsampling = [numLayouts][2]int{
	LayoutI420: {1, 1},
	LayoutI422: {1, 0},
	LayoutI444: {0, 0},
}

// cflWiring is the set of (layout, tx-size) pairs dav1d_intra_pred_dsp_init
// actually populates — not every tx-size is reachable at every chroma
// subsampling, since CFL only applies to luma blocks up to 32x32.
var cflWiring = [numLayouts][]int{
	LayoutI420: {
		TxSize4x4, TxSizeR4x8, TxSizeR4x16, TxSizeR8x4,
		TxSize8x8, TxSizeR8x16, TxSizeR16x4, TxSizeR16x8,
		TxSize16x16,
	},
	LayoutI422: {
		TxSize4x4, TxSizeR4x8, TxSizeR8x4, TxSize8x8,
		TxSizeR8x16, TxSizeR16x8, TxSize16x16, TxSizeR16x32,
	},
	LayoutI444: {
		TxSize4x4, TxSizeR4x8, TxSizeR4x16, TxSizeR8x4,
		TxSize8x8, TxSizeR8x16, TxSizeR8x32, TxSizeR16x4,
		TxSizeR16x8, TxSize16x16, TxSizeR16x32, TxSizeR32x8,
		TxSizeR32x16, TxSize32x32,
	},
}

// initCflAcTable populates every (layout, tx-size) combination dav1d
// wires in dav1d_intra_pred_dsp_init, building each specialization from
// its chroma dimensions and the layout's subsampling.
func initCflAcTable[P Pixel](table *[numLayouts][numTxSizes]CflAcFunc[P]) {
	for layout := 0; layout < numLayouts; layout++ {
		ssHor, ssVer := layoutSubsampling[layout][0], layoutSubsampling[layout][1]
		for _, tx := range cflWiring[layout] {
			cw, ch := txSizeDims[tx][0], txSizeDims[tx][1]
			table[layout][tx] = cflAcKernel[P](cw, ch, ssHor, ssVer)
		}
	}
}

// cflPred1N returns the single-plane CFL prediction kernel for a fixed
// width, applying alpha on top of the DC baseline already written to
// dst[0]. Bit-exact against ipred.c's cfl_pred_1_c.
func cflPred1N[P Pixel](bd BitDepth, width int) CflPred1Func[P] {
	maxVal := bd.maxValue()
	return func(dst []P, stride int, ac []int16, alpha int8, height int) {
		dc := int(dst[0])
		for y := 0; y < height; y++ {
			row := dst[y*stride : y*stride+width]
			acRow := ac[y*width : y*width+width]
			for x := 0; x < width; x++ {
				diff := int(alpha) * int(acRow[x])
				row[x] = clipPixel[P](dc+applySign((absInt(diff)+32)>>6, diff), maxVal)
			}
		}
	}
}

// cflPredN returns the dual U/V-plane CFL prediction kernel for a fixed
// width, applying independent alphas on top of each plane's own DC
// baseline in one pass. Bit-exact against ipred.c's cfl_pred_c.
func cflPredN[P Pixel](bd BitDepth, width int) CflPredFunc[P] {
	maxVal := bd.maxValue()
	return func(dstU, dstV []P, stride int, ac []int16, alphas [2]int8, height int) {
		dcU, dcV := int(dstU[0]), int(dstV[0])
		for y := 0; y < height; y++ {
			rowU := dstU[y*stride : y*stride+width]
			rowV := dstV[y*stride : y*stride+width]
			acRow := ac[y*width : y*width+width]
			for x := 0; x < width; x++ {
				d1 := int(alphas[0]) * int(acRow[x])
				rowU[x] = clipPixel[P](dcU+applySign((absInt(d1)+32)>>6, d1), maxVal)
				d2 := int(alphas[1]) * int(acRow[x])
				rowV[x] = clipPixel[P](dcV+applySign((absInt(d2)+32)>>6, d2), maxVal)
			}
		}
	}
}
