package dsp

// Vertical, horizontal, Paeth and smooth predictors. Grounded on the
// teacher's ve16/he16/tm16 (axis-copy and gradient-select shapes) in
// predict_lossy.go and lSelect's three-way nearest-neighbor tie-break in
// predict_lossless.go, generalized to AV1's arbitrary rectangle sizes
// and bit-exact against original_source/src/ipred.c's ipred_v_c/
// ipred_h_c/ipred_paeth_c/ipred_smooth_c/ipred_smooth_v_c/
// ipred_smooth_h_c.

// vertPred implements VERT_PRED: every row is a copy of the top edge.
func vertPred[P Pixel](dst []P, stride int, edge []P, tl, width, height, aux int) {
	top := edge[tl+1 : tl+1+width]
	for y := 0; y < height; y++ {
		copy(dst[y*stride:y*stride+width], top)
	}
}

// horPred implements HOR_PRED: every column is a copy of the left edge.
func horPred[P Pixel](dst []P, stride int, edge []P, tl, width, height, aux int) {
	for y := 0; y < height; y++ {
		v := edge[tl-1-y]
		row := dst[y*stride : y*stride+width]
		for x := range row {
			row[x] = v
		}
	}
}

// paethPred implements PAETH_PRED: each sample picks whichever of
// {top, left, topleft} is closest to top+left-topleft, with ties
// resolved left-then-top-then-topleft, per ipred_paeth_c.
func paethPred[P Pixel](dst []P, stride int, edge []P, tl, width, height, aux int) {
	tlv := int(edge[tl])
	top := edge[tl+1 : tl+1+width]
	for y := 0; y < height; y++ {
		left := int(edge[tl-1-y])
		row := dst[y*stride : y*stride+width]
		for x := 0; x < width; x++ {
			t := int(top[x])
			base := left + t - tlv
			dLeft := absInt(base - left)
			dTop := absInt(base - t)
			dTopleft := absInt(base - tlv)
			switch {
			case dLeft <= dTop && dLeft <= dTopleft:
				row[x] = P(left)
			case dTop <= dTopleft:
				row[x] = P(t)
			default:
				row[x] = P(tlv)
			}
		}
	}
}

// smoothWeights returns the n-entry weight sub-table for an edge of
// length n (i.e. dav1d_sm_weights[n:]).
func smoothWeights(n int) []uint8 {
	off := smWeightsOffset(n)
	return smWeights[off : off+n]
}

// smoothPred implements SMOOTH_PRED: a weighted blend of four
// reference samples (bottom-left corner, right-edge corner, and the
// opposing top/left samples) per ipred_smooth_c.
func smoothPred[P Pixel](dst []P, stride int, edge []P, tl, width, height, aux int) {
	top := edge[tl+1 : tl+1+width]
	bottomLeft := int(edge[tl-height])
	rightEdge := int(top[width-1])
	wWeights := smoothWeights(width)
	hWeights := smoothWeights(height)

	for y := 0; y < height; y++ {
		left := int(edge[tl-1-y])
		hw := int(hWeights[y])
		row := dst[y*stride : y*stride+width]
		for x := 0; x < width; x++ {
			vw := int(wWeights[x])
			s := hw*int(top[x]) + (256-hw)*bottomLeft +
				vw*left + (256-vw)*rightEdge
			row[x] = P((s + 256) >> 9)
		}
	}
}

// smoothVPred implements SMOOTH_V_PRED: the vertical half of the
// smooth blend (top edge vs. bottom-left corner), per
// ipred_smooth_v_c.
func smoothVPred[P Pixel](dst []P, stride int, edge []P, tl, width, height, aux int) {
	top := edge[tl+1 : tl+1+width]
	bottomLeft := int(edge[tl-height])
	hWeights := smoothWeights(height)

	for y := 0; y < height; y++ {
		hw := int(hWeights[y])
		row := dst[y*stride : y*stride+width]
		for x := 0; x < width; x++ {
			s := hw*int(top[x]) + (256-hw)*bottomLeft
			row[x] = P((s + 128) >> 8)
		}
	}
}

// smoothHPred implements SMOOTH_H_PRED: the horizontal half of the
// smooth blend (left edge vs. top-right corner), per
// ipred_smooth_h_c.
func smoothHPred[P Pixel](dst []P, stride int, edge []P, tl, width, height, aux int) {
	rightEdge := int(edge[tl+width])
	wWeights := smoothWeights(width)

	for y := 0; y < height; y++ {
		left := int(edge[tl-1-y])
		row := dst[y*stride : y*stride+width]
		for x := 0; x < width; x++ {
			vw := int(wWeights[x])
			s := vw*left + (256-vw)*rightEdge
			row[x] = P((s + 128) >> 8)
		}
	}
}
