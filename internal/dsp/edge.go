package dsp

// Edge preparation for the directional (Z1/Z2/Z3) kernels: conditional
// 2x upsampling or 5-tap smoothing of the neighbor row/column before
// angular sampling. Grounded bit-exactly on original_source/src/ipred.c's
// get_upsample/get_filter_strength/upsample_edge/filter_edge.
//
// Both routines read from a caller-owned buffer through a base index
// rather than a pre-sliced window, so that the in[from..to) range dav1d
// addresses via negative pointer offsets from a topleft pointer can be
// expressed as non-negative buffer indices (src[base+k] for k in
// [from,to)) instead of disallowed negative slice indices.

// getUpsample reports whether the directional edge should be 2x
// upsampled before sampling. d is the absolute angular offset in degrees
// from the nearest cardinal axis; isSm is the smooth-context flag packed
// into the high bit of the mode's angle argument.
func getUpsample(blkWH int, d int, isSm bool) bool {
	if d >= 40 {
		return false
	}
	if isSm {
		return blkWH <= 8
	}
	return blkWH <= 16
}

// getFilterStrength returns a 5-tap smoothing strength in {0,1,2,3}; 0
// means "do not filter". Reproduced bit-exactly from the threshold table
// in ipred.c's get_filter_strength.
func getFilterStrength(blkWH int, d int, isSm bool) int {
	strength := 0
	if !isSm {
		switch {
		case blkWH <= 8:
			if d >= 56 {
				strength = 1
			}
		case blkWH <= 12:
			if d >= 40 {
				strength = 1
			}
		case blkWH <= 16:
			if d >= 40 {
				strength = 1
			}
		case blkWH <= 24:
			if d >= 8 {
				strength = 1
			}
			if d >= 16 {
				strength = 2
			}
			if d >= 32 {
				strength = 3
			}
		case blkWH <= 32:
			if d >= 1 {
				strength = 1
			}
			if d >= 4 {
				strength = 2
			}
			if d >= 32 {
				strength = 3
			}
		default:
			if d >= 1 {
				strength = 3
			}
		}
		return strength
	}
	switch {
	case blkWH <= 8:
		if d >= 40 {
			strength = 1
		}
		if d >= 64 {
			strength = 2
		}
	case blkWH <= 16:
		if d >= 20 {
			strength = 1
		}
		if d >= 48 {
			strength = 2
		}
	case blkWH <= 24:
		if d >= 4 {
			strength = 3
		}
	default:
		if d >= 1 {
			strength = 3
		}
	}
	return strength
}

// iclip clamps v to [from, to-1], the edge-replication boundary policy
// every edge-prep routine uses when indexing past the caller's real
// sample range.
func iclip(v, from, to int) int {
	if v < from {
		return from
	}
	if v > to-1 {
		return to - 1
	}
	return v
}

// filterEdgeKernel holds the three fixed 5-tap smoothing kernels indexed
// by strength-1.
var filterEdgeKernel = [3][5]int{
	{0, 4, 8, 4, 0},
	{0, 5, 6, 5, 0},
	{2, 4, 4, 4, 2},
}

// filterEdge writes sz smoothed samples into out, reading src[base+i]
// for i clamped to [from, to). Weights sum to 16, so no final clip of
// the (already in-range) input sample type is required.
func filterEdge[P Pixel](out []P, sz int, src []P, base, from, to, strength int) {
	assertf(strength > 0, "filterEdge: strength must be > 0, got %d", strength)
	kernel := filterEdgeKernel[strength-1]
	for i := 0; i < sz; i++ {
		s := 0
		for j := 0; j < 5; j++ {
			s += int(src[base+iclip(i-2+j, from, to)]) * kernel[j]
		}
		out[i] = P((s + 8) >> 4)
	}
}

// upsampleEdgeKernel is the 4-tap interpolation {-1, 9, 9, -1} used to
// interleave an upsampled sample between each pair of originals.
var upsampleEdgeKernel = [4]int{-1, 9, 9, -1}

// upsampleEdge writes 2*hsz-1 samples into out: even indices are the
// clamp-read originals, odd indices are the 4-tap interpolation rounded
// and clipped to [0, maxVal]. Reads src[base+i] for i clamped to
// [from, to).
func upsampleEdge[P Pixel](out []P, hsz int, src []P, base, from, to, maxVal int) {
	i := 0
	for ; i < hsz-1; i++ {
		out[i*2] = src[base+iclip(i, from, to)]

		s := 0
		for j := 0; j < 4; j++ {
			s += int(src[base+iclip(i+j-1, from, to)]) * upsampleEdgeKernel[j]
		}
		out[i*2+1] = clipPixel[P]((s+8)>>4, maxVal)
	}
	out[i*2] = src[base+iclip(i, from, to)]
}
