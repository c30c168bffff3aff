package dsp

// Recursive filter-intra prediction (FILTER_PRED). Walks the
// destination in 4x2 sub-patches, each predicted from a 7-tap dot
// product over its topleft/top-row/left-column neighbors. The first
// sub-patch row reads its "top" neighbors from the caller's edge
// buffer; every row-pair after that reads them back from the samples
// this kernel itself just wrote — the destination-readback discipline
// filter.go's loop-filter passes use for in-place edge state. Bit-exact
// against original_source/src/ipred.c's ipred_filter_c; up to 32x32
// only, per the reference.
func filterPred[P Pixel](bd BitDepth) PredFunc[P] {
	maxVal := bd.maxValue()
	return func(dst []P, stride int, edge []P, tl, width, height, aux int) {
		filtIdx := aux & 511
		assertf(filtIdx < 5, "filterPred: filter bank index %d out of range", filtIdx)
		filter := &filterIntraTaps[filtIdx]

		for y := 0; y < height; y += 2 {
			dstRow := y * stride

			// topSrc/topBase: where this row-pair's p1..p4 (and, for
			// x>0, p0) come from. Row-pair 0 reads the original top
			// edge; later row-pairs read back the row they just wrote.
			var topSrc []P
			var topBase int
			if y == 0 {
				topSrc, topBase = edge, tl+1
			} else {
				topSrc, topBase = dst, (y-1)*stride
			}

			for x := 0; x < width; x += 4 {
				var p0 int
				if x == 0 {
					p0 = int(edge[tl-y])
				} else {
					p0 = int(topSrc[topBase-1])
				}
				p1, p2, p3, p4 := int(topSrc[topBase]), int(topSrc[topBase+1]), int(topSrc[topBase+2]), int(topSrc[topBase+3])

				var p5, p6 int
				if x == 0 {
					p5 = int(edge[tl-y-1])
					p6 = int(edge[tl-y-2])
				} else {
					p5 = int(dst[dstRow+x-1])
					p6 = int(dst[dstRow+stride+x-1])
				}

				fi := 0
				for yy := 0; yy < 2; yy++ {
					for xx := 0; xx < 4; xx++ {
						t := &filter[fi]
						acc := int(t[0])*p0 + int(t[1])*p1 + int(t[2])*p2 + int(t[3])*p3 +
							int(t[4])*p4 + int(t[5])*p5 + int(t[6])*p6
						dst[dstRow+yy*stride+x+xx] = clipPixel[P]((acc+8)>>4, maxVal)
						fi++
					}
				}

				topBase += 4
			}
		}
	}
}
