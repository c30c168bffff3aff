package dsp

// Directional (angular) predictors Z1/Z2/Z3. Grounded stylistically on
// filter.go's base-offset buffer addressing and destination-readback
// discipline, and bit-exact against original_source/src/ipred.c's
// ipred_z1_c/ipred_z2_c/ipred_z3_c. aux packs the angle the same way
// dav1d does: bit 9 is the is_sm flag, bits 0-8 are the prediction
// angle in degrees (in (0,90) for Z1, (90,180) for Z2, (180,270) for Z3).
//
// dav1d addresses these kernels through a topleft pointer and signed
// offsets from it; this package instead carries a flat edge buffer plus
// a non-negative tl index (edge[tl+k] stands in for topleft[k] at any
// signed k), and local scratch buffers use the same base-index
// convention rather than re-pointing into their own middle.

func unpackAngle(aux int) (angle int, isSm bool) {
	return aux & 511, aux>>9 != 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// z1Pred returns the kernel for the Z1 directional modes (angle in
// (0,90), top edge only).
func z1Pred[P Pixel](bd BitDepth) PredFunc[P] {
	maxVal := bd.maxValue()
	return func(dst []P, stride int, edge []P, tl, width, height, aux int) {
		angle, isSm := unpackAngle(aux)
		dx := int(drIntraDerivative[angle])

		topOut := make([]P, (64+64)*2)
		var top []P
		var topBase int
		var maxBaseX int

		upsampleAbove := getUpsample(width+height, 90-angle, isSm)
		if upsampleAbove {
			upsampleEdge(topOut, width+height, edge, tl+1, -1, width+minInt(width, height), maxVal)
			top, topBase = topOut, 0
			maxBaseX = 2*(width+height) - 2
		} else if strength := getFilterStrength(width+height, 90-angle, isSm); strength != 0 {
			filterEdge(topOut, width+height, edge, tl+1, -1, width+minInt(width, height), strength)
			top, topBase = topOut, 0
			maxBaseX = width + height - 1
		} else {
			top, topBase = edge, tl+1
			maxBaseX = width + minInt(width, height) - 1
		}

		upAboveShift := boolInt(upsampleAbove)
		fracBits := uint(6 - upAboveShift)
		baseInc := 1 << upAboveShift

		xpos := dx
		for y := 0; y < height; y++ {
			base := xpos >> fracBits
			frac := ((xpos << uint(upAboveShift)) & 0x3F) >> 1
			row := dst[y*stride : y*stride+width]

			b := base
			for x := 0; x < width; x++ {
				if b < maxBaseX {
					v := int(top[topBase+b])*(32-frac) + int(top[topBase+b+1])*frac
					row[x] = clipPixel[P]((v+16)>>5, maxVal)
				} else {
					fill := top[topBase+maxBaseX]
					for ; x < width; x++ {
						row[x] = fill
					}
					break
				}
				b += baseInc
			}
			xpos += dx
		}
	}
}

// z2Pred returns the kernel for the Z2 directional modes (angle in
// (90,180), both edges used).
func z2Pred[P Pixel](bd BitDepth) PredFunc[P] {
	maxVal := bd.maxValue()
	return func(dst []P, stride int, edge []P, tl, width, height, aux int) {
		angle, isSm := unpackAngle(aux)
		dy := int(drIntraDerivative[angle-90])
		dx := int(drIntraDerivative[180-angle])

		upsampleLeft := getUpsample(width+height, 180-angle, isSm)
		upsampleAbove := getUpsample(width+height, angle-90, isSm)

		buf := make([]P, 64*4+2)
		btl := height * 2

		if upsampleAbove {
			upsampleEdge(buf[btl:], width+1, edge, tl, 0, width+1, maxVal)
		} else if strength := getFilterStrength(width+height, angle-90, isSm); strength != 0 {
			filterEdge(buf[btl+1:], width, edge, tl+1, -1, width, strength)
		} else {
			copy(buf[btl+1:btl+1+width], edge[tl+1:tl+1+width])
		}

		if upsampleLeft {
			upsampleEdge(buf, height+1, edge, tl-height, 0, height+1, maxVal)
		} else if strength := getFilterStrength(width+height, 180-angle, isSm); strength != 0 {
			filterEdge(buf[btl-height:], height, edge, tl-height, 0, height+1, strength)
		} else {
			copy(buf[btl-height:btl], edge[tl-height:tl])
		}
		buf[btl] = edge[tl]

		upAboveShift := boolInt(upsampleAbove)
		upLeftShift := boolInt(upsampleLeft)
		minBaseX := -(1 << upAboveShift)
		fracBitsY := uint(6 - upLeftShift)
		fracBitsX := uint(6 - upAboveShift)
		baseIncX := 1 << upAboveShift
		topShift := 1 << upAboveShift
		leftShift := 1 << upLeftShift

		xpos := -dx
		for y := 0; y < height; y++ {
			baseX := xpos >> fracBitsX
			fracX := ((xpos * (1 << upAboveShift)) & 0x3F) >> 1
			row := dst[y*stride : y*stride+width]

			ypos := (y << 6) - dy
			bx := baseX
			for x := 0; x < width; x++ {
				var v int
				if bx >= minBaseX {
					v = int(buf[btl+topShift+bx])*(32-fracX) + int(buf[btl+topShift+bx+1])*fracX
				} else {
					baseY := ypos >> fracBitsY
					fracY := ((ypos * (1 << upLeftShift)) & 0x3F) >> 1
					v = int(buf[btl-leftShift-baseY])*(32-fracY) + int(buf[btl-leftShift-baseY-1])*fracY
				}
				row[x] = clipPixel[P]((v+16)>>5, maxVal)
				bx += baseIncX
				ypos -= dy
			}
			xpos -= dx
		}
	}
}

// z3Pred returns the kernel for the Z3 directional modes (angle in
// (180,270), left edge only).
func z3Pred[P Pixel](bd BitDepth) PredFunc[P] {
	maxVal := bd.maxValue()
	return func(dst []P, stride int, edge []P, tl, width, height, aux int) {
		angle, isSm := unpackAngle(aux)
		dy := int(drIntraDerivative[270-angle])

		leftOut := make([]P, (64+64)*2)
		var src []P
		var srcBase int
		var maxBaseY int

		upsampleLeft := getUpsample(width+height, angle-180, isSm)
		if upsampleLeft {
			from := maxInt(width-height, 0)
			upsampleEdge(leftOut, width+height, edge, tl-(width+height), from, width+height+1, maxVal)
			maxBaseY = 2*(width+height) - 2
			src, srcBase = leftOut, maxBaseY
		} else if strength := getFilterStrength(width+height, angle-180, isSm); strength != 0 {
			from := maxInt(width-height, 0)
			filterEdge(leftOut, width+height, edge, tl-(width+height), from, width+height+1, strength)
			maxBaseY = width + height - 1
			src, srcBase = leftOut, maxBaseY
		} else {
			maxBaseY = height + minInt(width, height) - 1
			src, srcBase = edge, tl-1
		}

		upLeftShift := boolInt(upsampleLeft)
		fracBits := uint(6 - upLeftShift)
		baseInc := 1 << upLeftShift

		ypos := dy
		for x := 0; x < width; x++ {
			base := ypos >> fracBits
			frac := ((ypos << uint(upLeftShift)) & 0x3F) >> 1

			b := base
			y := 0
			for ; y < height; y++ {
				if b < maxBaseY {
					v := int(src[srcBase-b])*(32-frac) + int(src[srcBase-b-1])*frac
					dst[y*stride+x] = clipPixel[P]((v+16)>>5, maxVal)
				} else {
					fill := src[srcBase-maxBaseY]
					for ; y < height; y++ {
						dst[y*stride+x] = fill
					}
					break
				}
				b += baseInc
			}
			ypos += dy
		}
	}
}
