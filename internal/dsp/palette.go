package dsp

// Palette-mode expansion: every destination sample is a lookup into a
// per-block palette table through a parallel per-pixel index plane.
// Bit-exact against original_source/src/ipred.c's pal_pred_c.
func palPred[P Pixel](dst []P, stride int, pal []uint16, idx []uint8, width, height int) {
	for y := 0; y < height; y++ {
		row := dst[y*stride : y*stride+width]
		idxRow := idx[y*width : y*width+width]
		for x := 0; x < width; x++ {
			row[x] = P(pal[idxRow[x]])
		}
	}
}
