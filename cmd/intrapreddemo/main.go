// Command intrapreddemo runs a single AV1 intra prediction kernel
// against a synthetic edge (a linear ramp) and prints the resulting
// block, for inspecting kernel behavior from the command line.
//
// Usage:
//
//	intrapreddemo -mode dc -width 8 -height 8
//	intrapreddemo -mode z2 -width 16 -height 16 -angle 100
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dav1dgo/intra"
)

var modeNames = map[string]int{
	"dc":       intra.ModeDC,
	"dc128":    intra.ModeDC128,
	"topdc":    intra.ModeTopDC,
	"leftdc":   intra.ModeLeftDC,
	"vert":     intra.ModeVert,
	"hor":      intra.ModeHor,
	"paeth":    intra.ModePaeth,
	"smooth":   intra.ModeSmooth,
	"smoothv":  intra.ModeSmoothV,
	"smoothh":  intra.ModeSmoothH,
	"z1":       intra.ModeZ1,
	"z2":       intra.ModeZ2,
	"z3":       intra.ModeZ3,
	"filter":   intra.ModeFilter,
}

func main() {
	mode := flag.String("mode", "dc", "prediction mode: dc, dc128, topdc, leftdc, vert, hor, paeth, smooth, smoothv, smoothh, z1, z2, z3, filter")
	width := flag.Int("width", 8, "block width")
	height := flag.Int("height", 8, "block height")
	angle := flag.Int("angle", 90, "directional angle in degrees (z1/z2/z3 only)")
	flag.Parse()

	if err := run(*mode, *width, *height, *angle); err != nil {
		fmt.Fprintf(os.Stderr, "intrapreddemo: %v\n", err)
		os.Exit(1)
	}
}

func run(mode string, width, height, angle int) error {
	modeID, ok := modeNames[mode]
	if !ok {
		return fmt.Errorf("unknown mode %q", mode)
	}

	// A synthetic topleft edge buffer: a linear ramp so the kernels'
	// behavior is visible in the printed block. Layout matches the
	// dispatch's edge/tl convention: edge[tl] is the corner, edge[tl+1:]
	// is the top row, edge[tl-1], edge[tl-2], ... is the left column.
	// Sized generously on both sides of tl: the directional modes read
	// up to width+height samples past the corner in either direction
	// when upsampling or filtering the edge.
	reach := 2 * (width + height)
	tl := reach
	edge := make([]uint8, tl+1+reach)
	for i := range edge {
		edge[i] = uint8(i * 4 % 256)
	}

	dst := make([]uint8, height*width)
	aux := angle & 511

	d := intra.Dispatch8()
	d.IntraPred[modeID](dst, width, edge, tl, width, height, aux)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fmt.Printf("%4d", dst[y*width+x])
		}
		fmt.Println()
	}
	return nil
}
