package dsp

import "testing"

// flatEdge builds an edge buffer where every sample (corner, top, and
// left) holds the same value, with enough reach for the directional
// kernels' edge-preparation reads.
func flatEdge(val uint8, width, height int) (edge []uint8, tl int) {
	reach := 4 * (width + height)
	tl = reach
	edge = make([]uint8, tl+1+reach)
	for i := range edge {
		edge[i] = val
	}
	return edge, tl
}

func TestZ1PredFlatEdge(t *testing.T) {
	edge, tl := flatEdge(42, 8, 8)
	dst := make([]uint8, 64)
	z1Pred[uint8](BitDepth8)(dst, 8, edge, tl, 8, 8, 50)
	if !allEqual(dst, 8, 8, 8, 42) {
		t.Errorf("z1Pred(flat) = %v, want all 42", dst)
	}
}

func TestZ3PredFlatEdge(t *testing.T) {
	edge, tl := flatEdge(42, 8, 8)
	dst := make([]uint8, 64)
	z3Pred[uint8](BitDepth8)(dst, 8, edge, tl, 8, 8, 200)
	if !allEqual(dst, 8, 8, 8, 42) {
		t.Errorf("z3Pred(flat) = %v, want all 42", dst)
	}
}

func TestZ2PredFlatEdge(t *testing.T) {
	edge, tl := flatEdge(42, 8, 8)
	dst := make([]uint8, 64)
	z2Pred[uint8](BitDepth8)(dst, 8, edge, tl, 8, 8, 135)
	if !allEqual(dst, 8, 8, 8, 42) {
		t.Errorf("z2Pred(flat) = %v, want all 42", dst)
	}
}

func TestZ1PredStaysInRange(t *testing.T) {
	edge, tl := newEdge(128, ramp(8, 0), ramp(8, 16))
	dst := make([]uint8, 64)
	for _, angle := range []int{1, 30, 45, 60, 89} {
		z1Pred[uint8](BitDepth8)(dst, 8, edge, tl, 8, 8, angle)
		for _, v := range dst {
			if v > 255 {
				t.Fatalf("z1Pred angle=%d produced out-of-range %d", angle, v)
			}
		}
	}
}

func TestZ2PredStaysInRange(t *testing.T) {
	edge, tl := newEdge(128, ramp(8, 0), ramp(8, 16))
	dst := make([]uint8, 64)
	for _, angle := range []int{91, 100, 120, 150, 179} {
		z2Pred[uint8](BitDepth8)(dst, 8, edge, tl, 8, 8, angle)
		for _, v := range dst {
			if v > 255 {
				t.Fatalf("z2Pred angle=%d produced out-of-range %d", angle, v)
			}
		}
	}
}

func TestZ3PredStaysInRange(t *testing.T) {
	edge, tl := newEdge(128, ramp(8, 0), ramp(8, 16))
	dst := make([]uint8, 64)
	for _, angle := range []int{181, 200, 225, 250, 269} {
		z3Pred[uint8](BitDepth8)(dst, 8, edge, tl, 8, 8, angle)
		for _, v := range dst {
			if v > 255 {
				t.Fatalf("z3Pred angle=%d produced out-of-range %d", angle, v)
			}
		}
	}
}

// ramp returns a strictly increasing sample sequence starting at start,
// for exercising the directional kernels with non-degenerate edges.
func ramp(n, start int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i*4
	}
	return out
}
