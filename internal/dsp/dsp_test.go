package dsp

import "testing"

var testSizes = [][2]int{{4, 4}, {4, 8}, {8, 4}, {8, 8}, {16, 16}, {8, 16}, {16, 8}, {32, 32}}

// nonDirectionalModes are the modes whose aux argument is unused, so a
// single dispatch sweep exercises every (mode, size) combination without
// needing a valid angle.
var nonDirectionalModes = []int{
	ModeDC, ModeDC128, ModeTopDC, ModeLeftDC,
	ModeVert, ModeHor, ModePaeth, ModeSmooth, ModeSmoothV, ModeSmoothH,
}

func TestDispatchNonDirectionalStaysInRangeAndInBounds(t *testing.T) {
	d := NewDispatch[uint8](BitDepth8)
	for _, sz := range testSizes {
		width, height := sz[0], sz[1]
		top := ramp(width, 10)
		left := ramp(height, 20)
		edge, tl := newEdge(15, top, left)
		for _, mode := range nonDirectionalModes {
			dst := make([]uint8, width*height)
			d.IntraPred[mode](dst, width, edge, tl, width, height, 0)
			for i, v := range dst {
				if v > 255 {
					t.Fatalf("mode %d size %dx%d: dst[%d]=%d out of range", mode, width, height, i, v)
				}
			}
		}
	}
}

func TestDispatchDirectionalStaysInRangeAndInBounds(t *testing.T) {
	d := NewDispatch[uint8](BitDepth8)
	cases := []struct {
		mode  int
		angle int
	}{
		{ModeZ1, 45}, {ModeZ1, 3}, {ModeZ1, 87},
		{ModeZ2, 135}, {ModeZ2, 93}, {ModeZ2, 177},
		{ModeZ3, 225}, {ModeZ3, 183}, {ModeZ3, 267},
	}
	for _, sz := range testSizes {
		width, height := sz[0], sz[1]
		top := ramp(width, 10)
		left := ramp(height, 20)
		edge, tl := newEdge(15, top, left)
		for _, c := range cases {
			dst := make([]uint8, width*height)
			d.IntraPred[c.mode](dst, width, edge, tl, width, height, c.angle)
			for i, v := range dst {
				if v > 255 {
					t.Fatalf("mode %d angle %d size %dx%d: dst[%d]=%d out of range", c.mode, c.angle, width, height, i, v)
				}
			}
		}
	}
}

func TestDispatchFilterDoesNotExceedStride(t *testing.T) {
	d := NewDispatch[uint8](BitDepth8)
	for _, sz := range [][2]int{{4, 4}, {8, 8}, {16, 16}, {32, 32}} {
		width, height := sz[0], sz[1]
		top := ramp(width, 10)
		left := ramp(height, 20)
		edge, tl := newEdge(15, top, left)
		stride := width + 4 // pad so overrun into neighbor rows is detectable
		dst := make([]uint8, stride*height)
		d.IntraPred[ModeFilter](dst, stride, edge, tl, width, height, 0)
		for y := 0; y < height; y++ {
			for x := width; x < stride; x++ {
				if dst[y*stride+x] != 0 {
					t.Fatalf("filter pred wrote past width at row %d col %d", y, x)
				}
			}
		}
	}
}

func TestDispatchDoesNotMutateEdge(t *testing.T) {
	d := NewDispatch[uint8](BitDepth8)
	width, height := 8, 8
	top := ramp(width, 10)
	left := ramp(height, 20)
	for _, mode := range nonDirectionalModes {
		edge, tl := newEdge(15, top, left)
		before := append([]uint8(nil), edge...)
		dst := make([]uint8, width*height)
		d.IntraPred[mode](dst, width, edge, tl, width, height, 0)
		for i := range edge {
			if edge[i] != before[i] {
				t.Fatalf("mode %d mutated edge[%d]: %d -> %d", mode, i, before[i], edge[i])
			}
		}
	}
}

func TestDispatchBitDepth10And12Range(t *testing.T) {
	for _, bd := range []BitDepth{BitDepth10, BitDepth12} {
		d := NewDispatch[uint16](bd)
		width, height := 8, 8
		top := ramp(width, 100)
		left := ramp(height, 200)
		e8, tl := newEdge(150, top, left)
		edge := edge16(e8)
		maxVal := uint16(bd.maxValue())
		for _, mode := range nonDirectionalModes {
			dst := make([]uint16, width*height)
			d.IntraPred[mode](dst, width, edge, tl, width, height, 0)
			for i, v := range dst {
				if v > maxVal {
					t.Fatalf("bd %d mode %d: dst[%d]=%d exceeds max %d", bd, mode, i, v, maxVal)
				}
			}
		}
	}
}

func FuzzDispatchNonDirectional(f *testing.F) {
	f.Add(uint8(12), 3, 3)
	f.Fuzz(func(t *testing.T, seed uint8, wIdx, hIdx int) {
		sizes := []int{4, 8, 16, 32}
		width := sizes[(wIdx%len(sizes)+len(sizes))%len(sizes)]
		height := sizes[(hIdx%len(sizes)+len(sizes))%len(sizes)]

		top := make([]int, width)
		left := make([]int, height)
		for i := range top {
			top[i] = int(seed) + i
		}
		for i := range left {
			left[i] = int(seed) + i*2
		}
		edge, tl := newEdge(int(seed), top, left)

		d := NewDispatch[uint8](BitDepth8)
		for _, mode := range nonDirectionalModes {
			dst := make([]uint8, width*height)
			d.IntraPred[mode](dst, width, edge, tl, width, height, 0)
		}
	})
}
