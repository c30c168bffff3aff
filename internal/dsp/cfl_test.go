package dsp

import "testing"

// cflACReference is a brute-force re-derivation of cflAcCore used only
// to cross-check the fast path: average-pool the luma samples into the
// chroma grid (replicating the last real column/row across any padding)
// and subtract the block mean.
func cflACReference(ypx []uint8, stride, wPad, hPad, width, height, ssHor, ssVer int) []int16 {
	shift := 1
	if ssHor == 0 {
		shift++
	}
	if ssVer == 0 {
		shift++
	}
	ac := make([]int16, width*height)
	for y := 0; y < height-4*hPad; y++ {
		for x := 0; x < width-4*wPad; x++ {
			sum := int(ypx[(y<<uint(ssVer))*stride+(x<<uint(ssHor))])
			if ssHor != 0 {
				sum += int(ypx[(y<<uint(ssVer))*stride+x*2+1])
			}
			if ssVer != 0 {
				sum += int(ypx[(y<<uint(ssVer)+1)*stride+(x<<uint(ssHor))])
				if ssHor != 0 {
					sum += int(ypx[(y<<uint(ssVer)+1)*stride+x*2+1])
				}
			}
			ac[y*width+x] = int16(sum << uint(shift))
		}
		for x := width - 4*wPad; x < width; x++ {
			ac[y*width+x] = ac[y*width+x-1]
		}
	}
	for y := height - 4*hPad; y < height; y++ {
		copy(ac[y*width:y*width+width], ac[(y-1)*width:(y-1)*width+width])
	}
	log2sz := ctz(width * height)
	sum := (1 << uint(log2sz)) >> 1
	for _, v := range ac {
		sum += int(v)
	}
	sum >>= uint(log2sz)
	for i := range ac {
		ac[i] -= int16(sum)
	}
	return ac
}

func TestCflAcCoreMatchesReference(t *testing.T) {
	width, height := 8, 8
	ypx := make([]uint8, height*2*width*2)
	for i := range ypx {
		ypx[i] = uint8((i*7 + 3) % 251)
	}
	stride := width * 2
	for _, ss := range [][2]int{{1, 1}, {1, 0}, {0, 0}} {
		ssHor, ssVer := ss[0], ss[1]
		got := make([]int16, width*height)
		cflAcCore(got, ypx, stride, 0, 0, width, height, ssHor, ssVer, ctz(width*height))
		want := cflACReference(ypx, stride, 0, 0, width, height, ssHor, ssVer)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("ss=%v: cflAcCore[%d] = %d, want %d", ss, i, got[i], want[i])
			}
		}
	}
}

func TestCflAcCoreZeroMean(t *testing.T) {
	width, height := 8, 8
	ypx := make([]uint8, height*width)
	for i := range ypx {
		ypx[i] = uint8((i*13 + 5) % 251)
	}
	ac := make([]int16, width*height)
	cflAcCore(ac, ypx, width, 0, 0, width, height, 0, 0, ctz(width*height))
	// The block mean is rounded half-up before it is subtracted, so the AC
	// sum is zero only up to that rounding: it lies in [-n/2, n/2) for n
	// samples (for this input it is -32).
	sum := 0
	for _, v := range ac {
		sum += int(v)
	}
	half := width * height / 2
	if sum < -half || sum >= half {
		t.Errorf("cflAcCore AC sum = %d, want within [%d, %d)", sum, -half, half)
	}
}

func TestCflAcCoreFlatInputIsZero(t *testing.T) {
	width, height := 8, 8
	ypx := make([]uint8, height*width)
	for i := range ypx {
		ypx[i] = 99
	}
	ac := make([]int16, width*height)
	cflAcCore(ac, ypx, width, 0, 0, width, height, 0, 0, ctz(width*height))
	for i, v := range ac {
		if v != 0 {
			t.Fatalf("cflAcCore(flat)[%d] = %d, want 0", i, v)
		}
	}
}

func TestInitCflAcTableWiring(t *testing.T) {
	var table [numLayouts][numTxSizes]CflAcFunc[uint8]
	initCflAcTable(&table)
	for layout, txs := range cflWiring {
		for _, tx := range txs {
			if table[layout][tx] == nil {
				t.Errorf("layout %d tx %d: expected wired cflAc entry, got nil", layout, tx)
			}
		}
	}
	// I420 never wires 32x32 (luma cap); confirm the unwired slot stays nil.
	if table[LayoutI420][TxSize32x32] != nil {
		t.Errorf("I420/32x32 should be unwired")
	}
}

func TestCflPred1AlphaZeroIsDC(t *testing.T) {
	width, height := 4, 4
	dst := make([]uint8, height*width)
	for i := range dst {
		dst[i] = 100
	}
	ac := make([]int16, width*height)
	for i := range ac {
		ac[i] = int16((i - 8) * 3)
	}
	cflPred1N[uint8](BitDepth8, width)(dst, width, ac, 0, height)
	if !allEqual(dst, width, width, height, 100) {
		t.Errorf("cflPred1(alpha=0) = %v, want all 100 (DC unchanged)", dst)
	}
}

func TestCflPredMatchesTwoSinglePlaneCalls(t *testing.T) {
	width, height := 4, 4
	ac := make([]int16, width*height)
	for i := range ac {
		ac[i] = int16((i - 8) * 5)
	}

	dstU := make([]uint8, height*width)
	dstV := make([]uint8, height*width)
	for i := range dstU {
		dstU[i] = 50
		dstV[i] = 150
	}
	cflPredN[uint8](BitDepth8, width)(dstU, dstV, width, ac, [2]int8{7, -9}, height)

	wantU := make([]uint8, height*width)
	wantV := make([]uint8, height*width)
	for i := range wantU {
		wantU[i] = 50
		wantV[i] = 150
	}
	cflPred1N[uint8](BitDepth8, width)(wantU, width, ac, 7, height)
	cflPred1N[uint8](BitDepth8, width)(wantV, width, ac, -9, height)

	for i := range dstU {
		if dstU[i] != wantU[i] {
			t.Errorf("U[%d] = %d, want %d", i, dstU[i], wantU[i])
		}
		if dstV[i] != wantV[i] {
			t.Errorf("V[%d] = %d, want %d", i, dstV[i], wantV[i])
		}
	}
}
