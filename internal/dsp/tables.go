package dsp

// Fixed numeric tables reproduced from the AV1 specification. The
// retrieval pack's original_source/src/ipred.c references these
// (dav1d_dr_intra_derivative, dav1d_sm_weights, dav1d_filter_intra_taps)
// but defines them in dav1d's src/tables.c, which the pack does not
// include — see DESIGN.md for this grounding gap and how it was closed.

// drIntraDerivative maps an angle delta (0..89, in degrees from the
// nearest cardinal axis) to a Q6 per-row/per-column step. Entries that
// are never looked up (angle deltas that can't occur for a valid
// directional mode) are left zero, matching dav1d's sparse table.
var drIntraDerivative = [90]uint16{
	0, 0, 0, // 0, 1, 2
	1023, 0, 0, // 3, 4, 5
	547, 0, 0, // 6, 7, 8
	372, 0, 0, 0, 0, // 9, 10, 11, 12, 13
	273, 0, 0, // 14, 15, 16
	215, 0, 0, // 17, 18, 19
	178, 0, 0, // 20, 21, 22
	151, 0, 0, // 23, 24, 25
	132, 0, 0, // 26, 27, 28
	116, 0, 0, // 29, 30, 31
	102, 0, 0, 0, // 32, 33, 34, 35
	90, 0, 0, // 36, 37, 38
	80, 0, 0, // 39, 40, 41
	71, 0, 0, // 42, 43, 44
	64, 0, 0, // 45, 46, 47
	57, 0, 0, // 48, 49, 50
	51, 0, 0, // 51, 52, 53
	45, 0, 0, 0, // 54, 55, 56, 57
	40, 0, 0, // 58, 59, 60
	35, 0, 0, // 61, 62, 63
	31, 0, 0, // 64, 65, 66
	27, 0, 0, // 67, 68, 69
	23, 0, 0, // 70, 71, 72
	19, 0, 0, // 73, 74, 75
	15, 0, 0, 0, 0, // 76, 77, 78, 79, 80
	11, 0, 0, // 81, 82, 83
	7, 0, 0, // 84, 85, 86
	3, 0, 0, // 87, 88, 89
}

// smWeights holds the dav1d_sm_weights sub-tables for n = 4, 8, 16, 32
// and 64 back to back, without the C table's leading padding entries, so
// the n-weight sub-table starts at smWeightsOffset(n) rather than at
// index n. Valid sub-table lengths are 4, 8, 16, 32, 64.
var smWeights = [4 + 8 + 16 + 32 + 64]uint8{
	// n=4
	255, 149, 85, 64,
	// n=8
	255, 197, 146, 105, 73, 50, 37, 32,
	// n=16
	255, 225, 196, 170, 145, 123, 102, 84, 68, 54, 43, 33, 26, 20, 17, 16,
	// n=32
	255, 240, 225, 210, 196, 182, 169, 157, 145, 133, 122, 111, 101, 92, 83, 74,
	66, 59, 52, 45, 39, 34, 29, 25, 21, 17, 14, 12, 10, 9, 8, 8,
	// n=64
	255, 248, 240, 233, 225, 218, 210, 203, 196, 189, 182, 176, 169, 163, 156, 150,
	144, 138, 133, 127, 121, 116, 111, 106, 101, 96, 91, 86, 82, 77, 73, 69,
	65, 61, 57, 54, 50, 47, 44, 41, 38, 35, 32, 29, 27, 25, 22, 20,
	18, 16, 15, 13, 12, 10, 9, 8, 7, 6, 6, 5, 5, 4, 4, 4,
}

// smWeightsOffset returns the starting index of the n-weight sub-table
// within smWeights, i.e. the Go equivalent of C's &dav1d_sm_weights[n].
func smWeightsOffset(n int) int {
	switch n {
	case 4:
		return 0
	case 8:
		return 4
	case 16:
		return 12
	case 32:
		return 28
	case 64:
		return 60
	default:
		assertf(false, "smWeights: unsupported side %d", n)
		return 0
	}
}

// filterIntraTaps is dav1d_filter_intra_taps[5][8][7]: five filter
// banks, each mapping one of the 8 output positions in a 4x2 sub-patch
// to a 7-tap dot product over {p0..p6} (topleft, 4 above, 2 left).
var filterIntraTaps = [5][8][7]int8{
	{ // FILTER_DC_PRED
		{-6, 10, 0, 0, 0, 12, 0},
		{-5, 2, 10, 0, 0, 9, 0},
		{-3, 1, 1, 10, 0, 7, 0},
		{-3, 1, 1, 2, 10, 5, 0},
		{-4, 6, 0, 0, 0, 2, 12},
		{-3, 2, 6, 0, 0, 2, 9},
		{-3, 2, 2, 6, 0, 2, 7},
		{-3, 1, 2, 2, 6, 3, 5},
	},
	{ // FILTER_V_PRED
		{-10, 16, 0, 0, 0, 10, 0},
		{-6, 0, 16, 0, 0, 6, 0},
		{-4, 0, 0, 16, 0, 4, 0},
		{-2, 0, 0, 0, 16, 2, 0},
		{-10, 16, 0, 0, 0, 0, 10},
		{-6, 0, 16, 0, 0, 0, 6},
		{-4, 0, 0, 16, 0, 0, 4},
		{-2, 0, 0, 0, 16, 0, 2},
	},
	{ // FILTER_H_PRED
		{-8, 8, 0, 0, 0, 16, 0},
		{-8, 0, 8, 0, 0, 16, 0},
		{-8, 0, 0, 8, 0, 16, 0},
		{-8, 0, 0, 0, 8, 16, 0},
		{-4, 4, 0, 0, 0, 0, 16},
		{-4, 0, 4, 0, 0, 0, 16},
		{-4, 0, 0, 4, 0, 0, 16},
		{-4, 0, 0, 0, 4, 0, 16},
	},
	{ // FILTER_D157_PRED
		{-2, 8, 0, 0, 0, 10, 0},
		{-1, 3, 8, 0, 0, 6, 0},
		{-1, 2, 3, 8, 0, 4, 0},
		{0, 1, 2, 3, 8, 2, 0},
		{-1, 4, 0, 0, 0, 3, 10},
		{-1, 3, 4, 0, 0, 4, 6},
		{-1, 2, 3, 4, 0, 4, 4},
		{-1, 2, 2, 3, 4, 3, 3},
	},
	{ // FILTER_PAETH_PRED
		{-12, 14, 0, 0, 0, 14, 0},
		{-10, 0, 14, 0, 0, 12, 0},
		{-9, 0, 0, 14, 0, 11, 0},
		{-8, 0, 0, 0, 14, 10, 0},
		{-10, 12, 0, 0, 0, 0, 14},
		{-9, 1, 12, 0, 0, 0, 12},
		{-8, 0, 0, 12, 0, 1, 11},
		{-7, 0, 0, 1, 12, 1, 9},
	},
}
