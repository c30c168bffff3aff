package dsp

import "golang.org/x/sys/cpu"

// HasAVX2 reports whether the running CPU advertises AVX2 support. This
// package ships only the reference scalar kernels and nothing in it
// consults the result; the flag is read from golang.org/x/sys/cpu rather
// than from a hand-written CPUID stub.
func HasAVX2() bool {
	return cpu.X86.HasAVX2
}
