package tensor

import "fmt"

// checkPartialOverlap rejects output/input pairs whose memory overlaps
// without being element-identical. The same view passed as both output and
// input is the in-place case and is safe, as are views of one buffer with
// disjoint byte spans. Anything in between would let kernel writes clobber
// input elements that have not been read yet.
func checkPartialOverlap(out, in *Array) error {
	if out == in || !out.SameStorage(in) {
		return nil
	}
	outLo, outHi := out.byteSpan()
	inLo, inHi := in.byteSpan()
	if outHi <= inLo || inHi <= outLo {
		return nil
	}
	// Distinct views over the exact same dense span read and write each
	// element at the same location, which elementwise kernels tolerate.
	if out.IsContiguous() && in.IsContiguous() &&
		outLo == inLo && outHi == inHi && out.dtype.Size() == in.dtype.Size() {
		return nil
	}
	return fmt.Errorf("%w: output partially overlaps an input; use the in-place form or a fresh output",
		ErrUnsafeAliasing)
}
