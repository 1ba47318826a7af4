package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features reports the SIMD capabilities of the host, for diagnostics.
func Features() []string {
	var fs []string
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasAVX512F {
			fs = append(fs, "AVX-512F")
		}
		if cpu.X86.HasAVX2 {
			fs = append(fs, "AVX2")
		}
		if cpu.X86.HasAVX {
			fs = append(fs, "AVX")
		}
		if cpu.X86.HasFMA {
			fs = append(fs, "FMA")
		}
		if cpu.X86.HasSSE42 {
			fs = append(fs, "SSE4.2")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			fs = append(fs, "ASIMD")
		}
		if cpu.ARM64.HasSVE {
			fs = append(fs, "SVE")
		}
		if cpu.ARM64.HasFP {
			fs = append(fs, "FP")
		}
	}
	return fs
}
