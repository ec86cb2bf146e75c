package platform

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// Features lists the CPU capabilities hot paths may branch on. Fields for a
// foreign architecture are always false.
type Features struct {
	SSE42  bool
	AVX2   bool
	POPCNT bool
	NEON   bool // arm32 NEON or arm64 ASIMD
	CRC32  bool // arm64 CRC32 instructions, or SSE4.2 crc32 on x86
}

// DetectFeatures queries the running CPU.
func DetectFeatures() Features {
	var f Features
	switch CurrentArchitecture() {
	case X86, X64:
		f.SSE42 = cpu.X86.HasSSE42
		f.AVX2 = cpu.X86.HasAVX2
		f.POPCNT = cpu.X86.HasPOPCNT
		f.CRC32 = cpu.X86.HasSSE42
	case Arm64:
		f.NEON = cpu.ARM64.HasASIMD
		f.CRC32 = cpu.ARM64.HasCRC32
	case Arm32:
		f.NEON = cpu.ARM.HasNEON
		f.CRC32 = cpu.ARM.HasCRC32
	}
	return f
}

// String lists the detected features by name, or "none".
func (f Features) String() string {
	var names []string
	for _, feat := range []struct {
		name string
		on   bool
	}{
		{"sse4.2", f.SSE42},
		{"avx2", f.AVX2},
		{"popcnt", f.POPCNT},
		{"neon", f.NEON},
		{"crc32", f.CRC32},
	} {
		if feat.on {
			names = append(names, feat.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}
