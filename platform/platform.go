// Package platform classifies the compile target. It holds no logic of its
// own beyond the mapping; other packages consult it to pick wide-character
// width and byte order.
//
// Tag values use distinct hex ranges so a platform and an architecture can be
// OR-ed into a single identifier: desktop 0x1000-0x3000, mobile 0x3100-0x4000,
// consoles 0x5000-0x8000, Intel 0x14-0x18, ARM 0x24-0x28.
package platform

import (
	"encoding/binary"
	"runtime"
	"strings"
)

// Platform identifies a target operating system or console.
type Platform uint32

const (
	UnknownPlatform Platform = 0
	Windows         Platform = 0x1000
	Linux           Platform = 0x2000
	MacOS           Platform = 0x3000
	IOS             Platform = 0x3100
	Android         Platform = 0x4000
	GBA             Platform = 0x5000
	NDS             Platform = 0x6000
	N3DS            Platform = 0x7000
	Switch          Platform = 0x8000
)

var platformNames = map[Platform]string{
	UnknownPlatform: "unknown",
	Windows:         "windows",
	Linux:           "linux",
	MacOS:           "macos",
	IOS:             "ios",
	Android:         "android",
	GBA:             "gba",
	NDS:             "nds",
	N3DS:            "3ds",
	Switch:          "switch",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsConsole reports whether p is one of the handheld/console targets.
func (p Platform) IsConsole() bool {
	return p >= GBA && p <= Switch
}

// ParsePlatform maps a name (case-insensitive) back to its tag. "darwin" is
// accepted for MacOS and "host" for Current().
func ParsePlatform(name string) (Platform, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "host", "":
		return Current(), true
	case "darwin":
		return MacOS, true
	}
	for p, n := range platformNames {
		if n == name && p != UnknownPlatform {
			return p, true
		}
	}
	return UnknownPlatform, false
}

// Architecture identifies a CPU instruction set.
type Architecture uint32

const (
	UnknownArchitecture Architecture = 0x0000
	X86                 Architecture = 0x0014
	X64                 Architecture = 0x0018
	Arm32               Architecture = 0x0024
	Arm64               Architecture = 0x0028
)

func (a Architecture) String() string {
	switch a {
	case X86:
		return "x86"
	case X64:
		return "x64"
	case Arm32:
		return "arm32"
	case Arm64:
		return "arm64"
	default:
		return "unknown"
	}
}

// Current returns the platform this binary was compiled for.
func Current() Platform {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	case "ios":
		return IOS
	case "android":
		return Android
	default:
		return UnknownPlatform
	}
}

// CurrentArchitecture returns the architecture this binary was compiled for.
func CurrentArchitecture() Architecture {
	return fromGOARCH(runtime.GOARCH)
}

func fromGOARCH(goarch string) Architecture {
	switch goarch {
	case "386":
		return X86
	case "amd64":
		return X64
	case "arm":
		return Arm32
	case "arm64":
		return Arm64
	default:
		return UnknownArchitecture
	}
}

// ParseArchitecture maps an architecture name (case-insensitive) back to its
// tag. Go's GOARCH spellings are accepted too, and "host" or "" yields
// CurrentArchitecture().
func ParseArchitecture(name string) (Architecture, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "host", "":
		return CurrentArchitecture(), true
	case "x86", "386":
		return X86, true
	case "x64", "amd64":
		return X64, true
	case "arm32", "arm":
		return Arm32, true
	case "arm64":
		return Arm64, true
	}
	return UnknownArchitecture, false
}

// Target pairs a platform with an architecture.
type Target struct {
	Platform     Platform
	Architecture Architecture
}

// Host returns the compile target.
func Host() Target {
	return Target{Platform: Current(), Architecture: CurrentArchitecture()}
}

// ParseTarget parses "platform" or "platform/arch". A missing architecture
// means the host's.
func ParseTarget(s string) (Target, bool) {
	plat, arch, _ := strings.Cut(s, "/")
	p, ok := ParsePlatform(plat)
	if !ok {
		return Target{}, false
	}
	a, ok := ParseArchitecture(arch)
	if !ok {
		return Target{}, false
	}
	return Target{Platform: p, Architecture: a}, true
}

// Combined returns the platform and architecture tags OR-ed together.
func (t Target) Combined() uint32 {
	return uint32(t.Platform) | uint32(t.Architecture)
}

func (t Target) String() string {
	return t.Platform.String() + "/" + t.Architecture.String()
}

// WideCharSize returns sizeof(wchar_t) in bytes on p: 2 on Windows (UTF-16),
// 4 everywhere else (UTF-32).
func WideCharSize(p Platform) int {
	if p == Windows {
		return 2
	}
	return 4
}

// ByteOrder returns the byte order used by a. Every supported tag is little
// endian; unknown architectures fall back to the host order.
func ByteOrder(a Architecture) binary.ByteOrder {
	switch a {
	case X86, X64, Arm32, Arm64:
		return binary.LittleEndian
	default:
		return binary.NativeEndian
	}
}

// WideCharSize is shorthand for WideCharSize(t.Platform).
func (t Target) WideCharSize() int {
	return WideCharSize(t.Platform)
}

// ByteOrder is shorthand for ByteOrder(t.Architecture).
func (t Target) ByteOrder() binary.ByteOrder {
	return ByteOrder(t.Architecture)
}
