package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// SSE2 represents x86-64 SSE2 (128-bit SIMD, baseline on amd64).
	SSE2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse2":
		return SSE2, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected SIMD implementation.
	activeISA ISA

	// hasOverride is true if SOBOL_SIMD was set to a known ISA.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasSSE2 bool // x86-64 SSE2
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected. It selects the ISA and binds kernels.
func initCapabilities() {
	activeISA = selectISA(os.Getenv("SOBOL_SIMD"))
	bindKernels(activeISA)
}

func selectISA(override string) ISA {
	hasOverride = false
	if override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				return isa
			}
			// Unavailable override - fall through to auto-detection
		}
	}
	return selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU and build.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE2:
		return hasSSE2 && haveAsm
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	if runtime.GOARCH == "amd64" && isISAAvailable(SSE2) {
		return SSE2
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if SOBOL_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE2 returns true if x86-64 SSE2 is available.
func HasSSE2() bool {
	return hasSSE2
}
