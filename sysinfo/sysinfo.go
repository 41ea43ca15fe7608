// Package sysinfo answers basic questions about the machine the game is
// running on: platform name, CPU topology and physical memory.
//
// Queries that can fail fall back to a conservative default and report
// through the gamekit logger instead of returning errors; games use these
// values for tuning, not correctness.
package sysinfo

import (
	"errors"
	"runtime"

	"github.com/gogamekit/gamekit"
)

// errUnsupported marks a query with no implementation for the current
// platform.
var errUnsupported = errors.New("query not supported on this platform")

// defaultCacheLineSize is assumed when the platform query fails. Every
// mainstream desktop and mobile CPU currently uses 64-byte lines.
const defaultCacheLineSize = 64

// Platform returns a human-readable name of the operating system, such as
// "Linux", "Mac OS X" or "Windows". Unrecognized systems report their
// GOOS value.
func Platform() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Mac OS X"
	case "windows":
		return "Windows"
	case "android":
		return "Android"
	case "ios":
		return "iOS"
	}
	return runtime.GOOS
}

// CPUCount returns the number of logical CPUs usable by the process.
func CPUCount() int {
	return runtime.NumCPU()
}

// CPUCacheLineSize returns the L1 cache line size in bytes. When the
// platform query fails the common 64-byte default is returned.
func CPUCacheLineSize() int {
	size, err := cpuCacheLineSize()
	if err != nil || size <= 0 {
		gamekit.Logger().Debug("cache line size query failed, using default",
			"default", defaultCacheLineSize, "error", err)
		return defaultCacheLineSize
	}
	return size
}

// SystemRAM returns the total physical memory in MiB, or 0 when the
// query fails.
func SystemRAM() int {
	mib, err := systemRAM()
	if err != nil {
		gamekit.Logger().Warn("system RAM query failed", "error", err)
		return 0
	}
	return mib
}
