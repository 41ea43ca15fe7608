//go:build darwin

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func cpuCacheLineSize() (int, error) {
	size, err := unix.SysctlUint64("hw.cachelinesize")
	if err != nil {
		return 0, fmt.Errorf("sysctl hw.cachelinesize: %w", err)
	}
	return int(size), nil
}

func systemRAM() (int, error) {
	bytes, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, fmt.Errorf("sysctl hw.memsize: %w", err)
	}
	return int(bytes / (1 << 20)), nil
}
