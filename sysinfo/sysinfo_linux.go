//go:build linux

package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// coherencyLineSizePath exposes the L1 data cache line size of cpu0.
// index0 is the first-level data cache on every Linux architecture that
// populates the cache sysfs tree.
const coherencyLineSizePath = "/sys/devices/system/cpu/cpu0/cache/index0/coherency_line_size"

func cpuCacheLineSize() (int, error) {
	data, err := os.ReadFile(coherencyLineSizePath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", coherencyLineSizePath, err)
	}
	size, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", coherencyLineSizePath, err)
	}
	return size, nil
}

func systemRAM() (int, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, fmt.Errorf("sysinfo: %w", err)
	}
	// Totalram is in units of info.Unit bytes.
	return int(uint64(info.Totalram) * uint64(info.Unit) / (1 << 20)), nil
}
