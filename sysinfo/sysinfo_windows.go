//go:build windows

package sysinfo

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func cpuCacheLineSize() (int, error) {
	// Windows exposes cache topology only through
	// GetLogicalProcessorInformationEx, whose variable-length records are
	// not worth parsing for a tuning hint; callers get the default.
	return 0, errUnsupported
}

func systemRAM() (int, error) {
	var m windows.MemoryStatusEx
	m.Length = uint32(unsafe.Sizeof(m))
	if err := windows.GlobalMemoryStatusEx(&m); err != nil {
		return 0, fmt.Errorf("GlobalMemoryStatusEx: %w", err)
	}
	return int(m.TotalPhys / (1 << 20)), nil
}
