//go:build !linux && !darwin && !windows

package sysinfo

func cpuCacheLineSize() (int, error) {
	return 0, errUnsupported
}

func systemRAM() (int, error) {
	return 0, errUnsupported
}
