//go:build linux

package platformservice

import (
	"golang.org/x/sys/unix"
)

// osUptime reads whole seconds since boot from sysinfo(2).
func osUptime() (int64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}

	return int64(info.Uptime), nil
}
