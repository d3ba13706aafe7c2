//go:build !linux

package platformservice

import (
	"math"

	"github.com/shirou/gopsutil/v4/host"
)

func osUptime() (int64, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	if secs > math.MaxInt64 {
		return math.MaxInt64, nil
	}

	return int64(secs), nil
}
