//go:build !unix

package platformservice

import (
	"os"

	"github.com/shirou/gopsutil/v4/host"
)

func osUname() (Utsname, error) {
	info, err := host.Info()
	if err != nil {
		return Utsname{}, err
	}

	return Utsname{
		Sysname:  info.OS,
		Nodename: info.Hostname,
		Release:  info.PlatformVersion,
		Version:  info.KernelVersion,
		Machine:  info.KernelArch,
	}, nil
}

func osHostname() (string, error) {
	return os.Hostname()
}
