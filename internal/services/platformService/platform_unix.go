//go:build unix

package platformservice

import (
	"golang.org/x/sys/unix"
)

func osUname() (Utsname, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Utsname{}, err
	}

	return Utsname{
		Sysname:  unix.ByteSliceToString(uts.Sysname[:]),
		Nodename: unix.ByteSliceToString(uts.Nodename[:]),
		Release:  unix.ByteSliceToString(uts.Release[:]),
		Version:  unix.ByteSliceToString(uts.Version[:]),
		Machine:  unix.ByteSliceToString(uts.Machine[:]),
	}, nil
}

// osHostname reads the node name from uname, which the kernel keeps in a
// HOST_NAME_MAX+1 byte field.
func osHostname() (string, error) {
	uts, err := osUname()
	if err != nil {
		return "", err
	}

	return uts.Nodename, nil
}
