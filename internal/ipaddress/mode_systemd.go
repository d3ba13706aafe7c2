//go:build systemd

package ipaddress

// BuildMode is binary when built alongside the system service manager, which
// hands over raw address bytes.
const BuildMode = ModeBinary
