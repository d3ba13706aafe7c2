//go:build !systemd

package ipaddress

// BuildMode is text for standalone builds, where addresses arrive as strings.
const BuildMode = ModeText
