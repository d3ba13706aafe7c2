package platformservice

import (
	"fmt"
	"strings"
)

// HostnameMaxLen is HOST_NAME_MAX on Linux.
const HostnameMaxLen = 64

// GetHostname returns the host name, bounded by the configured maximum length.
func (p *Provider) GetHostname() (string, error) {
	name, err := p.hostname()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHostQuery, err)
	}

	switch {
	case name == "":
		return "", fmt.Errorf("%w: empty hostname", ErrHostQuery)
	case strings.IndexByte(name, 0) >= 0:
		return "", fmt.Errorf("%w: hostname contains NUL byte", ErrHostQuery)
	case len(name) > p.hostnameMaxLen:
		return "", fmt.Errorf("%w: hostname is %d bytes, limit is %d", ErrHostQuery, len(name), p.hostnameMaxLen)
	}

	return name, nil
}
