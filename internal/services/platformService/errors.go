package platformservice

import "errors"

var (
	// ErrHostQuery is returned when the host name cannot be read.
	ErrHostQuery = errors.New("failed to get hostname")
	// ErrPlatformQuery is returned when the system identity query fails.
	ErrPlatformQuery = errors.New("failed to get platform information")
	// ErrClockQuery is returned when a timestamp cannot be converted to local time.
	ErrClockQuery = errors.New("failed to get clock information")
	// ErrUptimeQuery is returned when the system uptime cannot be read.
	ErrUptimeQuery = errors.New("failed to get system uptime")
	// ErrUptimeExceedsClock is wrapped into ErrClockQuery when the reported
	// uptime reaches back past the Unix epoch.
	ErrUptimeExceedsClock = errors.New("uptime exceeds current time")

	ErrResolverQuery  = errors.New("failed to read DNS resolver configuration")
	ErrGatewayQuery   = errors.New("failed to discover default gateway")
	ErrInterfaceQuery = errors.New("failed to list network interfaces")
)
