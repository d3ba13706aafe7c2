package platformservice

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// Utsname is the subset of the kernel identity record this package reads.
type Utsname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// PlatformInfo holds the OS-reported identity of the running kernel.
type PlatformInfo struct {
	// e.g. "Linux"
	OsName string `json:"os-name" yaml:"os-name"`
	// e.g. "6.8.0-45-generic"
	OsRelease string `json:"os-release" yaml:"os-release"`
	// e.g. "#45-Ubuntu SMP PREEMPT_DYNAMIC ..."
	OsVersion string `json:"os-version" yaml:"os-version"`
	// e.g. "x86_64"
	Machine string `json:"machine" yaml:"machine"`
}

// Property is one named leaf of a host fact, in display order.
type Property struct {
	Name  string
	Value string
}

func (p PlatformInfo) Properties() []Property {
	return []Property{
		{"os-name", p.OsName},
		{"os-release", p.OsRelease},
		{"os-version", p.OsVersion},
		{"machine", p.Machine},
	}
}

func (p PlatformInfo) Format() string {
	var builder strings.Builder

	builder.WriteString("Platform Information:\n")
	builder.WriteString(fmt.Sprintf("  OS Name:     %s\n", p.OsName))
	builder.WriteString(fmt.Sprintf("  OS Release:  %s\n", p.OsRelease))
	builder.WriteString(fmt.Sprintf("  OS Version:  %s\n", p.OsVersion))
	builder.WriteString(fmt.Sprintf("  Machine:     %s\n", p.Machine))

	return builder.String()
}

// Provider answers host fact queries. Every call goes back to the OS; nothing
// is cached. The OS collaborators can be swapped with Options.
type Provider struct {
	hostname   func() (string, error)
	uname      func() (Utsname, error)
	uptime     func() (int64, error)
	clock      func() time.Time
	loc        *time.Location
	gateway    func() (net.IP, error)
	interfaces func() ([]net.Interface, error)
	addrs      func(net.Interface) ([]net.Addr, error)

	hostnameMaxLen int
	underflow      UnderflowPolicy
	resolvConf     string
	localtime      string
}

type Option func(*Provider)

// WithHostname replaces the OS host name query.
func WithHostname(fn func() (string, error)) Option {
	return func(p *Provider) { p.hostname = fn }
}

// WithUname replaces the OS system identity query.
func WithUname(fn func() (Utsname, error)) Option {
	return func(p *Provider) { p.uname = fn }
}

// WithUptime replaces the OS uptime query. fn returns whole seconds.
func WithUptime(fn func() (int64, error)) Option {
	return func(p *Provider) { p.uptime = fn }
}

// WithClock replaces the wall clock.
func WithClock(fn func() time.Time) Option {
	return func(p *Provider) { p.clock = fn }
}

// WithLocation sets the zone timestamps are rendered in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(p *Provider) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithHostnameMaxLen bounds the accepted host name length.
func WithHostnameMaxLen(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.hostnameMaxLen = n
		}
	}
}

// WithUnderflowPolicy picks what GetClockInfo does when uptime reaches back
// past the epoch.
func WithUnderflowPolicy(policy UnderflowPolicy) Option {
	return func(p *Provider) { p.underflow = policy }
}

// WithResolvConf points the DNS resolver query at a resolv.conf-format file.
func WithResolvConf(path string) Option {
	return func(p *Provider) {
		if path != "" {
			p.resolvConf = path
		}
	}
}

// WithGateway replaces default gateway discovery.
func WithGateway(fn func() (net.IP, error)) Option {
	return func(p *Provider) { p.gateway = fn }
}

// WithInterfaces replaces interface enumeration.
func WithInterfaces(list func() ([]net.Interface, error), addrs func(net.Interface) ([]net.Addr, error)) Option {
	return func(p *Provider) {
		p.interfaces = list
		p.addrs = addrs
	}
}

// New returns a Provider backed by the running OS.
func New(opts ...Option) *Provider {
	p := &Provider{
		hostname:       osHostname,
		uname:          osUname,
		uptime:         osUptime,
		clock:          time.Now,
		loc:            time.Local,
		gateway:        discoverGateway,
		interfaces:     net.Interfaces,
		addrs:          func(iface net.Interface) ([]net.Addr, error) { return iface.Addrs() },
		hostnameMaxLen: HostnameMaxLen,
		underflow:      UnderflowReject,
		resolvConf:     DefaultResolvConf,
		localtime:      "/etc/localtime",
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultProvider = New()

// GetHostname returns the host name of the running OS.
func GetHostname() (string, error) {
	return defaultProvider.GetHostname()
}

// GetPlatformInfo returns the identity of the running kernel.
func GetPlatformInfo() (PlatformInfo, error) {
	return defaultProvider.GetPlatformInfo()
}

// GetClockInfo returns the current and boot timestamps.
func GetClockInfo() (ClockInfo, error) {
	return defaultProvider.GetClockInfo()
}

// GetPlatformInfo queries the OS system identity once and copies the fields
// out verbatim.
func (p *Provider) GetPlatformInfo() (PlatformInfo, error) {
	uts, err := p.uname()
	if err != nil {
		return PlatformInfo{}, fmt.Errorf("%w: %w", ErrPlatformQuery, err)
	}

	return PlatformInfo{
		OsName:    uts.Sysname,
		OsRelease: uts.Release,
		OsVersion: uts.Version,
		Machine:   uts.Machine,
	}, nil
}
