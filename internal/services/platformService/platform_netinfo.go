package platformservice

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/jackpal/gateway"
	"github.com/miekg/dns"

	"github.com/redjax/ietfsys/internal/ipaddress"
)

// DefaultResolvConf is where the standalone build reads DNS settings from.
const DefaultResolvConf = "/etc/resolv.conf"

// DNSResolver mirrors the ietf-system dns-resolver container.
type DNSResolver struct {
	Search  []string            `json:"search" yaml:"search"`
	Servers []ipaddress.Address `json:"servers" yaml:"servers"`
}

// Release releases every server address.
func (r *DNSResolver) Release() {
	releaseAll(r.Servers)
	r.Servers = nil
}

type NetworkInterface struct {
	Name            string              `json:"name" yaml:"name"`
	HardwareAddress string              `json:"hardware-address,omitempty" yaml:"hardware-address,omitempty"`
	Flags           []string            `json:"flags,omitempty" yaml:"flags,omitempty"`
	Addresses       []ipaddress.Address `json:"addresses,omitempty" yaml:"addresses,omitempty"`
}

func (r DNSResolver) Properties() []Property {
	return []Property{
		{"search", strings.Join(r.Search, ", ")},
		{"servers", joinAddresses(r.Servers)},
	}
}

func (r DNSResolver) PrintNetFormat() string {
	var builder strings.Builder

	builder.WriteString("DNS Resolver:\n")
	if len(r.Search) > 0 {
		builder.WriteString(fmt.Sprintf("  +Search:  %s\n", strings.Join(r.Search, ", ")))
	}
	if len(r.Servers) > 0 {
		builder.WriteString(fmt.Sprintf("  +Servers: %s\n", joinAddresses(r.Servers)))
	}

	return builder.String()
}

// GetDNSResolver returns the resolver configuration of the default provider.
func GetDNSResolver() (DNSResolver, error) {
	return defaultProvider.GetDNSResolver()
}

// GetDNSResolver parses the resolv.conf-format file the provider points at.
// Servers are stored in the build's address mode.
func (p *Provider) GetDNSResolver() (DNSResolver, error) {
	cfg, err := dns.ClientConfigFromFile(p.resolvConf)
	if err != nil {
		return DNSResolver{}, fmt.Errorf("%w: %s: %w", ErrResolverQuery, p.resolvConf, err)
	}

	servers := make([]ipaddress.Address, 0, len(cfg.Servers))
	for _, s := range cfg.Servers {
		addr, err := addressFromString(ipaddress.BuildMode, s)
		if err != nil {
			releaseAll(servers)
			return DNSResolver{}, fmt.Errorf("%w: nameserver %q: %w", ErrResolverQuery, s, err)
		}
		servers = append(servers, addr)
	}

	search := make([]string, 0, len(cfg.Search))
	for _, domain := range cfg.Search {
		search = append(search, strings.TrimSuffix(domain, "."))
	}

	return DNSResolver{
		Search:  search,
		Servers: servers,
	}, nil
}

// GetDefaultGateway returns the default gateway of the default provider.
func GetDefaultGateway() (ipaddress.Address, error) {
	return defaultProvider.GetDefaultGateway()
}

func (p *Provider) GetDefaultGateway() (ipaddress.Address, error) {
	ip, err := p.gateway()
	if err != nil {
		return ipaddress.Address{}, fmt.Errorf("%w: %w", ErrGatewayQuery, err)
	}
	if ip == nil || ip.IsUnspecified() {
		return ipaddress.Address{}, fmt.Errorf("%w: no default route", ErrGatewayQuery)
	}

	addr := ipaddress.New()
	if err := addr.SetIP(ip); err != nil {
		return ipaddress.Address{}, fmt.Errorf("%w: %w", ErrGatewayQuery, err)
	}

	return addr, nil
}

// GetInterfaces lists the interfaces of the default provider.
func GetInterfaces() ([]NetworkInterface, error) {
	return defaultProvider.GetInterfaces()
}

// GetInterfaces lists network interfaces with their flags and addresses.
func (p *Provider) GetInterfaces() ([]NetworkInterface, error) {
	ifaces, err := p.interfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterfaceQuery, err)
	}

	result := make([]NetworkInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		ni := NetworkInterface{
			Name:            iface.Name,
			HardwareAddress: iface.HardwareAddr.String(),
		}

		// Add flags (e.g. up, loopback)
		for _, f := range []net.Flags{
			net.FlagUp, net.FlagLoopback, net.FlagBroadcast,
			net.FlagMulticast, net.FlagPointToPoint,
		} {
			if iface.Flags&f != 0 {
				ni.Flags = append(ni.Flags, f.String())
			}
		}

		addrs, err := p.addrs(iface)
		if err != nil {
			releaseInterfaces(result)
			return nil, fmt.Errorf("%w: %s: %w", ErrInterfaceQuery, iface.Name, err)
		}

		for _, a := range addrs {
			ip := ipOf(a)
			if ip == nil {
				continue
			}

			addr := ipaddress.New()
			if err := addr.SetIP(ip); err != nil {
				releaseInterfaces(append(result, ni))
				return nil, fmt.Errorf("%w: %s: %w", ErrInterfaceQuery, iface.Name, err)
			}
			ni.Addresses = append(ni.Addresses, addr)
		}

		result = append(result, ni)
	}

	return result, nil
}

func discoverGateway() (net.IP, error) {
	return gateway.DiscoverGateway()
}

// addressFromString parses s and stores it in the given mode. Both modes see
// the same canonical form: zones are dropped and non-IP values fail.
func addressFromString(mode ipaddress.Mode, s string) (ipaddress.Address, error) {
	addr := ipaddress.NewWithMode(mode)

	ip, err := netip.ParseAddr(s)
	if err != nil {
		return addr, err
	}

	return addr, addr.SetAddr(ip)
}

func ipOf(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	default:
		return nil
	}
}

func joinAddresses(addrs []ipaddress.Address) string {
	parts := make([]string, 0, len(addrs))
	for i := range addrs {
		parts = append(parts, addrs[i].String())
	}

	return strings.Join(parts, ", ")
}

func releaseAll(addrs []ipaddress.Address) {
	for i := range addrs {
		addrs[i].Release()
	}
}

func releaseInterfaces(ifaces []NetworkInterface) {
	for i := range ifaces {
		releaseAll(ifaces[i].Addresses)
	}
}
