package showCommand

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/redjax/ietfsys/internal/ipaddress"
	platformservice "github.com/redjax/ietfsys/internal/services/platformService"
	"github.com/redjax/ietfsys/internal/utils/render"
	"github.com/spf13/cobra"
)

func NewShowNetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "net",
		Short: "Show only network-related host information",
		Long:  `Shows the DNS resolver, default gateway and network interfaces of the host.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newProvider()
			if err != nil {
				return err
			}

			sections, release, err := netSections(p)
			if err != nil {
				return err
			}
			defer release()

			return write(cmd, sections...)
		},
	}

	return cmd
}

type netQuerier interface {
	GetDNSResolver() (platformservice.DNSResolver, error)
	GetDefaultGateway() (ipaddress.Address, error)
	GetInterfaces() ([]platformservice.NetworkInterface, error)
}

// netSections gathers the network facts. The returned func releases every
// address once the output has been written.
func netSections(p netQuerier) ([]render.Section, func(), error) {
	resolver, err := p.GetDNSResolver()
	if err != nil {
		return nil, nil, err
	}

	ifaces, err := p.GetInterfaces()
	if err != nil {
		resolver.Release()
		return nil, nil, err
	}

	sections := []render.Section{{
		Title: "DNS Resolver",
		Key:   "dns-resolver",
		Rows:  rows(resolver.Properties()),
		Value: resolver,
	}}

	// Hosts without a default route are normal; leave the section out.
	gw, err := p.GetDefaultGateway()
	if err != nil {
		slog.Warn("no default gateway", "error", err)
	} else {
		sections = append(sections, render.Section{
			Title: "Routing",
			Key:   "default-gateway",
			Rows:  []render.Row{{Key: "default-gateway", Value: gw.String()}},
			Value: gw,
		})
	}

	ifaceRows := make([]render.Row, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addresses))
		for i := range iface.Addresses {
			addrs = append(addrs, iface.Addresses[i].String())
		}
		value := strings.Join(addrs, ", ")
		if len(iface.Flags) > 0 {
			value = fmt.Sprintf("%s (%s)", value, strings.Join(iface.Flags, ", "))
		}
		ifaceRows = append(ifaceRows, render.Row{Key: iface.Name, Value: strings.TrimSpace(value)})
	}
	sections = append(sections, render.Section{
		Title: "Network Interfaces",
		Key:   "interfaces",
		Rows:  ifaceRows,
		Value: ifaces,
	})

	release := func() {
		resolver.Release()
		gw.Release()
		for i := range ifaces {
			for j := range ifaces[i].Addresses {
				ifaces[i].Addresses[j].Release()
			}
		}
	}

	return sections, release, nil
}
