// Package netdetect locates the modem on the local network by inspecting
// the host routing table. On home networks the modem is almost always the
// IPv4 default gateway.
package netdetect

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"

	"github.com/automodemadmin/modemadm/lib/log"
)

// Gateway describes the default route of the host.
type Gateway struct {
	IP        net.IP
	Interface string
}

// DefaultGateway walks the main routing table and returns the IPv4 default
// route's gateway.
func DefaultGateway() (*Gateway, error) {
	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %v", err)
	}

	for _, route := range routes {
		if route.Dst != nil || route.Gw == nil {
			continue
		}

		gw := &Gateway{IP: route.Gw}
		if link, err := netlink.LinkByIndex(route.LinkIndex); err == nil {
			gw.Interface = link.Attrs().Name
		} else {
			log.Debugf("Failed to resolve link index %d: %v", route.LinkIndex, err)
		}

		return gw, nil
	}

	return nil, fmt.Errorf("no IPv4 default route found")
}
