package dnscheck

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/automodemadmin/modemadm/lib/log"
)

const (
	defaultDNSPort = "53"

	// Shorter than the command timeout so a dead forwarder fails fast.
	clientTimeout = 3 * time.Second

	probeDomain = "example.com."
)

// Probe sends an A query for a well-known name to the forwarder at addr
// (port 53 is assumed when none is given) and returns an error when the
// forwarder does not answer or answers with a failure rcode.
func Probe(addr string) error {
	host := addr
	if !containsPort(host) {
		host = net.JoinHostPort(host, defaultDNSPort)
	}

	if _, _, err := net.SplitHostPort(host); err != nil {
		return fmt.Errorf("invalid DNS forwarder address: %v", err)
	}

	client := &dns.Client{
		Net:     "udp",
		Timeout: clientTimeout,
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(probeDomain), dns.TypeA)

	resp, rtt, err := client.Exchange(msg, host)
	if err != nil {
		return fmt.Errorf("dns probe to %s failed: %w", host, err)
	}

	if resp.Rcode != dns.RcodeSuccess {
		return fmt.Errorf("dns probe to %s answered with %s", host, dns.RcodeToString[resp.Rcode])
	}

	log.Debugf("DNS probe to %s answered in %v (%d answer(s))", host, rtt, len(resp.Answer))
	return nil
}

func containsPort(addr string) bool {
	if strings.HasPrefix(addr, "[") {
		return strings.Contains(addr, "]:")
	}
	return strings.Count(addr, ":") == 1
}
