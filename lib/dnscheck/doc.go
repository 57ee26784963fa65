// Package dnscheck probes the modem's LAN DNS forwarder. Most home
// gateways answer DNS on their LAN address; a dead forwarder while the
// admin interface is still up usually means the WAN side is down, which is
// useful signal for the diagnose command.
package dnscheck
