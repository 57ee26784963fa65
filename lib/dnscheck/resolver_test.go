package dnscheck

import (
	"net"
	"strings"
	"testing"

	"github.com/miekg/dns"
)

// startForwarder runs a UDP DNS server answering every A query with the
// given rcode.
func startForwarder(t *testing.T, rcode int) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	mux := dns.NewServeMux()
	mux.HandleFunc(".", func(w dns.ResponseWriter, req *dns.Msg) {
		resp := new(dns.Msg)
		resp.SetRcode(req, rcode)
		if rcode == dns.RcodeSuccess && len(req.Question) > 0 {
			rr, _ := dns.NewRR(req.Question[0].Name + " 60 IN A 93.184.216.34")
			resp.Answer = append(resp.Answer, rr)
		}
		w.WriteMsg(resp)
	})

	srv := &dns.Server{PacketConn: pc, Handler: mux}
	go srv.ActivateAndServe()
	t.Cleanup(func() { srv.Shutdown() })

	return pc.LocalAddr().String()
}

func TestProbe_Success(t *testing.T) {
	addr := startForwarder(t, dns.RcodeSuccess)

	if err := Probe(addr); err != nil {
		t.Errorf("Probe(%s) failed: %v", addr, err)
	}
}

func TestProbe_ServerFailure(t *testing.T) {
	addr := startForwarder(t, dns.RcodeServerFailure)

	err := Probe(addr)
	if err == nil {
		t.Fatal("Expected error for SERVFAIL answer")
	}

	if !strings.Contains(err.Error(), "SERVFAIL") {
		t.Errorf("Expected rcode in error, got: %v", err)
	}
}

func TestProbe_InvalidAddress(t *testing.T) {
	if err := Probe("not an address:with:colons"); err == nil {
		t.Error("Expected error for invalid forwarder address")
	}
}

func TestContainsPort(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.0.0.1", false},
		{"10.0.0.1:53", true},
		{"[fe80::1]", false},
		{"[fe80::1]:53", true},
	}

	for _, tt := range tests {
		if got := containsPort(tt.input); got != tt.want {
			t.Errorf("containsPort(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
