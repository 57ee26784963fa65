package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "modemadm.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

const testProfileConfig = `
[general]
timeout_seconds = 30

[[modem]]
name = "gw"
model = "TG1682G"
ip_address = "10.0.0.1"
username = "admin"
password = "fromconfig"
ignore_cert = true
`

func TestResolve_ProfileFromConfig(t *testing.T) {
	ctx := &AppContext{ConfigPath: writeTestConfig(t, testProfileConfig)}

	f := &deviceFlags{}
	model, opts, err := f.resolve(ctx)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if model != "TG1682G" {
		t.Errorf("model = %q, want TG1682G", model)
	}

	if opts.IPAddress != "10.0.0.1" || opts.Password != "fromconfig" || !opts.IgnoreCert {
		t.Errorf("Unexpected options: %+v", opts)
	}

	if opts.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", opts.Timeout)
	}
}

func TestResolve_FlagsOverrideProfile(t *testing.T) {
	ctx := &AppContext{ConfigPath: writeTestConfig(t, testProfileConfig)}

	f := &deviceFlags{ip: "10.0.0.254", password: "fromflag"}
	_, opts, err := f.resolve(ctx)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if opts.IPAddress != "10.0.0.254" {
		t.Errorf("IPAddress = %q, want flag value", opts.IPAddress)
	}

	if opts.Password != "fromflag" {
		t.Errorf("Password = %q, want flag value", opts.Password)
	}
}

func TestResolve_MissingModel(t *testing.T) {
	ctx := &AppContext{ConfigPath: filepath.Join(t.TempDir(), "absent.conf")}

	f := &deviceFlags{ip: "10.0.0.1"}
	_, _, err := f.resolve(ctx)
	if err == nil {
		t.Fatal("Expected error when no model is specified")
	}

	if !strings.Contains(err.Error(), "model") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestResolve_DefaultUsername(t *testing.T) {
	ctx := &AppContext{ConfigPath: filepath.Join(t.TempDir(), "absent.conf")}

	f := &deviceFlags{model: "TG1682G", ip: "10.0.0.1"}
	_, opts, err := f.resolve(ctx)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if opts.Username != "admin" {
		t.Errorf("Username = %q, want default admin", opts.Username)
	}
}

func TestResolve_UnknownProfile(t *testing.T) {
	ctx := &AppContext{ConfigPath: writeTestConfig(t, testProfileConfig)}

	f := &deviceFlags{profile: "basement"}
	_, _, err := f.resolve(ctx)
	if err == nil {
		t.Fatal("Expected error for unknown profile")
	}
}

func TestHostOnly(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.0.0.1", "10.0.0.1"},
		{"10.0.0.1:8443", "10.0.0.1"},
		{"[fe80::1]:443", "fe80::1"},
	}

	for _, tt := range tests {
		if got := hostOnly(tt.input); got != tt.want {
			t.Errorf("hostOnly(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
