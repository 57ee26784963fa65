// Package modem exposes modem administration to programs that would
// normally require browser use. It emulates the browser's authenticated
// HTTP session against the vendor's web admin interface.
package modem

import (
	"fmt"
	"time"
)

const (
	DefaultTimeout    = 15 * time.Second
	DefaultSessionTTL = 10 * time.Minute
)

// Endpoint override keys accepted in Options.Endpoints.
const (
	EndpointLogin    = "login"
	EndpointReboot   = "reboot"
	EndpointWireless = "wireless"
	EndpointPage     = "page"
)

// Modem is the administration surface shared by every supported model.
// All action methods authenticate on demand; callers only need Login when
// they want to switch credentials explicitly.
type Modem interface {
	Login(username, password string) error
	IsAuthenticated() bool
	Reboot() error
	GetPage(page string) (string, error)
	ResetWifi() error
	MigrateChannel(channel int) error
	Close()
}

// Options is the configuration bundle handed to the factory.
type Options struct {
	IPAddress  string
	Username   string
	Password   string
	IgnoreCert bool
	Timeout    time.Duration
	SessionTTL time.Duration

	// Endpoints overrides the model's built-in admin paths, keyed by the
	// Endpoint* constants. The "page" entry is a template with a {page}
	// placeholder.
	Endpoints map[string]string
}

func (o *Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

func (o *Options) sessionTTL() time.Duration {
	if o.SessionTTL <= 0 {
		return DefaultSessionTTL
	}
	return o.SessionTTL
}

// New returns the device implementation for the given model string. The
// lookup table is closed; unknown models fail with ErrUnknownModel.
func New(model string, opts Options) (Modem, error) {
	switch model {
	case ModelTG1682G:
		return NewTG1682G(opts), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
}
