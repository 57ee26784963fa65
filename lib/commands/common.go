package commands

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/automodemadmin/modemadm/lib/config"
	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/modem"
	"github.com/automodemadmin/modemadm/lib/netdetect"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// deviceFlags identify the target modem and override config profile values.
type deviceFlags struct {
	profile    string
	model      string
	ip         string
	username   string
	password   string
	ignoreCert bool
}

func registerDeviceFlags(fs *flag.FlagSet) *deviceFlags {
	f := &deviceFlags{}
	fs.StringVar(&f.profile, "name", "", "Modem profile name from the config file")
	fs.StringVar(&f.model, "model", "", "The manufacturer's model number (e.g. TG1682G)")
	fs.StringVar(&f.ip, "ip", "", "The IP address the modem is located at")
	fs.StringVar(&f.username, "username", "", "The username for modem administration (default \"admin\")")
	fs.StringVar(&f.password, "password", "", "The password for modem administration")
	fs.BoolVar(&f.ignoreCert, "ignore-cert", false, "Ignore checking for certificate validity. NOT RECOMMENDED!")
	return f
}

// loadConfigIfPresent loads and validates the config file, or returns nil
// when the file does not exist. Commands whose flags fully specify the
// device work without one.
func loadConfigIfPresent(configPath string) (*config.Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Debugf("Configuration file %s not found, using flags only", configPath)
		return nil, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err = cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}
	return cfg, nil
}

// resolve merges the config profile (if any) with flag overrides. Flags
// win; a missing IP falls back to the host's default gateway.
func (f *deviceFlags) resolve(ctx *AppContext) (string, modem.Options, error) {
	var opts modem.Options
	model := f.model

	cfg, err := loadConfigIfPresent(ctx.ConfigPath)
	if err != nil {
		return "", opts, err
	}

	if cfg != nil && len(cfg.Modems) > 0 {
		profile, err := cfg.FindModem(f.profile)
		if err != nil {
			if f.profile != "" {
				return "", opts, err
			}
			// No profile selected and several exist: flags must specify
			// the device.
		} else {
			if model == "" {
				model = profile.Model
			}
			opts.IPAddress = profile.IPAddress
			opts.Username = profile.Username
			opts.Password = profile.Password
			opts.IgnoreCert = profile.IgnoreCert
			opts.Endpoints = profile.Endpoints
		}
	}

	if cfg != nil {
		opts.Timeout = cfg.Timeout()
		opts.SessionTTL = cfg.SessionTTL()
	}

	if f.ip != "" {
		opts.IPAddress = f.ip
	}
	if f.username != "" {
		opts.Username = f.username
	}
	if f.password != "" {
		opts.Password = f.password
	}
	if f.ignoreCert {
		opts.IgnoreCert = true
	}

	if opts.Username == "" {
		opts.Username = "admin"
	}

	if model == "" {
		return "", opts, fmt.Errorf("modem model is not specified (use -model or a config profile)")
	}

	if opts.IPAddress == "" {
		gw, err := netdetect.DefaultGateway()
		if err != nil {
			return "", opts, fmt.Errorf("modem IP is not specified and gateway detection failed: %v", err)
		}
		log.Infof("Using default gateway %s as modem address", gw.IP)
		opts.IPAddress = gw.IP.String()
	}

	return model, opts, nil
}

// buildDevice resolves the target and constructs the device through the
// factory.
func (f *deviceFlags) buildDevice(ctx *AppContext) (string, modem.Options, modem.Modem, error) {
	model, opts, err := f.resolve(ctx)
	if err != nil {
		return "", opts, nil, err
	}

	dev, err := modem.New(model, opts)
	if err != nil {
		return "", opts, nil, err
	}

	log.Debugf("Using modem %s at %s", model, opts.IPAddress)
	return model, opts, dev, nil
}

// hostOnly strips an optional port from an address.
func hostOnly(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
