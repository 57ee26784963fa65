package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/automodemadmin/modemadm/lib/dnscheck"
	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/modem"
)

func CreateDiagnoseCommand() *DiagnoseCommand {
	cmd := &DiagnoseCommand{
		fs: flag.NewFlagSet("diagnose", flag.ExitOnError),
	}
	cmd.device = registerDeviceFlags(cmd.fs)
	return cmd
}

// DiagnoseCommand runs reachability checks against the modem: the admin
// login handshake and the LAN DNS forwarder.
type DiagnoseCommand struct {
	fs     *flag.FlagSet
	device *deviceFlags
	modem  modem.Modem
	opts   modem.Options
}

func (c *DiagnoseCommand) Name() string {
	return c.fs.Name()
}

func (c *DiagnoseCommand) Init(args []string, ctx *AppContext) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	_, opts, dev, err := c.device.buildDevice(ctx)
	if err != nil {
		return err
	}
	c.modem = dev
	c.opts = opts

	return nil
}

func (c *DiagnoseCommand) Run() error {
	defer c.modem.Close()

	failed := 0

	log.Infof("Checking admin interface at %s...", c.opts.IPAddress)
	if err := c.modem.Login(c.opts.Username, c.opts.Password); err != nil {
		failed++
		if errors.Is(err, modem.ErrInvalidCredentials) {
			log.Errorf("Admin interface is up but rejected the credentials: %v", err)
		} else {
			log.Errorf("Admin interface is not reachable: %v", err)
		}
	} else {
		log.Infof("Admin interface OK, session established")
	}

	dnsAddr := hostOnly(c.opts.IPAddress)
	log.Infof("Checking DNS forwarder at %s...", dnsAddr)
	if err := dnscheck.Probe(dnsAddr); err != nil {
		failed++
		log.Errorf("DNS forwarder check failed: %v", err)
	} else {
		log.Infof("DNS forwarder OK")
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}

	log.Infof("All checks passed")
	return nil
}
