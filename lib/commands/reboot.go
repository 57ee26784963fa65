package commands

import (
	"flag"

	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/modem"
)

func CreateRebootCommand() *RebootCommand {
	cmd := &RebootCommand{
		fs: flag.NewFlagSet("reboot", flag.ExitOnError),
	}
	cmd.device = registerDeviceFlags(cmd.fs)
	return cmd
}

// RebootCommand reboots the modem.
type RebootCommand struct {
	fs     *flag.FlagSet
	device *deviceFlags
	modem  modem.Modem
}

func (c *RebootCommand) Name() string {
	return c.fs.Name()
}

func (c *RebootCommand) Init(args []string, ctx *AppContext) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	_, _, dev, err := c.device.buildDevice(ctx)
	if err != nil {
		return err
	}
	c.modem = dev

	return nil
}

func (c *RebootCommand) Run() error {
	defer c.modem.Close()

	if err := c.modem.Reboot(); err != nil {
		return err
	}

	log.Infof("Reboot requested, the modem will be unreachable for a few minutes")
	return nil
}
