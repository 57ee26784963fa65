package commands

import (
	"flag"

	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/modem"
)

func CreateResetWifiCommand() *ResetWifiCommand {
	cmd := &ResetWifiCommand{
		fs: flag.NewFlagSet("reset-wifi", flag.ExitOnError),
	}
	cmd.device = registerDeviceFlags(cmd.fs)
	return cmd
}

// ResetWifiCommand power-cycles the modem's Wi-Fi radios.
type ResetWifiCommand struct {
	fs     *flag.FlagSet
	device *deviceFlags
	modem  modem.Modem
}

func (c *ResetWifiCommand) Name() string {
	return c.fs.Name()
}

func (c *ResetWifiCommand) Init(args []string, ctx *AppContext) error {
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

func (c *ResetWifiCommand) Run() error {
	defer c.modem.Close()

	if err := c.modem.ResetWifi(); err != nil {
		return err
	}

	log.Infof("Wi-Fi radios are restarting")
	return nil
}
