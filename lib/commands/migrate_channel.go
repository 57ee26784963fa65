package commands

import (
	"flag"

	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/modem"
)

func CreateMigrateChannelCommand() *MigrateChannelCommand {
	cmd := &MigrateChannelCommand{
		fs: flag.NewFlagSet("migrate-channel", flag.ExitOnError),
	}
	cmd.device = registerDeviceFlags(cmd.fs)
	cmd.fs.IntVar(&cmd.channel, "channel", 0, "Target 2.4 GHz channel (0 = automatic selection)")
	return cmd
}

// MigrateChannelCommand moves the 2.4 GHz radio to another channel, e.g.
// away from a congested one.
type MigrateChannelCommand struct {
	fs      *flag.FlagSet
	device  *deviceFlags
	modem   modem.Modem
	channel int
}

func (c *MigrateChannelCommand) Name() string {
	return c.fs.Name()
}

func (c *MigrateChannelCommand) Init(args []string, ctx *AppContext) error {
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

func (c *MigrateChannelCommand) Run() error {
	defer c.modem.Close()

	if err := c.modem.MigrateChannel(c.channel); err != nil {
		return err
	}

	if c.channel == 0 {
		log.Infof("Channel selection set to automatic")
	} else {
		log.Infof("Radio is moving to channel %d", c.channel)
	}
	return nil
}
