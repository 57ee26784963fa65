package commands

import (
	"flag"

	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/netdetect"
)

func CreateDetectCommand() *DetectCommand {
	return &DetectCommand{
		fs: flag.NewFlagSet("detect", flag.ExitOnError),
	}
}

// DetectCommand reports the host's default gateway, which on home networks
// is almost always the modem.
type DetectCommand struct {
	fs *flag.FlagSet
}

func (c *DetectCommand) Name() string {
	return c.fs.Name()
}

func (c *DetectCommand) Init(args []string, ctx *AppContext) error {
	return c.fs.Parse(args)
}

func (c *DetectCommand) Run() error {
	gw, err := netdetect.DefaultGateway()
	if err != nil {
		return err
	}

	if gw.Interface != "" {
		log.Infof("Default gateway: %s (via %s)", gw.IP, gw.Interface)
	} else {
		log.Infof("Default gateway: %s", gw.IP)
	}
	return nil
}
