package commands

import (
	"flag"

	"github.com/automodemadmin/modemadm/lib/api"
	"github.com/automodemadmin/modemadm/lib/config"
)

func CreateServeCommand() *ServeCommand {
	cmd := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}
	cmd.device = registerDeviceFlags(cmd.fs)
	cmd.fs.StringVar(&cmd.bind, "bind", "", "Bind address for the REST API (default from config, "+config.DefaultAPIBind+")")
	return cmd
}

// ServeCommand runs the local REST facade around the modem so
// home-automation callers can trigger actions over HTTP.
type ServeCommand struct {
	fs     *flag.FlagSet
	device *deviceFlags
	bind   string
	server *api.Server
}

func (c *ServeCommand) Name() string {
	return c.fs.Name()
}

func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	model, opts, dev, err := c.device.buildDevice(ctx)
	if err != nil {
		return err
	}

	bind := c.bind
	if bind == "" {
		bind = config.DefaultAPIBind
		if cfg, err := loadConfigIfPresent(ctx.ConfigPath); err == nil && cfg != nil {
			bind = cfg.APIBind()
		}
	}

	c.server = api.NewServer(bind, dev, model, opts.IPAddress)
	return nil
}

func (c *ServeCommand) Run() error {
	return c.server.Start()
}
