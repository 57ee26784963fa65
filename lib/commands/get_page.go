package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/modem"
)

func CreateGetPageCommand() *GetPageCommand {
	cmd := &GetPageCommand{
		fs: flag.NewFlagSet("get-page", flag.ExitOnError),
	}
	cmd.device = registerDeviceFlags(cmd.fs)
	cmd.fs.StringVar(&cmd.output, "output", "", "Write the page to this file instead of stdout")
	return cmd
}

// GetPageCommand fetches an arbitrary admin page from the modem.
type GetPageCommand struct {
	fs     *flag.FlagSet
	device *deviceFlags
	modem  modem.Modem
	page   string
	output string
}

func (c *GetPageCommand) Name() string {
	return c.fs.Name()
}

func (c *GetPageCommand) Init(args []string, ctx *AppContext) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	c.page = c.fs.Arg(0)
	if c.page == "" {
		return fmt.Errorf("usage: get-page [options] <page>")
	}

	if c.output == "" {
		// Page body goes to stdout, keep it pipeable.
		log.SetForceStdErr(true)
	}

	_, _, dev, err := c.device.buildDevice(ctx)
	if err != nil {
		return err
	}
	c.modem = dev

	return nil
}

func (c *GetPageCommand) Run() error {
	defer c.modem.Close()

	body, err := c.modem.GetPage(c.page)
	if err != nil {
		return err
	}

	if c.output == "" {
		if _, err := os.Stdout.WriteString(body); err != nil {
			return fmt.Errorf("failed to write page to stdout: %v", err)
		}
		return nil
	}

	if err := os.WriteFile(c.output, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write page to %s: %v", c.output, err)
	}

	log.Infof("Wrote %s (%d bytes) to %s", c.page, len(body), c.output)
	return nil
}
