package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automodemadmin/modemadm/lib/commands"
	"github.com/automodemadmin/modemadm/lib/log"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/etc/modemadm/modemadm.conf", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Modem Web Admin Automation\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  reboot                  Reboot the modem\n")
		fmt.Fprintf(os.Stderr, "  get-page <page>         Fetch an admin page from the modem\n")
		fmt.Fprintf(os.Stderr, "  reset-wifi              Power-cycle the modem's Wi-Fi radios\n")
		fmt.Fprintf(os.Stderr, "  migrate-channel         Move the 2.4 GHz radio to another channel\n")
		fmt.Fprintf(os.Stderr, "  detect                  Report the default gateway (the likely modem address)\n")
		fmt.Fprintf(os.Stderr, "  diagnose                Run reachability checks against the modem\n")
		fmt.Fprintf(os.Stderr, "  serve                   Expose the modem actions over a local REST API\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	log.SetVerbose(ctx.Verbose)

	cmds := []commands.Runner{
		commands.CreateRebootCommand(),
		commands.CreateGetPageCommand(),
		commands.CreateResetWifiCommand(),
		commands.CreateMigrateChannelCommand(),
		commands.CreateDetectCommand(),
		commands.CreateDiagnoseCommand(),
		commands.CreateServeCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
