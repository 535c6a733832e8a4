package app

import (
	"flag"
	"fmt"
	"io"

	"go.lepovirta.org/shopkit/internal/envvar"
)

const (
	AppName   = "shopkit"
	StdinPath = "-"
)

type CliFlags struct {
	ConfigPath  string
	Command     string
	CommandArgs []string
}

func (this *CliFlags) validate() error {
	if this.Command == "" {
		return fmt.Errorf("no command specified")
	}
	return nil
}

func (this *CliFlags) Parse(
	envVars envvar.Vars,
	args []string,
	output io.Writer,
) error {
	var flagSet flag.FlagSet
	flagSet.Init(AppName, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintf(
			flagSet.Output(),
			"Usage: %s [-config <path>] <command> [options]\n\n"+
				"Commands:\n"+
				"  coupons   List the coupon catalog\n"+
				"  discount  Calculate a discounted price\n"+
				"  validate  Validate user input\n"+
				"  username  Check a display name\n"+
				"  candrive  Check the legal driving age\n"+
				"  status    Show store availability\n\n"+
				"Options:\n",
			args[0],
		)
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(
		&this.ConfigPath,
		"config",
		"",
		"Path to a configuration file. Use '-' to read from STDIN. "+
			"When unset, the built-in defaults are used.",
	)

	if err := flagSet.Parse(args[1:]); err != nil {
		return err
	}

	// Fall back to env vars
	if this.ConfigPath == "" {
		this.ConfigPath = envVars.GetForApp(AppName, "CONFIG_PATH")
	}

	this.Command = flagSet.Arg(0)
	if flagSet.NArg() > 1 {
		this.CommandArgs = flagSet.Args()[1:]
	}

	return this.validate()
}
