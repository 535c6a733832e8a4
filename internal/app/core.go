package app

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"github.com/rs/zerolog"
	"go.lepovirta.org/shopkit/internal/logging"
	"go.lepovirta.org/shopkit/internal/osenv"
	"go.lepovirta.org/shopkit/internal/sighandle"
)

type Core struct {
	osEnv    osenv.OsEnv
	cliFlags CliFlags
	cfg      Config
}

func (this *Core) Init(osEnv osenv.OsEnv) error {
	this.osEnv = osEnv

	var logConfig logging.Config
	logConfig.FromEnv(AppName, this.osEnv.EnvVars)
	logConfig.SetupGlobal(AppName, this.osEnv.Stderr)

	if err := this.cliFlags.Parse(
		this.osEnv.EnvVars,
		this.osEnv.Args,
		this.osEnv.Stderr,
	); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("failed to parse CLI flags: %w", err)
	}

	if err := parseConfig(this.osEnv, &this.cliFlags, &this.cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func (this *Core) Run(ctx context.Context) error {
	ctx, sigCancel := sighandle.CancelOnSignals(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer sigCancel()

	log := zerolog.Ctx(ctx)
	log.Debug().Str("command", this.cliFlags.Command).Msg("run command")

	switch this.cliFlags.Command {
	case "coupons":
		return this.runCoupons()
	case "discount":
		return this.runDiscount()
	case "validate":
		return this.runValidate()
	case "username":
		return this.runUsername()
	case "candrive":
		return this.runCanDrive()
	case "status":
		return this.runStatus()
	default:
		return fmt.Errorf("unknown command: %s", this.cliFlags.Command)
	}
}
