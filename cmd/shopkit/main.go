package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"go.lepovirta.org/shopkit/internal/app"
	"go.lepovirta.org/shopkit/internal/osenv"
)

func main() {
	var osEnv osenv.OsEnv
	var core app.Core

	osEnv.FromRealEnv()
	if err := core.Init(osEnv); err != nil {
		handleError(err)
	}

	if err := core.Run(context.Background()); err != nil {
		handleError(err)
	}
}

func handleError(err error) {
	if err == flag.ErrHelp {
		os.Exit(1)
	}
	log.Error().Err(err).Msg("fatal error")
	os.Exit(1)
}
