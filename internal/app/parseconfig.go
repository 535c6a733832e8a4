package app

import (
	"bufio"
	"fmt"

	"go.lepovirta.org/shopkit/internal/file"
	"go.lepovirta.org/shopkit/internal/osenv"
)

func parseConfig(
	osEnv osenv.OsEnv,
	cliFlags *CliFlags,
	cfg *Config,
) error {
	if cliFlags.ConfigPath == "" {
		cfg.Defaults()
		return nil
	}

	if cliFlags.ConfigPath == StdinPath {
		return cfg.Parse(osEnv.EnvVars, osEnv.Stdin)
	}

	var fileReader file.Reader
	fileReader.Init(osEnv.Fs, 1)

	configFile, err := fileReader.Open(cliFlags.ConfigPath)
	if err != nil {
		_ = fileReader.Close()
		return fmt.Errorf(
			"failed to open config in path '%s': %w",
			cliFlags.ConfigPath,
			err,
		)
	}

	if err := cfg.Parse(
		osEnv.EnvVars,
		bufio.NewReader(configFile),
	); err != nil {
		_ = fileReader.Close()
		return err
	}

	return fileReader.Close()
}
