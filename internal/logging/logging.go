package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.lepovirta.org/shopkit/internal/envvar"
)

type Config struct {
	Format     string `json:"format"`
	Level      string `json:"level"`
	TimeFormat string `json:"timeFormat"`
}

func (this *Config) FromEnv(appName string, envVars envvar.Vars) {
	this.Level = envVars.GetForApp(appName, "LOG_LEVEL")
	this.Format = envVars.GetForApp(appName, "LOG_FORMAT")
	this.TimeFormat = envVars.GetForApp(appName, "LOG_TIME_FORMAT")
}

func (this *Config) SetupGlobal(
	appName string,
	outStream io.Writer,
) {
	var err error

	if this.TimeFormat != "" {
		zerolog.TimeFieldFormat = this.TimeFormat
	}

	logger := zerolog.New(outStream).
		With().
		Timestamp().
		Str("app", appName).
		Logger()

	var level zerolog.Level
	if this.Level == "" {
		level = zerolog.InfoLevel
	} else {
		level, err = zerolog.ParseLevel(this.Level)
		if err != nil {
			level = zerolog.InfoLevel
		}
	}
	logger = logger.Level(level)
	zerolog.SetGlobalLevel(level)

	output := logFormatToOutput(this.Format, outStream)
	if output != nil {
		logger = logger.Output(output)
	}

	zerolog.DefaultContextLogger = &logger

	if err != nil {
		logger.Warn().Msgf("unknown log level %s", this.Level)
	}
	if output == nil {
		logger.Warn().Msgf("unknown log format: %s", this.Format)
	}
	logger.Debug().Msg("global logging setup done")
}

func logFormatToOutput(logFormat string, outStream io.Writer) io.Writer {
	switch strings.ToLower(logFormat) {
	case "json", "":
		return outStream
	case "pretty":
		return zerolog.ConsoleWriter{Out: outStream}
	default:
		return nil
	}
}
