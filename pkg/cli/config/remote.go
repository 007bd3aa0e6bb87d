package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/fixwatch/pkg/infra/remote"
	"github.com/urfave/cli/v3"
)

type Remote struct {
	baseURL string
	timeout time.Duration
}

func (x *Remote) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the monitoring service API",
			Category:    "Remote",
			Value:       "http://localhost:8000",
			Sources:     cli.EnvVars("FIXWATCH_API_URL"),
			Destination: &x.baseURL,
		},
		&cli.DurationFlag{
			Name:        "api-timeout",
			Usage:       "Timeout for one remote API call",
			Category:    "Remote",
			Value:       remote.DefaultTimeout,
			Sources:     cli.EnvVars("FIXWATCH_API_TIMEOUT"),
			Destination: &x.timeout,
		},
	}
}

func (x *Remote) New() (interfaces.RemoteService, error) {
	if x.baseURL == "" {
		return nil, goerr.New("API URL is required")
	}

	return remote.New(x.baseURL, remote.WithTimeout(x.timeout)), nil
}

func (x *Remote) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("BaseURL", x.baseURL),
		slog.Any("Timeout", x.timeout),
	)
}
