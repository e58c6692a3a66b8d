package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/adapter"
	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/utils"
	"github.com/MKhiriev/go-newsletter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const defaultRequestTimeout = 10 * time.Second

type options struct {
	addr     string
	name     string
	email    string
	timeout  time.Duration
	logLevel string
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("newsletter-client", flag.ContinueOnError)
	fs.StringVar(&opts.addr, "addr", "http://"+config.DefaultHTTPAddress, "newsletter server address host:port or URL")
	fs.StringVar(&opts.name, "name", "", "subscriber name")
	fs.StringVar(&opts.email, "email", "", "subscriber email")
	fs.DurationVar(&opts.timeout, "timeout", defaultRequestTimeout, "request timeout")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("error parsing flags: %w", err)
	}
	return opts, nil
}

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log := logger.NewLogger("newsletter-client", opts.logLevel)

	client, err := adapter.NewHTTPNewsletterAdapter(opts.addr, opts.timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating newsletter adapter")
	}

	traceID := utils.NewUUIDGenerator().GenerateString()
	ctx := utils.WithTraceID(context.Background(), traceID)
	log.Debug().Str("trace_id", traceID).Str("addr", opts.addr).Msg("contacting server")

	if err = client.HealthCheck(ctx); err != nil {
		log.Fatal().Err(err).Msg("server is not healthy")
	}

	version, err := client.Version(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error getting server version")
	} else {
		log.Info().Str("server_version", version).Msg("server is healthy")
	}

	if opts.name == "" && opts.email == "" {
		return
	}

	err = client.Subscribe(ctx, opts.name, opts.email)
	switch {
	case err == nil:
		log.Info().Msg("subscribed")
	case errors.Is(err, adapter.ErrAlreadySubscribed):
		log.Warn().Msg("email is already subscribed")
		os.Exit(1)
	case errors.Is(err, adapter.ErrBadRequest):
		log.Error().Err(err).Msg("server rejected the subscription form")
		os.Exit(1)
	default:
		log.Fatal().Err(err).Msg("error subscribing")
	}
}
