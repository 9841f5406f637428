package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	cachecontrol "github.com/always-cache/cache-control"
	directive "github.com/always-cache/cache-control/pkg/cache-directive"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	// Port to listen on.
	Port int `env:"PORT" envDefault:"8080"`
	// URL of the origin server to proxy to.
	Origin string `env:"ORIGIN,required"`
	// Hostname to use for origin requests, e.g. when ORIGIN is an IP.
	OriginHost string `env:"ORIGIN_HOST"`
	// Default Cache-Control directive for responses without one.
	DefaultCacheControl string `env:"DEFAULT_CACHE_CONTROL"`
	// Verbosity: trace logging.
	Trace bool `env:"TRACE"`
	// Log file to use (in addition to stdout).
	LogFile string `env:"LOG_FILE"`
}

// this is set by goreleaser
var version string

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot parse environment")
	}
	if version == "" {
		version = "DEV"
	}

	// set log level
	logLevel := zerolog.DebugLevel
	if cfg.Trace {
		logLevel = zerolog.TraceLevel
	}

	// set up log output to stdout
	// also output to logfile if specified
	logOutputs := make([]io.Writer, 0)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stdout})
	if cfg.LogFile != "" {
		if logFileOutput, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		} else {
			logOutputs = append(logOutputs, logFileOutput)
		}
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()

	originURL, err := url.Parse(cfg.Origin)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not parse origin url")
	}

	proxy := &httputil.ReverseProxy{
		Director: createDirector(originURL, cfg.OriginHost),
	}

	cc := cachecontrol.New(cachecontrol.Config{
		Default: directive.Parse(cfg.DefaultCacheControl),
		Logger:  &log.Logger,
	})

	r := chi.NewRouter()
	r.Use(cc.Middleware)
	r.Handle("/*", proxy)

	log.Info().Msgf("Proxying port %v to %s (with hostname '%s')", cfg.Port, originURL.String(), cfg.OriginHost)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func createDirector(origin *url.URL, hostHeader string) func(req *http.Request) {
	return func(req *http.Request) {
		req.URL.Scheme = origin.Scheme
		req.URL.Host = origin.Host
		if hostHeader != "" {
			req.Host = hostHeader
		}
	}
}
