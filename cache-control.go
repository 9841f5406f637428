// Package cachecontrol is net/http middleware that assigns a
// Cache-Control response header based on the response status code and
// any caching hint on the incoming request.
//
// The middleware never overrides a Cache-Control header set by the
// wrapped handler, and it caches nothing itself: it only tells
// downstream caches (browsers, CDNs) how to behave.
package cachecontrol

import (
	"net/http"

	directive "github.com/always-cache/cache-control/pkg/cache-directive"
	headerwriter "github.com/always-cache/cache-control/pkg/header-writer"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const headerName = "Cache-Control"

type Config struct {
	// Default directive to use when the status-driven policy does not
	// force a value of its own. The zero value selects the built-in
	// fallback of a 5-second max-age.
	Default directive.Directive
	// Logger to use. The global zerolog logger is used if nil.
	Logger *zerolog.Logger
}

// CacheControl holds the configured default directive. Each call to
// Middleware produces an independent handler wrapper; instances are
// safe for concurrent use.
type CacheControl struct {
	def directive.Directive
	log zerolog.Logger
}

// New creates a CacheControl instance from the given config.
func New(config Config) *CacheControl {
	logger := log.Logger
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &CacheControl{
		def: config.Default,
		log: logger,
	}
}

// Middleware wraps next so that every response it produces carries a
// Cache-Control header.
//
// On each request the middleware reads the request's own Cache-Control
// header as a hint (an empty one counts as absent), forwards the
// request to next unchanged, and - just before the response headers go
// out - attaches the policy decision for the response status. A header
// set by next itself is always left untouched. If next panics, the
// panic propagates with no header mutation.
func (c *CacheControl) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		def := c.def
		if def.IsZero() {
			def = directive.Directive{}.WithMaxAge(FallbackTTL)
		}
		// read the hint up front so later header mutations cannot
		// change the decision
		hint := directive.Parse(r.Header.Get(headerName))

		hw := headerwriter.New(w, func(statusCode int) {
			c.apply(statusCode, hint, def, w.Header())
		})
		next.ServeHTTP(hw, r)

		// a handler that wrote nothing gets an implicit 200 from the
		// server once we return
		if !hw.WroteHeader() {
			c.apply(http.StatusOK, hint, def, w.Header())
		}
	})
}

func (c *CacheControl) apply(statusCode int, hint, def directive.Directive, header http.Header) {
	if len(header.Values(headerName)) > 0 {
		// the inner handler made its own caching decision
		return
	}
	d := Decide(statusCode, hint, def)
	header.Set(headerName, d.String())
	c.log.Trace().
		Int("status", statusCode).
		Str("directive", d.String()).
		Msg("Setting cache-control header")
}

// Middleware wraps next with the built-in 5-second default, for use
// without any configuration.
func Middleware(next http.Handler) http.Handler {
	return New(Config{}).Middleware(next)
}
