package cachecontrol

import (
	"net/http"
	"time"

	directive "github.com/always-cache/cache-control/pkg/cache-directive"
)

// TTLs assigned by the status-driven policy. These are fixed policy
// values, not tunables.
const (
	// FallbackTTL is the max-age used when no default directive is
	// configured.
	FallbackTTL = 5 * time.Second
	// MovedPermanentlyTTL is the max-age forced on 301 responses.
	MovedPermanentlyTTL = 24 * time.Hour
	// ServerErrorTTL is the max-age forced on 5xx (and unknown status)
	// responses.
	ServerErrorTTL = 30 * time.Minute
)

// Decide computes the Cache-Control directive to attach to a response,
// given its status code, the request hint (zero when the request
// carried none), and the effective default directive.
//
// It is only consulted for responses that carry no Cache-Control header
// of their own:
//   - 301 gets a one-day public TTL, since the move is permanent;
//   - 1xx and 2xx take the request hint, falling back to the default;
//   - other 3xx take the hint or default, kept out of shared caches;
//   - 4xx are not cached at all;
//   - 5xx and anything unknown get a 30-minute public TTL.
//
// Decide is pure: the same inputs always yield the same directive.
func Decide(status int, hint, def directive.Directive) directive.Directive {
	switch {
	case status == http.StatusMovedPermanently:
		return def.WithMaxAge(MovedPermanentlyTTL).WithPublic()
	case status >= 100 && status < 300:
		if !hint.IsZero() {
			return hint
		}
		return def
	case status >= 300 && status < 400:
		if !hint.IsZero() {
			return hint.WithPrivate()
		}
		return def.WithPrivate()
	case status >= 400 && status < 500:
		return def.WithNoCache().WithPrivate()
	default:
		return def.WithMaxAge(ServerErrorTTL).WithPublic()
	}
}
