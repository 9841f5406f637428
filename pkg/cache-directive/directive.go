// Package directive models the subset of Cache-Control response
// semantics that the cache-control middleware assigns: freshness
// lifetime (max-age), cache bypass (no-cache), and shared-cache
// visibility (public/private).
//
// A Directive is an immutable value: the With* methods return a
// modified copy. The zero value means "no directive", and two
// directives are equal exactly when `==` says so.
package directive

import (
	"strconv"
	"strings"
	"time"
)

// Directive is a structured Cache-Control header value.
// The zero value represents the absence of any directive.
type Directive struct {
	maxAge    time.Duration
	hasMaxAge bool
	noCache   bool
	public    bool
	private   bool
}

// IsZero reports whether the directive carries no settings at all.
func (d Directive) IsZero() bool {
	return d == Directive{}
}

// WithMaxAge returns a copy with the freshness lifetime set.
// Since max-age asserts cacheability, any no-cache setting is cleared.
func (d Directive) WithMaxAge(age time.Duration) Directive {
	d.maxAge = age
	d.hasMaxAge = true
	d.noCache = false
	return d
}

// WithNoCache returns a copy that requires revalidation before reuse.
// A no-cache directive makes max-age meaningless, so it is cleared.
func (d Directive) WithNoCache() Directive {
	d.noCache = true
	d.maxAge = 0
	d.hasMaxAge = false
	return d
}

// WithPublic returns a copy marked cacheable by shared caches.
// Public and private are mutually exclusive.
func (d Directive) WithPublic() Directive {
	d.public = true
	d.private = false
	return d
}

// WithPrivate returns a copy restricted to private (browser) caches.
// Public and private are mutually exclusive.
func (d Directive) WithPrivate() Directive {
	d.private = true
	d.public = false
	return d
}

// MaxAge returns the freshness lifetime and whether one is set.
func (d Directive) MaxAge() (time.Duration, bool) {
	return d.maxAge, d.hasMaxAge
}

// NoCache reports whether the no-cache directive is set.
func (d Directive) NoCache() bool {
	return d.noCache
}

// Public reports whether the public directive is set.
func (d Directive) Public() bool {
	return d.public
}

// Private reports whether the private directive is set.
func (d Directive) Private() bool {
	return d.private
}

// String serializes the directive as a Cache-Control header value.
// Directives are emitted in a fixed order so that equal values always
// serialize identically. The zero directive serializes to "".
func (d Directive) String() string {
	directives := make([]string, 0, 3)
	if d.hasMaxAge {
		directives = append(directives, "max-age="+strconv.Itoa(int(d.maxAge.Seconds())))
	}
	if d.noCache {
		directives = append(directives, "no-cache")
	}
	if d.public {
		directives = append(directives, "public")
	}
	if d.private {
		directives = append(directives, "private")
	}
	return strings.Join(directives, ", ")
}

// Parse parses a Cache-Control header value into a Directive.
// Directive names are compared case-insensitively, arguments may use
// quoted-string syntax, and tokens outside the modeled subset are
// ignored. An empty or unrecognizable value parses to the zero
// Directive.
func Parse(header string) Directive {
	var d Directive
	for _, token := range strings.Split(header, ",") {
		name, arg, _ := strings.Cut(strings.TrimSpace(token), "=")
		name = strings.ToLower(name)
		arg = strings.Trim(arg, "\"")
		switch name {
		case "max-age":
			if secs, err := strconv.Atoi(arg); err == nil && secs >= 0 {
				d.maxAge = time.Duration(secs) * time.Second
				d.hasMaxAge = true
			}
		case "no-cache":
			d.noCache = true
		case "public":
			d.public = true
		case "private":
			d.private = true
		}
	}
	return d
}
