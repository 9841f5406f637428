package directive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	var d Directive
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, d.NoCache())

	_, ok := d.MaxAge()
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"max age", "max-age=120", "max-age=120"},
		{"no cache", "no-cache", "no-cache"},
		{"multiple directives", "max-age=60, public", "max-age=60, public"},
		{"case insensitive names", "Max-Age=60, Public", "max-age=60, public"},
		{"quoted argument", `max-age="60"`, "max-age=60"},
		{"whitespace tolerant", " max-age=60 ,private ", "max-age=60, private"},
		{"unknown tokens ignored", "immutable, stale-while-revalidate=30", ""},
		{"negative max age ignored", "max-age=-1", ""},
		{"garbage argument ignored", "max-age=abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.header).String())
		})
	}
}

func TestParseEmptyIsZero(t *testing.T) {
	assert.True(t, Parse("").IsZero())
	assert.True(t, Parse("immutable").IsZero())
}

func TestBuilders(t *testing.T) {
	d := Directive{}.WithMaxAge(time.Minute)
	age, ok := d.MaxAge()
	assert.True(t, ok)
	assert.Equal(t, time.Minute, age)

	// builders return copies
	e := d.WithPublic()
	assert.False(t, d.Public())
	assert.True(t, e.Public())
}

func TestBuildersNormalizeConflicts(t *testing.T) {
	d := Directive{}.WithMaxAge(time.Hour).WithNoCache()
	assert.Equal(t, "no-cache", d.String())

	d = Directive{}.WithNoCache().WithMaxAge(time.Minute)
	assert.Equal(t, "max-age=60", d.String())

	d = Directive{}.WithPrivate().WithPublic()
	assert.Equal(t, "public", d.String())

	d = Directive{}.WithPublic().WithPrivate()
	assert.Equal(t, "private", d.String())
}

func TestEquality(t *testing.T) {
	a := Directive{}.WithMaxAge(time.Minute).WithPublic()
	b := Parse("public, max-age=60")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, a.WithPrivate())
}
