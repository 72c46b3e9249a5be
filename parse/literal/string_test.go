package literal_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/Rastler3D/query-lang/parse/literal"
)

func TestUnquoteBasicEscapes(t *testing.T) {
	cases := []struct{ in, out string }{
		{`hello`, "hello"},
		{`a\nb`, "a\nb"},
		{`a\tb`, "a\tb"},
		{`a\\b`, `a\b`},
		{`a\/b`, "a/b"},
		{`a\"b`, `a"b`},
		{`a\bb`, "a\bb"},
		{`a\fb`, "a\fb"},
		{`a\rb`, "a\rb"},
		{`café`, "café"},
	}
	for _, c := range cases {
		got, err := literal.Unquote(c.in)
		qt.Assert(t, qt.IsNil(err), qt.Commentf("input %q", c.in))
		qt.Assert(t, qt.Equals(got, c.out), qt.Commentf("input %q", c.in))
	}
}

func TestUnquoteSurrogatePair(t *testing.T) {
	got, err := literal.Unquote("\\uD834\\uDD1E")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "\U0001D11E"))
}

func TestUnquoteLoneHighSurrogateIsError(t *testing.T) {
	_, err := literal.Unquote(`\uD834\uD834`)
	qt.Assert(t, qt.ErrorIs(err, literal.ErrSurrogate))

	_, err = literal.Unquote(`\uD834x`)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestUnquoteLoneLowSurrogatePassesThrough(t *testing.T) {
	// JSON permits an unpaired low surrogate; it decodes to U+FFFD, and it
	// isn't this decoder's job to reject it (it isn't the "a high
	// surrogate must be followed by a low one" case spec §4.4 calls out).
	_, err := literal.Unquote(`\uDD1E`)
	qt.Assert(t, qt.IsNil(err))
}
