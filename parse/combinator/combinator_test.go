package combinator_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	c "github.com/Rastler3D/query-lang/parse/combinator"
	"github.com/Rastler3D/query-lang/token"
)

func tag(t string) c.Parser[string] {
	return func(s c.State) (string, c.State, error) {
		if len(s.Rest()) < len(t) || s.Rest()[:len(t)] != t {
			return c.Fail[string]("expected %q", t)(s)
		}
		return t, s.Advance(len(t)), nil
	}
}

func char(r rune) c.Parser[rune] {
	return func(s c.State) (rune, c.State, error) {
		if len(s.Rest()) == 0 || rune(s.Rest()[0]) != r {
			return c.Fail[rune]("expected %q", r)(s)
		}
		return r, s.Advance(1), nil
	}
}

func parse[T any](p c.Parser[T], input string) (T, c.State, error) {
	f := token.NewFile(input)
	return p(c.NewState(f, input))
}

func TestSeparatedTupleOrdered(t *testing.T) {
	p := c.SeparatedTuple2(char(','), tag("Hello"), tag("World"))
	v, rest, err := parse(p, "Hello,World!")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.First, "Hello"))
	qt.Assert(t, qt.Equals(v.Second, "World"))
	qt.Assert(t, qt.Equals(rest.Rest(), "!"))
}

func TestSeparatedTupleFailsOnFirstSubParserFailure(t *testing.T) {
	p := c.SeparatedTuple2(char(','), tag("Hello"), tag("World"))
	_, _, err := parse(p, "Goodbye,World")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestSeparatedPermutationAcceptsEveryOrder(t *testing.T) {
	p := c.SeparatedPermutation2(char(','), tag("Hello"), tag("World"))

	v1, _, err := parse(p, "Hello,World")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v1.First, "Hello"))
	qt.Assert(t, qt.Equals(v1.Second, "World"))

	v2, _, err := parse(p, "World,Hello")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v2.First, "Hello"))
	qt.Assert(t, qt.Equals(v2.Second, "World"))
}

func TestSeparatedPermutationRejectsMissingKey(t *testing.T) {
	p := c.SeparatedPermutation2(char(','), tag("Hello"), tag("World"))
	_, _, err := parse(p, "Hello")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestSeparatedPermutationRejectsDuplicate(t *testing.T) {
	p := c.SeparatedPermutation2(char(','), tag("Hello"), tag("World"))
	_, _, err := parse(p, "Hello,Hello")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestSeparatedPermutation3AllOrders(t *testing.T) {
	p := c.SeparatedPermutation3(char(','), tag("A"), tag("B"), tag("C"))
	for _, input := range []string{"A,B,C", "A,C,B", "B,A,C", "B,C,A", "C,A,B", "C,B,A"} {
		v, _, err := parse(p, input)
		qt.Assert(t, qt.IsNil(err), qt.Commentf("input %q", input))
		qt.Assert(t, qt.Equals(v.First, "A"))
		qt.Assert(t, qt.Equals(v.Second, "B"))
		qt.Assert(t, qt.Equals(v.Third, "C"))
	}
}

func TestCutStopsAltBacktracking(t *testing.T) {
	committed := c.Preceded(char('{'), c.Cut(tag("ok")))
	alt := c.Alt(committed, tag("{oops"))
	_, _, err := parse(alt, "{oops")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestSeparatedList0(t *testing.T) {
	p := c.SeparatedList0(char(','), tag("x"))
	v, rest, err := parse(p, "x,x,x!")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(v, []string{"x", "x", "x"}))
	qt.Assert(t, qt.Equals(rest.Rest(), "!"))

	empty, _, err := parse(p, "!")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(empty, 0))
}
