package dynamic_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/Rastler3D/query-lang/dynamic"
)

func TestNumberCrossKindEquality(t *testing.T) {
	cases := []int64{0, 1, -1, 42, 1 << 40}
	for _, n := range cases {
		a := dynamic.Int(n)
		b := dynamic.Float(float64(n))
		qt.Assert(t, qt.IsTrue(dynamic.Equal(a, b)))
		qt.Assert(t, qt.Equals(dynamic.Compare(a, b), 0))
	}
}

func TestOrderedObjectEquality(t *testing.T) {
	m1 := dynamic.NewMapFromPairs([]dynamic.KV{
		{Key: "a", Value: dynamic.Int(1)},
		{Key: "b", Value: dynamic.Int(2)},
	})
	m2 := dynamic.NewMapFromPairs([]dynamic.KV{
		{Key: "b", Value: dynamic.Int(2)},
		{Key: "a", Value: dynamic.Int(1)},
	})
	qt.Assert(t, qt.IsFalse(dynamic.Equal(dynamic.FromObject(m1), dynamic.FromObject(m2))))

	m3 := dynamic.NewMapFromPairs([]dynamic.KV{
		{Key: "a", Value: dynamic.Int(1)},
		{Key: "b", Value: dynamic.Int(2)},
	})
	qt.Assert(t, qt.IsTrue(dynamic.Equal(dynamic.FromObject(m1), dynamic.FromObject(m3))))
}

func TestMapViewOrderedEquality(t *testing.T) {
	m := dynamic.NewMapFromPairs([]dynamic.KV{
		{Key: "x", Value: dynamic.Int(1)},
		{Key: "y", Value: dynamic.Int(2)},
	})
	view := dynamic.NewView([]string{"x", "y"}, func(name string) (dynamic.Dynamic, bool) {
		switch name {
		case "x":
			return dynamic.Int(1), true
		case "y":
			return dynamic.Int(2), true
		}
		return dynamic.Dynamic{}, false
	})
	qt.Assert(t, qt.IsTrue(dynamic.Equal(dynamic.FromObject(m), dynamic.FromObject(view))))

	reordered := dynamic.NewView([]string{"y", "x"}, func(name string) (dynamic.Dynamic, bool) {
		switch name {
		case "x":
			return dynamic.Int(1), true
		case "y":
			return dynamic.Int(2), true
		}
		return dynamic.Dynamic{}, false
	})
	qt.Assert(t, qt.IsFalse(dynamic.Equal(dynamic.FromObject(m), dynamic.FromObject(reordered))))
}

func TestArrayEqualityIsLexicographic(t *testing.T) {
	a := dynamic.FromArray(dynamic.NewArray(dynamic.Int(1), dynamic.Int(2), dynamic.Int(3)))
	b := dynamic.FromArray(dynamic.NewArray(dynamic.Int(1), dynamic.Int(2), dynamic.Int(3)))
	c := dynamic.FromArray(dynamic.NewArray(dynamic.Int(1), dynamic.Int(3), dynamic.Int(2)))
	qt.Assert(t, qt.IsTrue(dynamic.Equal(a, b)))
	qt.Assert(t, qt.IsFalse(dynamic.Equal(a, c)))
	qt.Assert(t, qt.Equals(dynamic.Compare(a, c), -1))
}

func TestVariantRankTieBreak(t *testing.T) {
	// Null=1 < Number=2 < String=3 < Object=4 < Array=5 < Bool=6
	qt.Assert(t, qt.Equals(dynamic.Compare(dynamic.Null, dynamic.Int(0)), -1))
	qt.Assert(t, qt.Equals(dynamic.Compare(dynamic.Int(0), dynamic.String("")), -1))
	qt.Assert(t, qt.Equals(dynamic.Compare(dynamic.String(""), dynamic.FromObject(dynamic.NewMap())), -1))
	qt.Assert(t, qt.Equals(dynamic.Compare(dynamic.FromObject(dynamic.NewMap()), dynamic.FromArray(dynamic.NewArray())), -1))
	qt.Assert(t, qt.Equals(dynamic.Compare(dynamic.FromArray(dynamic.NewArray()), dynamic.Bool(false)), -1))
}

func TestViewIsImmutable(t *testing.T) {
	view := dynamic.NewView([]string{"a"}, func(string) (dynamic.Dynamic, bool) { return dynamic.Int(1), true })
	v := dynamic.FromObject(view)
	_, _, err := v.SetObjectField("a", dynamic.Int(2))
	qt.Assert(t, qt.ErrorMatches(err, "immutable object"))
	_, _, err = v.RemoveObjectField("a")
	qt.Assert(t, qt.ErrorMatches(err, "immutable object"))
}

func TestMapFieldAccessors(t *testing.T) {
	v := dynamic.FromObject(dynamic.NewMap())
	_, _, err := v.SetObjectField("a", dynamic.Int(1))
	qt.Assert(t, qt.IsNil(err))
	got, ok := v.GetObjectField("a")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(dynamic.Equal(got, dynamic.Int(1))))

	_, ok = v.GetObjectField("missing")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestNotAnObjectNotAnArray(t *testing.T) {
	_, _, err := dynamic.Int(1).SetObjectField("a", dynamic.Null)
	qt.Assert(t, qt.ErrorMatches(err, "not an object"))

	_, _, err = dynamic.Int(1).GetArrayItem(0)
	qt.Assert(t, qt.ErrorMatches(err, "not an array"))
}

func TestIsEmpty(t *testing.T) {
	qt.Assert(t, qt.IsFalse(dynamic.Null.IsEmpty()))
	qt.Assert(t, qt.IsTrue(dynamic.String("").IsEmpty()))
	qt.Assert(t, qt.IsFalse(dynamic.String("x").IsEmpty()))
	qt.Assert(t, qt.IsTrue(dynamic.FromArray(dynamic.NewArray()).IsEmpty()))
	qt.Assert(t, qt.IsTrue(dynamic.FromObject(dynamic.NewMap()).IsEmpty()))
}

type testHost struct {
	Field1 string
	Field2 testHostInner
}

type testHostInner struct {
	Field3 int
	Field4 bool
}

func TestViewOfReflectsStructFields(t *testing.T) {
	host := testHost{Field1: "TODWA", Field2: testHostInner{Field3: 12, Field4: true}}
	v := dynamic.FromObject(dynamic.ViewOf(host))
	got, ok := v.GetObjectField("Field1")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(dynamic.Equal(got, dynamic.String("TODWA"))))

	inner, ok := v.GetObjectField("Field2")
	qt.Assert(t, qt.IsTrue(ok))
	field3, ok := inner.GetObjectField("Field3")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(dynamic.Equal(field3, dynamic.Int(12))))
}

func TestFromJSONBytesPreservesOrderAndNumberKind(t *testing.T) {
	v, err := dynamic.FromJSONBytes([]byte(`{"b": 1, "a": 2.5}`))
	qt.Assert(t, qt.IsNil(err))
	obj, ok := v.AsObject()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(obj.Fields(), []string{"b", "a"}))

	bVal, _ := obj.Get("b")
	n, ok := bVal.AsNumber()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(n.IsFloat()))

	aVal, _ := obj.Get("a")
	n, ok = aVal.AsNumber()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(n.IsFloat()))
}
