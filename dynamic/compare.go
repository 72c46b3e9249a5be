package dynamic

// Equal implements the structural equality rule from spec §4.1: same kind
// required except for cross-kind Number (Int vs Float) which compares by
// value after promotion. Object equality compares as *ordered* iteration
// over name/value pairs, so a Map and a View agree only if their fields
// also appear in the same order — re-ordering a Map's keys can break
// equality with a View even though the entry set is unchanged.
func Equal(a, b Dynamic) bool {
	if a.kind == KindNumber && b.kind == KindNumber {
		return a.num.Equal(b.num)
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.str == b.str
	case KindArray:
		return arrayEqual(a.arr, b.arr)
	case KindObject:
		return objectEqual(a.obj, b.obj)
	default:
		return false
	}
}

func arrayEqual(a, b *Array) bool {
	if a == b {
		return true
	}
	ai, bi := a.Items(), b.Items()
	if len(ai) != len(bi) {
		return false
	}
	for i := range ai {
		if !Equal(ai[i], bi[i]) {
			return false
		}
	}
	return true
}

func objectEqual(a, b Object) bool {
	af, bf := a.Fields(), b.Fields()
	if len(af) != len(bf) {
		return false
	}
	for i := range af {
		if af[i] != bf[i] {
			return false
		}
		av, _ := a.Get(af[i])
		bv, ok := b.Get(bf[i])
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// Compare implements the partial order from spec §3/§4.1: within the same
// Kind (or across Int/Float Number), structural comparison; across
// differing Kinds, the fixed variant-rank table breaks the tie. Returns
// -1, 0 or 1.
func Compare(a, b Dynamic) int {
	if a.kind == KindNumber && b.kind == KindNumber {
		return a.num.Compare(b.num)
	}
	if a.kind != b.kind {
		return compareInt(rank[a.kind], rank[b.kind])
	}
	switch a.kind {
	case KindNull:
		return 0
	case KindBool:
		return compareBool(a.b, b.b)
	case KindString:
		return compareString(a.str, b.str)
	case KindArray:
		return compareArray(a.arr, b.arr)
	case KindObject:
		return compareObject(a.obj, b.obj)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareArray compares arrays lexicographically over their ordered
// elements, per spec §4.1.
func compareArray(a, b *Array) int {
	ai, bi := a.Items(), b.Items()
	n := len(ai)
	if len(bi) < n {
		n = len(bi)
	}
	for i := 0; i < n; i++ {
		if c := Compare(ai[i], bi[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(ai), len(bi))
}

// compareObject compares objects lexicographically over their ordered
// name/value pairs, the same way compareArray does for arrays.
func compareObject(a, b Object) int {
	af, bf := a.Fields(), b.Fields()
	n := len(af)
	if len(bf) < n {
		n = len(bf)
	}
	for i := 0; i < n; i++ {
		if c := compareString(af[i], bf[i]); c != 0 {
			return c
		}
		av, _ := a.Get(af[i])
		bv, _ := b.Get(bf[i])
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return compareInt(len(af), len(bf))
}
