package dynamic

import "sync"

// Object is the polymorphic object abstraction from spec §3/§4.1: either a
// mutable, insertion-ordered Map, or a read-only View over a host value.
// Both expose the same read surface so path resolution and equality never
// need to know which one they're looking at.
type Object interface {
	// Fields returns field names in the object's declared order.
	Fields() []string
	// Get looks up a field by name.
	Get(name string) (Dynamic, bool)
}

// Map is a shared-ownership, interior-mutable, insertion-ordered map from
// string key to Dynamic.
type Map struct {
	mu     sync.RWMutex
	order  []string
	values map[string]Dynamic
}

// NewMap builds an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Dynamic)}
}

// NewMapFromPairs builds a Map preserving the given declaration order.
// Later duplicate keys overwrite earlier ones without moving their
// position, matching ordinary JSON-object construction.
func NewMapFromPairs(pairs []KV) *Map {
	m := NewMap()
	for _, kv := range pairs {
		m.Set(kv.Key, kv.Value)
	}
	return m
}

// KV is a single ordered key/value pair, used to build a Map while
// preserving declaration order (e.g. from an Object literal).
type KV struct {
	Key   string
	Value Dynamic
}

func (m *Map) Fields() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Map) Get(name string) (Dynamic, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok
}

// Set inserts or replaces a field, returning the previous value if any.
// New keys are appended to the insertion order; replaced keys keep their
// existing position, matching spec §3's "Map preserves insertion order".
func (m *Map) Set(name string, value Dynamic) (prev Dynamic, hadPrev bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, hadPrev = m.values[name]
	if !hadPrev {
		m.order = append(m.order, name)
	}
	m.values[name] = value
	return prev, hadPrev, nil
}

// Remove deletes a field, returning the previous value if any.
func (m *Map) Remove(name string) (prev Dynamic, hadPrev bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, hadPrev = m.values[name]
	if hadPrev {
		delete(m.values, name)
		for i, k := range m.order {
			if k == name {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
	return prev, hadPrev, nil
}

// View is a read-only Object backed by a host-supplied field lister and
// getter. Mutating a View always fails with ErrImmutableObject (enforced
// by the type switch in Dynamic.SetObjectField/RemoveObjectField: View
// does not implement *Map, so it falls through to that error).
type View struct {
	fields []string
	get    func(name string) (Dynamic, bool)
}

// NewView builds a View over an explicit ordered field list and getter.
// Used directly by hosts that already have an efficient field accessor;
// ViewOf (in reflect.go) builds one from an arbitrary Go struct.
func NewView(fields []string, get func(name string) (Dynamic, bool)) *View {
	cp := make([]string, len(fields))
	copy(cp, fields)
	return &View{fields: cp, get: get}
}

func (v *View) Fields() []string {
	out := make([]string, len(v.fields))
	copy(out, v.fields)
	return out
}

func (v *View) Get(name string) (Dynamic, bool) {
	return v.get(name)
}
