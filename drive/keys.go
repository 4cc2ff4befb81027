package drive

import "sort"

// Key identifies a keyboard key by its web-style name, e.g. "w" or "ArrowUp".
type Key string

const (
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

var directional = map[Key]struct{}{
	KeyW:          {},
	KeyA:          {},
	KeyS:          {},
	KeyD:          {},
	KeyArrowUp:    {},
	KeyArrowDown:  {},
	KeyArrowLeft:  {},
	KeyArrowRight: {},
}

// IsDirectional reports whether k drives one of the cars. The host must
// suppress its own handling of these keys.
func IsDirectional(k Key) bool {
	_, ok := directional[k]
	return ok
}

// KeySet is the set of keys currently held down. The zero value is an empty
// set ready to use.
type KeySet struct {
	keys map[Key]struct{}
}

// NewKeySet returns a set holding keys.
func NewKeySet(keys ...Key) KeySet {
	s := KeySet{keys: make(map[Key]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// Add inserts k and reports whether it was absent.
func (s *KeySet) Add(k Key) bool {
	if s.keys == nil {
		s.keys = make(map[Key]struct{})
	}
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

// Remove deletes k and reports whether it was present.
func (s *KeySet) Remove(k Key) bool {
	if _, ok := s.keys[k]; !ok {
		return false
	}
	delete(s.keys, k)
	return true
}

func (s KeySet) Has(k Key) bool {
	_, ok := s.keys[k]
	return ok
}

func (s KeySet) Len() int {
	return len(s.keys)
}

// Keys returns the held keys in lexical order.
func (s KeySet) Keys() []Key {
	out := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of s.
func (s KeySet) Clone() KeySet {
	return NewKeySet(s.Keys()...)
}
