package types

// DefaultMap is a map that fills missing keys with a value produced by a
// factory function on first access.
//
//	perAccount := NewDefaultMap[common.Address, []common.Address](func() []common.Address { return nil })
//	perAccount.Set(acc, append(perAccount.Get(acc), target))
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap returns an empty DefaultMap backed by defaultFunc.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored under key, storing and returning a default one if absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set stores val under key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// ToMap returns the underlying map. Mutations through it are visible to d.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
