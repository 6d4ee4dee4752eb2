package input

// directionKeys lists the direction keys in a fixed order.
var directionKeys = [4]Key{KeyUp, KeyLeft, KeyDown, KeyRight}

// Bindings maps physical keys onto direction keys. Several physical keys may
// share a direction (W and the up arrow); the direction counts as held while
// any of them is down.
type Bindings[K comparable] struct {
	to   map[K]Key
	held KeySet
}

// NewBindings copies to into a new binding table with nothing held.
func NewBindings[K comparable](to map[K]Key) *Bindings[K] {
	m := make(map[K]Key, len(to))
	for k, v := range to {
		m[k] = v
	}
	return &Bindings[K]{to: m}
}

// Sync polls every bound key and returns the direction keys whose combined
// state changed since the previous call, in up/left/down/right order.
func (b *Bindings[K]) Sync(pressed func(K) bool) (down, up []Key) {
	var now KeySet
	for phys, k := range b.to {
		if pressed(phys) {
			now = now.With(k)
		}
	}

	for _, k := range directionKeys {
		switch {
		case now.Has(k) && !b.held.Has(k):
			down = append(down, k)
		case !now.Has(k) && b.held.Has(k):
			up = append(up, k)
		}
	}
	b.held = now
	return down, up
}

// Held returns the direction keys held at the last Sync.
func (b *Bindings[K]) Held() KeySet {
	return b.held
}
