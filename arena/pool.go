package arena

// Handle addresses an element of a Pool. The zero Handle is nil.
type Handle int32

// Nil is the zero Handle, never returned by Alloc.
const Nil Handle = 0

// Valid reports whether h refers to an element.
func (h Handle) Valid() bool { return h > Nil }

// Pool is a typed bump allocator with a fixed capacity.
// Elements are handed out zeroed and stay at stable addresses until Reset,
// so both the Handle and the returned pointer remain valid for the pool's epoch.
// Unlike Arena, T may hold pointers: the backing store is an ordinary slice.
type Pool[T any] struct {
	name  string
	items []T // items[0] backs Nil and is never handed out
	depth int
}

// NewPool creates a pool holding up to capacity elements.
func NewPool[T any](name string, capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{name: name, items: make([]T, 1, capacity+1)}
}

// Alloc appends a zeroed element and returns its handle and address.
func (p *Pool[T]) Alloc() (Handle, *T) {
	if len(p.items) == cap(p.items) {
		fatal(ErrExhausted, "%s: pool full at %d elements", p.name, cap(p.items)-1)
	}
	var zero T
	p.items = append(p.items, zero)
	h := Handle(len(p.items) - 1)
	return h, &p.items[h]
}

// Get returns the element for h, or nil for Nil and handles past the cursor.
func (p *Pool[T]) Get(h Handle) *T {
	if h <= Nil || int(h) >= len(p.items) {
		return nil
	}
	return &p.items[h]
}

// Len returns the number of live elements.
func (p *Pool[T]) Len() int { return len(p.items) - 1 }

// Cap returns the maximum number of elements.
func (p *Pool[T]) Cap() int { return cap(p.items) - 1 }

// Each calls fn for every live element in allocation order.
func (p *Pool[T]) Each(fn func(Handle, *T)) {
	for i := 1; i < len(p.items); i++ {
		fn(Handle(i), &p.items[i])
	}
}

// Reset drops every element. Cleared slots release whatever they referenced.
func (p *Pool[T]) Reset() {
	if p.depth != 0 {
		fatal(ErrOpenMarker, "%s: reset with %d open marker(s)", p.name, p.depth)
	}
	clear(p.items[1:])
	p.items = p.items[:1]
}

// PoolMarker captures a pool cursor with the same LIFO rules as Marker.
type PoolMarker[T any] struct {
	p        *Pool[T]
	n        int
	depth    int
	restored bool
}

// Mark opens a marker at the current cursor.
func (p *Pool[T]) Mark() PoolMarker[T] {
	p.depth++
	return PoolMarker[T]{p: p, n: len(p.items), depth: p.depth}
}

// Restore drops every element allocated since the marker.
func (m *PoolMarker[T]) Restore() {
	p := m.p
	if p == nil {
		fatal(ErrMarkerOrder, "restore of zero pool marker")
	}
	if m.restored {
		fatal(ErrMarkerOrder, "%s: marker restored twice", p.name)
	}
	if m.depth != p.depth {
		fatal(ErrMarkerOrder, "%s: restoring marker %d while marker %d is open", p.name, m.depth, p.depth)
	}
	if m.n > len(p.items) {
		fatal(ErrMarkerOrder, "%s: marker at %d is ahead of cursor %d", p.name, m.n, len(p.items))
	}
	clear(p.items[m.n:])
	p.items = p.items[:m.n]
	p.depth--
	m.restored = true
}
