// Package arena provides the bump allocators the GUI core builds each frame from.
//
// Three shapes are offered:
//
//   - Arena: a byte bump allocator over one fixed block, with LIFO markers and full reset.
//   - Pool[T]: a typed bump pool whose elements are addressed by Handle indices.
//   - DoubleBuffer: two arenas swapped every frame so last frame's data stays readable.
//
// Exhausting a block or breaking marker nesting is a programming error, not a runtime
// condition. Both panic with an *Error tagged with the caller's file and line.
package arena

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"unsafe"
)

const wordSize = 8

// ErrorKind classifies a fatal arena misuse.
type ErrorKind uint8

const (
	ErrExhausted   ErrorKind = iota + 1 // allocation beyond capacity
	ErrMarkerOrder                      // marker restored out of LIFO order or twice
	ErrPointerType                      // typed allocation of a type holding pointers
	ErrOpenMarker                       // reset while a marker is still open
)

func (k ErrorKind) String() string {
	switch k {
	case ErrExhausted:
		return "exhausted"
	case ErrMarkerOrder:
		return "marker order"
	case ErrPointerType:
		return "pointer type"
	case ErrOpenMarker:
		return "open marker"
	default:
		return "unknown"
	}
}

// Error is the panic value for fatal arena misuse.
type Error struct {
	Kind ErrorKind
	Msg  string
	File string
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: arena %s: %s", e.File, e.Line, e.Kind, e.Msg)
}

// fatal panics with an *Error tagged with the first caller outside this package.
func fatal(kind ErrorKind, format string, args ...any) {
	file, line := callerOutside()
	panic(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...), File: file, Line: line})
}

func callerOutside() (string, int) {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	self := reflect.TypeFor[Arena]().PkgPath() + "."
	var last runtime.Frame
	for {
		f, more := frames.Next()
		last = f
		if !strings.HasPrefix(f.Function, self) || !more {
			break
		}
	}
	return last.File, last.Line
}

// Arena is a bump allocator over a fixed memory block.
// Every allocation except AllocRaw is zeroed. Individual allocations are never freed:
// memory is released by restoring a Marker or by Reset.
type Arena struct {
	name    string
	buf     []byte
	used    int
	depth   int // number of open markers
	scratch []byte
}

// New creates an arena owning capacity bytes.
func New(name string, capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	// Back the block with words so the base is 8-byte aligned for typed allocations.
	words := make([]uint64, (capacity+wordSize-1)/wordSize)
	var buf []byte
	if len(words) > 0 {
		buf = unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), capacity)
	}
	return &Arena{name: name, buf: buf}
}

// Name returns the label given at creation.
func (a *Arena) Name() string { return a.name }

// Used returns the number of bytes handed out, including alignment padding.
func (a *Arena) Used() int { return a.used }

// Cap returns the size of the block.
func (a *Arena) Cap() int { return len(a.buf) }

// Alloc returns size zeroed bytes aligned to a machine word.
func (a *Arena) Alloc(size int) []byte {
	b := a.alloc(size, wordSize)
	clear(b)
	return b
}

// AllocRaw returns size bytes without clearing them.
func (a *Arena) AllocRaw(size int) []byte {
	return a.alloc(size, 1)
}

func (a *Arena) alloc(size, align int) []byte {
	if size < 0 {
		fatal(ErrExhausted, "%s: negative allocation %d", a.name, size)
	}
	start := (a.used + align - 1) &^ (align - 1)
	end := start + size
	if end > len(a.buf) {
		fatal(ErrExhausted, "%s: need %d bytes at offset %d, capacity %d", a.name, size, start, len(a.buf))
	}
	a.used = end
	return a.buf[start:end:end]
}

// Reset rewinds the arena to empty, invalidating every prior allocation.
func (a *Arena) Reset() {
	if a.depth != 0 {
		fatal(ErrOpenMarker, "%s: reset with %d open marker(s)", a.name, a.depth)
	}
	a.used = 0
}

// Sprintf formats into the arena and returns a string view of the arena bytes.
// The string is valid until the arena is reset or rewound past it.
func (a *Arena) Sprintf(format string, args ...any) string {
	a.scratch = fmt.Appendf(a.scratch[:0], format, args...)
	return a.String(a.scratch)
}

// String copies b into the arena and returns a string view of the copy.
func (a *Arena) String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	dst := a.AllocRaw(len(b))
	copy(dst, b)
	return unsafe.String(&dst[0], len(dst))
}

// Marker captures an arena cursor. Restore rewinds to it.
// Markers nest strictly: only the most recently created open marker may be restored.
type Marker struct {
	a        *Arena
	pos      int
	depth    int
	restored bool
}

// Mark opens a marker at the current cursor.
//
//	m := a.Mark()
//	defer m.Restore()
func (a *Arena) Mark() Marker {
	a.depth++
	return Marker{a: a, pos: a.used, depth: a.depth}
}

// Restore rewinds the arena to the marker's position.
func (m *Marker) Restore() {
	a := m.a
	if a == nil {
		fatal(ErrMarkerOrder, "restore of zero marker")
	}
	if m.restored {
		fatal(ErrMarkerOrder, "%s: marker restored twice", a.name)
	}
	if m.depth != a.depth {
		fatal(ErrMarkerOrder, "%s: restoring marker %d while marker %d is open", a.name, m.depth, a.depth)
	}
	if m.pos > a.used {
		fatal(ErrMarkerOrder, "%s: marker at %d is ahead of cursor %d", a.name, m.pos, a.used)
	}
	a.used = m.pos
	a.depth--
	m.restored = true
}

// Scoped runs fn and rewinds everything it allocated.
func (a *Arena) Scoped(fn func()) {
	m := a.Mark()
	defer m.Restore()
	fn()
}

var pointerFree sync.Map // reflect.Type -> bool

// AllocOne allocates one zeroed T in the arena.
// T must not contain pointers: arena memory is not scanned by the garbage collector.
func AllocOne[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	checkPointerFree[T]()
	b := a.alloc(size, int(unsafe.Alignof(zero)))
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates n zeroed elements of T in the arena.
// The same pointer restriction as AllocOne applies.
func AllocSlice[T any](a *Arena, n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil
	}
	if size == 0 {
		return make([]T, n)
	}
	checkPointerFree[T]()
	b := a.alloc(size*n, int(unsafe.Alignof(zero)))
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

func checkPointerFree[T any]() {
	t := reflect.TypeFor[T]()
	if ok, cached := pointerFree.Load(t); cached {
		if !ok.(bool) {
			fatal(ErrPointerType, "%v holds pointers", t)
		}
		return
	}
	ok := !hasPointers(t)
	pointerFree.Store(t, ok)
	if !ok {
		fatal(ErrPointerType, "%v holds pointers", t)
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
