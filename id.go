package gui

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// ID uniquely identifies a panel or element for state persistence.
// The same (ID stack, key) pair always hashes to the same ID, frame after frame.
// Zero means "no identity".
type ID uint32

// rootSeed seeds hashing when the ID stack is empty.
const rootSeed ID = 0x811c9dc5

func hashBytes(seed ID, data []byte) ID {
	h := fnv.New32a()
	var s [4]byte
	binary.LittleEndian.PutUint32(s[:], uint32(seed))
	h.Write(s[:])
	h.Write(data)
	id := ID(h.Sum32())
	if id == 0 {
		id = 1
	}
	return id
}

func hashString(seed ID, key string) ID {
	return hashBytes(seed, []byte(key))
}

func hashInt(seed ID, n int) ID {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(n))
	return hashBytes(seed, b[:])
}

// splitLabel separates the visible part of "Label##key" from the key.
// The whole string is hashed, so equal visible labels can carry distinct IDs.
func splitLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

func (ctx *Context) idSeed() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return rootSeed
}

// GetID hashes name in the current ID scope.
func (ctx *Context) GetID(name string) ID {
	return hashString(ctx.idSeed(), name)
}

// GetIDInt hashes an integer key in the current ID scope. Useful for items in slices.
func (ctx *Context) GetIDInt(n int) ID {
	return hashInt(ctx.idSeed(), n)
}

// PushID opens a scope keyed by name and returns its ID.
func (ctx *Context) PushID(name string) ID {
	id := ctx.GetID(name)
	ctx.PushIDRaw(id)
	return id
}

// PushIDInt opens a scope keyed by an integer and returns its ID.
func (ctx *Context) PushIDInt(n int) ID {
	id := ctx.GetIDInt(n)
	ctx.PushIDRaw(id)
	return id
}

// PushIDRaw pushes an already computed ID so child scopes derive from exactly that value.
func (ctx *Context) PushIDRaw(id ID) {
	if len(ctx.idStack) >= ctx.cfg.MaxIDDepth {
		ctx.fatalf(ErrIDStackOverflow, "depth %d exceeds MaxIDDepth", len(ctx.idStack)+1)
	}
	ctx.idStack = append(ctx.idStack, id)
}

// PopID closes the innermost scope.
func (ctx *Context) PopID() {
	n := len(ctx.idStack)
	if n == 0 {
		ctx.fatalf(ErrIDStackUnderflow, "PopID with empty stack")
	}
	ctx.idStack = ctx.idStack[:n-1]
}

// CurrentID returns the innermost scope ID, or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
