package arena

// DoubleBuffer holds two arenas that trade places every frame.
// Data written to Current during frame N is still readable through Previous during
// frame N+1, which is what one-frame-lagged text and geometry rely on.
type DoubleBuffer struct {
	arenas [2]*Arena
	cur    int
}

// NewDoubleBuffer creates two arenas of capacity bytes each.
func NewDoubleBuffer(name string, capacity int) *DoubleBuffer {
	return &DoubleBuffer{arenas: [2]*Arena{
		New(name+"[0]", capacity),
		New(name+"[1]", capacity),
	}}
}

// Swap makes the previous arena current and resets it before reuse.
func (d *DoubleBuffer) Swap() {
	d.cur ^= 1
	d.arenas[d.cur].Reset()
}

// Current returns the arena being filled this frame.
func (d *DoubleBuffer) Current() *Arena { return d.arenas[d.cur] }

// Previous returns the arena filled last frame.
func (d *DoubleBuffer) Previous() *Arena { return d.arenas[d.cur^1] }
