// Particle data model and population storage for the visual effects engine
package particles

// Particle is one transient visual entity. Position and velocity are in
// screen pixels; life is in seconds. Radius is fixed at creation.
type Particle struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	VX          float64 `json:"-"`
	VY          float64 `json:"-"`
	Life        float64 `json:"-"`
	InitialLife float64 `json:"-"`
	R           uint8   `json:"r"`
	G           uint8   `json:"g"`
	B           uint8   `json:"b"`
	Alpha       uint8   `json:"alpha"`
	Radius      float64 `json:"radius"`
}

// population is a dense particle arena. Removal is a compaction pass over
// the backing array, so steady-state emission causes no per-frame
// allocation once the slice has grown to its working size.
type population struct {
	items []Particle
}

func (p *population) add(pt Particle) {
	p.items = append(p.items, pt)
}

// advance integrates every particle, then compacts out the expired ones.
// Integration runs before the cull so a particle reaching the end of its
// life still gets its alpha driven to zero on its final tick.
func (p *population) advance(dt float64) {
	for i := range p.items {
		pt := &p.items[i]
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.Life -= dt

		frac := pt.Life / pt.InitialLife
		if frac < 0 {
			frac = 0
		}
		pt.Alpha = uint8(255*frac + 0.5)
	}

	live := p.items[:0]
	for _, pt := range p.items {
		if pt.Life > 0 {
			live = append(live, pt)
		}
	}
	p.items = live
}

func (p *population) snapshot() []Particle {
	out := make([]Particle, len(p.items))
	copy(out, p.items)
	return out
}
