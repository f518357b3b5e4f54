// Exhaust and dust particle emitters with per-frame integration
package particles

import (
	"math"
	"math/rand"
)

// Emitter tuning constants, matched to the flight visualization's look.
const (
	exhaustOffset      = 40.0  // spawn distance behind the rocket center
	exhaustBackSpeed   = 100.0 // backward bias along the exhaust axis
	exhaustJitter      = 50.0  // lateral velocity jitter per axis
	exhaustCountScale  = 2.0   // particles per unit of acceleration magnitude
	dustBaseRate       = 3.0   // baseline dust particles per frame
	dustRateScale      = 0.5   // acceleration contribution to the dust rate
	dustRateFloor      = 0.1   // minimum rate multiplier at rest
	dustSpeedScale     = 50.0  // dust speed per unit of acceleration magnitude
	dustVelJitter      = 20.0  // dust velocity jitter per axis
	dustEdgeJitter     = 100.0 // spawn jitter perpendicular to the nose ray
	radiusMin          = 1.0
	radiusMax          = 3.0
)

// Engine owns the exhaust and dust particle populations. It is not safe
// for concurrent use; the frame loop is its only caller.
type Engine struct {
	width   int
	height  int
	enabled bool
	rng     *rand.Rand
	exhaust population
	dust    population
}

// NewEngine creates an engine for a viewport of the given pixel size.
// When enabled is false both spawners are no-ops and Advance has nothing
// to do, so particle effects can be switched off at zero cost.
func NewEngine(width, height int, enabled bool, seed int64) *Engine {
	return &Engine{
		width:   width,
		height:  height,
		enabled: enabled,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Enabled reports whether the emitters are active.
func (e *Engine) Enabled() bool { return e.enabled }

// SpawnExhaust emits engine-plume particles behind the rocket. The count
// scales with the magnitude of the 3-axis acceleration; at zero thrust
// nothing is emitted.
func (e *Engine) SpawnExhaust(originX, originY, ax, ay, az, pitchDeg float64) {
	if !e.enabled {
		return
	}
	mag := math.Sqrt(ax*ax + ay*ay + az*az)
	count := int(mag * exhaustCountScale)

	angle := pitchDeg * math.Pi / 180
	noseX, noseY := math.Sin(angle), math.Cos(angle)

	for i := 0; i < count; i++ {
		x := originX - noseX*exhaustOffset
		y := originY - noseY*exhaustOffset
		vx := e.uniform(-exhaustJitter, exhaustJitter) - noseX*exhaustBackSpeed
		vy := e.uniform(-exhaustJitter, exhaustJitter) - noseY*exhaustBackSpeed
		life := e.uniform(0.5, 1.5)

		e.exhaust.add(Particle{
			X: x, Y: y, VX: vx, VY: vy,
			Life: life, InitialLife: life,
			R: 255, G: uint8(e.intBetween(100, 200)), B: 0,
			Alpha:  255,
			Radius: e.uniform(radiusMin, radiusMax),
		})
	}
}

// SpawnDust emits speed-streak particles ahead of the rocket. Each one
// starts where the nose ray from the viewport center exits the viewport,
// jittered sideways, and streams back past the rocket.
func (e *Engine) SpawnDust(ax, ay, az, pitchDeg float64) {
	if !e.enabled {
		return
	}
	mag := math.Sqrt(ax*ax + ay*ay + az*az)
	rate := mag * dustRateScale
	if rate < dustRateFloor {
		rate = dustRateFloor
	}
	count := int(dustBaseRate * rate)

	angle := pitchDeg * math.Pi / 180
	noseX, noseY := math.Sin(angle), math.Cos(angle)

	for i := 0; i < count; i++ {
		edgeX, edgeY := e.edgeExit(noseX, noseY)

		// Perpendicular jitter spreads spawn points along the edge.
		offset := e.uniform(-dustEdgeJitter, dustEdgeJitter)
		x := clamp(edgeX-noseY*offset, 0, float64(e.width))
		y := clamp(edgeY+noseX*offset, 0, float64(e.height))

		speed := mag * dustSpeedScale
		vx := -noseX*speed + e.uniform(-dustVelJitter, dustVelJitter)
		vy := -noseY*speed + e.uniform(-dustVelJitter, dustVelJitter)

		gray := uint8(e.intBetween(180, 255))
		life := e.uniform(2.0, 4.0)

		e.dust.add(Particle{
			X: x, Y: y, VX: vx, VY: vy,
			Life: life, InitialLife: life,
			R: gray, G: gray, B: gray,
			Alpha:  uint8(e.intBetween(100, 200)),
			Radius: e.uniform(radiusMin, radiusMax),
		})
	}
}

// edgeExit returns the point where a ray from the viewport center along
// (nx, ny) crosses the viewport boundary. The dominant axis decides which
// edge pair is hit; a zero dominant component falls back to the other
// axis so the division is always defined.
func (e *Engine) edgeExit(nx, ny float64) (float64, float64) {
	cx := float64(e.width) / 2
	cy := float64(e.height) / 2

	useX := math.Abs(nx) > math.Abs(ny)
	if useX && nx == 0 {
		useX = false
	}
	if !useX && ny == 0 {
		useX = true
	}

	var t float64
	if useX {
		if nx > 0 {
			t = (float64(e.width) - cx) / nx
		} else {
			t = -cx / nx
		}
	} else {
		if ny > 0 {
			t = (float64(e.height) - cy) / ny
		} else {
			t = -cy / ny
		}
	}
	return cx + nx*t, cy + ny*t
}

// Advance moves the simulation forward by dt seconds: integrate positions,
// burn down lifetimes, recompute fades, and drop expired particles.
func (e *Engine) Advance(dt float64) {
	e.exhaust.advance(dt)
	e.dust.advance(dt)
}

// Snapshot returns render copies of both populations, exhaust first.
func (e *Engine) Snapshot() (exhaust, dust []Particle) {
	return e.exhaust.snapshot(), e.dust.snapshot()
}

func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

// intBetween returns a uniform integer in [lo, hi], both ends inclusive.
func (e *Engine) intBetween(lo, hi int) int {
	return lo + e.rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
