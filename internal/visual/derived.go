// Pure mappings from telemetry to per-frame visual state
package visual

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Background gradient endpoints and the altitude span they cover.
var (
	skyBlue      = RGB{135, 206, 235} // ground level
	midnightBlue = RGB{25, 25, 112}   // at and above maxAltitude
)

const maxAltitude = 5000.0

// BackgroundColor maps altitude in meters to the sky color, fading linearly
// from sky blue at ground level to midnight blue at 5000 m. Altitudes
// outside [0, 5000] clamp to the endpoints.
func BackgroundColor(altitude float64) RGB {
	if altitude < 0 {
		altitude = 0
	}
	if altitude > maxAltitude {
		altitude = maxAltitude
	}
	ratio := altitude / maxAltitude

	return RGB{
		R: lerp(skyBlue.R, midnightBlue.R, ratio),
		G: lerp(skyBlue.G, midnightBlue.G, ratio),
		B: lerp(skyBlue.B, midnightBlue.B, ratio),
	}
}

func lerp(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
}

// Rotation converts telemetry pitch to the on-screen rotation angle.
// Screen rotation is inverted relative to the telemetry pitch sign.
func Rotation(pitchDeg float64) float64 {
	return -pitchDeg
}
