// Telemetry data model shared by sources, the frame loop, and sinks
package telemetry

// Sample is one normalized telemetry reading. A Sample is never mutated
// after construction; a newer valid reading supersedes it wholesale.
type Sample struct {
	Timestamp     string  `json:"ts"`
	Altitude      float64 `json:"altitude"`
	Pressure      float64 `json:"pressure"`
	Temperature   float64 `json:"temperature"`
	GPSAltitude   float64 `json:"gps_altitude"`
	Latitude      float64 `json:"lat"`
	Longitude     float64 `json:"lon"`
	GyroX         float64 `json:"gyro_x"`
	GyroY         float64 `json:"gyro_y"`
	GyroZ         float64 `json:"gyro_z"`
	AccelerationX float64 `json:"accel_x"`
	AccelerationY float64 `json:"accel_y"`
	AccelerationZ float64 `json:"accel_z"`
	Pitch         float64 `json:"pitch"`
	Yaw           float64 `json:"yaw"`
	Roll          float64 `json:"roll"`
	Battery       float64 `json:"battery"`
	State         int     `json:"state"`
}

// Flight state codes as written by the flight computer.
const (
	StateIdle    = 0
	StateAscent  = 1
	StateApogee  = 2
	StateDescent = 3
)
