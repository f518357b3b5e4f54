package telemetry

import (
	"fmt"
	"strconv"
	"strings"
)

// sampleTokens is the number of mandatory whitespace-separated fields in one
// log line. Tokens beyond the 18th are ignored.
const sampleTokens = 18

// ParseLine parses one telemetry log line:
//
//	timestamp altitude pressure temperature gps_altitude lat lon
//	gyro_x gyro_y gyro_z accel_x accel_y accel_z pitch yaw roll battery state
//
// A short line or an unparseable numeric token yields an error; callers are
// expected to keep their previous sample in that case.
func ParseLine(line string) (Sample, error) {
	parts := strings.Fields(line)
	if len(parts) < sampleTokens {
		return Sample{}, fmt.Errorf("telemetry line has %d of %d tokens", len(parts), sampleTokens)
	}

	floats := make([]float64, sampleTokens-2)
	for i := 1; i < sampleTokens-1; i++ {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return Sample{}, fmt.Errorf("telemetry field %d: %w", i, err)
		}
		floats[i-1] = v
	}
	state, err := strconv.Atoi(parts[17])
	if err != nil {
		return Sample{}, fmt.Errorf("telemetry state field: %w", err)
	}

	return Sample{
		Timestamp:     parts[0],
		Altitude:      floats[0],
		Pressure:      floats[1],
		Temperature:   floats[2],
		GPSAltitude:   floats[3],
		Latitude:      floats[4],
		Longitude:     floats[5],
		GyroX:         floats[6],
		GyroY:         floats[7],
		GyroZ:         floats[8],
		AccelerationX: floats[9],
		AccelerationY: floats[10],
		AccelerationZ: floats[11],
		Pitch:         floats[12],
		Yaw:           floats[13],
		Roll:          floats[14],
		Battery:       floats[15],
		State:         state,
	}, nil
}
