package viz

import (
	"context"
	"log"
	"time"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	ingesterContext "github.com/GreptimeTeam/greptimedb-ingester-go/context"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"rocketviz/internal/telemetry"
)

// GreptimeWriter forwards polled telemetry samples to GreptimeDB via the
// ingester client.
type GreptimeWriter struct {
	client    greptime.Client
	db        string
	table     string
	sessionID string
}

// NewGreptimeWriter creates a new GreptimeDB sink and auto-creates the
// table if needed. Every row is tagged with the visualizer session ID.
func NewGreptimeWriter(endpoint, database, tableName, sessionID string) (*GreptimeWriter, error) {
	if tableName == "" {
		tableName = "rocket_telemetry"
	}
	ctx := ingesterContext.NewContext(context.Background())
	client, err := greptime.NewClient(ctx, &greptime.Config{
		Endpoint: endpoint,
	})
	if err != nil {
		return nil, err
	}

	// Auto-create table schema
	ddl := `
CREATE TABLE IF NOT EXISTS ` + tableName + ` (
  session_id STRING TAG,
  source_ts STRING,
  altitude DOUBLE,
  pressure DOUBLE,
  temperature DOUBLE,
  gps_altitude DOUBLE,
  lat DOUBLE,
  lon DOUBLE,
  gyro_x DOUBLE,
  gyro_y DOUBLE,
  gyro_z DOUBLE,
  accel_x DOUBLE,
  accel_y DOUBLE,
  accel_z DOUBLE,
  pitch DOUBLE,
  yaw DOUBLE,
  roll DOUBLE,
  battery DOUBLE,
  state BIGINT,
  ts TIMESTAMP TIME INDEX
) WITH (ttl='30d')
`
	if _, err := client.SQL(ctx, ddl); err != nil {
		return nil, err
	}

	return &GreptimeWriter{
		client:    client,
		db:        database,
		table:     tableName,
		sessionID: sessionID,
	}, nil
}

// WriteSample inserts a single telemetry sample. The time index is the
// ingestion instant; the flight computer's own timestamp travels along as
// an opaque string field.
func (w *GreptimeWriter) WriteSample(sample telemetry.Sample) error {
	ctx := ingesterContext.NewContext(context.Background())

	tbl := table.New(w.table)
	tbl.AddTagColumn("session_id", types.StringType, 0)
	tbl.AddFieldColumn("source_ts", types.StringType)
	tbl.AddFieldColumn("altitude", types.Float64Type)
	tbl.AddFieldColumn("pressure", types.Float64Type)
	tbl.AddFieldColumn("temperature", types.Float64Type)
	tbl.AddFieldColumn("gps_altitude", types.Float64Type)
	tbl.AddFieldColumn("lat", types.Float64Type)
	tbl.AddFieldColumn("lon", types.Float64Type)
	tbl.AddFieldColumn("gyro_x", types.Float64Type)
	tbl.AddFieldColumn("gyro_y", types.Float64Type)
	tbl.AddFieldColumn("gyro_z", types.Float64Type)
	tbl.AddFieldColumn("accel_x", types.Float64Type)
	tbl.AddFieldColumn("accel_y", types.Float64Type)
	tbl.AddFieldColumn("accel_z", types.Float64Type)
	tbl.AddFieldColumn("pitch", types.Float64Type)
	tbl.AddFieldColumn("yaw", types.Float64Type)
	tbl.AddFieldColumn("roll", types.Float64Type)
	tbl.AddFieldColumn("battery", types.Float64Type)
	tbl.AddFieldColumn("state", types.Int64Type)
	tbl.SetTimeIndex("ts", types.TimestampType)

	tbl.AppendTagValue("session_id", w.sessionID)
	tbl.AppendFieldValue("source_ts", sample.Timestamp)
	tbl.AppendFieldValue("altitude", sample.Altitude)
	tbl.AppendFieldValue("pressure", sample.Pressure)
	tbl.AppendFieldValue("temperature", sample.Temperature)
	tbl.AppendFieldValue("gps_altitude", sample.GPSAltitude)
	tbl.AppendFieldValue("lat", sample.Latitude)
	tbl.AppendFieldValue("lon", sample.Longitude)
	tbl.AppendFieldValue("gyro_x", sample.GyroX)
	tbl.AppendFieldValue("gyro_y", sample.GyroY)
	tbl.AppendFieldValue("gyro_z", sample.GyroZ)
	tbl.AppendFieldValue("accel_x", sample.AccelerationX)
	tbl.AppendFieldValue("accel_y", sample.AccelerationY)
	tbl.AppendFieldValue("accel_z", sample.AccelerationZ)
	tbl.AppendFieldValue("pitch", sample.Pitch)
	tbl.AppendFieldValue("yaw", sample.Yaw)
	tbl.AppendFieldValue("roll", sample.Roll)
	tbl.AppendFieldValue("battery", sample.Battery)
	tbl.AppendFieldValue("state", int64(sample.State))
	tbl.AppendTimeIndex(time.Now().UTC())

	if err := w.client.Write(ctx, w.db, []*table.Table{tbl}); err != nil {
		log.Printf("[GreptimeWriter] Write failed: %v", err)
		return err
	}
	return nil
}
