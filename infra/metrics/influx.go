package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/skystride/droneops/core/metrics"
	"github.com/skystride/droneops/infra/logger"
)

// InfluxSink writes allocation events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordMatchQuery writes one ranking query event.
func (s *InfluxSink) RecordMatchQuery(ev coremetrics.MatchQueryEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("match_query").
		AddTag("mission_id", ev.MissionID).
		AddTag("kind", ev.Kind).
		AddField("candidates", ev.Candidates).
		AddField("best_score", ev.BestScore).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordConflictScan writes the scan totals plus a field per conflict type.
func (s *InfluxSink) RecordConflictScan(ev coremetrics.ConflictScanEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("conflict_scan").
		AddField("total", ev.Total).
		AddField("critical", ev.Critical).
		AddField("warning", ev.Warning)
	for typ, n := range ev.ByType {
		p = p.AddField("type_"+strings.ReplaceAll(strings.ToLower(typ), " ", "_"), n)
	}
	p = p.SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordReassignment writes one suggestion or execution event.
func (s *InfluxSink) RecordReassignment(ev coremetrics.ReassignmentEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("reassignment").
		AddTag("mission_id", ev.MissionID).
		AddTag("executed", strconv.FormatBool(ev.Executed)).
		AddTag("displaced", strconv.FormatBool(ev.Displaced)).
		AddField("plans", ev.Plans).
		AddField("risk_score", ev.RiskScore).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordAssignment writes one assignment mutation.
func (s *InfluxSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("assignment_event").
		AddTag("action", ev.Action).
		AddTag("entity_type", ev.EntityType).
		AddTag("entity_id", ev.EntityID).
		AddTag("mission_id", ev.MissionID).
		AddField("count", 1).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordFleetSize writes the roster counts after a reload.
func (s *InfluxSink) RecordFleetSize(ev coremetrics.FleetSizeEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("fleet_size").
		AddField("pilots", ev.Pilots).
		AddField("drones", ev.Drones).
		AddField("missions", ev.Missions).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
