// Package telemetry provides OpenTelemetry instrumentation for arcana.
//
// # Overview
//
// Telemetry manages the OTLP trace and metric pipeline:
//   - TracerProvider with parent-based sampling
//   - MeterProvider with cumulative temporality (Prometheus-compatible backends)
//   - W3C Trace Context propagation
//   - Graceful shutdown and flush
//
// Telemetry is disabled by default; a missing collector must never break a
// reading. Initialization errors degrade gracefully instead of failing.
//
// # Usage
//
//	cfg := telemetry.NewDefaultConfig()
//	cfg.Enabled = true
//	tel, err := telemetry.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tel.Shutdown(context.Background())
//
//	tracer := tel.Tracer("arcana.reading")
//	ctx, span := tracer.Start(ctx, "reading.Perform")
//	defer span.End()
//
// # Testing
//
// Use TestTelemetry for in-memory span and metric capture:
//
//	tt := telemetry.NewTestTelemetry()
//	svc := reading.NewService(kb, tt.Tracer("arcana.reading"))
//	...
//	tt.AssertSpanExists(t, "reading.Perform")
package telemetry
