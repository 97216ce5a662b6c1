// Package logging provides structured logging for arcana.
//
// # Overview
//
// Logging wraps Zap with:
//   - Custom Trace level (-2, below Debug) for detector internals
//   - Automatic context field injection (trace_id, reading.id)
//   - JSON or console output on stderr (default) or stdout
//
// # Usage
//
// Create a logger from config:
//
//	cfg := logging.NewDefaultConfig()
//	logger, err := logging.NewLogger(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
// Log with context:
//
//	ctx = logging.WithReadingID(ctx, "reading_9f2c")
//	logger.Info(ctx, "reading complete", zap.Int("entries", n))
//
// Output includes automatic correlation:
//
//	{
//	  "ts": "2026-08-22T10:15:30Z",
//	  "level": "info",
//	  "msg": "reading complete",
//	  "trace_id": "abc123",
//	  "reading.id": "reading_9f2c",
//	  "entries": 5
//	}
//
// # Testing
//
// Use TestLogger for assertions on logged output:
//
//	tl := logging.NewTestLogger()
//	tl.Info(ctx, "spread parsed", zap.Int("cards", 3))
//	tl.AssertLogged(t, zapcore.InfoLevel, "spread parsed")
//	tl.AssertField(t, "spread parsed", "cards", int64(3))
//
// # Concurrency Safety
//
// Logger is safe for concurrent use. Child loggers (With, Named) are
// independent and do not affect parent or siblings.
package logging
