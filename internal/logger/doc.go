// Package logger provides structured JSON logging and in-process metrics for
// campus-events.
//
// Log lines are single JSON objects with a timestamp, level, message,
// optional fields and optional error. Metrics cover counters, gauges and
// timings; timings are summarized into count/total/average/min/max.
//
// Example usage:
//
//	logger.Info("Snapshot loaded", logger.Fields{
//	    "source": src,
//	    "events": len(batch.Events),
//	})
//
//	metrics := logger.NewMetrics()
//	metrics.RecordTiming("snapshot.load", time.Since(start))
package logger
