package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"trial-shop/metrics"
	"trial-shop/models"
)

// ActionSink is an append-only destination for action records.
type ActionSink interface {
	Name() string
	Append(ctx context.Context, rec models.ActionRecord) error
}

// ActionLogger fans a record out to every sink. Sink failures are logged and
// counted, never returned: a lost record does not block the checkout flow.
type ActionLogger struct {
	sinks   []ActionSink
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Registry
}

func NewActionLogger(logger *zap.Logger, reg *metrics.Registry, timeout time.Duration, sinks ...ActionSink) *ActionLogger {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ActionLogger{sinks: sinks, timeout: timeout, logger: logger, metrics: reg}
}

func (l *ActionLogger) Log(ctx context.Context, rec models.ActionRecord) {
	l.metrics.ActionsLogged.WithLabelValues(rec.Action).Inc()

	// The request may finish before a slow sink does.
	base := context.WithoutCancel(ctx)
	for _, sink := range l.sinks {
		l.append(base, sink, rec)
	}
}

func (l *ActionLogger) append(ctx context.Context, sink ActionSink, rec models.ActionRecord) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	err := sink.Append(ctx, rec)
	l.metrics.SinkLatency.WithLabelValues(sink.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		l.metrics.SinkFailures.WithLabelValues(sink.Name()).Inc()
		l.logger.Warn("action log sink unavailable",
			zap.String("sink", sink.Name()),
			zap.String("record_id", rec.ID),
			zap.String("action", rec.Action),
			zap.String("participant_id", rec.ParticipantID),
			zap.Error(err),
		)
	}
}

// ZapSink writes each record as a structured log line.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger.Named("actions")}
}

func (s *ZapSink) Name() string { return "log" }

func (s *ZapSink) Append(ctx context.Context, rec models.ActionRecord) error {
	s.logger.Info(rec.Action,
		zap.String("record_id", rec.ID),
		zap.Time("timestamp", rec.Timestamp),
		zap.String("participant_id", rec.ParticipantID),
		zap.String("page", rec.Page),
		zap.Int("total_price", rec.TotalPrice),
		zap.Strings("product_names", rec.ProductNames),
		zap.Ints("quantities", rec.Quantities),
		zap.Ints("subtotals", rec.Subtotals),
		zap.Strings("room_types", rec.RoomTypes),
		zap.Strings("breakfast_options", rec.BreakfastOptions),
	)
	return nil
}
