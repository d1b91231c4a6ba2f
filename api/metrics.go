package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName      = "salesboard-api"
	workSpanName    = "work.create"
	workEventName   = "work.request.metrics"
	workEventDomain = "salesboard"
	workRoute       = "/api/work"
)

// workRequestMetrics collects per-request timings and outcome facts for the
// work-creation endpoint and emits them once, as a log entry and a span.
type workRequestMetrics struct {
	logger *log.Logger
	span   trace.Span

	requestID      string
	start          time.Time
	authDuration   time.Duration
	decodeDuration time.Duration
	createDuration time.Duration
	encodeDuration time.Duration
	template       string
	country        string
	errorStage     string
}

// newWorkRequestMetrics starts a span for the request and returns the
// context carrying it. Callers must invoke Log exactly once.
func newWorkRequestMetrics(ctx context.Context, logger *log.Logger) (*workRequestMetrics, context.Context) {
	spanCtx, span := otel.Tracer(tracerName).Start(ctx, workSpanName)
	m := &workRequestMetrics{
		logger:    logger,
		span:      span,
		requestID: uuid.NewString(),
		start:     time.Now(),
	}
	return m, spanCtx
}

func (m *workRequestMetrics) ObserveAuth(d time.Duration) {
	if d > 0 {
		m.authDuration = d
	}
}

func (m *workRequestMetrics) ObserveDecode(d time.Duration) {
	if d > 0 {
		m.decodeDuration = d
	}
}

func (m *workRequestMetrics) ObserveCreate(d time.Duration) {
	if d > 0 {
		m.createDuration = d
	}
}

func (m *workRequestMetrics) ObserveEncode(d time.Duration) {
	if d > 0 {
		m.encodeDuration = d
	}
}

func (m *workRequestMetrics) SetTemplate(template string) {
	m.template = template
}

func (m *workRequestMetrics) SetCountry(country string) {
	m.country = country
}

func (m *workRequestMetrics) SetErrorStage(stage string) {
	if stage != "" {
		m.errorStage = stage
	}
}

// Log finalizes the span and writes the observability event. It must be the
// last call on the metrics value.
func (m *workRequestMetrics) Log(status int, err error) {
	if m == nil {
		return
	}

	attrs := map[string]any{
		"http.route":       workRoute,
		"http.status_code": status,
		"request_id":       m.requestID,
		"total_ms":         durationToMillis(time.Since(m.start)),
	}
	if m.authDuration > 0 {
		attrs["auth_ms"] = durationToMillis(m.authDuration)
	}
	if m.decodeDuration > 0 {
		attrs["decode_ms"] = durationToMillis(m.decodeDuration)
	}
	if m.createDuration > 0 {
		attrs["create_ms"] = durationToMillis(m.createDuration)
	}
	if m.encodeDuration > 0 {
		attrs["encode_ms"] = durationToMillis(m.encodeDuration)
	}
	if m.template != "" {
		attrs["work.template"] = m.template
	}
	if m.country != "" {
		attrs["work.country"] = m.country
	}
	if m.errorStage != "" {
		attrs["error_stage"] = m.errorStage
	}

	if m.span != nil {
		m.span.SetAttributes(
			attribute.String("http.route", workRoute),
			attribute.Int("http.status_code", status),
			attribute.String("request_id", m.requestID),
		)
		if m.template != "" {
			m.span.SetAttributes(attribute.String("work.template", m.template))
		}
		if m.country != "" {
			m.span.SetAttributes(attribute.String("work.country", m.country))
		}
		if m.errorStage != "" {
			m.span.SetAttributes(attribute.String("work.error_stage", m.errorStage))
		}
		if err != nil {
			m.span.SetStatus(codes.Error, err.Error())
		} else {
			m.span.SetStatus(codes.Ok, "")
		}
		m.span.AddEvent("observability.event")
		m.span.End()
	}

	if m.logger == nil {
		return
	}

	severityText, severityNumber := severityForStatus(status, err)

	fields := log.Fields{
		"event.name":      workEventName,
		"event.domain":    workEventDomain,
		"attributes":      attrs,
		"severity_text":   severityText,
		"severity_number": severityNumber,
	}
	if m.span != nil {
		if sc := m.span.SpanContext(); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	entry := m.logger.WithFields(fields)
	switch severityText {
	case "ERROR":
		entry.Error("observability.event")
	case "WARN":
		entry.Warn("observability.event")
	default:
		entry.Info("observability.event")
	}
}

func severityForStatus(status int, err error) (string, int) {
	switch {
	case err != nil || status >= 500:
		return "ERROR", 17
	case status >= 400:
		return "WARN", 13
	default:
		return "INFO", 9
	}
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
