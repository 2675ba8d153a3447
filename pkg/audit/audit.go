package audit

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType names a change to candidate or skill records.
type EventType string

const (
	EventCandidateCreated   EventType = "candidate_created"
	EventCandidateUpdated   EventType = "candidate_updated"
	EventSkillAssigned      EventType = "skill_assigned"
	EventSkillRemoved       EventType = "skill_removed"
	EventCandidatesExported EventType = "candidates_exported"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// Event is one audit record.
type Event struct {
	Timestamp   time.Time
	Event       EventType
	CandidateID int64
	SkillID     int64
	IP          string
	RequestID   string
	Details     map[string]any
}

// Logger writes audit events through zap, separately from the operational
// slog stream.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
	now         func() time.Time
}

// New builds a JSON audit logger writing to stdout.
func New(serviceName, environment string) *Logger {
	return NewWithSyncer(serviceName, environment, zapcore.Lock(os.Stdout))
}

// NewWithSyncer builds an audit logger writing to ws.
func NewWithSyncer(serviceName, environment string, ws zapcore.WriteSyncer) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.LevelKey = "level"
	encCfg.MessageKey = "message"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zapcore.InfoLevel)
	return &Logger{
		zapLogger:   zap.New(core),
		serviceName: serviceName,
		environment: environment,
		now:         time.Now,
	}
}

// Nop discards every event.
func Nop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), now: time.Now}
}

// Log writes event. A nil Logger is a no-op.
func (l *Logger) Log(_ context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = l.now().UTC()
	}

	level := zapcore.InfoLevel
	if event.Event == EventRateLimitTriggered {
		level = zapcore.WarnLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.CandidateID != 0 {
		fields = append(fields, zap.Int64("candidate_id", event.CandidateID))
	}
	if event.SkillID != 0 {
		fields = append(fields, zap.Int64("skill_id", event.SkillID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}
