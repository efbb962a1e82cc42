package audit

import (
	"context"
	"log/slog"
	"time"
)

// LegTransition describes one attempt to move a request leg out of PENDING.
type LegTransition struct {
	RequestID      string
	LegID          string
	OrganizationID string
	To             string
	At             time.Time
	Err            error
}

// Logger defines the interface for auditing workflow operations
type Logger interface {
	// LogLegTransition records an approve or reject attempt, successful or not
	LogLegTransition(ctx context.Context, t LegTransition) error

	// LogOrganizationApproval records an administrator approving an organization
	LogOrganizationApproval(ctx context.Context, orgID string) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogLegTransition implements Logger.LogLegTransition
func (l *NoOpLogger) LogLegTransition(ctx context.Context, t LegTransition) error {
	return nil
}

// LogOrganizationApproval implements Logger.LogOrganizationApproval
func (l *NoOpLogger) LogOrganizationApproval(ctx context.Context, orgID string) error {
	return nil
}

// SlogLogger writes audit records to a structured logger under the "audit" group.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// LogLegTransition implements Logger.LogLegTransition
func (l *SlogLogger) LogLegTransition(ctx context.Context, t LegTransition) error {
	attrs := []any{
		slog.String("event", "leg_transition"),
		slog.String("request_id", t.RequestID),
		slog.String("leg_id", t.LegID),
		slog.String("organization_id", t.OrganizationID),
		slog.String("to", t.To),
		slog.Time("at", t.At),
		slog.Bool("applied", t.Err == nil),
	}
	if t.Err != nil {
		attrs = append(attrs, slog.String("error", t.Err.Error()))
	}
	l.logger.InfoContext(ctx, "audit", slog.Group("audit", attrs...))
	return nil
}

// LogOrganizationApproval implements Logger.LogOrganizationApproval
func (l *SlogLogger) LogOrganizationApproval(ctx context.Context, orgID string) error {
	l.logger.InfoContext(ctx, "audit", slog.Group("audit",
		slog.String("event", "organization_approved"),
		slog.String("organization_id", orgID),
	))
	return nil
}

var (
	_ Logger = (*NoOpLogger)(nil)
	_ Logger = (*SlogLogger)(nil)
)
