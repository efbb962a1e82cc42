package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLoggerLegTransition(t *testing.T) {
	var buf bytes.Buffer
	l := audit.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := l.LogLegTransition(context.Background(), audit.LegTransition{
		RequestID:      "r1",
		LegID:          "l1",
		OrganizationID: "o1",
		To:             "APPROVED",
		At:             time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Err:            errors.New("invalid status transition"),
	})
	require.NoError(t, err)

	var record struct {
		Audit map[string]any `json:"audit"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "leg_transition", record.Audit["event"])
	assert.Equal(t, "l1", record.Audit["leg_id"])
	assert.Equal(t, false, record.Audit["applied"])
	assert.Equal(t, "invalid status transition", record.Audit["error"])
}

func TestSlogLoggerOrganizationApproval(t *testing.T) {
	var buf bytes.Buffer
	l := audit.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, l.LogOrganizationApproval(context.Background(), "o1"))
	assert.Contains(t, buf.String(), `"event":"organization_approved"`)
	assert.Contains(t, buf.String(), `"organization_id":"o1"`)
}

func TestNoOpLogger(t *testing.T) {
	var l audit.Logger = &audit.NoOpLogger{}
	assert.NoError(t, l.LogLegTransition(context.Background(), audit.LegTransition{}))
	assert.NoError(t, l.LogOrganizationApproval(context.Background(), "o1"))
}
