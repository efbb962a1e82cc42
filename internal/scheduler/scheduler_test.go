package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestCronLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	clogger := cronLogger{logger}
	clogger.Info("foo")
	clogger.Error(errors.New("bar"), "test")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG msg=foo") {
		t.Errorf("unexpected info output: %s", out)
	}
	if !strings.Contains(out, "level=ERROR msg=test error=bar") {
		t.Errorf("unexpected error output: %s", out)
	}
}

func TestSchedulerAddRemove(t *testing.T) {
	s := New(nil)
	id, err := s.AddFunc("* * * * *", func() {})
	if err != nil {
		t.Fatal(err)
	}
	s.Remove(id)

	if _, err := s.AddFunc("not a schedule", func() {}); err == nil {
		t.Error("expected invalid schedule to fail")
	}
}

func TestSchedulerAddJobRuns(t *testing.T) {
	s := New(nil)
	ran := make(chan struct{}, 1)
	_, err := s.AddJob("@every 1s", time.Second, func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("job context has no deadline")
		}
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	s.Start()
	defer s.Shutdown()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
