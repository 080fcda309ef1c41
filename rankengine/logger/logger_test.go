package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCustomHandler_Handle(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *slog.Logger)
		want  []string
		empty bool
	}{
		{
			name: "SweepType",
			log: func(l *slog.Logger) {
				l.Info("Badge awarded", slog.String("type", "sweep"), slog.String("user_id", "u1"), slog.String("badge_id", "b1"))
			},
			want: []string{"INFO", "[SWEEP]", "Badge awarded [user u1]", "badge_id=b1"},
		},
		{
			name: "ErrorDetails",
			log: func(l *slog.Logger) {
				l.Error("Query failed", slog.String("type", "db"), slog.Any("error", errors.New("boom")))
			},
			want: []string{"ERROR", "[DB]", "Query failed: boom"},
		},
		{
			name: "DefaultsToSystem",
			log: func(l *slog.Logger) {
				l.With(slog.String("component", "ranker")).Warn("Slow ranking")
			},
			want: []string{"WARN", "[SYS]", "Slow ranking", "component=ranker"},
		},
		{
			name: "BelowLevel",
			log: func(l *slog.Logger) {
				l.Debug("noise")
			},
			empty: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(slog.New(NewHandler(&buf, nil)))

			got := buf.String()
			if tt.empty {
				if got != "" {
					t.Errorf("Handle() wrote %q, want nothing", got)
				}
				return
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Handle() output %q missing %q", got, w)
				}
			}
		})
	}
}

func TestCustomHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, nil)).WithGroup("sweep")
	l.Info("done", slog.Int("failed", 2))

	if !strings.Contains(buf.String(), "sweep.failed=2") {
		t.Errorf("Handle() output %q missing grouped attr", buf.String())
	}
}
