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
		name    string
		log     func(l *slog.Logger)
		want    []string
		notWant []string
	}{
		{
			name: "Command",
			log: func(l *slog.Logger) {
				l.Info("Command completed",
					slog.String("type", "cmd"),
					slog.String("name", "profile"),
					slog.String("user_name", "ada"),
					slog.String("status", "success"))
			},
			want:    []string{"[CitizenBot]", "INFO", "CMD", "Command completed [profile by ada] [Status: success]"},
			notWant: []string{"type=cmd"},
		},
		{
			name: "Award",
			log: func(l *slog.Logger) {
				l.Info("Points awarded", slog.String("type", "award"), slog.Int64("points", 15))
			},
			want: []string{"AWARD", "points=15"},
		},
		{
			name: "Error",
			log: func(l *slog.Logger) {
				l.Error("Save failed", slog.String("type", "error"), slog.Any("error", errors.New("boom")))
			},
			want: []string{"ERROR", "Save failed", "boom"},
		},
		{
			name: "Gateway noise",
			log: func(l *slog.Logger) {
				l.Info("sending heartbeat")
			},
			notWant: []string{"heartbeat"},
		},
		{
			name: "Below level",
			log: func(l *slog.Logger) {
				l.Debug("hidden")
			},
			notWant: []string{"hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(slog.New(NewHandlerWithWriter(&buf, slog.LevelInfo)))
			out := buf.String()

			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q does not contain %q", out, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("output %q should not contain %q", out, nw)
				}
			}
		})
	}
}

func TestCustomHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandlerWithWriter(&buf, slog.LevelDebug)).With(slog.String("component", "scoring"))
	l.Debug("ready")

	if !strings.Contains(buf.String(), "component=scoring") {
		t.Errorf("output %q is missing handler attrs", buf.String())
	}
}
