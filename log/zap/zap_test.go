package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/digitize"
)

func TestLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("dropped unusable entry", digitize.Fields{"key": "digits:n:i64:1", "reason": "corrupt"})
	l.Info("info", nil)
	l.Warn("provider error", digitize.Fields{"err": errors.New("down")})
	l.Error("error", digitize.Fields{})

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Fatalf("entry %d level = %v want %v", i, e.Level, want[i])
		}
	}
	ctx := entries[0].ContextMap()
	if ctx["reason"] != "corrupt" || ctx["key"] != "digits:n:i64:1" {
		t.Fatalf("unexpected fields %v", ctx)
	}
	if got := entries[2].ContextMap()["err"]; got != "down" {
		t.Fatalf("err field = %v", got)
	}
}
