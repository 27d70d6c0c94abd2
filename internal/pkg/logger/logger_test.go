package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &ZapLogger{log: zap.New(core)}

	l.Info("calling provider", map[string]interface{}{"provider": "gemini", "model": "gemini-2.0-flash"})
	l.Error("provider failed", errors.New("boom"), map[string]interface{}{"status": 500})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	info := entries[0].ContextMap()
	if info["provider"] != "gemini" || info["model"] != "gemini-2.0-flash" {
		t.Errorf("info fields = %v", info)
	}

	errFields := entries[1].ContextMap()
	if errFields["error"] != "boom" {
		t.Errorf("error field = %v, want boom", errFields["error"])
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("level = %s, want error", entries[1].Level)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		"WARN":    zap.WarnLevel,
		"warning": zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"":        zap.InfoLevel,
		"bogus":   zap.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
