package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitFallsBackToInfo(t *testing.T) {
	l, err := Init("not-a-level", "dev")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer l.Closer()

	if l.Level.Level() != zapcore.InfoLevel {
		t.Fatalf("level = %v, want info", l.Level.Level())
	}
	if zap.L() != l.Base {
		t.Fatal("Init should replace the global logger")
	}
}

func TestInitProduction(t *testing.T) {
	l, err := Init("warn", "production")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer l.Closer()
	if l.Level.Level() != zapcore.WarnLevel {
		t.Fatalf("level = %v, want warn", l.Level.Level())
	}
}
