package jni

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestVerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity Verbosity
		enabled   zapcore.Level
		disabled  zapcore.Level
	}{
		{Quiet, zapcore.ErrorLevel, zapcore.WarnLevel},
		{Warning, zapcore.WarnLevel, zapcore.InfoLevel},
		{Info, zapcore.InfoLevel, zapcore.DebugLevel},
		{Debug, zapcore.DebugLevel, zapcore.DebugLevel - 1},
	}

	for _, test := range tests {
		t.Run(test.enabled.String(), func(t *testing.T) {
			log := Options{Verbosity: test.verbosity}.logger()
			if !log.Core().Enabled(test.enabled) {
				t.Errorf("expected %v to be enabled", test.enabled)
			}
			if log.Core().Enabled(test.disabled) {
				t.Errorf("expected %v to be disabled", test.disabled)
			}
		})
	}
}

func TestPendingExceptionLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rt, acc := setup(t, func(opts *Options) {
		opts.Logger = zap.New(core)
	})
	defineCounter(rt)

	run(t, acc, func(env *Env) {
		obj, err := New(env, "com.example.Counter")
		if err != nil {
			t.Fatal(err)
		}
		if err := CallVoid(env, obj, "fail"); err == nil {
			t.Fatal("expected an error")
		}
	})

	entries := logs.FilterMessage("pending exception").AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("expected one pending exception entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["category"] != "exception" {
		t.Errorf("unexpected category %v", fields["category"])
	}
	if fields["exception"] != "java.lang.IllegalStateException: boom" {
		t.Errorf("unexpected exception %v", fields["exception"])
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("unexpected level %v", entries[0].Level)
	}
}
