package spirv_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/spirv-graph/spirv"
)

func TestLoggerDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := spirv.Logger()
	spirv.SetLogger(zap.New(core))
	defer spirv.SetLogger(prev)

	a := newAsm(2).op(spirv.OpTypeVoid, 1)
	a.words[4] = 3
	if _, err := spirv.ParseModule(a.bytes()); err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warns) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warns))
	}
	if rule := warns[0].ContextMap()["rule"]; rule != "header-schema" {
		t.Errorf("rule field: got %v", rule)
	}

	done := logs.FilterMessage("decoded module").All()
	if len(done) != 1 {
		t.Fatalf("got %d summaries, want 1", len(done))
	}
	if n := done[0].ContextMap()["entities"]; n != int64(1) {
		t.Errorf("entities field: got %v (%T)", n, n)
	}
}
