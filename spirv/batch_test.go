package spirv_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/spirv-graph/errors"
	"github.com/wippyai/spirv-graph/spirv"
)

func TestDecodeAll(t *testing.T) {
	streams := [][]byte{
		fragmentShader().bytes(),
		newAsm(2).op(spirv.OpTypeVoid, 1).bytes(),
		newAsm(3).op(spirv.OpTypeFloat, 1, 32).op(spirv.OpTypeVector, 2, 1, 3).bytes(),
	}

	dec := spirv.NewDecoder(spirv.Options{Concurrency: 2})
	modules, err := dec.DecodeAll(context.Background(), streams)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(modules) != len(streams) {
		t.Fatalf("got %d modules, want %d", len(modules), len(streams))
	}

	wantLen := []int{24, 1, 2}
	for i, m := range modules {
		if m == nil {
			t.Fatalf("module %d is nil", i)
		}
		if m.Len() != wantLen[i] {
			t.Errorf("module %d: Len %d, want %d", i, m.Len(), wantLen[i])
		}
	}
	if modules[0] == modules[1] {
		t.Error("modules must be independent")
	}
	if _, err := modules[1].Lookup(2); err == nil {
		t.Error("ids leaked between modules")
	}
}

func TestDecodeAllFailure(t *testing.T) {
	streams := [][]byte{
		newAsm(2).op(spirv.OpTypeVoid, 1).bytes(),
		newAsm(2).raw(0, spirv.OpNop).bytes(),
	}

	modules, err := spirv.NewDecoder(spirv.Options{}).DecodeAll(context.Background(), streams)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "stream 1") {
		t.Errorf("error should name the failing stream: %v", err)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData}) {
		t.Errorf("cause lost: %v", err)
	}
	if modules[1] != nil {
		t.Error("failing stream must not produce a module")
	}
}

func TestDecodeAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := spirv.NewDecoder(spirv.Options{}).DecodeAll(ctx, [][]byte{fragmentShader().bytes()})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestDecodeAllEmpty(t *testing.T) {
	modules, err := spirv.NewDecoder(spirv.DefaultOptions()).DecodeAll(context.Background(), nil)
	if err != nil || len(modules) != 0 {
		t.Errorf("got %v, %v", modules, err)
	}
}
