package spirv_test

import (
	stderrors "errors"
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/spirv-graph/errors"
	"github.com/wippyai/spirv-graph/spirv"
)

func TestDefaultRegistry(t *testing.T) {
	r := spirv.DefaultRegistry()
	if r != spirv.DefaultRegistry() {
		t.Error("DefaultRegistry must be built once")
	}
	if r.Len() != len(spirv.DefaultSchema()) {
		t.Errorf("Len: got %d, want %d", r.Len(), len(spirv.DefaultSchema()))
	}

	ops := r.Ops()
	if !sort.SliceIsSorted(ops, func(i, j int) bool { return ops[i] < ops[j] }) {
		t.Error("Ops must be ascending")
	}
	for _, op := range ops {
		if op == spirv.OpForward {
			t.Fatal("OpForward must never be registered")
		}
	}
}

func TestRegistryCreate(t *testing.T) {
	r := spirv.DefaultRegistry()

	tests := []struct {
		op   spirv.Op
		want string
	}{
		{spirv.OpTypeInt, "*spirv.TypeInt"},
		{spirv.OpDecorateString, "*spirv.Decorate"},
		{spirv.OpMemberDecorateString, "*spirv.MemberDecorate"},
		{spirv.OpSpecConstantFalse, "*spirv.ConstantBool"},
		{spirv.OpIAdd, "*spirv.Instruction"},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			e, err := r.Create(tt.op)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if got := typeName(e); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if e.Op() != tt.op {
				t.Errorf("opcode: got %s", e.Op())
			}
			if e.HasID() || e.Module() != nil || e.Line() != nil {
				t.Error("created entity must be field-empty")
			}
			if e2, _ := r.Create(tt.op); e2 == e {
				t.Error("Create must return a fresh entity each call")
			}
		})
	}

	_, err := r.Create(spirv.Op(9999))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnsupportedOpcode}) {
		t.Errorf("unknown opcode: got %v", err)
	}

	info, ok := r.Info(spirv.OpIAdd)
	if !ok || !info.HasType || !info.HasResult || info.Class != spirv.ClassArithmetic {
		t.Errorf("Info(OpIAdd): got %+v, %v", info, ok)
	}
	if _, ok := r.Info(spirv.OpForward); ok {
		t.Error("Info(OpForward) must be absent")
	}
}

func TestCoreOpcodes(t *testing.T) {
	tests := []struct {
		op       spirv.Op
		operands []uint32
		class    spirv.Class
		id       spirv.Id
	}{
		{spirv.OpCopyObject, w(1, 2, 3), spirv.ClassComposite, 2},
		{spirv.OpUMod, w(1, 2, 3, 4), spirv.ClassArithmetic, 2},
		{spirv.OpShiftRightLogical, w(1, 2, 3, 4), spirv.ClassBit, 2},
		{spirv.OpBitwiseAnd, w(1, 2, 3, 4), spirv.ClassBit, 2},
		{spirv.OpControlBarrier, w(3, 3, 0x108), spirv.ClassBarrier, 0},
		{spirv.OpAtomicIAdd, w(1, 2, 3, 4, 0, 5), spirv.ClassAtomic, 2},
		{spirv.OpAtomicStore, w(3, 4, 0, 5), spirv.ClassAtomic, 0},
		{spirv.OpFwidth, w(1, 2, 3), spirv.ClassDerivative, 2},
		{spirv.OpGroupNonUniformBallot, w(1, 2, 3, 4), spirv.ClassNonUniform, 2},
		{spirv.OpImageFetch, w(1, 2, 3, 4), spirv.ClassImage, 2},
		{spirv.OpEmitVertex, nil, spirv.ClassPrimitive, 0},
		{spirv.OpTerminateInvocation, nil, spirv.ClassControlFlow, 0},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			a := newAsm(6).op(tt.op, tt.operands...)
			m, err := spirv.ParseModule(a.bytes())
			if err != nil {
				t.Fatalf("ParseModule: %v", err)
			}

			var got *spirv.Instruction
			for e := range m.Entities() {
				got, _ = e.(*spirv.Instruction)
			}
			if got == nil || got.Op() != tt.op {
				t.Fatalf("decoded %v, want a generic %s", got, tt.op)
			}
			if got.ID() != tt.id {
				t.Errorf("id: got %s, want %s", got.ID(), tt.id)
			}
			if info := got.Info(); info.Class != tt.class {
				t.Errorf("class: got %s, want %s", info.Class, tt.class)
			}

			words, err := m.EncodeWords()
			if err != nil {
				t.Fatalf("EncodeWords: %v", err)
			}
			if diff := cmp.Diff(a.words, words); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewRegistryRejects(t *testing.T) {
	tests := []struct {
		name  string
		table []spirv.OpInfo
	}{
		{"forward opcode", []spirv.OpInfo{{Op: spirv.OpForward, Name: "OpForward"}}},
		{"missing name", []spirv.OpInfo{{Op: spirv.OpNop}}},
		{"duplicate opcode", []spirv.OpInfo{{Op: spirv.OpNop, Name: "OpNop"}, {Op: spirv.OpNop, Name: "OpNop2"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := spirv.NewRegistry(tt.table)
			if err == nil || r != nil {
				t.Fatalf("expected rejection, got %v", r)
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegistry, Kind: errors.KindInvalidData}) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestCustomRegistry(t *testing.T) {
	var table []spirv.OpInfo
	for _, info := range spirv.DefaultSchema() {
		if info.Op != spirv.OpTypeFloat {
			table = append(table, info)
		}
	}
	r, err := spirv.NewRegistry(table)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	data := newAsm(2).op(spirv.OpTypeFloat, 1, 32).bytes()
	_, err = spirv.NewDecoder(spirv.Options{Registry: r}).Decode(data)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnsupportedOpcode}) {
		t.Errorf("expected unsupported opcode, got %v", err)
	}

	if _, err := spirv.ParseModule(data); err != nil {
		t.Errorf("default registry: %v", err)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
