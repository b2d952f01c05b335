package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/spirv-graph/spirv"
)

func inst(op spirv.Op, operands ...uint32) []uint32 {
	return append([]uint32{uint32(len(operands)+1)<<spirv.WordCountBits | uint32(op)}, operands...)
}

func writeModule(t *testing.T, name string, bound uint32, insts ...[]uint32) string {
	t.Helper()
	words := []uint32{spirv.Magic, spirv.Version16, 0, bound, 0}
	for _, in := range insts {
		words = append(words, in...)
	}
	data := make([]byte, 0, len(words)*4)
	for _, w := range words {
		data = binary.LittleEndian.AppendUint32(data, w)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func computeModule(t *testing.T) string {
	return writeModule(t, "compute.spv", 6,
		inst(spirv.OpCapability, uint32(spirv.CapabilityShader)),
		inst(spirv.OpMemoryModel, uint32(spirv.AddressingModelLogical), uint32(spirv.MemoryModelGLSL450)),
		inst(spirv.OpEntryPoint, append([]uint32{uint32(spirv.ExecutionModelGLCompute), 3}, spirv.StringLiterals("main")...)...),
		inst(spirv.OpExecutionMode, 3, uint32(spirv.ExecutionModeLocalSize), 64, 1, 1),
		inst(spirv.OpDecorate, 5, uint32(spirv.DecorationBinding), 2),
		inst(spirv.OpTypeVoid, 1),
		inst(spirv.OpTypeFunction, 2, 1),
		inst(spirv.OpFunction, 1, 3, 0, 2),
		inst(spirv.OpLabel, 4),
		inst(spirv.OpReturn),
		inst(spirv.OpFunctionEnd),
		inst(spirv.OpTypeSampler, 5),
	)
}

func TestRunFormats(t *testing.T) {
	path := computeModule(t)

	tests := []struct {
		format string
		want   []string
	}{
		{"table", []string{"Module: " + path, "Entry point: GLCompute \"main\" %3", "OpTypeFunction", "Binding [2]"}},
		{"words", []string{"Bound: 6", "     5: OpCapability", "00020011 00000001"}},
		{"yaml", []string{"bound: 6", "op: OpFunction", "name: main"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			ok, err := run(context.Background(), &out, []string{path}, config{format: tt.format, jobs: 1})
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if !ok {
				t.Error("run reported failure without validation")
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRunYAMLParses(t *testing.T) {
	var out bytes.Buffer
	if _, err := run(context.Background(), &out, []string{computeModule(t)}, config{format: "yaml", jobs: 1}); err != nil {
		t.Fatalf("run: %v", err)
	}

	var doc moduleDoc
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if doc.Bound != 6 || len(doc.Entities) != 12 {
		t.Errorf("bound=%d entities=%d", doc.Bound, len(doc.Entities))
	}
	if len(doc.EntryPoints) != 1 {
		t.Errorf("entry points: %v", doc.EntryPoints)
	}
}

func TestRunSingleEntity(t *testing.T) {
	var out bytes.Buffer
	_, err := run(context.Background(), &out, []string{computeModule(t)}, config{format: "table", id: 5, jobs: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var doc entityDoc
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if doc.ID != 5 || doc.Op != "OpTypeSampler" {
		t.Errorf("got %+v", doc)
	}
	if len(doc.Decorations) != 1 || doc.Decorations[0] != "Binding [2]" {
		t.Errorf("decorations: %v", doc.Decorations)
	}

	_, err = run(context.Background(), &out, []string{computeModule(t)}, config{format: "table", id: 99, jobs: 1})
	if err == nil {
		t.Error("expected error for an unknown id")
	}
}

func TestRunValidate(t *testing.T) {
	clean := computeModule(t)
	broken := writeModule(t, "broken.spv", 3,
		inst(spirv.OpName, append([]uint32{7}, spirv.StringLiterals("ghost")...)...),
		inst(spirv.OpTypeFloat, 1, 32),
		inst(spirv.OpTypeVector, 2, 1, 1),
	)

	var out bytes.Buffer
	ok, err := run(context.Background(), &out, []string{clean}, config{format: "words", validate: true, jobs: 1})
	if err != nil || !ok {
		t.Fatalf("clean module: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(out.String(), "Validation: ok") {
		t.Errorf("missing ok line:\n%s", out.String())
	}

	out.Reset()
	ok, err = run(context.Background(), &out, []string{clean, broken}, config{format: "words", validate: true, jobs: 2})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if ok {
		t.Error("broken module reported as clean")
	}
	for _, want := range []string{"Validation: 3 violation(s)", "unresolved-forward", "vector-size"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		files func(t *testing.T) []string
		cfg   config
		want  string
	}{
		{"unknown format", func(t *testing.T) []string { return []string{computeModule(t)} }, config{format: "xml", jobs: 1}, "unknown format"},
		{"missing file", func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "nope.spv")} }, config{format: "table", jobs: 1}, "read file"},
		{"truncated module", func(t *testing.T) []string {
			return []string{writeModule(t, "bad.spv", 2, []uint32{3<<spirv.WordCountBits | uint32(spirv.OpTypeVoid), 1})}
		}, config{format: "table", jobs: 1}, "stream 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := run(context.Background(), &out, tt.files(t), tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	path := writeModule(t, "types.spv", 5,
		inst(spirv.OpTypeInt, 1, 32, 1),
		inst(spirv.OpTypeVector, 2, 1, 4),
		inst(spirv.OpTypePointer, 3, uint32(spirv.StorageClassFunction), 2),
		inst(spirv.OpConstant, 1, 4, 42),
	)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	m, err := spirv.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	want := map[spirv.Id]string{
		1: "width=32 signed=true",
		2: "%1 x 4",
		3: "storage=7 %2",
		4: "%1 42",
	}
	for id, s := range want {
		e, _ := m.Lookup(id)
		if got := describe(e); got != s {
			t.Errorf("describe(%s): got %q, want %q", id, got, s)
		}
	}
}
