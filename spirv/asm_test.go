package spirv_test

import (
	"encoding/binary"

	"github.com/wippyai/spirv-graph/spirv"
)

// asm assembles little-endian test modules one instruction at a time.
type asm struct {
	words []uint32
}

func newAsm(bound uint32) *asm {
	return &asm{words: []uint32{spirv.Magic, spirv.Version16, 0, bound, 0}}
}

// op appends an instruction with a correct word count.
func (a *asm) op(op spirv.Op, operands ...uint32) *asm {
	return a.raw(uint32(len(operands)+1), op, operands...)
}

// raw appends an instruction with an explicit, possibly wrong, word count.
func (a *asm) raw(wc uint32, op spirv.Op, operands ...uint32) *asm {
	a.words = append(a.words, wc<<spirv.WordCountBits|uint32(op))
	a.words = append(a.words, operands...)
	return a
}

func (a *asm) bytes() []byte {
	return wordsLE(a.words)
}

func wordsLE(words []uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}

// cat joins operand fragments, typically ids with packed strings.
func cat(parts ...[]uint32) []uint32 {
	var out []uint32
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func w(words ...uint32) []uint32 { return words }

func str(s string) []uint32 { return spirv.StringLiterals(s) }

// fragmentShader builds a small, valid fragment shader:
//
//	%1  = OpExtInstImport "GLSL.std.450"
//	%2  = OpTypeVoid
//	%3  = OpTypeFunction %2
//	%4  = OpFunction "main"
//	%5  = OpLabel
//	%6  = OpTypeFloat 32
//	%7  = OpTypeVector %6 4
//	%8  = OpTypePointer Output %7
//	%9  = OpVariable %8 Output "color", Location 0
//	%10 = OpConstant %6 1.0
//	%11 = OpConstantComposite %7 %10 %10 %10 %10
//	%12 = OpString "shader.frag"
func fragmentShader() *asm {
	return newAsm(13).
		op(spirv.OpCapability, uint32(spirv.CapabilityShader)).
		op(spirv.OpExtInstImport, cat(w(1), str("GLSL.std.450"))...).
		op(spirv.OpMemoryModel, uint32(spirv.AddressingModelLogical), uint32(spirv.MemoryModelGLSL450)).
		op(spirv.OpEntryPoint, cat(w(uint32(spirv.ExecutionModelFragment), 4), str("main"), w(9))...).
		op(spirv.OpExecutionMode, 4, uint32(spirv.ExecutionModeOriginUpperLeft)).
		op(spirv.OpString, cat(w(12), str("shader.frag"))...).
		op(spirv.OpSource, uint32(spirv.SourceLanguageGLSL), 450, 12).
		op(spirv.OpName, cat(w(4), str("main"))...).
		op(spirv.OpName, cat(w(9), str("color"))...).
		op(spirv.OpDecorate, 9, uint32(spirv.DecorationLocation), 0).
		op(spirv.OpTypeVoid, 2).
		op(spirv.OpTypeFunction, 3, 2).
		op(spirv.OpTypeFloat, 6, 32).
		op(spirv.OpTypeVector, 7, 6, 4).
		op(spirv.OpTypePointer, 8, uint32(spirv.StorageClassOutput), 7).
		op(spirv.OpVariable, 8, 9, uint32(spirv.StorageClassOutput)).
		op(spirv.OpConstant, 6, 10, 0x3f800000).
		op(spirv.OpConstantComposite, 7, 11, 10, 10, 10, 10).
		op(spirv.OpFunction, 2, 4, 0, 3).
		op(spirv.OpLabel, 5).
		op(spirv.OpLine, 12, 3, 7).
		op(spirv.OpStore, 9, 11).
		op(spirv.OpReturn).
		op(spirv.OpFunctionEnd)
}
