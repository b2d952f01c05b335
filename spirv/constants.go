package spirv

import (
	"strconv"

	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Module header constants
const (
	Magic         = binary.Magic
	Version10     = 0x00010000
	Version16     = 0x00010600
	HeaderWords   = 5
	WordCountBits = 16
	OpCodeMask    = 0xFFFF
	MaxWordCount  = 1<<WordCountBits - 1
)

// Id names an entity within one module. Zero is never a valid id.
type Id uint32

// NoID is the zero sentinel for entities that carry no id.
const NoID Id = 0

// IsValid reports whether the id is non-zero.
func (id Id) IsValid() bool { return id != NoID }

func (id Id) String() string { return "%" + strconv.FormatUint(uint64(id), 10) }

// Op is an instruction opcode.
type Op uint16

// Opcodes of the core instruction set.
const (
	OpNop                                     Op = 0
	OpUndef                                   Op = 1
	OpSourceContinued                         Op = 2
	OpSource                                  Op = 3
	OpSourceExtension                         Op = 4
	OpName                                    Op = 5
	OpMemberName                              Op = 6
	OpString                                  Op = 7
	OpLine                                    Op = 8
	OpExtension                               Op = 10
	OpExtInstImport                           Op = 11
	OpExtInst                                 Op = 12
	OpMemoryModel                             Op = 14
	OpEntryPoint                              Op = 15
	OpExecutionMode                           Op = 16
	OpCapability                              Op = 17
	OpTypeVoid                                Op = 19
	OpTypeBool                                Op = 20
	OpTypeInt                                 Op = 21
	OpTypeFloat                               Op = 22
	OpTypeVector                              Op = 23
	OpTypeMatrix                              Op = 24
	OpTypeImage                               Op = 25
	OpTypeSampler                             Op = 26
	OpTypeSampledImage                        Op = 27
	OpTypeArray                               Op = 28
	OpTypeRuntimeArray                        Op = 29
	OpTypeStruct                              Op = 30
	OpTypeOpaque                              Op = 31
	OpTypePointer                             Op = 32
	OpTypeFunction                            Op = 33
	OpTypeEvent                               Op = 34
	OpTypeDeviceEvent                         Op = 35
	OpTypeReserveId                           Op = 36
	OpTypeQueue                               Op = 37
	OpTypePipe                                Op = 38
	OpTypeForwardPointer                      Op = 39
	OpConstantTrue                            Op = 41
	OpConstantFalse                           Op = 42
	OpConstant                                Op = 43
	OpConstantComposite                       Op = 44
	OpConstantSampler                         Op = 45
	OpConstantNull                            Op = 46
	OpSpecConstantTrue                        Op = 48
	OpSpecConstantFalse                       Op = 49
	OpSpecConstant                            Op = 50
	OpSpecConstantComposite                   Op = 51
	OpSpecConstantOp                          Op = 52
	OpFunction                                Op = 54
	OpFunctionParameter                       Op = 55
	OpFunctionEnd                             Op = 56
	OpFunctionCall                            Op = 57
	OpVariable                                Op = 59
	OpImageTexelPointer                       Op = 60
	OpLoad                                    Op = 61
	OpStore                                   Op = 62
	OpCopyMemory                              Op = 63
	OpCopyMemorySized                         Op = 64
	OpAccessChain                             Op = 65
	OpInBoundsAccessChain                     Op = 66
	OpPtrAccessChain                          Op = 67
	OpArrayLength                             Op = 68
	OpGenericPtrMemSemantics                  Op = 69
	OpInBoundsPtrAccessChain                  Op = 70
	OpDecorate                                Op = 71
	OpMemberDecorate                          Op = 72
	OpDecorationGroup                         Op = 73
	OpGroupDecorate                           Op = 74
	OpGroupMemberDecorate                     Op = 75
	OpVectorExtractDynamic                    Op = 77
	OpVectorInsertDynamic                     Op = 78
	OpVectorShuffle                           Op = 79
	OpCompositeConstruct                      Op = 80
	OpCompositeExtract                        Op = 81
	OpCompositeInsert                         Op = 82
	OpCopyObject                              Op = 83
	OpTranspose                               Op = 84
	OpSampledImage                            Op = 86
	OpImageSampleImplicitLod                  Op = 87
	OpImageSampleExplicitLod                  Op = 88
	OpImageSampleDrefImplicitLod              Op = 89
	OpImageSampleDrefExplicitLod              Op = 90
	OpImageSampleProjImplicitLod              Op = 91
	OpImageSampleProjExplicitLod              Op = 92
	OpImageSampleProjDrefImplicitLod          Op = 93
	OpImageSampleProjDrefExplicitLod          Op = 94
	OpImageFetch                              Op = 95
	OpImageGather                             Op = 96
	OpImageDrefGather                         Op = 97
	OpImageRead                               Op = 98
	OpImageWrite                              Op = 99
	OpImage                                   Op = 100
	OpImageQueryFormat                        Op = 101
	OpImageQueryOrder                         Op = 102
	OpImageQuerySizeLod                       Op = 103
	OpImageQuerySize                          Op = 104
	OpImageQueryLod                           Op = 105
	OpImageQueryLevels                        Op = 106
	OpImageQuerySamples                       Op = 107
	OpConvertFToU                             Op = 109
	OpConvertFToS                             Op = 110
	OpConvertSToF                             Op = 111
	OpConvertUToF                             Op = 112
	OpUConvert                                Op = 113
	OpSConvert                                Op = 114
	OpFConvert                                Op = 115
	OpQuantizeToF16                           Op = 116
	OpConvertPtrToU                           Op = 117
	OpSatConvertSToU                          Op = 118
	OpSatConvertUToS                          Op = 119
	OpConvertUToPtr                           Op = 120
	OpPtrCastToGeneric                        Op = 121
	OpGenericCastToPtr                        Op = 122
	OpGenericCastToPtrExplicit                Op = 123
	OpBitcast                                 Op = 124
	OpSNegate                                 Op = 126
	OpFNegate                                 Op = 127
	OpIAdd                                    Op = 128
	OpFAdd                                    Op = 129
	OpISub                                    Op = 130
	OpFSub                                    Op = 131
	OpIMul                                    Op = 132
	OpFMul                                    Op = 133
	OpUDiv                                    Op = 134
	OpSDiv                                    Op = 135
	OpFDiv                                    Op = 136
	OpUMod                                    Op = 137
	OpSRem                                    Op = 138
	OpSMod                                    Op = 139
	OpFRem                                    Op = 140
	OpFMod                                    Op = 141
	OpVectorTimesScalar                       Op = 142
	OpMatrixTimesScalar                       Op = 143
	OpVectorTimesMatrix                       Op = 144
	OpMatrixTimesVector                       Op = 145
	OpMatrixTimesMatrix                       Op = 146
	OpOuterProduct                            Op = 147
	OpDot                                     Op = 148
	OpIAddCarry                               Op = 149
	OpISubBorrow                              Op = 150
	OpUMulExtended                            Op = 151
	OpSMulExtended                            Op = 152
	OpAny                                     Op = 154
	OpAll                                     Op = 155
	OpIsNan                                   Op = 156
	OpIsInf                                   Op = 157
	OpIsFinite                                Op = 158
	OpIsNormal                                Op = 159
	OpSignBitSet                              Op = 160
	OpLessOrGreater                           Op = 161
	OpOrdered                                 Op = 162
	OpUnordered                               Op = 163
	OpLogicalEqual                            Op = 164
	OpLogicalNotEqual                         Op = 165
	OpLogicalOr                               Op = 166
	OpLogicalAnd                              Op = 167
	OpLogicalNot                              Op = 168
	OpSelect                                  Op = 169
	OpIEqual                                  Op = 170
	OpINotEqual                               Op = 171
	OpUGreaterThan                            Op = 172
	OpSGreaterThan                            Op = 173
	OpUGreaterThanEqual                       Op = 174
	OpSGreaterThanEqual                       Op = 175
	OpULessThan                               Op = 176
	OpSLessThan                               Op = 177
	OpULessThanEqual                          Op = 178
	OpSLessThanEqual                          Op = 179
	OpFOrdEqual                               Op = 180
	OpFUnordEqual                             Op = 181
	OpFOrdNotEqual                            Op = 182
	OpFUnordNotEqual                          Op = 183
	OpFOrdLessThan                            Op = 184
	OpFUnordLessThan                          Op = 185
	OpFOrdGreaterThan                         Op = 186
	OpFUnordGreaterThan                       Op = 187
	OpFOrdLessThanEqual                       Op = 188
	OpFUnordLessThanEqual                     Op = 189
	OpFOrdGreaterThanEqual                    Op = 190
	OpFUnordGreaterThanEqual                  Op = 191
	OpShiftRightLogical                       Op = 194
	OpShiftRightArithmetic                    Op = 195
	OpShiftLeftLogical                        Op = 196
	OpBitwiseOr                               Op = 197
	OpBitwiseXor                              Op = 198
	OpBitwiseAnd                              Op = 199
	OpNot                                     Op = 200
	OpBitFieldInsert                          Op = 201
	OpBitFieldSExtract                        Op = 202
	OpBitFieldUExtract                        Op = 203
	OpBitReverse                              Op = 204
	OpBitCount                                Op = 205
	OpDPdx                                    Op = 207
	OpDPdy                                    Op = 208
	OpFwidth                                  Op = 209
	OpDPdxFine                                Op = 210
	OpDPdyFine                                Op = 211
	OpFwidthFine                              Op = 212
	OpDPdxCoarse                              Op = 213
	OpDPdyCoarse                              Op = 214
	OpFwidthCoarse                            Op = 215
	OpEmitVertex                              Op = 218
	OpEndPrimitive                            Op = 219
	OpEmitStreamVertex                        Op = 220
	OpEndStreamPrimitive                      Op = 221
	OpControlBarrier                          Op = 224
	OpMemoryBarrier                           Op = 225
	OpAtomicLoad                              Op = 227
	OpAtomicStore                             Op = 228
	OpAtomicExchange                          Op = 229
	OpAtomicCompareExchange                   Op = 230
	OpAtomicCompareExchangeWeak               Op = 231
	OpAtomicIIncrement                        Op = 232
	OpAtomicIDecrement                        Op = 233
	OpAtomicIAdd                              Op = 234
	OpAtomicISub                              Op = 235
	OpAtomicSMin                              Op = 236
	OpAtomicUMin                              Op = 237
	OpAtomicSMax                              Op = 238
	OpAtomicUMax                              Op = 239
	OpAtomicAnd                               Op = 240
	OpAtomicOr                                Op = 241
	OpAtomicXor                               Op = 242
	OpPhi                                     Op = 245
	OpLoopMerge                               Op = 246
	OpSelectionMerge                          Op = 247
	OpLabel                                   Op = 248
	OpBranch                                  Op = 249
	OpBranchConditional                       Op = 250
	OpSwitch                                  Op = 251
	OpKill                                    Op = 252
	OpReturn                                  Op = 253
	OpReturnValue                             Op = 254
	OpUnreachable                             Op = 255
	OpLifetimeStart                           Op = 256
	OpLifetimeStop                            Op = 257
	OpGroupAsyncCopy                          Op = 259
	OpGroupWaitEvents                         Op = 260
	OpGroupAll                                Op = 261
	OpGroupAny                                Op = 262
	OpGroupBroadcast                          Op = 263
	OpGroupIAdd                               Op = 264
	OpGroupFAdd                               Op = 265
	OpGroupFMin                               Op = 266
	OpGroupUMin                               Op = 267
	OpGroupSMin                               Op = 268
	OpGroupFMax                               Op = 269
	OpGroupUMax                               Op = 270
	OpGroupSMax                               Op = 271
	OpReadPipe                                Op = 274
	OpWritePipe                               Op = 275
	OpReservedReadPipe                        Op = 276
	OpReservedWritePipe                       Op = 277
	OpReserveReadPipePackets                  Op = 278
	OpReserveWritePipePackets                 Op = 279
	OpCommitReadPipe                          Op = 280
	OpCommitWritePipe                         Op = 281
	OpIsValidReserveId                        Op = 282
	OpGetNumPipePackets                       Op = 283
	OpGetMaxPipePackets                       Op = 284
	OpGroupReserveReadPipePackets             Op = 285
	OpGroupReserveWritePipePackets            Op = 286
	OpGroupCommitReadPipe                     Op = 287
	OpGroupCommitWritePipe                    Op = 288
	OpEnqueueMarker                           Op = 291
	OpEnqueueKernel                           Op = 292
	OpGetKernelNDrangeSubGroupCount           Op = 293
	OpGetKernelNDrangeMaxSubGroupSize         Op = 294
	OpGetKernelWorkGroupSize                  Op = 295
	OpGetKernelPreferredWorkGroupSizeMultiple Op = 296
	OpRetainEvent                             Op = 297
	OpReleaseEvent                            Op = 298
	OpCreateUserEvent                         Op = 299
	OpIsValidEvent                            Op = 300
	OpSetUserEventStatus                      Op = 301
	OpCaptureEventProfilingInfo               Op = 302
	OpGetDefaultQueue                         Op = 303
	OpBuildNDRange                            Op = 304
	OpImageSparseSampleImplicitLod            Op = 305
	OpImageSparseSampleExplicitLod            Op = 306
	OpImageSparseSampleDrefImplicitLod        Op = 307
	OpImageSparseSampleDrefExplicitLod        Op = 308
	OpImageSparseSampleProjImplicitLod        Op = 309
	OpImageSparseSampleProjExplicitLod        Op = 310
	OpImageSparseSampleProjDrefImplicitLod    Op = 311
	OpImageSparseSampleProjDrefExplicitLod    Op = 312
	OpImageSparseFetch                        Op = 313
	OpImageSparseGather                       Op = 314
	OpImageSparseDrefGather                   Op = 315
	OpImageSparseTexelsResident               Op = 316
	OpNoLine                                  Op = 317
	OpAtomicFlagTestAndSet                    Op = 318
	OpAtomicFlagClear                         Op = 319
	OpImageSparseRead                         Op = 320
	OpSizeOf                                  Op = 321
	OpTypePipeStorage                         Op = 322
	OpConstantPipeStorage                     Op = 323
	OpCreatePipeFromPipeStorage               Op = 324
	OpGetKernelLocalSizeForSubgroupCount      Op = 325
	OpGetKernelMaxNumSubgroups                Op = 326
	OpTypeNamedBarrier                        Op = 327
	OpNamedBarrierInitialize                  Op = 328
	OpMemoryNamedBarrier                      Op = 329
	OpModuleProcessed                         Op = 330
	OpExecutionModeId                         Op = 331
	OpDecorateId                              Op = 332
	OpGroupNonUniformElect                    Op = 333
	OpGroupNonUniformAll                      Op = 334
	OpGroupNonUniformAny                      Op = 335
	OpGroupNonUniformAllEqual                 Op = 336
	OpGroupNonUniformBroadcast                Op = 337
	OpGroupNonUniformBroadcastFirst           Op = 338
	OpGroupNonUniformBallot                   Op = 339
	OpGroupNonUniformInverseBallot            Op = 340
	OpGroupNonUniformBallotBitExtract         Op = 341
	OpGroupNonUniformBallotBitCount           Op = 342
	OpGroupNonUniformBallotFindLSB            Op = 343
	OpGroupNonUniformBallotFindMSB            Op = 344
	OpGroupNonUniformShuffle                  Op = 345
	OpGroupNonUniformShuffleXor               Op = 346
	OpGroupNonUniformShuffleUp                Op = 347
	OpGroupNonUniformShuffleDown              Op = 348
	OpGroupNonUniformIAdd                     Op = 349
	OpGroupNonUniformFAdd                     Op = 350
	OpGroupNonUniformIMul                     Op = 351
	OpGroupNonUniformFMul                     Op = 352
	OpGroupNonUniformSMin                     Op = 353
	OpGroupNonUniformUMin                     Op = 354
	OpGroupNonUniformFMin                     Op = 355
	OpGroupNonUniformSMax                     Op = 356
	OpGroupNonUniformUMax                     Op = 357
	OpGroupNonUniformFMax                     Op = 358
	OpGroupNonUniformBitwiseAnd               Op = 359
	OpGroupNonUniformBitwiseOr                Op = 360
	OpGroupNonUniformBitwiseXor               Op = 361
	OpGroupNonUniformLogicalAnd               Op = 362
	OpGroupNonUniformLogicalOr                Op = 363
	OpGroupNonUniformLogicalXor               Op = 364
	OpGroupNonUniformQuadBroadcast            Op = 365
	OpGroupNonUniformQuadSwap                 Op = 366
	OpCopyLogical                             Op = 400
	OpPtrEqual                                Op = 401
	OpPtrNotEqual                             Op = 402
	OpPtrDiff                                 Op = 403
	OpTerminateInvocation                     Op = 4416
	OpSDot                                    Op = 4450
	OpUDot                                    Op = 4451
	OpSUDot                                   Op = 4452
	OpSDotAccSat                              Op = 4453
	OpUDotAccSat                              Op = 4454
	OpSUDotAccSat                             Op = 4455
	OpDecorateString                          Op = 5632
	OpMemberDecorateString                    Op = 5633

	// OpForward marks a placeholder for an id referenced before its
	// definition. It never appears on the wire.
	OpForward Op = 0xFFFF
)

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// IsEndOfBlock reports whether op terminates a basic block.
func (op Op) IsEndOfBlock() bool {
	switch op {
	case OpBranch, OpBranchConditional, OpSwitch, OpKill, OpReturn, OpReturnValue, OpUnreachable, OpTerminateInvocation:
		return true
	default:
		return false
	}
}

// Decoration is a decoration kind.
type Decoration uint32

const (
	DecorationRelaxedPrecision     Decoration = 0
	DecorationSpecID               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationBufferBlock          Decoration = 3
	DecorationRowMajor             Decoration = 4
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationGLSLShared           Decoration = 8
	DecorationGLSLPacked           Decoration = 9
	DecorationCPacked              Decoration = 10
	DecorationBuiltIn              Decoration = 11
	DecorationNoPerspective        Decoration = 13
	DecorationFlat                 Decoration = 14
	DecorationPatch                Decoration = 15
	DecorationCentroid             Decoration = 16
	DecorationSample               Decoration = 17
	DecorationInvariant            Decoration = 18
	DecorationRestrict             Decoration = 19
	DecorationAliased              Decoration = 20
	DecorationVolatile             Decoration = 21
	DecorationConstant             Decoration = 22
	DecorationCoherent             Decoration = 23
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationUniform              Decoration = 26
	DecorationSaturatedConversion  Decoration = 28
	DecorationStream               Decoration = 29
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationIndex                Decoration = 32
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationXfbBuffer            Decoration = 36
	DecorationXfbStride            Decoration = 37
	DecorationFuncParamAttr        Decoration = 38
	DecorationFPRoundingMode       Decoration = 39
	DecorationFPFastMathMode       Decoration = 40
	DecorationLinkageAttributes    Decoration = 41
	DecorationNoContraction        Decoration = 42
	DecorationInputAttachmentIndex Decoration = 43
	DecorationAlignment            Decoration = 44
	DecorationCounterBuffer        Decoration = 5634
	DecorationUserSemantic         Decoration = 5635
)

var decorationNames = map[Decoration]string{
	DecorationRelaxedPrecision:     "RelaxedPrecision",
	DecorationSpecID:               "SpecId",
	DecorationBlock:                "Block",
	DecorationBufferBlock:          "BufferBlock",
	DecorationRowMajor:             "RowMajor",
	DecorationColMajor:             "ColMajor",
	DecorationArrayStride:          "ArrayStride",
	DecorationMatrixStride:         "MatrixStride",
	DecorationGLSLShared:           "GLSLShared",
	DecorationGLSLPacked:           "GLSLPacked",
	DecorationCPacked:              "CPacked",
	DecorationBuiltIn:              "BuiltIn",
	DecorationNoPerspective:        "NoPerspective",
	DecorationFlat:                 "Flat",
	DecorationPatch:                "Patch",
	DecorationCentroid:             "Centroid",
	DecorationSample:               "Sample",
	DecorationInvariant:            "Invariant",
	DecorationRestrict:             "Restrict",
	DecorationAliased:              "Aliased",
	DecorationVolatile:             "Volatile",
	DecorationConstant:             "Constant",
	DecorationCoherent:             "Coherent",
	DecorationNonWritable:          "NonWritable",
	DecorationNonReadable:          "NonReadable",
	DecorationUniform:              "Uniform",
	DecorationSaturatedConversion:  "SaturatedConversion",
	DecorationStream:               "Stream",
	DecorationLocation:             "Location",
	DecorationComponent:            "Component",
	DecorationIndex:                "Index",
	DecorationBinding:              "Binding",
	DecorationDescriptorSet:        "DescriptorSet",
	DecorationOffset:               "Offset",
	DecorationXfbBuffer:            "XfbBuffer",
	DecorationXfbStride:            "XfbStride",
	DecorationFuncParamAttr:        "FuncParamAttr",
	DecorationFPRoundingMode:       "FPRoundingMode",
	DecorationFPFastMathMode:       "FPFastMathMode",
	DecorationLinkageAttributes:    "LinkageAttributes",
	DecorationNoContraction:        "NoContraction",
	DecorationInputAttachmentIndex: "InputAttachmentIndex",
	DecorationAlignment:            "Alignment",
	DecorationCounterBuffer:        "CounterBuffer",
	DecorationUserSemantic:         "UserSemantic",
}

func (d Decoration) String() string {
	if name, ok := decorationNames[d]; ok {
		return name
	}
	return "Decoration(" + strconv.FormatUint(uint64(d), 10) + ")"
}

// LinkageType is the trailing literal of a LinkageAttributes decoration.
type LinkageType uint32

const (
	LinkageExport      LinkageType = 0
	LinkageImport      LinkageType = 1
	LinkageLinkOnceODR LinkageType = 2

	// LinkageInternal is reported for entities without linkage attributes.
	LinkageInternal LinkageType = 0xFFFFFFFF
)

// ExecutionModel is the shader stage of an entry point.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
	ExecutionModelTaskEXT                ExecutionModel = 5364
	ExecutionModelMeshEXT                ExecutionModel = 5365
)

func (m ExecutionModel) String() string {
	switch m {
	case ExecutionModelVertex:
		return "Vertex"
	case ExecutionModelTessellationControl:
		return "TessellationControl"
	case ExecutionModelTessellationEvaluation:
		return "TessellationEvaluation"
	case ExecutionModelGeometry:
		return "Geometry"
	case ExecutionModelFragment:
		return "Fragment"
	case ExecutionModelGLCompute:
		return "GLCompute"
	case ExecutionModelKernel:
		return "Kernel"
	case ExecutionModelTaskEXT:
		return "TaskEXT"
	case ExecutionModelMeshEXT:
		return "MeshEXT"
	default:
		return "ExecutionModel(" + strconv.FormatUint(uint64(m), 10) + ")"
	}
}

// ExecutionModeKind selects an execution mode.
type ExecutionModeKind uint32

const (
	ExecutionModeInvocations              ExecutionModeKind = 0
	ExecutionModeOriginUpperLeft          ExecutionModeKind = 7
	ExecutionModeOriginLowerLeft          ExecutionModeKind = 8
	ExecutionModeEarlyFragmentTests       ExecutionModeKind = 9
	ExecutionModeDepthReplacing           ExecutionModeKind = 12
	ExecutionModeLocalSize                ExecutionModeKind = 17
	ExecutionModeLocalSizeHint            ExecutionModeKind = 18
	ExecutionModeOutputVertices           ExecutionModeKind = 26
	ExecutionModeSubgroupsPerWorkgroupID  ExecutionModeKind = 37
	ExecutionModeLocalSizeID              ExecutionModeKind = 38
	ExecutionModeLocalSizeHintID          ExecutionModeKind = 39
	ExecutionModeDenormPreserve           ExecutionModeKind = 4459
	ExecutionModeDenormFlushToZero        ExecutionModeKind = 4460
	ExecutionModeSignedZeroInfNanPreserve ExecutionModeKind = 4461
	ExecutionModeRoundingModeRTE          ExecutionModeKind = 4462
	ExecutionModeRoundingModeRTZ          ExecutionModeKind = 4463
	ExecutionModeOutputPrimitivesEXT      ExecutionModeKind = 5270
)

// isMergedMode reports whether every instance of mode is kept, one per
// floating-point width, instead of the last instance replacing earlier ones.
func isMergedMode(mode ExecutionModeKind) bool {
	switch mode {
	case ExecutionModeDenormPreserve, ExecutionModeDenormFlushToZero,
		ExecutionModeSignedZeroInfNanPreserve, ExecutionModeRoundingModeRTE,
		ExecutionModeRoundingModeRTZ:
		return true
	default:
		return false
	}
}

// executionModeLiterals returns the literal count required by mode, or -1
// when it is not checked.
func executionModeLiterals(mode ExecutionModeKind) int {
	switch mode {
	case ExecutionModeLocalSize, ExecutionModeLocalSizeHint, ExecutionModeLocalSizeID, ExecutionModeLocalSizeHintID:
		return 3
	case ExecutionModeInvocations, ExecutionModeOutputVertices, ExecutionModeOutputPrimitivesEXT,
		ExecutionModeSubgroupsPerWorkgroupID:
		return 1
	case ExecutionModeOriginUpperLeft, ExecutionModeOriginLowerLeft,
		ExecutionModeEarlyFragmentTests, ExecutionModeDepthReplacing:
		return 0
	}
	if isMergedMode(mode) {
		return 1
	}
	return -1
}

// AddressingModel is the first operand of OpMemoryModel.
type AddressingModel uint32

const (
	AddressingModelLogical                 AddressingModel = 0
	AddressingModelPhysical32              AddressingModel = 1
	AddressingModelPhysical64              AddressingModel = 2
	AddressingModelPhysicalStorageBuffer64 AddressingModel = 5348
)

func (a AddressingModel) isValid() bool {
	switch a {
	case AddressingModelLogical, AddressingModelPhysical32, AddressingModelPhysical64,
		AddressingModelPhysicalStorageBuffer64:
		return true
	default:
		return false
	}
}

// MemoryModelKind is the second operand of OpMemoryModel.
type MemoryModelKind uint32

const (
	MemoryModelSimple  MemoryModelKind = 0
	MemoryModelGLSL450 MemoryModelKind = 1
	MemoryModelOpenCL  MemoryModelKind = 2
	MemoryModelVulkan  MemoryModelKind = 3
)

func (m MemoryModelKind) isValid() bool {
	return m <= MemoryModelVulkan
}

// CapabilityKind is a feature declared by OpCapability.
type CapabilityKind uint32

const (
	CapabilityMatrix         CapabilityKind = 0
	CapabilityShader         CapabilityKind = 1
	CapabilityGeometry       CapabilityKind = 2
	CapabilityLinkage        CapabilityKind = 5
	CapabilityKernel         CapabilityKind = 6
	CapabilityFloat64        CapabilityKind = 10
	CapabilityInt64          CapabilityKind = 11
	CapabilityInt16          CapabilityKind = 22
	CapabilityInt8           CapabilityKind = 39
	CapabilityMeshShadingEXT CapabilityKind = 5283
)

// SourceLanguage is the first operand of OpSource.
type SourceLanguage uint32

const (
	SourceLanguageUnknown SourceLanguage = 0
	SourceLanguageESSL    SourceLanguage = 1
	SourceLanguageGLSL    SourceLanguage = 2
	SourceLanguageOpenCLC SourceLanguage = 3
	SourceLanguageHLSL    SourceLanguage = 5
)

// StorageClass is the storage class operand of pointers and variables.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassPushConstant    StorageClass = 9
	StorageClassStorageBuffer   StorageClass = 12
)
