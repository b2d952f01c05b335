package spirv

// Class groups opcodes by the part of a module they belong to.
type Class uint8

const (
	ClassMisc Class = iota
	ClassDebug
	ClassAnnotation
	ClassExtension
	ClassModeSetting
	ClassType
	ClassConstant
	ClassMemory
	ClassFunction
	ClassComposite
	ClassImage
	ClassConversion
	ClassArithmetic
	ClassLogical
	ClassControlFlow
	ClassBit
	ClassDerivative
	ClassPrimitive
	ClassBarrier
	ClassAtomic
	ClassGroup
	ClassNonUniform
	ClassPipe
	ClassDeviceEnqueue
)

func (c Class) String() string {
	switch c {
	case ClassDebug:
		return "debug"
	case ClassAnnotation:
		return "annotation"
	case ClassExtension:
		return "extension"
	case ClassModeSetting:
		return "mode-setting"
	case ClassType:
		return "type"
	case ClassConstant:
		return "constant"
	case ClassMemory:
		return "memory"
	case ClassFunction:
		return "function"
	case ClassComposite:
		return "composite"
	case ClassImage:
		return "image"
	case ClassConversion:
		return "conversion"
	case ClassArithmetic:
		return "arithmetic"
	case ClassLogical:
		return "logical"
	case ClassControlFlow:
		return "control-flow"
	case ClassBit:
		return "bit"
	case ClassDerivative:
		return "derivative"
	case ClassPrimitive:
		return "primitive"
	case ClassBarrier:
		return "barrier"
	case ClassAtomic:
		return "atomic"
	case ClassGroup:
		return "group"
	case ClassNonUniform:
		return "non-uniform"
	case ClassPipe:
		return "pipe"
	case ClassDeviceEnqueue:
		return "device-enqueue"
	default:
		return "misc"
	}
}

// OpInfo describes the shape of one opcode.
//
// When New is nil the opcode decodes as a generic Instruction: an optional
// result type, an optional result id, then raw operand words.
type OpInfo struct {
	New       func() Entity
	Name      string
	Op        Op
	Class     Class
	HasType   bool
	HasResult bool
}

func dedicated(op Op, name string, class Class, hasType, hasResult bool, ctor func() Entity) OpInfo {
	return OpInfo{Op: op, Name: name, Class: class, HasType: hasType, HasResult: hasResult, New: ctor}
}

func generic(op Op, name string, class Class, hasType, hasResult bool) OpInfo {
	return OpInfo{Op: op, Name: name, Class: class, HasType: hasType, HasResult: hasResult}
}

var schema = []OpInfo{
	generic(OpNop, "OpNop", ClassMisc, false, false),
	dedicated(OpUndef, "OpUndef", ClassMisc, true, true, func() Entity { return &Undef{} }),
	generic(OpSizeOf, "OpSizeOf", ClassMisc, true, true),

	dedicated(OpSourceContinued, "OpSourceContinued", ClassDebug, false, false, func() Entity { return &SourceContinued{} }),
	dedicated(OpSource, "OpSource", ClassDebug, false, false, func() Entity { return &Source{} }),
	dedicated(OpSourceExtension, "OpSourceExtension", ClassDebug, false, false, func() Entity { return &SourceExtension{} }),
	dedicated(OpName, "OpName", ClassDebug, false, false, func() Entity { return &Name{} }),
	dedicated(OpMemberName, "OpMemberName", ClassDebug, false, false, func() Entity { return &MemberName{} }),
	dedicated(OpString, "OpString", ClassDebug, false, true, func() Entity { return &String{} }),
	dedicated(OpLine, "OpLine", ClassDebug, false, false, func() Entity { return &Line{} }),
	dedicated(OpNoLine, "OpNoLine", ClassDebug, false, false, func() Entity { return &NoLine{} }),
	dedicated(OpModuleProcessed, "OpModuleProcessed", ClassDebug, false, false, func() Entity { return &ModuleProcessed{} }),

	dedicated(OpExtension, "OpExtension", ClassExtension, false, false, func() Entity { return &Extension{} }),
	dedicated(OpExtInstImport, "OpExtInstImport", ClassExtension, false, true, func() Entity { return &ExtInstImport{} }),
	generic(OpExtInst, "OpExtInst", ClassExtension, true, true),

	dedicated(OpMemoryModel, "OpMemoryModel", ClassModeSetting, false, false, func() Entity { return &MemoryModel{} }),
	dedicated(OpEntryPoint, "OpEntryPoint", ClassModeSetting, false, false, func() Entity { return &EntryPoint{} }),
	dedicated(OpExecutionMode, "OpExecutionMode", ClassModeSetting, false, false, func() Entity { return &ExecutionMode{} }),
	dedicated(OpCapability, "OpCapability", ClassModeSetting, false, false, func() Entity { return &Capability{} }),
	dedicated(OpExecutionModeId, "OpExecutionModeId", ClassModeSetting, false, false, func() Entity { return &ExecutionMode{} }),

	dedicated(OpTypeVoid, "OpTypeVoid", ClassType, false, true, func() Entity { return &TypeVoid{} }),
	dedicated(OpTypeBool, "OpTypeBool", ClassType, false, true, func() Entity { return &TypeBool{} }),
	dedicated(OpTypeInt, "OpTypeInt", ClassType, false, true, func() Entity { return &TypeInt{} }),
	dedicated(OpTypeFloat, "OpTypeFloat", ClassType, false, true, func() Entity { return &TypeFloat{} }),
	dedicated(OpTypeVector, "OpTypeVector", ClassType, false, true, func() Entity { return &TypeVector{} }),
	dedicated(OpTypeMatrix, "OpTypeMatrix", ClassType, false, true, func() Entity { return &TypeMatrix{} }),
	dedicated(OpTypeImage, "OpTypeImage", ClassType, false, true, func() Entity { return &TypeImage{} }),
	dedicated(OpTypeSampler, "OpTypeSampler", ClassType, false, true, func() Entity { return &TypeSampler{} }),
	dedicated(OpTypeSampledImage, "OpTypeSampledImage", ClassType, false, true, func() Entity { return &TypeSampledImage{} }),
	dedicated(OpTypeArray, "OpTypeArray", ClassType, false, true, func() Entity { return &TypeArray{} }),
	dedicated(OpTypeRuntimeArray, "OpTypeRuntimeArray", ClassType, false, true, func() Entity { return &TypeRuntimeArray{} }),
	dedicated(OpTypeStruct, "OpTypeStruct", ClassType, false, true, func() Entity { return &TypeStruct{} }),
	generic(OpTypeOpaque, "OpTypeOpaque", ClassType, false, true),
	dedicated(OpTypePointer, "OpTypePointer", ClassType, false, true, func() Entity { return &TypePointer{} }),
	dedicated(OpTypeFunction, "OpTypeFunction", ClassType, false, true, func() Entity { return &TypeFunction{} }),
	generic(OpTypeEvent, "OpTypeEvent", ClassType, false, true),
	generic(OpTypeDeviceEvent, "OpTypeDeviceEvent", ClassType, false, true),
	generic(OpTypeReserveId, "OpTypeReserveId", ClassType, false, true),
	generic(OpTypeQueue, "OpTypeQueue", ClassType, false, true),
	generic(OpTypePipe, "OpTypePipe", ClassType, false, true),
	dedicated(OpTypeForwardPointer, "OpTypeForwardPointer", ClassType, false, false, func() Entity { return &TypeForwardPointer{} }),
	generic(OpTypePipeStorage, "OpTypePipeStorage", ClassType, false, true),
	generic(OpTypeNamedBarrier, "OpTypeNamedBarrier", ClassType, false, true),

	dedicated(OpConstantTrue, "OpConstantTrue", ClassConstant, true, true, func() Entity { return &ConstantBool{} }),
	dedicated(OpConstantFalse, "OpConstantFalse", ClassConstant, true, true, func() Entity { return &ConstantBool{} }),
	dedicated(OpConstant, "OpConstant", ClassConstant, true, true, func() Entity { return &Constant{} }),
	dedicated(OpConstantComposite, "OpConstantComposite", ClassConstant, true, true, func() Entity { return &ConstantComposite{} }),
	generic(OpConstantSampler, "OpConstantSampler", ClassConstant, true, true),
	dedicated(OpConstantNull, "OpConstantNull", ClassConstant, true, true, func() Entity { return &ConstantNull{} }),
	dedicated(OpSpecConstantTrue, "OpSpecConstantTrue", ClassConstant, true, true, func() Entity { return &ConstantBool{} }),
	dedicated(OpSpecConstantFalse, "OpSpecConstantFalse", ClassConstant, true, true, func() Entity { return &ConstantBool{} }),
	dedicated(OpSpecConstant, "OpSpecConstant", ClassConstant, true, true, func() Entity { return &Constant{} }),
	dedicated(OpSpecConstantComposite, "OpSpecConstantComposite", ClassConstant, true, true, func() Entity { return &ConstantComposite{} }),
	generic(OpSpecConstantOp, "OpSpecConstantOp", ClassConstant, true, true),

	dedicated(OpVariable, "OpVariable", ClassMemory, true, true, func() Entity { return &Variable{} }),
	generic(OpImageTexelPointer, "OpImageTexelPointer", ClassMemory, true, true),
	generic(OpLoad, "OpLoad", ClassMemory, true, true),
	generic(OpStore, "OpStore", ClassMemory, false, false),
	generic(OpCopyMemory, "OpCopyMemory", ClassMemory, false, false),
	generic(OpCopyMemorySized, "OpCopyMemorySized", ClassMemory, false, false),
	generic(OpAccessChain, "OpAccessChain", ClassMemory, true, true),
	generic(OpInBoundsAccessChain, "OpInBoundsAccessChain", ClassMemory, true, true),
	generic(OpPtrAccessChain, "OpPtrAccessChain", ClassMemory, true, true),
	generic(OpArrayLength, "OpArrayLength", ClassMemory, true, true),
	generic(OpGenericPtrMemSemantics, "OpGenericPtrMemSemantics", ClassMemory, true, true),
	generic(OpInBoundsPtrAccessChain, "OpInBoundsPtrAccessChain", ClassMemory, true, true),
	generic(OpPtrEqual, "OpPtrEqual", ClassMemory, true, true),
	generic(OpPtrNotEqual, "OpPtrNotEqual", ClassMemory, true, true),
	generic(OpPtrDiff, "OpPtrDiff", ClassMemory, true, true),

	dedicated(OpFunction, "OpFunction", ClassFunction, true, true, func() Entity { return &Function{} }),
	dedicated(OpFunctionParameter, "OpFunctionParameter", ClassFunction, true, true, func() Entity { return &FunctionParameter{} }),
	dedicated(OpFunctionEnd, "OpFunctionEnd", ClassFunction, false, false, func() Entity { return &FunctionEnd{} }),
	generic(OpFunctionCall, "OpFunctionCall", ClassFunction, true, true),

	dedicated(OpDecorate, "OpDecorate", ClassAnnotation, false, false, func() Entity { return &Decorate{} }),
	dedicated(OpMemberDecorate, "OpMemberDecorate", ClassAnnotation, false, false, func() Entity { return &MemberDecorate{} }),
	dedicated(OpDecorationGroup, "OpDecorationGroup", ClassAnnotation, false, true, func() Entity { return &DecorationGroup{} }),
	dedicated(OpGroupDecorate, "OpGroupDecorate", ClassAnnotation, false, false, func() Entity { return &GroupDecorate{} }),
	dedicated(OpGroupMemberDecorate, "OpGroupMemberDecorate", ClassAnnotation, false, false, func() Entity { return &GroupMemberDecorate{} }),
	dedicated(OpDecorateId, "OpDecorateId", ClassAnnotation, false, false, func() Entity { return &Decorate{} }),
	dedicated(OpDecorateString, "OpDecorateString", ClassAnnotation, false, false, func() Entity { return &Decorate{} }),
	dedicated(OpMemberDecorateString, "OpMemberDecorateString", ClassAnnotation, false, false, func() Entity { return &MemberDecorate{} }),

	generic(OpVectorExtractDynamic, "OpVectorExtractDynamic", ClassComposite, true, true),
	generic(OpVectorInsertDynamic, "OpVectorInsertDynamic", ClassComposite, true, true),
	generic(OpVectorShuffle, "OpVectorShuffle", ClassComposite, true, true),
	generic(OpCompositeConstruct, "OpCompositeConstruct", ClassComposite, true, true),
	generic(OpCompositeExtract, "OpCompositeExtract", ClassComposite, true, true),
	generic(OpCompositeInsert, "OpCompositeInsert", ClassComposite, true, true),
	generic(OpCopyObject, "OpCopyObject", ClassComposite, true, true),
	generic(OpTranspose, "OpTranspose", ClassComposite, true, true),
	generic(OpCopyLogical, "OpCopyLogical", ClassComposite, true, true),

	generic(OpSampledImage, "OpSampledImage", ClassImage, true, true),
	generic(OpImageSampleImplicitLod, "OpImageSampleImplicitLod", ClassImage, true, true),
	generic(OpImageSampleExplicitLod, "OpImageSampleExplicitLod", ClassImage, true, true),
	generic(OpImageSampleDrefImplicitLod, "OpImageSampleDrefImplicitLod", ClassImage, true, true),
	generic(OpImageSampleDrefExplicitLod, "OpImageSampleDrefExplicitLod", ClassImage, true, true),
	generic(OpImageSampleProjImplicitLod, "OpImageSampleProjImplicitLod", ClassImage, true, true),
	generic(OpImageSampleProjExplicitLod, "OpImageSampleProjExplicitLod", ClassImage, true, true),
	generic(OpImageSampleProjDrefImplicitLod, "OpImageSampleProjDrefImplicitLod", ClassImage, true, true),
	generic(OpImageSampleProjDrefExplicitLod, "OpImageSampleProjDrefExplicitLod", ClassImage, true, true),
	generic(OpImageFetch, "OpImageFetch", ClassImage, true, true),
	generic(OpImageGather, "OpImageGather", ClassImage, true, true),
	generic(OpImageDrefGather, "OpImageDrefGather", ClassImage, true, true),
	generic(OpImageRead, "OpImageRead", ClassImage, true, true),
	generic(OpImageWrite, "OpImageWrite", ClassImage, false, false),
	generic(OpImage, "OpImage", ClassImage, true, true),
	generic(OpImageQueryFormat, "OpImageQueryFormat", ClassImage, true, true),
	generic(OpImageQueryOrder, "OpImageQueryOrder", ClassImage, true, true),
	generic(OpImageQuerySizeLod, "OpImageQuerySizeLod", ClassImage, true, true),
	generic(OpImageQuerySize, "OpImageQuerySize", ClassImage, true, true),
	generic(OpImageQueryLod, "OpImageQueryLod", ClassImage, true, true),
	generic(OpImageQueryLevels, "OpImageQueryLevels", ClassImage, true, true),
	generic(OpImageQuerySamples, "OpImageQuerySamples", ClassImage, true, true),
	generic(OpImageSparseSampleImplicitLod, "OpImageSparseSampleImplicitLod", ClassImage, true, true),
	generic(OpImageSparseSampleExplicitLod, "OpImageSparseSampleExplicitLod", ClassImage, true, true),
	generic(OpImageSparseSampleDrefImplicitLod, "OpImageSparseSampleDrefImplicitLod", ClassImage, true, true),
	generic(OpImageSparseSampleDrefExplicitLod, "OpImageSparseSampleDrefExplicitLod", ClassImage, true, true),
	generic(OpImageSparseSampleProjImplicitLod, "OpImageSparseSampleProjImplicitLod", ClassImage, true, true),
	generic(OpImageSparseSampleProjExplicitLod, "OpImageSparseSampleProjExplicitLod", ClassImage, true, true),
	generic(OpImageSparseSampleProjDrefImplicitLod, "OpImageSparseSampleProjDrefImplicitLod", ClassImage, true, true),
	generic(OpImageSparseSampleProjDrefExplicitLod, "OpImageSparseSampleProjDrefExplicitLod", ClassImage, true, true),
	generic(OpImageSparseFetch, "OpImageSparseFetch", ClassImage, true, true),
	generic(OpImageSparseGather, "OpImageSparseGather", ClassImage, true, true),
	generic(OpImageSparseDrefGather, "OpImageSparseDrefGather", ClassImage, true, true),
	generic(OpImageSparseTexelsResident, "OpImageSparseTexelsResident", ClassImage, true, true),
	generic(OpImageSparseRead, "OpImageSparseRead", ClassImage, true, true),

	generic(OpConvertFToU, "OpConvertFToU", ClassConversion, true, true),
	generic(OpConvertFToS, "OpConvertFToS", ClassConversion, true, true),
	generic(OpConvertSToF, "OpConvertSToF", ClassConversion, true, true),
	generic(OpConvertUToF, "OpConvertUToF", ClassConversion, true, true),
	generic(OpUConvert, "OpUConvert", ClassConversion, true, true),
	generic(OpSConvert, "OpSConvert", ClassConversion, true, true),
	generic(OpFConvert, "OpFConvert", ClassConversion, true, true),
	generic(OpQuantizeToF16, "OpQuantizeToF16", ClassConversion, true, true),
	generic(OpConvertPtrToU, "OpConvertPtrToU", ClassConversion, true, true),
	generic(OpSatConvertSToU, "OpSatConvertSToU", ClassConversion, true, true),
	generic(OpSatConvertUToS, "OpSatConvertUToS", ClassConversion, true, true),
	generic(OpConvertUToPtr, "OpConvertUToPtr", ClassConversion, true, true),
	generic(OpPtrCastToGeneric, "OpPtrCastToGeneric", ClassConversion, true, true),
	generic(OpGenericCastToPtr, "OpGenericCastToPtr", ClassConversion, true, true),
	generic(OpGenericCastToPtrExplicit, "OpGenericCastToPtrExplicit", ClassConversion, true, true),
	generic(OpBitcast, "OpBitcast", ClassConversion, true, true),

	generic(OpSNegate, "OpSNegate", ClassArithmetic, true, true),
	generic(OpFNegate, "OpFNegate", ClassArithmetic, true, true),
	generic(OpIAdd, "OpIAdd", ClassArithmetic, true, true),
	generic(OpFAdd, "OpFAdd", ClassArithmetic, true, true),
	generic(OpISub, "OpISub", ClassArithmetic, true, true),
	generic(OpFSub, "OpFSub", ClassArithmetic, true, true),
	generic(OpIMul, "OpIMul", ClassArithmetic, true, true),
	generic(OpFMul, "OpFMul", ClassArithmetic, true, true),
	generic(OpUDiv, "OpUDiv", ClassArithmetic, true, true),
	generic(OpSDiv, "OpSDiv", ClassArithmetic, true, true),
	generic(OpFDiv, "OpFDiv", ClassArithmetic, true, true),
	generic(OpUMod, "OpUMod", ClassArithmetic, true, true),
	generic(OpSRem, "OpSRem", ClassArithmetic, true, true),
	generic(OpSMod, "OpSMod", ClassArithmetic, true, true),
	generic(OpFRem, "OpFRem", ClassArithmetic, true, true),
	generic(OpFMod, "OpFMod", ClassArithmetic, true, true),
	generic(OpVectorTimesScalar, "OpVectorTimesScalar", ClassArithmetic, true, true),
	generic(OpMatrixTimesScalar, "OpMatrixTimesScalar", ClassArithmetic, true, true),
	generic(OpVectorTimesMatrix, "OpVectorTimesMatrix", ClassArithmetic, true, true),
	generic(OpMatrixTimesVector, "OpMatrixTimesVector", ClassArithmetic, true, true),
	generic(OpMatrixTimesMatrix, "OpMatrixTimesMatrix", ClassArithmetic, true, true),
	generic(OpOuterProduct, "OpOuterProduct", ClassArithmetic, true, true),
	generic(OpDot, "OpDot", ClassArithmetic, true, true),
	generic(OpIAddCarry, "OpIAddCarry", ClassArithmetic, true, true),
	generic(OpISubBorrow, "OpISubBorrow", ClassArithmetic, true, true),
	generic(OpUMulExtended, "OpUMulExtended", ClassArithmetic, true, true),
	generic(OpSMulExtended, "OpSMulExtended", ClassArithmetic, true, true),
	generic(OpSDot, "OpSDot", ClassArithmetic, true, true),
	generic(OpUDot, "OpUDot", ClassArithmetic, true, true),
	generic(OpSUDot, "OpSUDot", ClassArithmetic, true, true),
	generic(OpSDotAccSat, "OpSDotAccSat", ClassArithmetic, true, true),
	generic(OpUDotAccSat, "OpUDotAccSat", ClassArithmetic, true, true),
	generic(OpSUDotAccSat, "OpSUDotAccSat", ClassArithmetic, true, true),

	generic(OpShiftRightLogical, "OpShiftRightLogical", ClassBit, true, true),
	generic(OpShiftRightArithmetic, "OpShiftRightArithmetic", ClassBit, true, true),
	generic(OpShiftLeftLogical, "OpShiftLeftLogical", ClassBit, true, true),
	generic(OpBitwiseOr, "OpBitwiseOr", ClassBit, true, true),
	generic(OpBitwiseXor, "OpBitwiseXor", ClassBit, true, true),
	generic(OpBitwiseAnd, "OpBitwiseAnd", ClassBit, true, true),
	generic(OpNot, "OpNot", ClassBit, true, true),
	generic(OpBitFieldInsert, "OpBitFieldInsert", ClassBit, true, true),
	generic(OpBitFieldSExtract, "OpBitFieldSExtract", ClassBit, true, true),
	generic(OpBitFieldUExtract, "OpBitFieldUExtract", ClassBit, true, true),
	generic(OpBitReverse, "OpBitReverse", ClassBit, true, true),
	generic(OpBitCount, "OpBitCount", ClassBit, true, true),

	generic(OpAny, "OpAny", ClassLogical, true, true),
	generic(OpAll, "OpAll", ClassLogical, true, true),
	generic(OpIsNan, "OpIsNan", ClassLogical, true, true),
	generic(OpIsInf, "OpIsInf", ClassLogical, true, true),
	generic(OpIsFinite, "OpIsFinite", ClassLogical, true, true),
	generic(OpIsNormal, "OpIsNormal", ClassLogical, true, true),
	generic(OpSignBitSet, "OpSignBitSet", ClassLogical, true, true),
	generic(OpLessOrGreater, "OpLessOrGreater", ClassLogical, true, true),
	generic(OpOrdered, "OpOrdered", ClassLogical, true, true),
	generic(OpUnordered, "OpUnordered", ClassLogical, true, true),
	generic(OpLogicalEqual, "OpLogicalEqual", ClassLogical, true, true),
	generic(OpLogicalNotEqual, "OpLogicalNotEqual", ClassLogical, true, true),
	generic(OpLogicalOr, "OpLogicalOr", ClassLogical, true, true),
	generic(OpLogicalAnd, "OpLogicalAnd", ClassLogical, true, true),
	generic(OpLogicalNot, "OpLogicalNot", ClassLogical, true, true),
	generic(OpSelect, "OpSelect", ClassLogical, true, true),
	generic(OpIEqual, "OpIEqual", ClassLogical, true, true),
	generic(OpINotEqual, "OpINotEqual", ClassLogical, true, true),
	generic(OpUGreaterThan, "OpUGreaterThan", ClassLogical, true, true),
	generic(OpSGreaterThan, "OpSGreaterThan", ClassLogical, true, true),
	generic(OpUGreaterThanEqual, "OpUGreaterThanEqual", ClassLogical, true, true),
	generic(OpSGreaterThanEqual, "OpSGreaterThanEqual", ClassLogical, true, true),
	generic(OpULessThan, "OpULessThan", ClassLogical, true, true),
	generic(OpSLessThan, "OpSLessThan", ClassLogical, true, true),
	generic(OpULessThanEqual, "OpULessThanEqual", ClassLogical, true, true),
	generic(OpSLessThanEqual, "OpSLessThanEqual", ClassLogical, true, true),
	generic(OpFOrdEqual, "OpFOrdEqual", ClassLogical, true, true),
	generic(OpFUnordEqual, "OpFUnordEqual", ClassLogical, true, true),
	generic(OpFOrdNotEqual, "OpFOrdNotEqual", ClassLogical, true, true),
	generic(OpFUnordNotEqual, "OpFUnordNotEqual", ClassLogical, true, true),
	generic(OpFOrdLessThan, "OpFOrdLessThan", ClassLogical, true, true),
	generic(OpFUnordLessThan, "OpFUnordLessThan", ClassLogical, true, true),
	generic(OpFOrdGreaterThan, "OpFOrdGreaterThan", ClassLogical, true, true),
	generic(OpFUnordGreaterThan, "OpFUnordGreaterThan", ClassLogical, true, true),
	generic(OpFOrdLessThanEqual, "OpFOrdLessThanEqual", ClassLogical, true, true),
	generic(OpFUnordLessThanEqual, "OpFUnordLessThanEqual", ClassLogical, true, true),
	generic(OpFOrdGreaterThanEqual, "OpFOrdGreaterThanEqual", ClassLogical, true, true),
	generic(OpFUnordGreaterThanEqual, "OpFUnordGreaterThanEqual", ClassLogical, true, true),

	generic(OpDPdx, "OpDPdx", ClassDerivative, true, true),
	generic(OpDPdy, "OpDPdy", ClassDerivative, true, true),
	generic(OpFwidth, "OpFwidth", ClassDerivative, true, true),
	generic(OpDPdxFine, "OpDPdxFine", ClassDerivative, true, true),
	generic(OpDPdyFine, "OpDPdyFine", ClassDerivative, true, true),
	generic(OpFwidthFine, "OpFwidthFine", ClassDerivative, true, true),
	generic(OpDPdxCoarse, "OpDPdxCoarse", ClassDerivative, true, true),
	generic(OpDPdyCoarse, "OpDPdyCoarse", ClassDerivative, true, true),
	generic(OpFwidthCoarse, "OpFwidthCoarse", ClassDerivative, true, true),

	generic(OpPhi, "OpPhi", ClassControlFlow, true, true),
	generic(OpLoopMerge, "OpLoopMerge", ClassControlFlow, false, false),
	generic(OpSelectionMerge, "OpSelectionMerge", ClassControlFlow, false, false),
	dedicated(OpLabel, "OpLabel", ClassControlFlow, false, true, func() Entity { return &Label{} }),
	generic(OpBranch, "OpBranch", ClassControlFlow, false, false),
	generic(OpBranchConditional, "OpBranchConditional", ClassControlFlow, false, false),
	generic(OpSwitch, "OpSwitch", ClassControlFlow, false, false),
	generic(OpKill, "OpKill", ClassControlFlow, false, false),
	generic(OpReturn, "OpReturn", ClassControlFlow, false, false),
	generic(OpReturnValue, "OpReturnValue", ClassControlFlow, false, false),
	generic(OpUnreachable, "OpUnreachable", ClassControlFlow, false, false),
	generic(OpLifetimeStart, "OpLifetimeStart", ClassControlFlow, false, false),
	generic(OpLifetimeStop, "OpLifetimeStop", ClassControlFlow, false, false),
	generic(OpTerminateInvocation, "OpTerminateInvocation", ClassControlFlow, false, false),

	generic(OpEmitVertex, "OpEmitVertex", ClassPrimitive, false, false),
	generic(OpEndPrimitive, "OpEndPrimitive", ClassPrimitive, false, false),
	generic(OpEmitStreamVertex, "OpEmitStreamVertex", ClassPrimitive, false, false),
	generic(OpEndStreamPrimitive, "OpEndStreamPrimitive", ClassPrimitive, false, false),

	generic(OpControlBarrier, "OpControlBarrier", ClassBarrier, false, false),
	generic(OpMemoryBarrier, "OpMemoryBarrier", ClassBarrier, false, false),
	generic(OpNamedBarrierInitialize, "OpNamedBarrierInitialize", ClassBarrier, true, true),
	generic(OpMemoryNamedBarrier, "OpMemoryNamedBarrier", ClassBarrier, false, false),

	generic(OpAtomicLoad, "OpAtomicLoad", ClassAtomic, true, true),
	generic(OpAtomicStore, "OpAtomicStore", ClassAtomic, false, false),
	generic(OpAtomicExchange, "OpAtomicExchange", ClassAtomic, true, true),
	generic(OpAtomicCompareExchange, "OpAtomicCompareExchange", ClassAtomic, true, true),
	generic(OpAtomicCompareExchangeWeak, "OpAtomicCompareExchangeWeak", ClassAtomic, true, true),
	generic(OpAtomicIIncrement, "OpAtomicIIncrement", ClassAtomic, true, true),
	generic(OpAtomicIDecrement, "OpAtomicIDecrement", ClassAtomic, true, true),
	generic(OpAtomicIAdd, "OpAtomicIAdd", ClassAtomic, true, true),
	generic(OpAtomicISub, "OpAtomicISub", ClassAtomic, true, true),
	generic(OpAtomicSMin, "OpAtomicSMin", ClassAtomic, true, true),
	generic(OpAtomicUMin, "OpAtomicUMin", ClassAtomic, true, true),
	generic(OpAtomicSMax, "OpAtomicSMax", ClassAtomic, true, true),
	generic(OpAtomicUMax, "OpAtomicUMax", ClassAtomic, true, true),
	generic(OpAtomicAnd, "OpAtomicAnd", ClassAtomic, true, true),
	generic(OpAtomicOr, "OpAtomicOr", ClassAtomic, true, true),
	generic(OpAtomicXor, "OpAtomicXor", ClassAtomic, true, true),
	generic(OpAtomicFlagTestAndSet, "OpAtomicFlagTestAndSet", ClassAtomic, true, true),
	generic(OpAtomicFlagClear, "OpAtomicFlagClear", ClassAtomic, false, false),

	generic(OpGroupAsyncCopy, "OpGroupAsyncCopy", ClassGroup, true, true),
	generic(OpGroupWaitEvents, "OpGroupWaitEvents", ClassGroup, false, false),
	generic(OpGroupAll, "OpGroupAll", ClassGroup, true, true),
	generic(OpGroupAny, "OpGroupAny", ClassGroup, true, true),
	generic(OpGroupBroadcast, "OpGroupBroadcast", ClassGroup, true, true),
	generic(OpGroupIAdd, "OpGroupIAdd", ClassGroup, true, true),
	generic(OpGroupFAdd, "OpGroupFAdd", ClassGroup, true, true),
	generic(OpGroupFMin, "OpGroupFMin", ClassGroup, true, true),
	generic(OpGroupUMin, "OpGroupUMin", ClassGroup, true, true),
	generic(OpGroupSMin, "OpGroupSMin", ClassGroup, true, true),
	generic(OpGroupFMax, "OpGroupFMax", ClassGroup, true, true),
	generic(OpGroupUMax, "OpGroupUMax", ClassGroup, true, true),
	generic(OpGroupSMax, "OpGroupSMax", ClassGroup, true, true),

	generic(OpGroupNonUniformElect, "OpGroupNonUniformElect", ClassNonUniform, true, true),
	generic(OpGroupNonUniformAll, "OpGroupNonUniformAll", ClassNonUniform, true, true),
	generic(OpGroupNonUniformAny, "OpGroupNonUniformAny", ClassNonUniform, true, true),
	generic(OpGroupNonUniformAllEqual, "OpGroupNonUniformAllEqual", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBroadcast, "OpGroupNonUniformBroadcast", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBroadcastFirst, "OpGroupNonUniformBroadcastFirst", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBallot, "OpGroupNonUniformBallot", ClassNonUniform, true, true),
	generic(OpGroupNonUniformInverseBallot, "OpGroupNonUniformInverseBallot", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBallotBitExtract, "OpGroupNonUniformBallotBitExtract", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBallotBitCount, "OpGroupNonUniformBallotBitCount", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBallotFindLSB, "OpGroupNonUniformBallotFindLSB", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBallotFindMSB, "OpGroupNonUniformBallotFindMSB", ClassNonUniform, true, true),
	generic(OpGroupNonUniformShuffle, "OpGroupNonUniformShuffle", ClassNonUniform, true, true),
	generic(OpGroupNonUniformShuffleXor, "OpGroupNonUniformShuffleXor", ClassNonUniform, true, true),
	generic(OpGroupNonUniformShuffleUp, "OpGroupNonUniformShuffleUp", ClassNonUniform, true, true),
	generic(OpGroupNonUniformShuffleDown, "OpGroupNonUniformShuffleDown", ClassNonUniform, true, true),
	generic(OpGroupNonUniformIAdd, "OpGroupNonUniformIAdd", ClassNonUniform, true, true),
	generic(OpGroupNonUniformFAdd, "OpGroupNonUniformFAdd", ClassNonUniform, true, true),
	generic(OpGroupNonUniformIMul, "OpGroupNonUniformIMul", ClassNonUniform, true, true),
	generic(OpGroupNonUniformFMul, "OpGroupNonUniformFMul", ClassNonUniform, true, true),
	generic(OpGroupNonUniformSMin, "OpGroupNonUniformSMin", ClassNonUniform, true, true),
	generic(OpGroupNonUniformUMin, "OpGroupNonUniformUMin", ClassNonUniform, true, true),
	generic(OpGroupNonUniformFMin, "OpGroupNonUniformFMin", ClassNonUniform, true, true),
	generic(OpGroupNonUniformSMax, "OpGroupNonUniformSMax", ClassNonUniform, true, true),
	generic(OpGroupNonUniformUMax, "OpGroupNonUniformUMax", ClassNonUniform, true, true),
	generic(OpGroupNonUniformFMax, "OpGroupNonUniformFMax", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBitwiseAnd, "OpGroupNonUniformBitwiseAnd", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBitwiseOr, "OpGroupNonUniformBitwiseOr", ClassNonUniform, true, true),
	generic(OpGroupNonUniformBitwiseXor, "OpGroupNonUniformBitwiseXor", ClassNonUniform, true, true),
	generic(OpGroupNonUniformLogicalAnd, "OpGroupNonUniformLogicalAnd", ClassNonUniform, true, true),
	generic(OpGroupNonUniformLogicalOr, "OpGroupNonUniformLogicalOr", ClassNonUniform, true, true),
	generic(OpGroupNonUniformLogicalXor, "OpGroupNonUniformLogicalXor", ClassNonUniform, true, true),
	generic(OpGroupNonUniformQuadBroadcast, "OpGroupNonUniformQuadBroadcast", ClassNonUniform, true, true),
	generic(OpGroupNonUniformQuadSwap, "OpGroupNonUniformQuadSwap", ClassNonUniform, true, true),

	generic(OpReadPipe, "OpReadPipe", ClassPipe, true, true),
	generic(OpWritePipe, "OpWritePipe", ClassPipe, true, true),
	generic(OpReservedReadPipe, "OpReservedReadPipe", ClassPipe, true, true),
	generic(OpReservedWritePipe, "OpReservedWritePipe", ClassPipe, true, true),
	generic(OpReserveReadPipePackets, "OpReserveReadPipePackets", ClassPipe, true, true),
	generic(OpReserveWritePipePackets, "OpReserveWritePipePackets", ClassPipe, true, true),
	generic(OpCommitReadPipe, "OpCommitReadPipe", ClassPipe, false, false),
	generic(OpCommitWritePipe, "OpCommitWritePipe", ClassPipe, false, false),
	generic(OpIsValidReserveId, "OpIsValidReserveId", ClassPipe, true, true),
	generic(OpGetNumPipePackets, "OpGetNumPipePackets", ClassPipe, true, true),
	generic(OpGetMaxPipePackets, "OpGetMaxPipePackets", ClassPipe, true, true),
	generic(OpGroupReserveReadPipePackets, "OpGroupReserveReadPipePackets", ClassPipe, true, true),
	generic(OpGroupReserveWritePipePackets, "OpGroupReserveWritePipePackets", ClassPipe, true, true),
	generic(OpGroupCommitReadPipe, "OpGroupCommitReadPipe", ClassPipe, false, false),
	generic(OpGroupCommitWritePipe, "OpGroupCommitWritePipe", ClassPipe, false, false),
	generic(OpConstantPipeStorage, "OpConstantPipeStorage", ClassPipe, true, true),
	generic(OpCreatePipeFromPipeStorage, "OpCreatePipeFromPipeStorage", ClassPipe, true, true),

	generic(OpEnqueueMarker, "OpEnqueueMarker", ClassDeviceEnqueue, true, true),
	generic(OpEnqueueKernel, "OpEnqueueKernel", ClassDeviceEnqueue, true, true),
	generic(OpGetKernelNDrangeSubGroupCount, "OpGetKernelNDrangeSubGroupCount", ClassDeviceEnqueue, true, true),
	generic(OpGetKernelNDrangeMaxSubGroupSize, "OpGetKernelNDrangeMaxSubGroupSize", ClassDeviceEnqueue, true, true),
	generic(OpGetKernelWorkGroupSize, "OpGetKernelWorkGroupSize", ClassDeviceEnqueue, true, true),
	generic(OpGetKernelPreferredWorkGroupSizeMultiple, "OpGetKernelPreferredWorkGroupSizeMultiple", ClassDeviceEnqueue, true, true),
	generic(OpRetainEvent, "OpRetainEvent", ClassDeviceEnqueue, false, false),
	generic(OpReleaseEvent, "OpReleaseEvent", ClassDeviceEnqueue, false, false),
	generic(OpCreateUserEvent, "OpCreateUserEvent", ClassDeviceEnqueue, true, true),
	generic(OpIsValidEvent, "OpIsValidEvent", ClassDeviceEnqueue, true, true),
	generic(OpSetUserEventStatus, "OpSetUserEventStatus", ClassDeviceEnqueue, false, false),
	generic(OpCaptureEventProfilingInfo, "OpCaptureEventProfilingInfo", ClassDeviceEnqueue, false, false),
	generic(OpGetDefaultQueue, "OpGetDefaultQueue", ClassDeviceEnqueue, true, true),
	generic(OpBuildNDRange, "OpBuildNDRange", ClassDeviceEnqueue, true, true),
	generic(OpGetKernelLocalSizeForSubgroupCount, "OpGetKernelLocalSizeForSubgroupCount", ClassDeviceEnqueue, true, true),
	generic(OpGetKernelMaxNumSubgroups, "OpGetKernelMaxNumSubgroups", ClassDeviceEnqueue, true, true),
}

// opNames is derived from the schema and never mutated.
var opNames = func() map[Op]string {
	names := make(map[Op]string, len(schema)+1)
	for _, info := range schema {
		names[info.Op] = info.Name
	}
	names[OpForward] = "OpForward"
	return names
}()

// DefaultSchema returns a copy of the built-in opcode table.
func DefaultSchema() []OpInfo {
	out := make([]OpInfo, len(schema))
	copy(out, schema)
	return out
}
