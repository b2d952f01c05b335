// Package spirv decodes SPIR-V binaries into a typed, cross-referenced
// entity graph.
//
// # Decoding
//
// Decode a binary with the default opcode registry:
//
//	module, err := spirv.ParseModule(data)
//
// Or decode and validate in one step:
//
//	module, err := spirv.ParseModuleValidate(data)
//
// A Decoder built from Options can decode many independent streams at
// once; modules never share mutable state:
//
//	dec := spirv.NewDecoder(spirv.DefaultOptions())
//	modules, err := dec.DecodeAll(ctx, streams)
//
// # Forward References
//
// Annotation instructions (OpName, OpDecorate, OpEntryPoint,
// OpExecutionMode and friends) usually precede the definition they
// annotate. The module hands out a Forward placeholder for such ids and
// moves everything attached to it onto the real entity once its
// definition is decoded. Lookups never return a placeholder as a typed
// variant:
//
//	fn, err := spirv.LookupAs[*spirv.Function](module, id)
//
// # Decorations
//
// Every entity carries a decoration multimap. Lookups read the first
// instance of a kind; AllDecorations collects the distinct values across
// every instance:
//
//	binding, ok := v.HasDecoration(spirv.DecorationBinding, 0)
//	locations := v.AllDecorations(spirv.DecorationLocation, 0)
//
// # Encoding
//
// Encode a module back to binary. A structurally valid stream round-trips
// to identical words:
//
//	encoded, err := module.Encode()
//
// # Validation
//
// Validate reports every violated rule at once as *errors.ValidationErrors.
// Decoding itself only fails on malformed input.
package spirv
