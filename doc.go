// Package spirvgraph decodes SPIR-V modules into an entity graph.
//
// The module is organized into a few packages:
//
//	spirvgraph/
//	├── spirv/           Entity model, opcode registry, decoder, encoder and validator
//	├── errors/          Structured error types for debugging
//	└── cmd/spvdump/     Command-line inspector for SPIR-V binaries
//
// # Quick Start
//
// Decode and query a module:
//
//	m, err := spirv.ParseModuleValidate(data)
//	if err != nil {
//	    return err
//	}
//	for e := range m.Entities() {
//	    fmt.Println(e.Op(), e.ID(), e.Name())
//	}
//
// # Errors
//
// Errors carry the phase, kind, opcode, id and byte offset where they
// occurred:
//
//	var se *errors.Error
//	if errors.As(err, &se) {
//	    fmt.Println(se.Phase, se.Kind, se.Op, se.Offset)
//	}
//
// # Logging
//
// The spirv package logs through zap. It is silent until a logger is
// installed:
//
//	spirv.SetLogger(zap.Must(zap.NewDevelopment()))
package spirvgraph
