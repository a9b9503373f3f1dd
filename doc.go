// Package extprot implements the wire runtime for a self-describing,
// extensible binary serialization format: tagged, length-prefixed
// primitives, tuples, homogeneous sequences and tagged unions, plus the
// schema-evolution discipline (primitive promotion, numeric widening,
// default substitution, unknown-value skipping) that lets producers and
// consumers built from independently evolving schemas interoperate.
//
// The schema language parser and code generator are external collaborators;
// this package supplies the MsgBuffer/Reader/Writer primitives, the
// type-directed decode contract, default-value computation and the
// versioned-message framing that generated code (or the dynamic codec in
// the schema subpackage) builds on.
package extprot
