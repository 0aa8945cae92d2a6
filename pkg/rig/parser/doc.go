// Package parser reads rig definition files into ast documents.
//
// Package: parser
// Title: Rig Definition Parser
// Description: Implements the line-oriented, keyword-driven parser: line
//              sanitization, positional tokenization, keyword resolution, the
//              block/module state machine with one extractor per section, the
//              tolerant typed argument accessors and the sequential-import
//              subsystem that resolves the node addressing dialect at the end
//              of the file. Recoverable input problems never abort the parse;
//              they are reported through the diagnostics Sink.
package parser
