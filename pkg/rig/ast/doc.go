// Package ast defines the in-memory document model for rig definition files.
//
// Package: ast
// Title: Rig Definition Document Model
// Description: Declares the Document/Module containers and the plain element
//              records produced by the parser (nodes, beams, wheels, engine
//              parameters, visual attachments, ...). Elements capture the
//              defaults snapshot active at their definition line by reference;
//              snapshots are never mutated after publication, so the finished
//              document is safe for concurrent readers.
package ast
