// File: noderef.go
// Title: Dual-State Node References
// Description: NodeRef keeps both the numeric and the named interpretation of
//              a node token until document finalization decides which dialect
//              the file uses. NodeID identifies a node definition itself and
//              is either numbered or named, never both.

package ast

import "strconv"

// RefFlag records which interpretations of a node reference are usable.
type RefFlag uint32

const (
	// RefImportValid marks the reference as usable under legacy numeric
	// addressing.
	RefImportValid RefFlag = 1 << iota

	// RefImportMustCheckNamedFirst marks a numeric-looking reference that
	// appeared after at least one named node was defined. A node named
	// "5" must shadow node number 5.
	RefImportMustCheckNamedFirst

	// RefRegularValid marks the reference as usable under regular (named)
	// addressing.
	RefRegularValid

	// RefRegularNamed marks a regular-state reference that is a name
	// rather than a number.
	RefRegularNamed
)

// NodeRef is a reference to a node as written in the source file. The literal
// token is always preserved; the numeric value is only meaningful while the
// import state is valid.
type NodeRef struct {
	Str   string
	Num   uint
	Flags RefFlag
	Line  int
}

// NewNodeRef builds a reference from a raw token. Callers set flags according
// to the addressing modes in effect at the definition line.
func NewNodeRef(str string, num uint, flags RefFlag, line int) NodeRef {
	return NodeRef{Str: str, Num: num, Flags: flags, Line: line}
}

// IsValidAnyState reports whether at least one interpretation survives.
func (r *NodeRef) IsValidAnyState() bool {
	return r.Flags&(RefImportValid|RefRegularValid) != 0
}

// IsValidImportState reports whether the legacy numeric interpretation is
// usable.
func (r *NodeRef) IsValidImportState() bool {
	return r.Flags&RefImportValid != 0
}

// IsValidRegularState reports whether the regular interpretation is usable.
func (r *NodeRef) IsValidRegularState() bool {
	return r.Flags&RefRegularValid != 0
}

// IsRegularNamed reports whether the regular interpretation is a name.
func (r *NodeRef) IsRegularNamed() bool {
	return r.Flags&RefRegularNamed != 0
}

// MustCheckNamedFirst reports whether name lookup has priority over the
// numeric value when both could resolve.
func (r *NodeRef) MustCheckNamedFirst() bool {
	return r.Flags&RefImportMustCheckNamedFirst != 0
}

// ResolveAsNumbered discards the regular interpretation. Called during
// finalization for documents that only ever used numbered nodes.
func (r *NodeRef) ResolveAsNumbered() {
	if r.Flags&RefImportValid != 0 {
		r.Flags &^= RefRegularValid | RefRegularNamed
	}
}

// ResolveAsNamed discards the legacy numeric interpretation. Called during
// finalization for documents that only used named nodes or declared a file
// format version with named-only addressing.
func (r *NodeRef) ResolveAsNamed() {
	if r.Flags&RefRegularValid != 0 {
		r.Flags &^= RefImportValid | RefImportMustCheckNamedFirst
	}
}

func (r *NodeRef) String() string {
	return r.Str
}

// NodeID identifies a node definition. Exactly one of the two forms is set.
type NodeID struct {
	num      uint
	str      string
	numbered bool
	named    bool
}

// SetNum makes the identifier a numbered one.
func (id *NodeID) SetNum(n uint) {
	id.num = n
	id.str = strconv.FormatUint(uint64(n), 10)
	id.numbered = true
	id.named = false
}

// SetStr makes the identifier a named one.
func (id *NodeID) SetStr(s string) {
	id.num = 0
	id.str = s
	id.numbered = false
	id.named = true
}

// IsNumbered reports whether the identifier is a node number.
func (id *NodeID) IsNumbered() bool { return id.numbered }

// IsNamed reports whether the identifier is a node name.
func (id *NodeID) IsNamed() bool { return id.named }

// Num returns the numeric value; only meaningful when IsNumbered.
func (id *NodeID) Num() uint { return id.num }

func (id *NodeID) String() string { return id.str }
