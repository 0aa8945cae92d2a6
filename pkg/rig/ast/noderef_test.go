// File: noderef_test.go
// Title: Node Reference Tests
// Description: Tests for the dual-state reference flags, the finalization
//              resolvers and node identifiers.

package ast

import (
	"testing"
)

func TestNodeRefStates(t *testing.T) {
	tests := []struct {
		name         string
		flags        RefFlag
		validAny     bool
		validImport  bool
		validRegular bool
		regularNamed bool
		namedFirst   bool
	}{
		{
			name:  "zero value is invalid",
			flags: 0,
		},
		{
			name:         "numeric in both dialects",
			flags:        RefImportValid | RefRegularValid,
			validAny:     true,
			validImport:  true,
			validRegular: true,
		},
		{
			name:         "name after named node",
			flags:        RefImportValid | RefImportMustCheckNamedFirst | RefRegularValid | RefRegularNamed,
			validAny:     true,
			validImport:  true,
			validRegular: true,
			regularNamed: true,
			namedFirst:   true,
		},
		{
			name:         "regular only",
			flags:        RefRegularValid | RefRegularNamed,
			validAny:     true,
			validRegular: true,
			regularNamed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := NewNodeRef("x", 0, tt.flags, 1)
			if got := ref.IsValidAnyState(); got != tt.validAny {
				t.Errorf("IsValidAnyState() = %v, want %v", got, tt.validAny)
			}
			if got := ref.IsValidImportState(); got != tt.validImport {
				t.Errorf("IsValidImportState() = %v, want %v", got, tt.validImport)
			}
			if got := ref.IsValidRegularState(); got != tt.validRegular {
				t.Errorf("IsValidRegularState() = %v, want %v", got, tt.validRegular)
			}
			if got := ref.IsRegularNamed(); got != tt.regularNamed {
				t.Errorf("IsRegularNamed() = %v, want %v", got, tt.regularNamed)
			}
			if got := ref.MustCheckNamedFirst(); got != tt.namedFirst {
				t.Errorf("MustCheckNamedFirst() = %v, want %v", got, tt.namedFirst)
			}
		})
	}
}

func TestResolveAsNumbered(t *testing.T) {
	ref := NewNodeRef("5", 5, RefImportValid|RefRegularValid, 1)
	ref.ResolveAsNumbered()
	if !ref.IsValidImportState() || ref.IsValidRegularState() {
		t.Errorf("flags = %b, want import state only", ref.Flags)
	}

	// A reference without an import state is left alone.
	ref = NewNodeRef("cab", 0, RefRegularValid|RefRegularNamed, 1)
	ref.ResolveAsNumbered()
	if !ref.IsValidRegularState() {
		t.Errorf("flags = %b, regular-only reference must survive", ref.Flags)
	}
}

func TestResolveAsNamed(t *testing.T) {
	ref := NewNodeRef("5", 5,
		RefImportValid|RefImportMustCheckNamedFirst|RefRegularValid, 1)
	ref.ResolveAsNamed()
	if ref.IsValidImportState() || ref.MustCheckNamedFirst() {
		t.Errorf("flags = %b, import state must be dropped", ref.Flags)
	}
	if !ref.IsValidRegularState() {
		t.Errorf("flags = %b, regular state must survive", ref.Flags)
	}

	// A reference without a regular state is left alone.
	ref = NewNodeRef("5", 5, RefImportValid, 1)
	ref.ResolveAsNamed()
	if !ref.IsValidImportState() {
		t.Errorf("flags = %b, import-only reference must survive", ref.Flags)
	}
}

func TestNodeIDNumbered(t *testing.T) {
	var id NodeID
	id.SetNum(17)
	if !id.IsNumbered() || id.IsNamed() {
		t.Error("SetNum should produce a numbered identifier")
	}
	if id.Num() != 17 || id.String() != "17" {
		t.Errorf("Num/String = %d/%q", id.Num(), id.String())
	}
}

func TestNodeIDNamed(t *testing.T) {
	var id NodeID
	id.SetNum(3)
	id.SetStr("axle_l")
	if id.IsNumbered() || !id.IsNamed() {
		t.Error("SetStr should produce a named identifier")
	}
	if id.String() != "axle_l" {
		t.Errorf("String() = %q", id.String())
	}
}
