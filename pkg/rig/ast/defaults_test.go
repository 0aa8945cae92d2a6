// File: defaults_test.go
// Title: Defaults Snapshot Tests
// Description: Tests for the built-in defaults constructors and the scaled
//              beam parameter getters.

package ast

import (
	"testing"
)

func TestNewBeamDefaults(t *testing.T) {
	d := NewBeamDefaults()
	if d.Springiness != BuiltinBeamSpring {
		t.Errorf("Springiness = %v, want %v", d.Springiness, BuiltinBeamSpring)
	}
	if d.DampingConstant != BuiltinBeamDamp {
		t.Errorf("DampingConstant = %v, want %v", d.DampingConstant, BuiltinBeamDamp)
	}
	if d.BeamMaterialName != "tracks/beam" {
		t.Errorf("BeamMaterialName = %q", d.BeamMaterialName)
	}
	if d.IsUserDefined {
		t.Error("built-in defaults must not be flagged user defined")
	}
	if d.Scale.Springiness != 1 || d.Scale.BreakingThreshold != 1 {
		t.Errorf("Scale = %+v, want all ones", d.Scale)
	}
}

func TestScaledGetters(t *testing.T) {
	d := NewBeamDefaults()
	d.Springiness = 100
	d.DampingConstant = 10
	d.DeformationThreshold = 8
	d.BreakingThreshold = 6
	d.Scale = BeamDefaultsScale{
		Springiness:          2,
		DampingConstant:      3,
		DeformationThreshold: 4,
		BreakingThreshold:    5,
	}

	if got := d.GetScaledSpringiness(); got != 200 {
		t.Errorf("GetScaledSpringiness() = %v, want 200", got)
	}
	if got := d.GetScaledDamping(); got != 30 {
		t.Errorf("GetScaledDamping() = %v, want 30", got)
	}
	if got := d.GetScaledDeformThreshold(); got != 32 {
		t.Errorf("GetScaledDeformThreshold() = %v, want 32", got)
	}
	if got := d.GetScaledBreakingThreshold(); got != 30 {
		t.Errorf("GetScaledBreakingThreshold() = %v, want 30", got)
	}
}

func TestNewNodeDefaults(t *testing.T) {
	d := NewNodeDefaults()
	if d.LoadWeight != -1 {
		t.Errorf("LoadWeight = %v, want -1 (unset)", d.LoadWeight)
	}
	if d.Friction != 1 || d.Volume != 1 || d.Surface != 1 {
		t.Errorf("defaults = %+v", d)
	}
}
