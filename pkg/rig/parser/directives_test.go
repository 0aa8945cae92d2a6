// File: directives_test.go
// Title: Inline Directive Tests
// Description: Tests for the keyword-led one-line statements: defaults
//              snapshots, driving aids, forset ranges, add_animation and the
//              per-element camera mode directives.

package parser

import (
	"testing"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

func TestSetNodeDefaultsInheritsBuiltins(t *testing.T) {
	doc, _ := parseString(t, `Rig

set_node_defaults 50, -1, 0.9

nodes
0, 0, 0, 0
`)
	d := doc.Root.Nodes[0].NodeDefaults
	if d.LoadWeight != 50 {
		t.Errorf("LoadWeight = %v, want 50", d.LoadWeight)
	}
	if d.Friction != 1 {
		t.Errorf("Friction = %v, want built-in 1", d.Friction)
	}
	if d.Volume != 0.9 {
		t.Errorf("Volume = %v, want 0.9", d.Volume)
	}
	if d.Surface != 1 {
		t.Errorf("Surface = %v, want built-in 1", d.Surface)
	}
}

func TestSetBeamDefaultsScale(t *testing.T) {
	doc, _ := parseString(t, `Rig

nodes
0, 0, 0, 0
1, 1, 0, 0

set_beam_defaults_scale 0.5, 0.25

beams
0, 1
`)
	scale := doc.Root.Beams[0].Defaults.Scale
	if scale.Springiness != 0.5 {
		t.Errorf("Scale.Springiness = %v, want 0.5", scale.Springiness)
	}
	if scale.DampingConstant != 0.25 {
		t.Errorf("Scale.DampingConstant = %v, want 0.25", scale.DampingConstant)
	}
	// Unlisted fields keep the previous snapshot's values.
	if scale.DeformationThreshold != 1 {
		t.Errorf("Scale.DeformationThreshold = %v, want 1", scale.DeformationThreshold)
	}
}

func TestSetInertiaDefaultsNegativeResets(t *testing.T) {
	doc, _ := parseString(t, `Rig

nodes
0, 0, 0, 0
1, 1, 0, 0

set_inertia_defaults 2.5, 1.5
set_inertia_defaults -1

hydros
0, 1, 0.3
`)
	d := doc.Root.Hydros[0].InertiaDefaults
	if d.StartDelayFactor != -1 || d.StopDelayFactor != -1 {
		t.Errorf("delays = %v/%v, want unset (-1)", d.StartDelayFactor, d.StopDelayFactor)
	}
}

func TestAntiLockBrakes(t *testing.T) {
	doc, collector := parseString(t, `Rig

AntiLockBrakes 1000, 20, 5, mode: nodash & on
`)
	if len(doc.Root.AntiLockBrakes) != 1 {
		t.Fatalf("ABS count = %d, want 1", len(doc.Root.AntiLockBrakes))
	}
	alb := doc.Root.AntiLockBrakes[0]
	if alb.RegulationForce != 1000 || alb.MinSpeed != 20 || alb.PulsePerSec != 5 {
		t.Errorf("ABS = %+v", alb)
	}
	if !alb.AttrNoDashboard || !alb.AttrIsOn || alb.AttrNoToggle {
		t.Errorf("ABS attrs = %+v", alb)
	}
	if len(collector.Messages) != 0 {
		t.Errorf("unexpected diagnostics: %v", collector.Messages)
	}
}

func TestAntiLockBrakesPulseNeedsFourTokens(t *testing.T) {
	// A bare third token is not read as the pulse rate; the default stays.
	doc, _ := parseString(t, "Rig\n\nAntiLockBrakes 1000, 20, 5\n")
	if len(doc.Root.AntiLockBrakes) != 1 {
		t.Fatalf("ABS count = %d, want 1", len(doc.Root.AntiLockBrakes))
	}
	alb := doc.Root.AntiLockBrakes[0]
	if alb.RegulationForce != 1000 || alb.MinSpeed != 20 {
		t.Errorf("ABS = %+v", alb)
	}
	if alb.PulsePerSec != 0 {
		t.Errorf("PulsePerSec = %v, want default 0", alb.PulsePerSec)
	}
}

func TestAntiLockBrakesMissingMode(t *testing.T) {
	// A trailing token without the "mode:" key errors out and resets the
	// attribute flags to the defaults.
	doc, collector := parseString(t, "Rig\n\nAntiLockBrakes 1000, 20, 5, nodash\n")
	if len(doc.Root.AntiLockBrakes) != 1 {
		t.Fatalf("ABS count = %d, want 1", len(doc.Root.AntiLockBrakes))
	}
	alb := doc.Root.AntiLockBrakes[0]
	if alb.AttrNoDashboard || alb.AttrNoToggle || !alb.AttrIsOn {
		t.Errorf("ABS attrs = %+v, want defaults", alb)
	}
	if collector.Count(SeverityError) != 1 {
		t.Errorf("error count = %d, want 1 (missing mode)", collector.Count(SeverityError))
	}
}

func TestAntiLockBrakesTooFewArgs(t *testing.T) {
	_, collector := parseString(t, "Rig\n\nAntiLockBrakes 1000\n")
	if collector.Count(SeverityError) != 1 {
		t.Errorf("error count = %d, want 1", collector.Count(SeverityError))
	}
}

func TestTractionControl(t *testing.T) {
	doc, _ := parseString(t, `Rig

TractionControl 1000, 2.5, 1.0, 2000, mode: notoggle & off
`)
	if len(doc.Root.TractionControl) != 1 {
		t.Fatalf("TC count = %d, want 1", len(doc.Root.TractionControl))
	}
	tc := doc.Root.TractionControl[0]
	if tc.RegulationForce != 1000 || tc.WheelSlip != 2.5 || tc.FadeSpeed != 1 || tc.PulsePerSec != 2000 {
		t.Errorf("TC = %+v", tc)
	}
	if !tc.AttrNoToggle || tc.AttrIsOn {
		t.Errorf("TC attrs = %+v", tc)
	}
}

func TestForsetRangesAndSingles(t *testing.T) {
	doc, _ := parseString(t, `Rig

nodes
0, 0, 0, 0
1, 1, 0, 0
2, 2, 0, 0

flexbodies
0, 1, 2, 0, 0, 0, 0, 0, 0, cabin.mesh
forset 1-3, 5
`)
	if len(doc.Root.Flexbodies) != 1 {
		t.Fatalf("flexbody count = %d, want 1", len(doc.Root.Flexbodies))
	}
	forset := doc.Root.Flexbodies[0].ForSet
	if len(forset) != 2 {
		t.Fatalf("forset count = %d, want 2", len(forset))
	}
	if forset[0].From.Num != 1 || forset[0].To.Num != 3 {
		t.Errorf("range = %v-%v, want 1-3", forset[0].From.Num, forset[0].To.Num)
	}
	if forset[1].From.Num != 5 || forset[1].To.Num != 5 {
		t.Errorf("single = %v-%v, want 5-5", forset[1].From.Num, forset[1].To.Num)
	}
}

func TestForsetWithoutFlexbody(t *testing.T) {
	_, collector := parseString(t, "Rig\n\nforset 1-3\n")
	if collector.Count(SeverityError) != 1 {
		t.Errorf("error count = %d, want 1", collector.Count(SeverityError))
	}
}

func TestAddAnimation(t *testing.T) {
	doc, collector := parseString(t, `Rig

nodes
0, 0, 0, 0
1, 1, 0, 0
2, 2, 0, 0

props
0, 1, 2, 0, 0, 0, 0, 0, 0, gauge.mesh
add_animation 10, 0, 360, source: tacho, mode: x-rotation
`)
	if len(doc.Root.Props) != 1 {
		t.Fatalf("prop count = %d, want 1", len(doc.Root.Props))
	}
	anims := doc.Root.Props[0].Animations
	if len(anims) != 1 {
		t.Fatalf("animation count = %d, want 1", len(anims))
	}
	anim := anims[0]
	if anim.Ratio != 10 || anim.LowerLimit != 0 || anim.UpperLimit != 360 {
		t.Errorf("limits = %+v", anim)
	}
	if anim.Source&ast.AnimSourceTacho == 0 {
		t.Error("source tacho not set")
	}
	if anim.Mode&ast.AnimModeRotationX == 0 {
		t.Error("mode x-rotation not set")
	}
	if len(collector.Messages) != 0 {
		t.Errorf("unexpected diagnostics: %v", collector.Messages)
	}
}

func TestAddAnimationNumberedMotorSource(t *testing.T) {
	doc, _ := parseString(t, `Rig

nodes
0, 0, 0, 0
1, 1, 0, 0
2, 2, 0, 0

props
0, 1, 2, 0, 0, 0, 0, 0, 0, prop.mesh
add_animation 1, 0, 1, source: rpm2
`)
	anim := doc.Root.Props[0].Animations[0]
	if len(anim.MotorSources) != 1 {
		t.Fatalf("motor source count = %d, want 1", len(anim.MotorSources))
	}
	ms := anim.MotorSources[0]
	if ms.Source != ast.MotorSourceAeroRPM || ms.Motor != 1 {
		t.Errorf("motor source = %+v, want rpm engine index 1", ms)
	}
}

func TestPropCameraMode(t *testing.T) {
	doc, collector := parseString(t, `Rig

nodes
0, 0, 0, 0
1, 1, 0, 0
2, 2, 0, 0

props
0, 1, 2, 0, 0, 0, 0, 0, 0, prop.mesh
prop_camera_mode -1
prop_camera_mode -5
`)
	if doc.Root.Props[0].CameraSettings.Mode != ast.CameraMode(-1) {
		t.Errorf("Mode = %v, want -1", doc.Root.Props[0].CameraSettings.Mode)
	}
	// The out-of-range value errors and leaves the mode alone.
	if collector.Count(SeverityError) != 1 {
		t.Errorf("error count = %d, want 1", collector.Count(SeverityError))
	}
}

func TestExtCameraNodeMode(t *testing.T) {
	doc, _ := parseString(t, `Rig

nodes
0, 0, 0, 0
1, 1, 0, 0
2, 2, 0, 0

extcamera node 2
`)
	if len(doc.Root.ExtCamera) != 1 {
		t.Fatalf("extcamera count = %d, want 1", len(doc.Root.ExtCamera))
	}
	cam := doc.Root.ExtCamera[0]
	if cam.Mode != ast.ExtCameraModeNode {
		t.Errorf("Mode = %v, want node mode", cam.Mode)
	}
	if !cam.Node.IsValidAnyState() {
		t.Error("node reference should be valid")
	}
}

func TestSpeedLimiterInvalidSpeed(t *testing.T) {
	doc, collector := parseString(t, "Rig\n\nspeedlimiter 0\n")
	if len(doc.Root.SpeedLimiter) != 1 {
		t.Fatalf("speedlimiter count = %d, want 1", len(doc.Root.SpeedLimiter))
	}
	if doc.Root.SpeedLimiter[0].IsEnabled {
		t.Error("limiter with non-positive speed must be disabled")
	}
	if collector.Count(SeverityError) != 1 {
		t.Errorf("error count = %d, want 1", collector.Count(SeverityError))
	}
}

func TestGuidValidation(t *testing.T) {
	_, collector := parseString(t, `Rig

guid 01234567-89ab-cdef-0123-456789abcdef
guid not-a-guid
`)
	if collector.Count(SeverityWarning) != 1 {
		t.Errorf("warning count = %d, want 1 (only the malformed GUID)", collector.Count(SeverityWarning))
	}
}

func TestAuthorLine(t *testing.T) {
	doc, _ := parseString(t, "Rig\n\nauthor chassis 4223 Sam sam@example.com\n")
	if len(doc.Root.Authors) != 1 {
		t.Fatalf("author count = %d, want 1", len(doc.Root.Authors))
	}
	a := doc.Root.Authors[0]
	if a.Type != "chassis" || !a.HasForumAccount || a.ForumAccountID != 4223 {
		t.Errorf("author = %+v", a)
	}
	if a.Name != "Sam" || a.Email != "sam@example.com" {
		t.Errorf("author name/email = %q/%q", a.Name, a.Email)
	}
}
