// File: defaults.go
// Title: Inheritable Defaults Snapshots
// Description: Value blocks shared between elements via pointer. A snapshot is
//              published once by the parser and never mutated afterwards;
//              updating a default always allocates a fresh snapshot derived
//              from the current one.

package ast

// Built-in beam defaults used when a file never issues set_beam_defaults, and
// as the inheritance source for negative fields in that directive.
const (
	BuiltinBeamSpring      = 9000000.0
	BuiltinBeamDamp        = 12000.0
	BuiltinBeamDeform      = 400000.0
	BuiltinBeamBreak       = 1000000.0
	BuiltinBeamDiameter    = 0.05
	BuiltinMinimassKg      = 50.0
	BuiltinSkeletonRange   = 150.0
	BuiltinSkeletonBeamDia = 0.01
)

// NodeOption is the bitmask of per-node option characters.
type NodeOption uint32

const (
	NodeOptMouseGrab        NodeOption = 1 << iota // n
	NodeOptNoMouseGrab                             // m
	NodeOptNoSparks                                // f
	NodeOptExhaustPoint                            // x
	NodeOptExhaustDirection                        // y
	NodeOptNoGroundContact                         // c
	NodeOptHookPoint                               // h
	NodeOptTerrainEditPoint                        // e
	NodeOptExtraBuoyancy                           // b
	NodeOptNoParticles                             // p
	NodeOptLog                                     // L
	NodeOptLoadWeight                              // l
)

// NodeDefaults is the snapshot installed by set_node_defaults.
type NodeDefaults struct {
	LoadWeight float64
	Friction   float64
	Volume     float64
	Surface    float64
	Options    NodeOption
}

// NewNodeDefaults returns the built-in node defaults. LoadWeight stays
// negative so spawning can tell "unset" from an explicit zero.
func NewNodeDefaults() *NodeDefaults {
	return &NodeDefaults{
		LoadWeight: -1,
		Friction:   1,
		Volume:     1,
		Surface:    1,
	}
}

// BeamDefaultsScale holds the multipliers from set_beam_defaults_scale.
type BeamDefaultsScale struct {
	Springiness          float64
	DampingConstant      float64
	DeformationThreshold float64
	BreakingThreshold    float64
}

// BeamDefaults is the snapshot installed by set_beam_defaults.
type BeamDefaults struct {
	Springiness          float64
	DampingConstant      float64
	DeformationThreshold float64
	BreakingThreshold    float64
	VisualDiameter       float64
	BeamMaterialName     string
	PlasticDeformCoef    float64

	// EnableAdvancedDeformation records whether the directive of the same
	// name preceded this snapshot.
	EnableAdvancedDeformation bool

	// IsUserDefined distinguishes snapshots created by set_beam_defaults
	// from the built-in one.
	IsUserDefined bool

	Scale BeamDefaultsScale
}

// NewBeamDefaults returns the built-in beam defaults.
func NewBeamDefaults() *BeamDefaults {
	return &BeamDefaults{
		Springiness:          BuiltinBeamSpring,
		DampingConstant:      BuiltinBeamDamp,
		DeformationThreshold: BuiltinBeamDeform,
		BreakingThreshold:    BuiltinBeamBreak,
		VisualDiameter:       BuiltinBeamDiameter,
		BeamMaterialName:     "tracks/beam",
		PlasticDeformCoef:    0,
		Scale: BeamDefaultsScale{
			Springiness:          1,
			DampingConstant:      1,
			DeformationThreshold: 1,
			BreakingThreshold:    1,
		},
	}
}

// GetScaledSpringiness returns springiness with the scale factor applied.
func (d *BeamDefaults) GetScaledSpringiness() float64 {
	return d.Springiness * d.Scale.Springiness
}

// GetScaledDamping returns the damping constant with the scale factor
// applied.
func (d *BeamDefaults) GetScaledDamping() float64 {
	return d.DampingConstant * d.Scale.DampingConstant
}

// GetScaledDeformThreshold returns the deformation threshold with the scale
// factor applied.
func (d *BeamDefaults) GetScaledDeformThreshold() float64 {
	return d.DeformationThreshold * d.Scale.DeformationThreshold
}

// GetScaledBreakingThreshold returns the breaking threshold with the scale
// factor applied.
func (d *BeamDefaults) GetScaledBreakingThreshold() float64 {
	return d.BreakingThreshold * d.Scale.BreakingThreshold
}

// Inertia holds start/stop delays and optional transfer functions for
// animated beams. Negative delays mean "not set".
type Inertia struct {
	StartDelayFactor float64
	StopDelayFactor  float64
	StartFunction    string
	StopFunction     string
}

// NewInertia returns the built-in inertia snapshot with unset delays.
func NewInertia() *Inertia {
	return &Inertia{StartDelayFactor: -1, StopDelayFactor: -1}
}

// MinimassOption selects how the global minimum node mass interacts with
// per-node load weights.
type MinimassOption int

const (
	// MinimassOptionNone applies the minimum to all nodes.
	MinimassOptionNone MinimassOption = iota
	// MinimassOptionSkipLoaded exempts nodes with a load weight from the
	// minimum.
	MinimassOptionSkipLoaded
)

// DefaultMinimass is the snapshot installed by set_default_minimass.
type DefaultMinimass struct {
	MinKg float64
}

// NewDefaultMinimass returns the built-in minimum node mass.
func NewDefaultMinimass() *DefaultMinimass {
	return &DefaultMinimass{MinKg: BuiltinMinimassKg}
}

// ManagedMaterialsOptions carries the state toggled by the
// set_managedmaterials_options directive.
type ManagedMaterialsOptions struct {
	DoubleSided bool
}
