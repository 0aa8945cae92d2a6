// File: wheels.go
// Title: Wheel Element Records
// Description: The four wheel generations (wheels, wheels2, meshwheels/2,
//              flexbodywheels) plus axle and differential records. Wheel
//              sections generate their rim/tyre nodes at spawn time, which is
//              why the sequential importer reserves synthetic node numbers
//              for them.

package ast

// WheelBraking selects which brake circuits act on a wheel.
type WheelBraking int

const (
	WheelBrakingNone WheelBraking = iota
	WheelBrakingFootHand
	WheelBrakingFootHandSkidLeft
	WheelBrakingFootHandSkidRight
	WheelBrakingFootOnly
)

// WheelPropulsion selects the drive direction of a wheel.
type WheelPropulsion int

const (
	WheelPropulsionNone WheelPropulsion = iota
	WheelPropulsionForward
	WheelPropulsionBackward
)

// WheelSide tells mesh wheels which way the rim mesh faces.
type WheelSide byte

const (
	WheelSideInvalid WheelSide = 'n'
	WheelSideRight   WheelSide = 'r'
	WheelSideLeft    WheelSide = 'l'
)

// Wheel is a first-generation wheel with uniform spring/damping.
type Wheel struct {
	Radius      float64
	Width       float64
	RayCount    int
	Nodes       [2]NodeRef
	RigidityNode NodeRef
	Braking     WheelBraking
	Propulsion  WheelPropulsion
	ReferenceArmNode NodeRef
	Mass        float64
	Springiness float64
	Damping     float64

	FaceMaterialName string
	BandMaterialName string

	NodeDefaults *NodeDefaults
	BeamDefaults *BeamDefaults
}

// Wheel2 separates rim and tyre physics.
type Wheel2 struct {
	RimRadius  float64
	TyreRadius float64
	Width      float64
	RayCount   int
	Nodes      [2]NodeRef
	RigidityNode NodeRef
	Braking    WheelBraking
	Propulsion WheelPropulsion
	ReferenceArmNode NodeRef
	Mass       float64

	RimSpringiness  float64
	RimDamping      float64
	TyreSpringiness float64
	TyreDamping     float64

	FaceMaterialName string
	BandMaterialName string

	NodeDefaults *NodeDefaults
	BeamDefaults *BeamDefaults
}

// MeshWheel covers both meshwheels and meshwheels2; the two sections share a
// layout and differ only in how the spawner scales rim physics.
type MeshWheel struct {
	IsMeshWheel2 bool

	TyreRadius float64
	RimRadius  float64
	Width      float64
	RayCount   int
	Nodes      [2]NodeRef
	RigidityNode NodeRef
	Braking    WheelBraking
	Propulsion WheelPropulsion
	ReferenceArmNode NodeRef
	Mass       float64
	SpringRate float64
	Damping    float64

	Side         WheelSide
	MeshName     string
	MaterialName string

	NodeDefaults *NodeDefaults
	BeamDefaults *BeamDefaults
}

// FlexBodyWheel renders rim and tyre as deformable meshes.
type FlexBodyWheel struct {
	TyreRadius float64
	RimRadius  float64
	Width      float64
	RayCount   int
	Nodes      [2]NodeRef
	RigidityNode NodeRef
	Braking    WheelBraking
	Propulsion WheelPropulsion
	ReferenceArmNode NodeRef
	Mass       float64

	TyreSpringiness float64
	TyreDamping     float64
	RimSpringiness  float64
	RimDamping      float64

	Side         WheelSide
	RimMeshName  string
	TyreMeshName string

	NodeDefaults *NodeDefaults
	BeamDefaults *BeamDefaults
}

// WheelDetacher couples a wheel to a detacher group.
type WheelDetacher struct {
	WheelID       int
	DetacherGroup int
}

// DifferentialType is a single differential option character.
type DifferentialType byte

const (
	DiffTypeOpen   DifferentialType = 'o'
	DiffTypeLocked DifferentialType = 'l'
	DiffTypeSplit  DifferentialType = 's'
	DiffTypeViscous DifferentialType = 'v'
)

// Axle pairs two wheels, identified by their mounting nodes, and lists the
// differential types cycled in-game.
type Axle struct {
	Wheels  [2][2]NodeRef
	Options []DifferentialType
}

// InterAxle links two axles with an inter-axle differential.
type InterAxle struct {
	A1      int
	A2      int
	Options []DifferentialType
}

// TransferCase configures 4WD gearing between two driven axles.
type TransferCase struct {
	A1         int
	A2         int
	Has2WD     bool
	Has2WDLo   bool
	GearRatios []float64
}

// NewTransferCase returns a transfer case with the format's implicit values.
func NewTransferCase() TransferCase {
	return TransferCase{
		A1:         0,
		A2:         -1,
		Has2WD:     true,
		GearRatios: []float64{1},
	}
}
