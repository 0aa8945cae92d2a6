// File: aero.go
// Title: Aerial and Marine Element Records
// Description: Wings, fuselage drag, jet and propeller engines, screwprops
//              and airbrakes.

package ast

// WingControlSurface selects which control input deflects a wing.
type WingControlSurface byte

const (
	WingControlNone             WingControlSurface = 'n'
	WingControlRightAileron     WingControlSurface = 'a'
	WingControlRightAirBrake    WingControlSurface = 'b'
	WingControlFlap             WingControlSurface = 'f'
	WingControlElevator         WingControlSurface = 'e'
	WingControlRudder           WingControlSurface = 'r'
	WingControlRightStabilator  WingControlSurface = 'S'
	WingControlLeftStabilator   WingControlSurface = 'T'
	WingControlRightElevon      WingControlSurface = 'c'
	WingControlLeftElevon       WingControlSurface = 'd'
	WingControlRightFlaperon    WingControlSurface = 'g'
	WingControlLeftFlaperon     WingControlSurface = 'h'
	WingControlRightTaileron    WingControlSurface = 'U'
	WingControlLeftTaileron     WingControlSurface = 'V'
	WingControlRightRuddervator WingControlSurface = 'i'
	WingControlLeftRuddervator  WingControlSurface = 'l'
)

// Wing is an airfoil surface spanned over eight nodes.
type Wing struct {
	Nodes     [8]NodeRef
	TexCoords [8]float64

	Control       WingControlSurface
	ChordPoint    float64
	MinDeflection float64
	MaxDeflection float64
	Airfoil       string
	EfficacyCoef  float64
}

// NewWing returns a wing with the format's implicit values.
func NewWing() Wing {
	return Wing{
		Control:       WingControlNone,
		ChordPoint:    -1,
		MinDeflection: -1,
		MaxDeflection: -1,
		Airfoil:       "NACA0009.afl",
		EfficacyCoef:  1,
	}
}

// Fusedrag approximates fuselage air resistance between two nodes.
type Fusedrag struct {
	FrontNode        NodeRef
	RearNode         NodeRef
	ApproximateWidth float64
	Airfoil          string
	Autocalc         bool
	AreaCoefficient  float64
}

// NewFusedrag returns fusedrag with the format's implicit values.
func NewFusedrag() Fusedrag {
	return Fusedrag{Airfoil: "NACA0009.afl", AreaCoefficient: 1}
}

// Turbojet is a jet engine spanned over three reference nodes.
type Turbojet struct {
	FrontNode     NodeRef
	BackNode      NodeRef
	SideNode      NodeRef
	IsReversable  int
	DryThrust     float64
	WetThrust     float64
	FrontDiameter float64
	BackDiameter  float64
	NozzleLength  float64
}

// Turboprop is a turbine propeller engine; covers both the turboprops and
// turboprops2 sections.
type Turboprop struct {
	ReferenceNode  NodeRef
	AxisNode       NodeRef
	BladeTipNodes  [4]NodeRef
	CoupleNode     NodeRef
	TurbinePowerKW float64
	Airfoil        string
}

// Pistonprop is a piston propeller engine.
type Pistonprop struct {
	ReferenceNode  NodeRef
	AxisNode       NodeRef
	BladeTipNodes  [4]NodeRef
	CoupleNode     NodeRef
	TurbinePowerKW float64
	Pitch          float64
	Airfoil        string
}

// Screwprop is a marine propeller.
type Screwprop struct {
	PropNode NodeRef
	BackNode NodeRef
	TopNode  NodeRef
	Power    float64
}

// Airbrake is a deployable drag plate.
type Airbrake struct {
	ReferenceNode  NodeRef
	XAxisNode      NodeRef
	YAxisNode      NodeRef
	AdditionalNode NodeRef

	Offset              Vector3
	Width               float64
	Height              float64
	MaxInclinationAngle float64

	TexcoordX1 float64
	TexcoordY1 float64
	TexcoordX2 float64
	TexcoordY2 float64
}
