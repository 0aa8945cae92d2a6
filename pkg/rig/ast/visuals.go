// File: visuals.go
// Title: Visual and Effect Element Records
// Description: Props with their animations, flexbodies with node sets,
//              submeshes, flares, managed materials, cameras, exhausts,
//              particles and sound sources.

package ast

// CameraMode tells a visual element which camera it is visible from.
// Non-negative values address a cinecam by index.
type CameraMode int

const (
	CameraModeAlwaysVisible CameraMode = -2
	CameraModeExternalOnly  CameraMode = -1
)

// CameraSettings is the per-element visibility set by set_prop_camera_mode
// and the flexbody camera directive.
type CameraSettings struct {
	Mode CameraMode
}

// SpecialProp marks mesh names the simulator replaces with built-in
// behavior.
type SpecialProp int

const (
	SpecialPropNone SpecialProp = iota
	SpecialPropMirrorLeft
	SpecialPropMirrorRight
	SpecialPropDashboardLeft
	SpecialPropDashboardRight
	SpecialPropAeroPropSpin
	SpecialPropAeroPropBlade
	SpecialPropDriverSeat
	SpecialPropDriverSeat2
	SpecialPropBeacon
	SpecialPropRedBeacon
	SpecialPropLightbar
)

// AnimationSource is the bitmask of value sources driving a prop animation.
type AnimationSource uint64

const (
	AnimSourceAirspeed AnimationSource = 1 << iota
	AnimSourceVerticalVelocity
	AnimSourceAltimeter100k
	AnimSourceAltimeter10k
	AnimSourceAltimeter1k
	AnimSourceAngleOfAttack
	AnimSourceFlap
	AnimSourceAirBrake
	AnimSourceRoll
	AnimSourcePitch
	AnimSourceBrakes
	AnimSourceAccel
	AnimSourceClutch
	AnimSourceSpeedo
	AnimSourceTacho
	AnimSourceTurbo
	AnimSourceParking
	AnimSourceShiftLeftRight
	AnimSourceShiftBackForth
	AnimSourceSequentialShift
	AnimSourceShifterLin
	AnimSourceTorque
	AnimSourceHeading
	AnimSourceDiffLock
	AnimSourceBoatRudder
	AnimSourceBoatThrottle
	AnimSourceSteeringWheel
	AnimSourceAileron
	AnimSourceElevator
	AnimSourceAirRudder
	AnimSourcePermanent
	AnimSourceEvent
	AnimSourceDashboard
	AnimSourceSignalStalk
	AnimSourceGearMode
)

// AnimationMode is the bitmask of transform modes for a prop animation.
type AnimationMode uint32

const (
	AnimModeRotationX AnimationMode = 1 << iota
	AnimModeRotationY
	AnimModeRotationZ
	AnimModeOffsetX
	AnimModeOffsetY
	AnimModeOffsetZ
	AnimModeAutoAnimate
	AnimModeNoFlip
	AnimModeBounce
	AnimModeEventLock
)

// MotorSourceKind selects a per-engine animation source.
type MotorSourceKind int

const (
	MotorSourceAeroThrottle MotorSourceKind = iota
	MotorSourceAeroRPM
	MotorSourceAeroTorque
	MotorSourceAeroPitch
	MotorSourceAeroStatus
)

// MotorSource binds an animation source to one engine by number.
type MotorSource struct {
	Source MotorSourceKind
	Motor  uint
}

// Animation is one add_animation entry attached to a prop.
type Animation struct {
	Ratio      float64
	LowerLimit float64
	UpperLimit float64
	Source     AnimationSource
	Mode       AnimationMode
	Event      string

	MotorSources []MotorSource
}

// NewAnimation returns an animation with the format's implicit limits.
func NewAnimation() Animation {
	return Animation{LowerLimit: -1, UpperLimit: -1}
}

// RGB is a beacon light color.
type RGB struct {
	R, G, B float64
}

// PropBeacon carries the extra arguments of beacon special props.
type PropBeacon struct {
	FlareMaterialName string
	Color             RGB
}

// PropDashboard carries the extra arguments of dashboard special props.
type PropDashboard struct {
	MeshName      string
	Offset        Vector3
	HasOffset     bool
	RotationAngle float64
}

// Prop is a mesh attached to three reference nodes.
type Prop struct {
	ReferenceNode NodeRef
	XAxisNode     NodeRef
	YAxisNode     NodeRef
	Offset        Vector3
	Rotation      Vector3
	MeshName      string

	Special        SpecialProp
	Beacon         PropBeacon
	Dashboard      PropDashboard
	CameraSettings CameraSettings

	Animations []Animation
}

// NodeRange is one entry of a flexbody forset list; single nodes have
// From == To.
type NodeRange struct {
	From NodeRef
	To   NodeRef
}

// Flexbody is a deformable mesh bound to a set of nodes.
type Flexbody struct {
	ReferenceNode NodeRef
	XAxisNode     NodeRef
	YAxisNode     NodeRef
	Offset        Vector3
	Rotation      Vector3
	MeshName      string

	CameraSettings CameraSettings
	ForSet         []NodeRange
}

// Texcoord maps a node to a texture coordinate inside a submesh.
type Texcoord struct {
	Node NodeRef
	U    float64
	V    float64
}

// CabOption is the bitmask of cab triangle option characters. The characters
// 'D', 'F' and 'S' combine two of these bits; 'n' is a no-op placeholder.
type CabOption uint32

const (
	CabOptContact      CabOption = 1 << iota // c
	CabOptBuoyant                            // b
	CabOptTenXTougher                        // p
	CabOptInvulnerable                       // u
)

// Cab is a collision/render triangle inside a submesh.
type Cab struct {
	Nodes   [3]NodeRef
	Options CabOption
}

// Submesh is one staged group of texcoords and cab triangles.
type Submesh struct {
	Backmesh     bool
	Texcoords    []Texcoord
	CabTriangles []Cab
}

// FlareType is the flare behavior character.
type FlareType byte

const (
	FlareTypeHeadlight    FlareType = 'f'
	FlareTypeHighBeam     FlareType = 'h'
	FlareTypeFogLight     FlareType = 't'
	FlareTypeTailLight    FlareType = 'b'
	FlareTypeBrakeLight   FlareType = 'B'
	FlareTypeReverseLight FlareType = 'R'
	FlareTypeSideLight    FlareType = 's'
	FlareTypeLeftBlinker  FlareType = 'l'
	FlareTypeRightBlinker FlareType = 'r'
	FlareTypeUserDefined  FlareType = 'u'
	FlareTypeDashboard    FlareType = 'd'
	FlareTypeSignalStalk  FlareType = 'a'
)

// Flare covers the flares and flares2 sections; flares get a zero Z offset.
type Flare struct {
	ReferenceNode NodeRef
	NodeAxisX     NodeRef
	NodeAxisY     NodeRef
	Offset        Vector3
	Type          FlareType

	ControlNumber   int
	DashboardLink   string
	BlinkDelayMilis int
	Size            float64
	MaterialName    string
}

// NewFlare returns a flare with the format's implicit values.
func NewFlare() Flare {
	return Flare{
		Type:            FlareTypeHeadlight,
		ControlNumber:   -1,
		BlinkDelayMilis: -2,
		Size:            -1,
		MaterialName:    "default",
	}
}

// MaterialFlareBinding ties a flare number to a material that lights up.
type MaterialFlareBinding struct {
	FlareNumber  int
	MaterialName string
}

// ManagedMaterialType selects a managed material template.
type ManagedMaterialType int

const (
	ManagedMaterialFlexmeshStandard ManagedMaterialType = iota
	ManagedMaterialFlexmeshTransparent
	ManagedMaterialMeshStandard
	ManagedMaterialMeshTransparent
)

// ManagedMaterial instantiates a material template with texture maps. A map
// written as "-" means "none" and is stored empty.
type ManagedMaterial struct {
	Name string
	Type ManagedMaterialType

	Options           ManagedMaterialsOptions
	DiffuseMap        string
	DamagedDiffuseMap string
	SpecularMap       string
}

// HasDamagedDiffuseMap reports whether a damage texture was given.
func (m *ManagedMaterial) HasDamagedDiffuseMap() bool {
	return m.DamagedDiffuseMap != ""
}

// HasSpecularMap reports whether a specular texture was given.
func (m *ManagedMaterial) HasSpecularMap() bool {
	return m.SpecularMap != ""
}

// Camera defines the chase camera coordinate frame.
type Camera struct {
	CenterNode NodeRef
	BackNode   NodeRef
	LeftNode   NodeRef
}

// Cinecam is an in-cabin camera suspended between eight nodes.
type Cinecam struct {
	Position Vector3
	Nodes    [8]NodeRef
	Spring   float64
	Damping  float64
	NodeMass float64

	NodeDefaults *NodeDefaults
	BeamDefaults *BeamDefaults
}

// NewCinecam returns a cinecam with the format's implicit values.
func NewCinecam() Cinecam {
	return Cinecam{Spring: 8000, Damping: 800, NodeMass: 20}
}

// CameraRail is an ordered node path for rail-bound cameras.
type CameraRail struct {
	Nodes []NodeRef
}

// ExtCameraMode selects the external camera anchor.
type ExtCameraMode int

const (
	ExtCameraModeClassic ExtCameraMode = iota
	ExtCameraModeCinecam
	ExtCameraModeNode
)

// ExtCamera overrides the external camera anchor point.
type ExtCamera struct {
	Mode ExtCameraMode
	Node NodeRef
}

// VideoCamera renders a live texture from a camera mounted on nodes.
type VideoCamera struct {
	ReferenceNode      NodeRef
	LeftNode           NodeRef
	BottomNode         NodeRef
	AltReferenceNode   NodeRef
	AltOrientationNode NodeRef

	Offset          Vector3
	Rotation        Vector3
	FieldOfView     float64
	TextureWidth    int
	TextureHeight   int
	MinClipDistance float64
	MaxClipDistance float64
	CameraRole      int
	CameraMode      int
	MaterialName    string
	CameraName      string
}

// Exhaust emits smoke between two nodes.
type Exhaust struct {
	ReferenceNode NodeRef
	DirectionNode NodeRef
	ParticleName  string
}

// Particle is a custom particle emitter.
type Particle struct {
	EmitterNode        NodeRef
	ReferenceNode      NodeRef
	ParticleSystemName string
}

// SoundSource attaches a sound script to a node.
type SoundSource struct {
	Node            NodeRef
	SoundScriptName string
}

// SoundSource2Mode selects camera-dependent sound activation.
// Non-negative values address a cinecam by index.
type SoundSource2Mode int

const (
	SoundSource2ModeAlways  SoundSource2Mode = -2
	SoundSource2ModeOutside SoundSource2Mode = -1
)

// SoundSource2 attaches a sound script with camera-dependent activation.
type SoundSource2 struct {
	Node            NodeRef
	Mode            SoundSource2Mode
	SoundScriptName string
}

// GuiSettings is one key/value pair from the guisettings section.
type GuiSettings struct {
	Key   string
	Value string
}
