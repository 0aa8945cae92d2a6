// File: document.go
// Title: Document and Module Containers
// Description: Document is the root of a parsed rig definition. Elements live
//              in Modules; the root module holds everything defined outside
//              section/end_section markers, user modules hold the rest.
//              Within each collection, definition order is preserved.

package ast

// RootModuleName is the reserved name of the implicit root module.
const RootModuleName = "_Root_"

// Document is a fully parsed rig definition file.
type Document struct {
	// Name is the title taken from the first content line.
	Name string

	// Global one-shot directives.
	HideInChooser              bool
	EnableAdvancedDeformation  bool
	SlideNodesConnectInstantly bool
	Rollon                     bool
	ForwardCommands            bool
	ImportCommands             bool
	LockgroupDefaultNolock     bool
	Rescuer                    bool
	DisableDefaultSounds       bool

	Root        *Module
	UserModules map[string]*Module

	// ModuleNames preserves the order user modules first appeared in.
	ModuleNames []string

	// GeneratedNodes lists the synthetic node number ranges reserved for
	// wheel and cinecam generated nodes. Only populated for documents
	// resolved to numbered addressing.
	GeneratedNodes []GeneratedNodeBlock
}

// NewDocument returns an empty document with an initialized root module.
func NewDocument() *Document {
	return &Document{
		Root:        NewModule(RootModuleName),
		UserModules: make(map[string]*Module),
	}
}

// Module returns the named user module, or the root module for
// RootModuleName. A nil return means the module was never defined.
func (d *Document) Module(name string) *Module {
	if name == RootModuleName {
		return d.Root
	}
	return d.UserModules[name]
}

// ForEachModule visits the root module and then the user modules in
// definition order.
func (d *Document) ForEachModule(fn func(*Module)) {
	fn(d.Root)
	for _, name := range d.ModuleNames {
		fn(d.UserModules[name])
	}
}

// Module is one section/end_section scope of a document.
type Module struct {
	Name string

	// Metadata.
	FileFormatVersion []int
	Authors           []Author
	Fileinfo          []Fileinfo
	Guid              []Guid
	Description       []string
	Help              []Help
	GuiSettings       []GuiSettings
	Minimass          []Minimass

	// Chassis.
	Globals          []Globals
	Nodes            []Node
	Beams            []Beam
	Shocks           []Shock
	Shocks2          []Shock2
	Shocks3          []Shock3
	Hydros           []Hydro
	Commands2        []Command2
	Triggers         []Trigger
	Ties             []Tie
	Ropes            []Rope
	Ropables         []Ropable
	Fixes            []NodeRef
	Contacters       []NodeRef
	Hooks            []Hook
	Lockgroups       []Lockgroup
	SlideNodes       []SlideNode
	RailGroups       []RailGroup
	Animators        []Animator
	CollisionBoxes   []CollisionBox
	CollisionRanges  []CollisionRange
	SkeletonSettings []SkeletonSettings

	// Wheels and drivetrain.
	Wheels         []Wheel
	Wheels2        []Wheel2
	MeshWheels     []MeshWheel
	FlexBodyWheels []FlexBodyWheel
	WheelDetachers []WheelDetacher
	Axles          []Axle
	InterAxles     []InterAxle
	TransferCases  []TransferCase

	// Powertrain.
	Engine          []Engine
	Engoption       []Engoption
	Engturbo        []Engturbo
	TorqueCurves    []TorqueCurve
	Brakes          []Brakes
	TractionControl []TractionControl
	AntiLockBrakes  []AntiLockBrakes
	CruiseControl   []CruiseControl
	SpeedLimiter    []SpeedLimiter
	Rotators        []Rotator
	Rotators2       []Rotator

	// Aerial and marine.
	Wings       []Wing
	Airbrakes   []Airbrake
	Fusedrag    []Fusedrag
	Turbojets   []Turbojet
	Turboprops  []Turboprop
	Pistonprops []Pistonprop
	Screwprops  []Screwprop

	// Visuals and effects.
	Props                 []Prop
	Flexbodies            []Flexbody
	Submeshes             []Submesh
	SubmeshGroundmodel    []string
	Flares                []Flare
	MaterialFlareBindings []MaterialFlareBinding
	ManagedMaterials      []ManagedMaterial
	Exhausts              []Exhaust
	Particles             []Particle
	Cameras               []Camera
	CameraRails           []CameraRail
	Cinecams              []Cinecam
	ExtCamera             []ExtCamera
	VideoCameras          []VideoCamera
	SoundSources          []SoundSource
	SoundSources2         []SoundSource2
}

// NewModule returns an empty named module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}
