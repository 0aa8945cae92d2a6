// File: elements.go
// Title: Chassis Element Records
// Description: Nodes, beams and the beam-like link elements (shocks, hydros,
//              commands, triggers, ties, ropes) together with their option
//              bitmasks. Each record keeps the defaults snapshot and detacher
//              group active at its definition line.

package ast

// Vector3 is a position or rotation triple as written in the file.
type Vector3 struct {
	X, Y, Z float64
}

// Node is a single mass point.
type Node struct {
	ID       NodeID
	Position Vector3
	Options  NodeOption

	// LoadWeightOverride is only meaningful when HasLoadWeightOverride is
	// set; the 'l' option takes its argument from the trailing field.
	LoadWeightOverride    float64
	HasLoadWeightOverride bool

	NodeDefaults    *NodeDefaults
	BeamDefaults    *BeamDefaults
	DefaultMinimass *DefaultMinimass
	DetacherGroup   int
}

// BeamOption is the bitmask of per-beam option characters.
type BeamOption uint32

const (
	BeamOptInvisible BeamOption = 1 << iota // i
	BeamOptRope                             // r
	BeamOptSupport                          // s
)

// Beam connects two nodes with a spring/damper.
type Beam struct {
	Nodes   [2]NodeRef
	Options BeamOption

	// ExtensionBreakLimit is the support-beam extension limit; only
	// meaningful when HasExtensionBreakLimit is set.
	ExtensionBreakLimit    float64
	HasExtensionBreakLimit bool

	Defaults      *BeamDefaults
	DetacherGroup int
}

// ShockOption is the bitmask for the shocks section.
type ShockOption uint32

const (
	ShockOptLActiveLeft  ShockOption = 1 << iota // L
	ShockOptRActiveRight                         // R
	ShockOptInvisible                            // i
	ShockOptMetric                               // m
)

// Shock is a legacy shock absorber beam.
type Shock struct {
	Nodes          [2]NodeRef
	SpringRate     float64
	Damping        float64
	ShortBound     float64
	LongBound      float64
	Precompression float64
	Options        ShockOption
	BeamDefaults   *BeamDefaults
	DetacherGroup  int
}

// Shock2Option is the bitmask for the shocks2 section.
type Shock2Option uint32

const (
	Shock2OptInvisible     Shock2Option = 1 << iota // i
	Shock2OptSoftBumpBound                          // s
	Shock2OptMetric                                 // m
	Shock2OptAbsoluteMetric                         // M
)

// Shock2 is a progressive shock absorber beam.
type Shock2 struct {
	Nodes [2]NodeRef

	SpringIn               float64
	DampIn                 float64
	ProgressFactorSpringIn float64
	ProgressFactorDampIn   float64

	SpringOut               float64
	DampOut                 float64
	ProgressFactorSpringOut float64
	ProgressFactorDampOut   float64

	ShortBound     float64
	LongBound      float64
	Precompression float64

	Options       Shock2Option
	BeamDefaults  *BeamDefaults
	DetacherGroup int
}

// Shock3Option is the bitmask for the shocks3 section.
type Shock3Option uint32

const (
	Shock3OptInvisible      Shock3Option = 1 << iota // i
	Shock3OptMetric                                  // m
	Shock3OptAbsoluteMetric                          // M
)

// Shock3 is a shock absorber beam with separate slow/fast damping.
type Shock3 struct {
	Nodes [2]NodeRef

	SpringIn   float64
	DampIn     float64
	DampInSlow float64
	SplitVelIn float64
	DampInFast float64

	SpringOut   float64
	DampOut     float64
	DampOutSlow float64
	SplitVelOut float64
	DampOutFast float64

	ShortBound     float64
	LongBound      float64
	Precompression float64

	Options       Shock3Option
	BeamDefaults  *BeamDefaults
	DetacherGroup int
}

// Hydro is a steering actuator beam. Options stay a raw character string;
// the spawner interprets them positionally.
type Hydro struct {
	Nodes             [2]NodeRef
	LengtheningFactor float64
	Options           string

	Inertia         Inertia
	InertiaDefaults *Inertia
	BeamDefaults    *BeamDefaults
	DetacherGroup   int
}

// Command2 is a player-driven actuator beam. The record covers both the
// commands and commands2 sections; FormatVersion tells them apart.
type Command2 struct {
	Nodes          [2]NodeRef
	ShortenRate    float64
	LengthenRate   float64
	MaxContraction float64
	MaxExtension   float64
	ContractKey    int
	ExtendKey      int
	Description    string

	OptionIInvisible   bool
	OptionRRope        bool
	OptionCAutoCenter  bool
	OptionFNotFaster   bool
	OptionPPress       bool
	OptionOPressCenter bool

	AffectEngine float64
	NeedsEngine  bool
	PlaysSound   bool

	FormatVersion   int
	Inertia         Inertia
	InertiaDefaults *Inertia
	BeamDefaults    *BeamDefaults
	DetacherGroup   int
}

// TriggerOption is the bitmask for the triggers section.
type TriggerOption uint32

const (
	TriggerOptInvisible         TriggerOption = 1 << iota // i
	TriggerOptCommandStyle                                // c
	TriggerOptStartDisabled                               // x
	TriggerOptKeyBlocker                                  // b
	TriggerOptTriggerBlocker                              // B
	TriggerOptInvTriggerBlocker                           // A
	TriggerOptCmdNumSwitch                                // s
	TriggerOptUnlocksHookGroup                            // h
	TriggerOptLocksHookGroup                              // H
	TriggerOptContinuous                                  // t
	TriggerOptEngineTrigger                               // E
)

// Trigger is a beam that fires command or hook events at its bounds.
type Trigger struct {
	Nodes                   [2]NodeRef
	ContractionTriggerLimit float64
	ExpansionTriggerLimit   float64
	Options                 TriggerOption
	BoundaryTimer           float64

	// Shortbound/LongboundAction are command keys by default; with the H
	// option they address hook groups, with the E option engine events.
	ShortboundAction int
	LongboundAction  int

	BeamDefaults  *BeamDefaults
	DetacherGroup int
}

// IsHookToggleTrigger reports whether the bound actions address hook groups.
func (t *Trigger) IsHookToggleTrigger() bool {
	return t.Options&(TriggerOptUnlocksHookGroup|TriggerOptLocksHookGroup) != 0
}

// IsTriggerBlockerAnyType reports whether the trigger blocks other triggers
// instead of firing commands.
func (t *Trigger) IsTriggerBlockerAnyType() bool {
	return t.Options&(TriggerOptTriggerBlocker|TriggerOptInvTriggerBlocker) != 0
}

// Tie is a self-tightening rope anchored at a single root node.
type Tie struct {
	RootNode        NodeRef
	MaxReachLength  float64
	AutoShortenRate float64
	MinLength       float64
	MaxLength       float64
	IsInvisible     bool
	DisableSelfLock bool
	MaxStress       float64
	Group           int

	BeamDefaults  *BeamDefaults
	DetacherGroup int
}

// Rope is a loose rope between two nodes.
type Rope struct {
	RootNode  NodeRef
	EndNode   NodeRef
	Invisible bool

	BeamDefaults  *BeamDefaults
	DetacherGroup int
}

// Ropable marks a node as a rope attachment point.
type Ropable struct {
	Node         NodeRef
	Group        int
	HasMultilock bool
}

// Hook makes a node lockable onto other rigs.
type Hook struct {
	Node            NodeRef
	HookRange       float64
	SpeedCoef       float64
	MaxForce        float64
	Timer           float64
	MinRangeMeters  float64
	HookGroup       int
	LockGroup       int
	SelfLock        bool
	AutoLock        bool
	NoDisable       bool
	NoRope          bool
	Visible         bool
}

// NewHook returns a hook with the format's implicit parameter values.
func NewHook() Hook {
	return Hook{
		HookRange: 0.4,
		SpeedCoef: 1.0,
		MaxForce:  10000000.0,
		Timer:     5.0,
		HookGroup: -1,
		LockGroup: -1,
	}
}

// Lockgroup assigns nodes to a mutual-exclusion locking group.
type Lockgroup struct {
	Number int
	Nodes  []NodeRef
}

// LockgroupNoLock is the reserved group number that disables locking.
const LockgroupNoLock = 9999

// SlideNodeConstraint is the bitmask of slidenode attachment constraints.
type SlideNodeConstraint uint32

const (
	SlideNodeConstraintAttachAll     SlideNodeConstraint = 1 << iota // a
	SlideNodeConstraintAttachForeign                                 // f
	SlideNodeConstraintAttachSelf                                    // s
	SlideNodeConstraintAttachNone                                    // n
)

// SlideNode binds a node to slide along a rail.
type SlideNode struct {
	SlideNode NodeRef
	RailNodes []NodeRef

	SpringRate        float64
	BreakForce        float64
	Tolerance         float64
	AttachmentRate    float64
	MaxAttachDistance float64
	RailGroupID       int

	HasConstraintBreakForce bool
	HasRailGroupID          bool
	ConstraintFlags         SlideNodeConstraint
}

// NewSlideNode returns a slidenode with the format's implicit parameter
// values.
func NewSlideNode() SlideNode {
	return SlideNode{
		SpringRate:        9000000,
		Tolerance:         0,
		AttachmentRate:    1,
		MaxAttachDistance: 0.1,
		RailGroupID:       -1,
	}
}

// RailGroup is a reusable rail for slidenodes.
type RailGroup struct {
	ID    int
	Nodes []NodeRef
}

// AnimatorOption is the bitmask of animator source/behavior flags.
type AnimatorOption uint32

const (
	AnimatorOptVisible        AnimatorOption = 1 << iota
	AnimatorOptInvisible
	AnimatorOptAirspeed
	AnimatorOptVerticalVelocity
	AnimatorOptAltimeter100k
	AnimatorOptAltimeter10k
	AnimatorOptAltimeter1k
	AnimatorOptAngleOfAttack
	AnimatorOptFlap
	AnimatorOptAirBrake
	AnimatorOptRoll
	AnimatorOptPitch
	AnimatorOptBrakes
	AnimatorOptAccel
	AnimatorOptClutch
	AnimatorOptSpeedo
	AnimatorOptTacho
	AnimatorOptTurbo
	AnimatorOptParking
	AnimatorOptShiftLeftRight
	AnimatorOptShiftBackForth
	AnimatorOptSequentialShift
	AnimatorOptGearSelect
	AnimatorOptTorque
	AnimatorOptDifflock
	AnimatorOptBoatRudder
	AnimatorOptBoatThrottle
	AnimatorOptShortLimit
	AnimatorOptLongLimit
)

// AeroAnimatorOption is the bitmask of per-engine aerial animator sources.
type AeroAnimatorOption uint32

const (
	AeroAnimatorOptThrottle AeroAnimatorOption = 1 << iota
	AeroAnimatorOptRPM
	AeroAnimatorOptTorque
	AeroAnimatorOptPitch
	AeroAnimatorOptStatus
)

// AeroAnimator binds an animator to one aerial engine.
type AeroAnimator struct {
	Flags       AeroAnimatorOption
	EngineIndex uint
}

// Animator is a gauge/linkage beam driven by a simulation value.
type Animator struct {
	Nodes             [2]NodeRef
	LengtheningFactor float64
	Flags             AnimatorOption
	ShortLimit        float64
	LongLimit         float64
	AeroAnimator      AeroAnimator

	InertiaDefaults *Inertia
	BeamDefaults    *BeamDefaults
	DetacherGroup   int
}

// CollisionBox groups nodes into a named collision volume.
type CollisionBox struct {
	Nodes []NodeRef
}

// CollisionRange overrides the node collision sphere radius.
type CollisionRange struct {
	NodeCollisionRange float64
}

// SkeletonSettings tunes the debug skeleton view.
type SkeletonSettings struct {
	VisibilityRangeMeters float64
	BeamThicknessMeters   float64
}

// NewSkeletonSettings returns the built-in skeleton view settings.
func NewSkeletonSettings() SkeletonSettings {
	return SkeletonSettings{
		VisibilityRangeMeters: BuiltinSkeletonRange,
		BeamThicknessMeters:   BuiltinSkeletonBeamDia,
	}
}
