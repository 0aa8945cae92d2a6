// File: powertrain.go
// Title: Powertrain Element Records
// Description: Engine, gearbox, turbo, brakes and driving-aid records.

package ast

// Engine holds gearbox RPM limits and gear ratios.
type Engine struct {
	ShiftDownRPM     float64
	ShiftUpRPM       float64
	Torque           float64
	GlobalGearRatio  float64
	ReverseGearRatio float64
	NeutralGearRatio float64
	GearRatios       []float64
}

// EngineType selects the engoption simulation model.
type EngineType byte

const (
	EngineTypeCar   EngineType = 'c'
	EngineTypeTruck EngineType = 't'
	EngineTypeEcar  EngineType = 'e'
)

// Engoption tunes the engine simulation. Negative values mean "use the
// simulator's default".
type Engoption struct {
	Inertia        float64
	Type           EngineType
	ClutchForce    float64
	ShiftTime      float64
	ClutchTime     float64
	PostShiftTime  float64
	StallRPM       float64
	IdleRPM        float64
	MaxIdleMixture float64
	MinIdleMixture float64
	BrakingTorque  float64
}

// NewEngoption returns engine options with the format's implicit values.
func NewEngoption() Engoption {
	return Engoption{
		Inertia:        10,
		Type:           EngineTypeTruck,
		ClutchForce:    -1,
		ShiftTime:      -1,
		ClutchTime:     -1,
		PostShiftTime:  -1,
		StallRPM:       -1,
		IdleRPM:        -1,
		MaxIdleMixture: -1,
		MinIdleMixture: -1,
		BrakingTorque:  -1,
	}
}

// Engturbo adds turbocharger simulation. The numbered params are
// version-dependent and passed through as written.
type Engturbo struct {
	Version        int
	TInertiaFactor float64
	NTurbos        int
	Param1         float64
	Param2         float64
	Param3         float64
	Param4         float64
	Param5         float64
	Param6         float64
	Param7         float64
	Param8         float64
	Param9         float64
	Param10        float64
	Param11        float64
}

// NewEngturbo returns turbo parameters with the format's implicit values.
func NewEngturbo() Engturbo {
	return Engturbo{
		TInertiaFactor: 1,
		Param1:         9999,
		Param2:         9999,
		Param3:         9999,
		Param4:         9999,
		Param5:         9999,
		Param6:         9999,
		Param7:         9999,
		Param8:         9999,
		Param9:         9999,
		Param10:        9999,
		Param11:        9999,
	}
}

// TorqueCurveSample is one point of a custom torque curve.
type TorqueCurveSample struct {
	Power         float64
	TorquePercent float64
}

// TorqueCurve is either a predefined curve name or a list of samples.
type TorqueCurve struct {
	PredefinedFuncName string
	Samples            []TorqueCurveSample
}

// Brakes sets the braking forces.
type Brakes struct {
	DefaultBrakingForce float64
	ParkingBrakeForce   float64
}

// TractionControl is the traction control driving aid.
type TractionControl struct {
	RegulationForce float64
	WheelSlip       float64
	FadeSpeed       float64
	PulsePerSec     float64

	AttrNoDashboard bool
	AttrNoToggle    bool
	AttrIsOn        bool
}

// NewTractionControl returns traction control with the format's implicit
// values.
func NewTractionControl() TractionControl {
	return TractionControl{RegulationForce: 10, FadeSpeed: 1}
}

// AntiLockBrakes is the ABS driving aid.
type AntiLockBrakes struct {
	RegulationForce float64
	MinSpeed        int
	PulsePerSec     float64

	AttrNoDashboard bool
	AttrNoToggle    bool
	AttrIsOn        bool
}

// NewAntiLockBrakes returns ABS with the format's implicit values.
func NewAntiLockBrakes() AntiLockBrakes {
	return AntiLockBrakes{RegulationForce: 10, MinSpeed: 50}
}

// CruiseControl configures the cruise control aid.
type CruiseControl struct {
	MinSpeed  float64
	Autobrake int
}

// SpeedLimiter caps vehicle speed.
type SpeedLimiter struct {
	IsEnabled bool
	MaxSpeed  float64
}

// Rotator spins a plate of nodes around an axis; covers both the rotators
// and rotators2 sections.
type Rotator struct {
	AxisNodes          [2]NodeRef
	BasePlateNodes     [4]NodeRef
	RotatingPlateNodes [4]NodeRef

	Rate         float64
	SpinLeftKey  int
	SpinRightKey int

	// rotators2 extras; left at their implicit values for rotators.
	RotatingForce float64
	Tolerance     float64
	Description   string

	EngineCoupling float64
	NeedsEngine    bool

	Inertia         Inertia
	InertiaDefaults *Inertia
}

// NewRotator returns a rotator with the format's implicit values.
func NewRotator() Rotator {
	return Rotator{
		RotatingForce:  10000000,
		Tolerance:      300000,
		EngineCoupling: 1,
		NeedsEngine:    true,
	}
}
