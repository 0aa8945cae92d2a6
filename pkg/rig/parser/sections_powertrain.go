// File: sections_powertrain.go
// Title: Powertrain Section Extractors
// Description: Engine, engoption, engturbo, torquecurve, brakes and the two
//              rotator generations.

package parser

import (
	"strings"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

func (p *Parser) parseEngine() {
	if !p.checkNumArguments(6) {
		return
	}
	engine := ast.Engine{
		ShiftDownRPM:     p.argFloat(0),
		ShiftUpRPM:       p.argFloat(1),
		Torque:           p.argFloat(2),
		GlobalGearRatio:  p.argFloat(3),
		ReverseGearRatio: p.argFloat(4),
		NeutralGearRatio: p.argFloat(5),
	}
	// Forward gears, optionally terminated by a negative ratio.
	for i := 6; i < p.numArgs; i++ {
		ratio := p.argFloat(i)
		if ratio < 0 {
			break
		}
		engine.GearRatios = append(engine.GearRatios, ratio)
	}
	if len(engine.GearRatios) == 0 {
		p.message(SeverityError, "no forward gear")
		return
	}
	p.module.Engine = append(p.module.Engine, engine)
}

func (p *Parser) parseEngoption() {
	if !p.checkNumArguments(1) {
		return
	}
	engoption := ast.NewEngoption()
	engoption.Inertia = p.argFloat(0)
	if p.numArgs > 1 {
		engoption.Type = ast.EngineType(p.argChar(1))
	}
	if p.numArgs > 2 {
		engoption.ClutchForce = p.argFloat(2)
	}
	if p.numArgs > 3 {
		engoption.ShiftTime = p.argFloat(3)
	}
	if p.numArgs > 4 {
		engoption.ClutchTime = p.argFloat(4)
	}
	if p.numArgs > 5 {
		engoption.PostShiftTime = p.argFloat(5)
	}
	if p.numArgs > 6 {
		engoption.StallRPM = p.argFloat(6)
	}
	if p.numArgs > 7 {
		engoption.IdleRPM = p.argFloat(7)
	}
	if p.numArgs > 8 {
		engoption.MaxIdleMixture = p.argFloat(8)
	}
	if p.numArgs > 9 {
		engoption.MinIdleMixture = p.argFloat(9)
	}
	if p.numArgs > 10 {
		engoption.BrakingTorque = p.argFloat(10)
	}
	p.module.Engoption = append(p.module.Engoption, engoption)
}

func (p *Parser) parseEngturbo() {
	if !p.checkNumArguments(4) {
		return
	}
	engturbo := ast.NewEngturbo()
	engturbo.Version = p.argInt(0)
	engturbo.TInertiaFactor = p.argFloat(1)
	engturbo.NTurbos = p.argInt(2)
	params := []*float64{
		&engturbo.Param1, &engturbo.Param2, &engturbo.Param3, &engturbo.Param4,
		&engturbo.Param5, &engturbo.Param6, &engturbo.Param7, &engturbo.Param8,
		&engturbo.Param9, &engturbo.Param10, &engturbo.Param11,
	}
	for i, param := range params {
		arg := i + 3
		if p.numArgs > arg {
			*param = p.argFloat(arg)
		}
	}
	if engturbo.NTurbos > 4 {
		p.message(SeverityWarning, "You cannot have more than 4 turbos. Fallback: using 4 instead.")
		engturbo.NTurbos = 4
	}
	p.module.Engturbo = append(p.module.Engturbo, engturbo)
}

func (p *Parser) parseTorqueCurve() {
	if len(p.module.TorqueCurves) == 0 {
		p.module.TorqueCurves = append(p.module.TorqueCurves, ast.TorqueCurve{})
	}
	curve := &p.module.TorqueCurves[0]

	args := strings.Split(p.currentLine, ",")
	switch len(args) {
	case 1:
		curve.PredefinedFuncName = strings.TrimSpace(args[0])
	case 2:
		curve.Samples = append(curve.Samples, ast.TorqueCurveSample{
			Power:         p.floatValue(strings.TrimSpace(args[0])),
			TorquePercent: p.floatValue(strings.TrimSpace(args[1])),
		})
	default:
		p.message(SeverityError, "too many arguments, skipping")
	}
}

func (p *Parser) parseBrakes() {
	if !p.checkNumArguments(1) {
		return
	}
	if len(p.module.Brakes) == 0 {
		p.module.Brakes = append(p.module.Brakes, ast.Brakes{})
	}
	brakes := &p.module.Brakes[0]
	brakes.DefaultBrakingForce = p.argFloat(0)
	if p.numArgs > 1 {
		brakes.ParkingBrakeForce = p.argFloat(1)
	}
}

func (p *Parser) parseRotatorsUnified() {
	if !p.checkNumArguments(13) {
		return
	}
	isRotators2 := p.block == KeywordRotators2

	rotator := ast.NewRotator()
	rotator.InertiaDefaults = p.inertiaDefaults
	rotator.AxisNodes[0] = p.argNodeRef(0)
	rotator.AxisNodes[1] = p.argNodeRef(1)
	for i := 0; i < 4; i++ {
		rotator.BasePlateNodes[i] = p.argNodeRef(2 + i)
	}
	for i := 0; i < 4; i++ {
		rotator.RotatingPlateNodes[i] = p.argNodeRef(6 + i)
	}
	rotator.Rate = p.argFloat(10)
	rotator.SpinLeftKey = p.argInt(11)
	rotator.SpinRightKey = p.argInt(12)

	offset := 0
	if isRotators2 {
		if !p.checkNumArguments(16) {
			return
		}
		if p.numArgs > 13 {
			rotator.RotatingForce = p.argFloat(13)
		}
		if p.numArgs > 14 {
			rotator.Tolerance = p.argFloat(14)
		}
		if p.numArgs > 15 {
			rotator.Description = p.argStr(15)
		}
		offset = 3
	}
	p.parseOptionalInertia(&rotator.Inertia, 13+offset)
	if p.numArgs > 17+offset {
		rotator.EngineCoupling = p.argFloat(17 + offset)
	}
	if p.numArgs > 18+offset {
		rotator.NeedsEngine = p.argBool(18 + offset)
	}

	if isRotators2 {
		p.module.Rotators2 = append(p.module.Rotators2, rotator)
	} else {
		p.module.Rotators = append(p.module.Rotators, rotator)
	}
}
