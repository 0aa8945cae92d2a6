// File: directives.go
// Title: Inline Directive Handlers
// Description: Handlers for keyword-led one-line statements: defaults
//              snapshot updates, per-element follow-up directives (forset,
//              backmesh, camera modes, add_animation), metadata lines and
//              the comma-separated driving aids.

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

// floatValue parses a free-standing (non-tokenized) numeric string the same
// way argFloat treats arguments.
func (p *Parser) floatValue(s string) float64 {
	v, n := floatPrefix(s)
	if n == 0 && s != "" {
		p.message(SeverityWarning,
			fmt.Sprintf("Cannot parse '%s' as number, using 0", s))
	}
	return v
}

// intValue is the integer counterpart of floatValue.
func (p *Parser) intValue(s string) int {
	v, n := intPrefix(s)
	if n == 0 && s != "" {
		p.message(SeverityWarning,
			fmt.Sprintf("Cannot parse '%s' as integer, using 0", s))
	}
	return int(v)
}

// parseNodeOptions folds node option characters into a bitmask. Unknown
// characters are ignored with a warning.
func (p *Parser) parseNodeOptions(str string) ast.NodeOption {
	var options ast.NodeOption
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case 'n':
			options |= ast.NodeOptMouseGrab
		case 'm':
			options |= ast.NodeOptNoMouseGrab
		case 'f':
			options |= ast.NodeOptNoSparks
		case 'x':
			options |= ast.NodeOptExhaustPoint
		case 'y':
			options |= ast.NodeOptExhaustDirection
		case 'c':
			options |= ast.NodeOptNoGroundContact
		case 'h':
			options |= ast.NodeOptHookPoint
		case 'e':
			options |= ast.NodeOptTerrainEditPoint
		case 'b':
			options |= ast.NodeOptExtraBuoyancy
		case 'p':
			options |= ast.NodeOptNoParticles
		case 'L':
			options |= ast.NodeOptLog
		case 'l':
			options |= ast.NodeOptLoadWeight
		default:
			p.message(SeverityWarning,
				fmt.Sprintf("Invalid node option '%c', ignoring", str[i]))
		}
	}
	return options
}

func (p *Parser) parseAuthor() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	author := ast.Author{Type: p.argStr(1)}
	// The remaining fields are legacy-tolerant: anything unparsable is
	// silently left empty.
	if p.numArgs > 2 {
		if id, n := intPrefix(p.argStr(2)); n > 0 && id != -1 {
			author.HasForumAccount = true
			author.ForumAccountID = int(id)
		}
	}
	if p.numArgs > 3 {
		author.Name = p.argStr(3)
	}
	if p.numArgs > 4 {
		author.Email = p.argStr(4)
	}
	p.module.Authors = append(p.module.Authors, author)
}

func (p *Parser) parseFileFormatVersion() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	version := p.argInt(1)
	p.module.FileFormatVersion = append(p.module.FileFormatVersion, version)
	p.seq.setFileFormatVersion(version)
}

func (p *Parser) parseFileinfo() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	info := ast.NewFileinfo()
	info.UniqueID = p.argStr(1)
	if p.numArgs > 2 {
		info.CategoryID = p.argInt(2)
	}
	if p.numArgs > 3 {
		info.FileVersion = p.argInt(3)
	}
	p.module.Fileinfo = append(p.module.Fileinfo, info)
}

func (p *Parser) parseGuid() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	raw := p.argStr(1)
	if _, err := uuid.Parse(raw); err != nil {
		p.message(SeverityWarning,
			fmt.Sprintf("Invalid GUID format '%s'", raw))
	}
	p.module.Guid = append(p.module.Guid, ast.Guid{GUID: raw})
}

func (p *Parser) parseDirectiveBackmesh() {
	if p.currentSubmesh == nil {
		p.message(SeverityError, "Directive 'backmesh' outside of submesh, ignoring")
		return
	}
	p.currentSubmesh.Backmesh = true
}

func (p *Parser) parseDirectiveDetacherGroup() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	if p.argStr(1) == "end" {
		p.detacherGroup = 0
	} else {
		p.detacherGroup = p.argInt(1)
	}
}

func (p *Parser) parseCruiseControl() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(3) {
		return
	}
	cc := ast.CruiseControl{
		MinSpeed:  p.argFloat(1),
		Autobrake: p.argInt(2),
	}
	p.module.CruiseControl = append(p.module.CruiseControl, cc)
}

func (p *Parser) parseExtCamera() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	if len(p.module.ExtCamera) == 0 {
		p.module.ExtCamera = append(p.module.ExtCamera, ast.ExtCamera{})
	}
	cam := &p.module.ExtCamera[0]
	switch mode := p.argStr(1); mode {
	case "classic":
		cam.Mode = ast.ExtCameraModeClassic
	case "cinecam":
		cam.Mode = ast.ExtCameraModeCinecam
	case "node":
		cam.Mode = ast.ExtCameraModeNode
		if p.checkNumArguments(3) {
			cam.Node = p.argNodeRef(2)
		}
	default:
		p.message(SeverityWarning,
			fmt.Sprintf("Invalid extcamera mode '%s', ignoring", mode))
	}
}

func (p *Parser) parseSpeedLimiter() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	limiter := ast.SpeedLimiter{IsEnabled: true, MaxSpeed: p.argFloat(1)}
	if limiter.MaxSpeed <= 0 {
		p.message(SeverityError,
			fmt.Sprintf("Invalid 'max_speed' (%f), parsing as 'unlimited'", limiter.MaxSpeed))
		limiter.IsEnabled = false
	}
	p.module.SpeedLimiter = append(p.module.SpeedLimiter, limiter)
}

func (p *Parser) parseSubmeshGroundModel() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	p.module.SubmeshGroundmodel = append(p.module.SubmeshGroundmodel, p.argStr(1))
}

func (p *Parser) parseSetCollisionRange() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	p.module.CollisionRanges = append(p.module.CollisionRanges,
		ast.CollisionRange{NodeCollisionRange: p.argFloat(1)})
}

func (p *Parser) parseSetSkeletonSettings() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	if len(p.module.SkeletonSettings) == 0 {
		p.module.SkeletonSettings = append(p.module.SkeletonSettings, ast.NewSkeletonSettings())
	}
	skel := &p.module.SkeletonSettings[0]
	skel.VisibilityRangeMeters = p.argFloat(1)
	if p.numArgs > 2 {
		skel.BeamThicknessMeters = p.argFloat(2)
	}
	if skel.VisibilityRangeMeters < 0 {
		skel.VisibilityRangeMeters = ast.BuiltinSkeletonRange
	}
	if skel.BeamThicknessMeters < 0 {
		skel.BeamThicknessMeters = ast.BuiltinSkeletonBeamDia
	}
}

func (p *Parser) parseDirectiveSetNodeDefaults() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	loadWeight := p.argFloat(1)
	friction := -1.0
	volume := -1.0
	surface := -1.0
	if p.numArgs > 2 {
		friction = p.argFloat(2)
	}
	if p.numArgs > 3 {
		volume = p.argFloat(3)
	}
	if p.numArgs > 4 {
		surface = p.argFloat(4)
	}

	// New snapshot; negative fields inherit the BUILT-IN defaults, not the
	// previous user snapshot.
	d := *p.nodeDefaults
	d.LoadWeight = loadWeight
	d.Friction = friction
	d.Volume = volume
	d.Surface = surface
	if d.LoadWeight < 0 {
		d.LoadWeight = p.builtinNodeDefaults.LoadWeight
	}
	if d.Friction < 0 {
		d.Friction = p.builtinNodeDefaults.Friction
	}
	if d.Volume < 0 {
		d.Volume = p.builtinNodeDefaults.Volume
	}
	if d.Surface < 0 {
		d.Surface = p.builtinNodeDefaults.Surface
	}
	d.Options = 0
	if p.numArgs > 5 {
		d.Options = p.parseNodeOptions(p.argStr(5))
	}
	p.nodeDefaults = &d
}

func (p *Parser) parseDirectiveSetBeamDefaults() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	d := *p.beamDefaults
	d.EnableAdvancedDeformation = p.doc.EnableAdvancedDeformation
	d.IsUserDefined = true

	d.Springiness = p.argFloat(1)
	if p.numArgs > 2 {
		d.DampingConstant = p.argFloat(2)
	}
	if p.numArgs > 3 {
		d.DeformationThreshold = p.argFloat(3)
	}
	if p.numArgs > 4 {
		d.BreakingThreshold = p.argFloat(4)
	}
	if p.numArgs > 5 {
		d.VisualDiameter = p.argFloat(5)
	}
	if p.numArgs > 6 {
		d.BeamMaterialName = p.argStr(6)
	}
	if p.numArgs > 7 {
		if coef := p.argFloat(7); coef >= 0 {
			d.PlasticDeformCoef = coef
		}
	}

	// Negative values inherit the built-in defaults.
	if d.Springiness < 0 {
		d.Springiness = ast.BuiltinBeamSpring
	}
	if d.DampingConstant < 0 {
		d.DampingConstant = ast.BuiltinBeamDamp
	}
	if d.DeformationThreshold < 0 {
		d.DeformationThreshold = ast.BuiltinBeamDeform
	}
	if d.BreakingThreshold < 0 {
		d.BreakingThreshold = ast.BuiltinBeamBreak
	}
	if d.VisualDiameter < 0 {
		d.VisualDiameter = ast.BuiltinBeamDiameter
	}
	p.beamDefaults = &d
}

func (p *Parser) parseDirectiveSetBeamDefaultsScale() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	d := *p.beamDefaults
	d.Scale.Springiness = p.argFloat(1)
	if p.numArgs > 2 {
		d.Scale.DampingConstant = p.argFloat(2)
	}
	if p.numArgs > 3 {
		d.Scale.DeformationThreshold = p.argFloat(3)
	}
	if p.numArgs > 4 {
		d.Scale.BreakingThreshold = p.argFloat(4)
	}
	p.beamDefaults = &d
}

func (p *Parser) parseDirectiveSetInertiaDefaults() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	startDelay := p.argFloat(1)
	stopDelay := 0.0
	if p.numArgs > 2 {
		stopDelay = p.argFloat(2)
	}
	if startDelay < 0 || stopDelay < 0 {
		// Negative delay resets to the built-in snapshot.
		p.inertiaDefaults = p.builtinInertia
		return
	}
	inertia := *p.inertiaDefaults
	inertia.StartDelayFactor = startDelay
	inertia.StopDelayFactor = stopDelay
	if p.numArgs > 3 {
		inertia.StartFunction = p.argStr(3)
	}
	if p.numArgs > 4 {
		inertia.StopFunction = p.argStr(4)
	}
	p.inertiaDefaults = &inertia
}

func (p *Parser) parseDirectiveSetDefaultMinimass() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	p.defaultMinimass = &ast.DefaultMinimass{MinKg: p.argFloat(1)}
}

func (p *Parser) parseDirectiveSetManagedMaterialsOptions() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	c := p.argChar(1)
	if c != '0' && c != '1' {
		p.message(SeverityWarning,
			"Param 'doublesided' should be only 1 or 0, defaulting to 0")
	}
	p.managedMatOptions.DoubleSided = c == '1'
}

func (p *Parser) parseDirectivePropCameraMode() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	if len(p.module.Props) == 0 {
		p.message(SeverityError, "Directive 'prop_camera_mode' has no prop, ignoring")
		return
	}
	p.parseCameraSettings(&p.module.Props[len(p.module.Props)-1].CameraSettings, 1)
}

// parseCameraSettings reads a camera mode value; non-negative values address
// a cinecam by index, -1 and -2 are the fixed modes, anything lower is
// rejected.
func (p *Parser) parseCameraSettings(settings *ast.CameraSettings, index int) {
	value := p.argInt(index)
	if value < -2 {
		p.message(SeverityError, fmt.Sprintf("invalid value (%d), skipping line", value))
		return
	}
	settings.Mode = ast.CameraMode(value)
}

func (p *Parser) parseDirectiveFlexbodyCameraMode() {
	p.tokenizeCurrentLine()
	if !p.checkNumArguments(2) {
		return
	}
	if len(p.module.Flexbodies) == 0 {
		p.message(SeverityError, "Directive 'flexbody_camera_mode' has no flexbody, ignoring")
		return
	}
	fb := &p.module.Flexbodies[len(p.module.Flexbodies)-1]
	p.parseCameraSettings(&fb.CameraSettings, 1)
}

func (p *Parser) parseDirectiveForset() {
	if len(p.module.Flexbodies) == 0 {
		p.message(SeverityError, "Directive 'forset' has no flexbody, ignoring")
		return
	}
	fb := &p.module.Flexbodies[len(p.module.Flexbodies)-1]

	// Cut "forset" off and split the remainder on commas. Items are either
	// a single node or a "first - last" range.
	rest := p.currentLine[min(6, len(p.currentLine)):]
	for _, item := range strings.Split(rest, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		// A leading '-' belongs to a (bogus but seen) negative number, not
		// a range separator.
		searchFrom := 0
		if item[0] == '-' {
			searchFrom = 1
		}
		if dash := strings.IndexByte(item[searchFrom:], '-'); dash != -1 {
			dash += searchFrom
			first := strings.TrimSpace(item[:dash])
			last := strings.TrimSpace(item[dash+1:])
			fb.ForSet = append(fb.ForSet, ast.NodeRange{
				From: p.parseNodeRefString(first),
				To:   p.parseNodeRefString(last),
			})
			continue
		}
		ref := p.parseNodeRefString(item)
		fb.ForSet = append(fb.ForSet, ast.NodeRange{From: ref, To: ref})
	}
}

// animatorNumberedSource matches per-engine animation sources such as
// "throttle2" or "rpm1".
var animatorNumberedSource = regexp.MustCompile(`^(throttle|rpm|aerotorq|aeropit|aerostatus)([0-9]+)$`)

func (p *Parser) parseDirectiveAddAnimation() {
	if len(p.module.Props) == 0 {
		p.message(SeverityError, "Directive 'add_animation' has no prop to animate, ignoring")
		return
	}

	// Comma-separated after the keyword; inside each token, ':' separates
	// key from value and '|' separates multiple values.
	rest := p.currentLine[min(14, len(p.currentLine)):]
	tokens := strings.Split(rest, ",")
	animation := ast.NewAnimation()

	for index, token := range tokens {
		token = strings.TrimSpace(token)
		if index < 3 {
			switch index {
			case 0:
				animation.Ratio = p.floatValue(token)
			case 1:
				animation.LowerLimit = p.floatValue(token)
			case 2:
				animation.UpperLimit = p.floatValue(token)
			}
			continue
		}

		key, value, hasValue := strings.Cut(token, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if !hasValue {
			switch key {
			case "autoanimate":
				animation.Mode |= ast.AnimModeAutoAnimate
			case "noflip":
				animation.Mode |= ast.AnimModeNoFlip
			case "bounce":
				animation.Mode |= ast.AnimModeBounce
			case "eventlock":
				animation.Mode |= ast.AnimModeEventLock
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid add_animation token '%s', ignoring", key))
			}
			continue
		}

		switch key {
		case "mode":
			for _, mode := range strings.Split(value, "|") {
				p.parseAnimationMode(&animation, strings.TrimSpace(mode))
			}
		case "source":
			for _, source := range strings.Split(value, "|") {
				p.parseAnimationSource(&animation, strings.TrimSpace(source))
			}
		case "event":
			animation.Event = strings.ToUpper(value)
		default:
			p.message(SeverityWarning,
				fmt.Sprintf("Invalid add_animation key '%s', ignoring", key))
		}
	}

	prop := &p.module.Props[len(p.module.Props)-1]
	prop.Animations = append(prop.Animations, animation)
}

func (p *Parser) parseAnimationMode(animation *ast.Animation, mode string) {
	switch mode {
	case "x-rotation":
		animation.Mode |= ast.AnimModeRotationX
	case "y-rotation":
		animation.Mode |= ast.AnimModeRotationY
	case "z-rotation":
		animation.Mode |= ast.AnimModeRotationZ
	case "x-offset":
		animation.Mode |= ast.AnimModeOffsetX
	case "y-offset":
		animation.Mode |= ast.AnimModeOffsetY
	case "z-offset":
		animation.Mode |= ast.AnimModeOffsetZ
	default:
		p.message(SeverityWarning,
			fmt.Sprintf("Invalid animation mode '%s', ignoring", mode))
	}
}

var animationSources = map[string]ast.AnimationSource{
	"airspeed":      ast.AnimSourceAirspeed,
	"vvi":           ast.AnimSourceVerticalVelocity,
	"altimeter100k": ast.AnimSourceAltimeter100k,
	"altimeter10k":  ast.AnimSourceAltimeter10k,
	"altimeter1k":   ast.AnimSourceAltimeter1k,
	"aoa":           ast.AnimSourceAngleOfAttack,
	"flap":          ast.AnimSourceFlap,
	"airbrake":      ast.AnimSourceAirBrake,
	"roll":          ast.AnimSourceRoll,
	"pitch":         ast.AnimSourcePitch,
	"brakes":        ast.AnimSourceBrakes,
	"accel":         ast.AnimSourceAccel,
	"clutch":        ast.AnimSourceClutch,
	"speedo":        ast.AnimSourceSpeedo,
	"tacho":         ast.AnimSourceTacho,
	"turbo":         ast.AnimSourceTurbo,
	"parking":       ast.AnimSourceParking,
	"shifterman1":   ast.AnimSourceShiftLeftRight,
	"shifterman2":   ast.AnimSourceShiftBackForth,
	"sequential":    ast.AnimSourceSequentialShift,
	"shifterlin":    ast.AnimSourceShifterLin,
	"torque":        ast.AnimSourceTorque,
	"heading":       ast.AnimSourceHeading,
	"difflock":      ast.AnimSourceDiffLock,
	"rudderboat":    ast.AnimSourceBoatRudder,
	"throttleboat":  ast.AnimSourceBoatThrottle,
	"steeringwheel": ast.AnimSourceSteeringWheel,
	"aileron":       ast.AnimSourceAileron,
	"elevator":      ast.AnimSourceElevator,
	"rudderair":     ast.AnimSourceAirRudder,
	"permanent":     ast.AnimSourcePermanent,
	"event":         ast.AnimSourceEvent,
}

var animationMotorSources = map[string]ast.MotorSourceKind{
	"throttle":   ast.MotorSourceAeroThrottle,
	"rpm":        ast.MotorSourceAeroRPM,
	"aerotorq":   ast.MotorSourceAeroTorque,
	"aeropit":    ast.MotorSourceAeroPitch,
	"aerostatus": ast.MotorSourceAeroStatus,
}

func (p *Parser) parseAnimationSource(animation *ast.Animation, source string) {
	if bit, ok := animationSources[source]; ok {
		animation.Source |= bit
		return
	}
	if m := animatorNumberedSource.FindStringSubmatch(source); m != nil {
		motor := p.intValue(m[2])
		if motor < 1 {
			p.message(SeverityWarning,
				fmt.Sprintf("Invalid motor number in source '%s', ignoring", source))
			return
		}
		animation.MotorSources = append(animation.MotorSources, ast.MotorSource{
			Source: animationMotorSources[m[1]],
			Motor:  uint(motor - 1),
		})
		return
	}
	p.message(SeverityWarning,
		fmt.Sprintf("Invalid animation source '%s', ignoring", source))
}

func (p *Parser) parseAntiLockBrakes() {
	// Comma-only split after "AntiLockBrakes ".
	rest := p.currentLine[min(15, len(p.currentLine)):]
	tokens := strings.Split(rest, ",")
	if len(tokens) < 2 {
		p.message(SeverityError, "Too few arguments for 'AntiLockBrakes'")
		return
	}
	alb := ast.NewAntiLockBrakes()
	alb.RegulationForce = p.floatValue(strings.TrimSpace(tokens[0]))
	alb.MinSpeed = p.intValue(strings.TrimSpace(tokens[1]))
	// The pulse rate only counts once an attribute token follows it; a bare
	// three-token line keeps the default.
	if len(tokens) > 3 {
		alb.PulsePerSec = p.floatValue(strings.TrimSpace(tokens[2]))
	}
	p.parseDrivingAidMode(tokens[3:], &alb.AttrNoDashboard, &alb.AttrNoToggle, &alb.AttrIsOn)
	p.module.AntiLockBrakes = append(p.module.AntiLockBrakes, alb)
}

func (p *Parser) parseTractionControl() {
	// Comma-only split after "TractionControl".
	rest := p.currentLine[min(15, len(p.currentLine)):]
	tokens := strings.Split(rest, ",")
	if len(tokens) < 2 {
		p.message(SeverityError, "Too few arguments for 'TractionControl'")
		return
	}
	tc := ast.NewTractionControl()
	tc.RegulationForce = p.floatValue(strings.TrimSpace(tokens[0]))
	tc.WheelSlip = p.floatValue(strings.TrimSpace(tokens[1]))
	if len(tokens) > 2 {
		tc.FadeSpeed = p.floatValue(strings.TrimSpace(tokens[2]))
	}
	if len(tokens) > 3 {
		tc.PulsePerSec = p.floatValue(strings.TrimSpace(tokens[3]))
	}
	p.parseDrivingAidMode(tokens[4:], &tc.AttrNoDashboard, &tc.AttrNoToggle, &tc.AttrIsOn)
	p.module.TractionControl = append(p.module.TractionControl, tc)
}

// parseDrivingAidMode handles the trailing "mode: a & b" attribute tokens
// shared by AntiLockBrakes and TractionControl. A token that is not a mode
// attribute resets all three flags to their defaults. Unknown attribute names
// are ignored without a message.
func (p *Parser) parseDrivingAidMode(tokens []string, noDashboard, noToggle, isOn *bool) {
	for _, token := range tokens {
		key, value, hasValue := strings.Cut(token, ":")
		if !hasValue || strings.TrimSpace(strings.ToLower(key)) != "mode" {
			p.message(SeverityError, "missing mode")
			*noDashboard = false
			*noToggle = false
			*isOn = true
			continue
		}
		for _, attr := range strings.Split(value, "&") {
			switch strings.TrimSpace(strings.ToLower(attr)) {
			case "nodash":
				*noDashboard = true
			case "notoggle":
				*noToggle = true
			case "on":
				*isOn = true
			case "off":
				*isOn = false
			}
		}
	}
}
