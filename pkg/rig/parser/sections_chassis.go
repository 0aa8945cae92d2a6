// File: sections_chassis.go
// Title: Chassis Section Extractors
// Description: Data-line extractors for nodes, beams and the beam-like link
//              sections, plus the node grouping sections (hooks, lockgroups,
//              slidenodes, railgroups, collisionboxes) and the one-line
//              metadata blocks (globals, minimass, guisettings, help).

package parser

import (
	"fmt"
	"strings"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

// parseOptionalInertia reads the optional trailing inertia arguments shared
// by hydros, commands and rotators.
func (p *Parser) parseOptionalInertia(inertia *ast.Inertia, index int) {
	if p.numArgs > index {
		inertia.StartDelayFactor = p.argFloat(index)
		index++
	}
	if p.numArgs > index {
		inertia.StopDelayFactor = p.argFloat(index)
		index++
	}
	if p.numArgs > index {
		inertia.StartFunction = p.argStr(index)
		index++
	}
	if p.numArgs > index {
		inertia.StopFunction = p.argStr(index)
	}
}

func (p *Parser) parseNodesUnified() {
	if !p.checkNumArguments(4) {
		return
	}
	node := ast.Node{
		NodeDefaults:    p.nodeDefaults,
		BeamDefaults:    p.beamDefaults,
		DefaultMinimass: p.defaultMinimass,
		DetacherGroup:   p.detacherGroup,
	}

	if p.block == KeywordNodes2 {
		name := p.argStr(0)
		node.ID.SetStr(name)
		p.seq.addNamedNode()
		p.anyNamedNode = true
	} else {
		num := p.argInt(0)
		if num < 0 {
			p.message(SeverityWarning,
				fmt.Sprintf("Invalid node number %d, parsing as %d", num, -num))
			num = -num
		}
		node.ID.SetNum(uint(num))
		p.seq.addNumberedNode(uint(num))
	}

	node.Position.X = p.argFloat(1)
	node.Position.Y = p.argFloat(2)
	node.Position.Z = p.argFloat(3)
	if p.numArgs > 4 {
		node.Options = p.parseNodeOptions(p.argStr(4))
	}
	if p.numArgs > 5 {
		if node.Options&ast.NodeOptLoadWeight != 0 {
			node.LoadWeightOverride = p.argFloat(5)
			node.HasLoadWeightOverride = true
		} else {
			p.message(SeverityWarning,
				"Node has load-weight-override value specified, but option 'l' is not present. Ignoring value")
		}
	}
	p.module.Nodes = append(p.module.Nodes, node)
}

func (p *Parser) parseBeams() {
	if !p.checkNumArguments(2) {
		return
	}
	beam := ast.Beam{
		Defaults:      p.beamDefaults,
		DetacherGroup: p.detacherGroup,
	}
	beam.Nodes[0] = p.argNodeRef(0)
	beam.Nodes[1] = p.argNodeRef(1)

	if p.numArgs > 2 {
		options := p.argStr(2)
		for i := 0; i < len(options); i++ {
			switch options[i] {
			case 'v', 'n':
				// Filler characters.
			case 'i':
				beam.Options |= ast.BeamOptInvisible
			case 'r':
				beam.Options |= ast.BeamOptRope
			case 's':
				beam.Options |= ast.BeamOptSupport
				if p.numArgs > 3 {
					beam.ExtensionBreakLimit = p.argFloat(3)
					beam.HasExtensionBreakLimit = true
				}
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid beam option '%c', ignoring", options[i]))
			}
		}
	}
	p.module.Beams = append(p.module.Beams, beam)
}

func (p *Parser) parseShock() {
	if !p.checkNumArguments(6) {
		return
	}
	shock := ast.Shock{
		BeamDefaults:  p.beamDefaults,
		DetacherGroup: p.detacherGroup,
	}
	shock.Nodes[0] = p.argNodeRef(0)
	shock.Nodes[1] = p.argNodeRef(1)
	shock.SpringRate = p.argFloat(2)
	shock.Damping = p.argFloat(3)
	shock.ShortBound = p.argFloat(4)
	shock.LongBound = p.argFloat(5)
	if p.numArgs > 6 {
		shock.Precompression = p.argFloat(6)
	}
	if p.numArgs > 7 {
		options := p.argStr(7)
		for i := 0; i < len(options); i++ {
			switch options[i] {
			case 'n', 'v':
			case 'i':
				shock.Options |= ast.ShockOptInvisible
			case 'L':
				shock.Options |= ast.ShockOptLActiveLeft
			case 'R':
				shock.Options |= ast.ShockOptRActiveRight
			case 'm':
				shock.Options |= ast.ShockOptMetric
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid shock option '%c', ignoring", options[i]))
			}
		}
	}
	p.module.Shocks = append(p.module.Shocks, shock)
}

func (p *Parser) parseShock2() {
	if !p.checkNumArguments(13) {
		return
	}
	shock := ast.Shock2{
		BeamDefaults:  p.beamDefaults,
		DetacherGroup: p.detacherGroup,
	}
	shock.Nodes[0] = p.argNodeRef(0)
	shock.Nodes[1] = p.argNodeRef(1)
	shock.SpringIn = p.argFloat(2)
	shock.DampIn = p.argFloat(3)
	shock.ProgressFactorSpringIn = p.argFloat(4)
	shock.ProgressFactorDampIn = p.argFloat(5)
	shock.SpringOut = p.argFloat(6)
	shock.DampOut = p.argFloat(7)
	shock.ProgressFactorSpringOut = p.argFloat(8)
	shock.ProgressFactorDampOut = p.argFloat(9)
	shock.ShortBound = p.argFloat(10)
	shock.LongBound = p.argFloat(11)
	shock.Precompression = p.argFloat(12)
	if p.numArgs > 13 {
		options := p.argStr(13)
		for i := 0; i < len(options); i++ {
			switch options[i] {
			case 'n', 'v':
			case 'i':
				shock.Options |= ast.Shock2OptInvisible
			case 's':
				shock.Options |= ast.Shock2OptSoftBumpBound
			case 'm':
				shock.Options |= ast.Shock2OptMetric
			case 'M':
				shock.Options |= ast.Shock2OptAbsoluteMetric
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid shock2 option '%c', ignoring", options[i]))
			}
		}
	}
	p.module.Shocks2 = append(p.module.Shocks2, shock)
}

func (p *Parser) parseShock3() {
	if !p.checkNumArguments(15) {
		return
	}
	shock := ast.Shock3{
		BeamDefaults:  p.beamDefaults,
		DetacherGroup: p.detacherGroup,
	}
	shock.Nodes[0] = p.argNodeRef(0)
	shock.Nodes[1] = p.argNodeRef(1)
	shock.SpringIn = p.argFloat(2)
	shock.DampIn = p.argFloat(3)
	shock.DampInSlow = p.argFloat(4)
	shock.SplitVelIn = p.argFloat(5)
	shock.DampInFast = p.argFloat(6)
	shock.SpringOut = p.argFloat(7)
	shock.DampOut = p.argFloat(8)
	shock.DampOutSlow = p.argFloat(9)
	shock.SplitVelOut = p.argFloat(10)
	shock.DampOutFast = p.argFloat(11)
	shock.ShortBound = p.argFloat(12)
	shock.LongBound = p.argFloat(13)
	shock.Precompression = p.argFloat(14)
	if p.numArgs > 15 {
		options := p.argStr(15)
		for i := 0; i < len(options); i++ {
			switch options[i] {
			case 'n', 'v':
			case 'i':
				shock.Options |= ast.Shock3OptInvisible
			case 'm':
				shock.Options |= ast.Shock3OptMetric
			case 'M':
				shock.Options |= ast.Shock3OptAbsoluteMetric
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid shock3 option '%c', ignoring", options[i]))
			}
		}
	}
	p.module.Shocks3 = append(p.module.Shocks3, shock)
}

func (p *Parser) parseHydros() {
	if !p.checkNumArguments(3) {
		return
	}
	hydro := ast.Hydro{
		InertiaDefaults: p.inertiaDefaults,
		BeamDefaults:    p.beamDefaults,
		DetacherGroup:   p.detacherGroup,
	}
	hydro.Nodes[0] = p.argNodeRef(0)
	hydro.Nodes[1] = p.argNodeRef(1)
	hydro.LengtheningFactor = p.argFloat(2)
	if p.numArgs > 3 {
		hydro.Options = p.argStr(3)
	}
	p.parseOptionalInertia(&hydro.Inertia, 4)
	p.module.Hydros = append(p.module.Hydros, hydro)
}

func (p *Parser) parseCommandsUnified() {
	isCommands2 := p.block == KeywordCommands2
	minArgs := 7
	if isCommands2 {
		minArgs = 8
	}
	if !p.checkNumArguments(minArgs) {
		return
	}

	command := ast.Command2{
		BeamDefaults:    p.beamDefaults,
		InertiaDefaults: p.inertiaDefaults,
		DetacherGroup:   p.detacherGroup,
		NeedsEngine:     true,
		PlaysSound:      true,
		FormatVersion:   1,
	}
	if isCommands2 {
		command.FormatVersion = 2
	}

	pos := 0
	command.Nodes[0] = p.argNodeRef(pos)
	pos++
	command.Nodes[1] = p.argNodeRef(pos)
	pos++
	command.ShortenRate = p.argFloat(pos)
	pos++
	if isCommands2 {
		command.LengthenRate = p.argFloat(pos)
		pos++
	} else {
		command.LengthenRate = command.ShortenRate
	}
	command.MaxContraction = p.argFloat(pos)
	pos++
	command.MaxExtension = p.argFloat(pos)
	pos++
	command.ContractKey = p.argInt(pos)
	pos++
	command.ExtendKey = p.argInt(pos)
	pos++

	if p.numArgs <= pos {
		p.module.Commands2 = append(p.module.Commands2, command)
		return
	}

	// Option characters; 'o', 'p' and 'c' are mutually exclusive and the
	// first one written wins.
	options := p.argStr(pos)
	pos++
	var winner byte
	for i := 0; i < len(options); i++ {
		c := options[i]
		if winner == 0 && (c == 'o' || c == 'p' || c == 'c') {
			winner = c
		}
		switch c {
		case 'n':
			// Filler, does nothing.
		case 'i':
			command.OptionIInvisible = true
		case 'r':
			command.OptionRRope = true
		case 'f':
			command.OptionFNotFaster = true
		case 'c':
			command.OptionCAutoCenter = true
		case 'p':
			command.OptionPPress = true
		case 'o':
			command.OptionOPressCenter = true
		default:
			p.message(SeverityWarning,
				fmt.Sprintf("Ignoring unknown command option '%c'", c))
		}
	}

	// Resolve conflicts between one-pressed and self-centering modes.
	if command.OptionCAutoCenter && winner != 'c' && winner != 0 {
		p.message(SeverityNotice,
			"Command cannot be one-pressed and self centering at the same time, ignoring flag 'c'")
		command.OptionCAutoCenter = false
	}
	var ignored byte
	if command.OptionOPressCenter && winner != 'o' && winner != 0 {
		command.OptionOPressCenter = false
		ignored = 'o'
	} else if command.OptionPPress && winner != 'p' && winner != 0 {
		command.OptionPPress = false
		ignored = 'p'
	}
	if ignored != 0 && winner == 'c' {
		p.message(SeverityNotice, fmt.Sprintf(
			"Command cannot be one-pressed and self centering at the same time, ignoring flag '%c'", ignored))
	} else if ignored != 0 && (winner == 'o' || winner == 'p') {
		p.message(SeverityNotice, fmt.Sprintf(
			"Command already has a one-pressed mode, ignoring flag '%c'", ignored))
	}

	if p.numArgs > pos {
		command.Description = p.argStr(pos)
		pos++
	}
	if p.numArgs > pos {
		p.parseOptionalInertia(&command.Inertia, pos)
		pos += 4
	}
	if p.numArgs > pos {
		command.AffectEngine = p.argFloat(pos)
		pos++
	}
	if p.numArgs > pos {
		command.NeedsEngine = p.argBool(pos)
		pos++
	}
	if p.numArgs > pos {
		command.PlaysSound = p.argBool(pos)
	}
	p.module.Commands2 = append(p.module.Commands2, command)
}

func (p *Parser) parseTriggers() {
	if !p.checkNumArguments(6) {
		return
	}
	trigger := ast.Trigger{
		BeamDefaults:  p.beamDefaults,
		DetacherGroup: p.detacherGroup,
		BoundaryTimer: 1,
	}
	trigger.Nodes[0] = p.argNodeRef(0)
	trigger.Nodes[1] = p.argNodeRef(1)
	trigger.ContractionTriggerLimit = p.argFloat(2)
	trigger.ExpansionTriggerLimit = p.argFloat(3)
	trigger.ShortboundAction = p.argInt(4)
	trigger.LongboundAction = p.argInt(5)

	if p.numArgs > 6 {
		options := p.argStr(6)
		for i := 0; i < len(options); i++ {
			switch options[i] {
			case 'i':
				trigger.Options |= ast.TriggerOptInvisible
			case 'c':
				trigger.Options |= ast.TriggerOptCommandStyle
			case 'x':
				trigger.Options |= ast.TriggerOptStartDisabled
			case 'b':
				trigger.Options |= ast.TriggerOptKeyBlocker
			case 'B':
				trigger.Options |= ast.TriggerOptTriggerBlocker
			case 'A':
				trigger.Options |= ast.TriggerOptInvTriggerBlocker
			case 's':
				trigger.Options |= ast.TriggerOptCmdNumSwitch
			case 'h':
				trigger.Options |= ast.TriggerOptUnlocksHookGroup
			case 'H':
				trigger.Options |= ast.TriggerOptLocksHookGroup
			case 't':
				trigger.Options |= ast.TriggerOptContinuous
			case 'E':
				trigger.Options |= ast.TriggerOptEngineTrigger
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid trigger option '%c', ignoring", options[i]))
			}
		}
	}
	if p.numArgs > 7 {
		trigger.BoundaryTimer = p.argFloat(7)
	}
	p.module.Triggers = append(p.module.Triggers, trigger)
}

func (p *Parser) parseTies() {
	if !p.checkNumArguments(5) {
		return
	}
	tie := ast.Tie{
		BeamDefaults:  p.beamDefaults,
		DetacherGroup: p.detacherGroup,
		MaxStress:     100000,
		Group:         -1,
	}
	tie.RootNode = p.argNodeRef(0)
	tie.MaxReachLength = p.argFloat(1)
	tie.AutoShortenRate = p.argFloat(2)
	tie.MinLength = p.argFloat(3)
	tie.MaxLength = p.argFloat(4)

	if p.numArgs > 5 {
		options := p.argStr(5)
		for i := 0; i < len(options); i++ {
			switch options[i] {
			case 'n', 'v':
			case 'i':
				tie.IsInvisible = true
			case 's':
				tie.DisableSelfLock = true
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid tie option '%c', ignoring", options[i]))
			}
		}
	}
	if p.numArgs > 6 {
		tie.MaxStress = p.argFloat(6)
	}
	if p.numArgs > 7 {
		tie.Group = p.argInt(7)
	}
	p.module.Ties = append(p.module.Ties, tie)
}

func (p *Parser) parseRopes() {
	if !p.checkNumArguments(2) {
		return
	}
	rope := ast.Rope{
		BeamDefaults:  p.beamDefaults,
		DetacherGroup: p.detacherGroup,
	}
	rope.RootNode = p.argNodeRef(0)
	rope.EndNode = p.argNodeRef(1)
	if p.numArgs > 2 {
		rope.Invisible = p.argChar(2) == 'i'
	}
	p.module.Ropes = append(p.module.Ropes, rope)
}

func (p *Parser) parseRopables() {
	if !p.checkNumArguments(1) {
		return
	}
	ropable := ast.Ropable{Group: -1}
	ropable.Node = p.argNodeRef(0)
	if p.numArgs > 1 {
		ropable.Group = p.argInt(1)
	}
	if p.numArgs > 2 {
		ropable.HasMultilock = p.argInt(2) == 1
	}
	p.module.Ropables = append(p.module.Ropables, ropable)
}

func (p *Parser) parseFixes() {
	if !p.checkNumArguments(1) {
		return
	}
	p.module.Fixes = append(p.module.Fixes, p.argNodeRef(0))
}

func (p *Parser) parseContacter() {
	if !p.checkNumArguments(1) {
		return
	}
	p.module.Contacters = append(p.module.Contacters, p.argNodeRef(0))
}

func (p *Parser) parseHook() {
	if !p.checkNumArguments(1) {
		return
	}
	hook := ast.NewHook()
	hook.Node = p.argNodeRef(0)

	i := 1
	for i < p.numArgs {
		attr := strings.TrimSpace(p.argStr(i))
		hasValue := i < p.numArgs-1

		switch {
		case hasValue && attr == "hookrange":
			i++
			hook.HookRange = p.argFloat(i)
		case hasValue && attr == "speedcoef":
			i++
			hook.SpeedCoef = p.argFloat(i)
		case hasValue && attr == "maxforce":
			i++
			hook.MaxForce = p.argFloat(i)
		case hasValue && attr == "timer":
			i++
			hook.Timer = p.argFloat(i)
		case hasValue && (attr == "hookgroup" || attr == "hgroup"):
			i++
			hook.HookGroup = p.argInt(i)
		case hasValue && (attr == "lockgroup" || attr == "lgroup"):
			i++
			hook.LockGroup = p.argInt(i)
		case hasValue && (attr == "shortlimit" || attr == "short_limit"):
			i++
			hook.MinRangeMeters = p.argFloat(i)
		case attr == "selflock" || attr == "self-lock" || attr == "self_lock":
			hook.SelfLock = true
		case attr == "autolock" || attr == "auto-lock" || attr == "auto_lock":
			hook.AutoLock = true
		case attr == "nodisable" || attr == "no-disable" || attr == "no_disable":
			hook.NoDisable = true
		case attr == "norope" || attr == "no-rope" || attr == "no_rope":
			hook.NoRope = true
		case attr == "visible" || attr == "vis":
			hook.Visible = true
		default:
			p.message(SeverityWarning,
				fmt.Sprintf("Ignoring invalid hook option '%s'", attr))
		}
		i++
	}
	p.module.Hooks = append(p.module.Hooks, hook)
}

func (p *Parser) parseLockgroups() {
	if !p.checkNumArguments(2) {
		return
	}
	lockgroup := ast.Lockgroup{Number: p.argInt(0)}
	for i := 1; i < p.numArgs; i++ {
		lockgroup.Nodes = append(lockgroup.Nodes, p.argNodeRef(i))
	}
	p.module.Lockgroups = append(p.module.Lockgroups, lockgroup)
}

func (p *Parser) parseSlidenodes() {
	if !p.checkNumArguments(2) {
		return
	}
	slidenode := ast.NewSlideNode()
	slidenode.SlideNode = p.argNodeRef(0)

	inRailNodeList := true
	for i := 1; i < p.numArgs; i++ {
		arg := p.argStr(i)
		switch arg[0] & 0xdf { // uppercased ASCII letter
		case 'S':
			slidenode.SpringRate = p.floatValue(arg[1:])
			inRailNodeList = false
		case 'B':
			slidenode.BreakForce = p.floatValue(arg[1:])
			slidenode.HasConstraintBreakForce = true
			inRailNodeList = false
		case 'T':
			slidenode.Tolerance = p.floatValue(arg[1:])
			inRailNodeList = false
		case 'R':
			slidenode.AttachmentRate = p.floatValue(arg[1:])
			inRailNodeList = false
		case 'G':
			slidenode.RailGroupID = p.intValue(arg[1:])
			slidenode.HasRailGroupID = true
			inRailNodeList = false
		case 'D':
			slidenode.MaxAttachDistance = p.floatValue(arg[1:])
			inRailNodeList = false
		case 'C':
			if len(arg) > 1 {
				switch arg[1] {
				case 'a':
					slidenode.ConstraintFlags |= ast.SlideNodeConstraintAttachAll
				case 'f':
					slidenode.ConstraintFlags |= ast.SlideNodeConstraintAttachForeign
				case 's':
					slidenode.ConstraintFlags |= ast.SlideNodeConstraintAttachSelf
				case 'n':
					slidenode.ConstraintFlags |= ast.SlideNodeConstraintAttachNone
				default:
					p.message(SeverityWarning,
						fmt.Sprintf("Invalid slidenode constraint '%c', ignoring", arg[1]))
				}
			}
			inRailNodeList = false
		default:
			if inRailNodeList {
				slidenode.RailNodes = append(slidenode.RailNodes, p.argNodeRef(i))
			} else {
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid slidenode argument '%s', ignoring", arg))
			}
		}
	}
	p.module.SlideNodes = append(p.module.SlideNodes, slidenode)
}

func (p *Parser) parseRailGroups() {
	// Comma-separated: id, then the rail node list.
	args := strings.Split(p.currentLine, ",")
	if len(args) < 3 {
		p.message(SeverityError, "Not enough parameters in railgroup line, skipping")
		return
	}
	railgroup := ast.RailGroup{ID: p.intValue(strings.TrimSpace(args[0]))}
	for _, arg := range args[1:] {
		railgroup.Nodes = append(railgroup.Nodes, p.parseNodeRefString(strings.TrimSpace(arg)))
	}
	p.module.RailGroups = append(p.module.RailGroups, railgroup)
}

var animatorFlags = map[string]ast.AnimatorOption{
	"vis":           ast.AnimatorOptVisible,
	"inv":           ast.AnimatorOptInvisible,
	"airspeed":      ast.AnimatorOptAirspeed,
	"vvi":           ast.AnimatorOptVerticalVelocity,
	"altimeter100k": ast.AnimatorOptAltimeter100k,
	"altimeter10k":  ast.AnimatorOptAltimeter10k,
	"altimeter1k":   ast.AnimatorOptAltimeter1k,
	"aoa":           ast.AnimatorOptAngleOfAttack,
	"flap":          ast.AnimatorOptFlap,
	"airbrake":      ast.AnimatorOptAirBrake,
	"roll":          ast.AnimatorOptRoll,
	"pitch":         ast.AnimatorOptPitch,
	"brakes":        ast.AnimatorOptBrakes,
	"accel":         ast.AnimatorOptAccel,
	"clutch":        ast.AnimatorOptClutch,
	"speedo":        ast.AnimatorOptSpeedo,
	"tacho":         ast.AnimatorOptTacho,
	"turbo":         ast.AnimatorOptTurbo,
	"parking":       ast.AnimatorOptParking,
	"shifterman1":   ast.AnimatorOptShiftLeftRight,
	"shifterman2":   ast.AnimatorOptShiftBackForth,
	"sequential":    ast.AnimatorOptSequentialShift,
	"gearselect":    ast.AnimatorOptGearSelect,
	"torque":        ast.AnimatorOptTorque,
	"difflock":      ast.AnimatorOptDifflock,
	"rudderboat":    ast.AnimatorOptBoatRudder,
	"throttleboat":  ast.AnimatorOptBoatThrottle,
}

var animatorAeroFlags = map[string]ast.AeroAnimatorOption{
	"throttle":   ast.AeroAnimatorOptThrottle,
	"rpm":        ast.AeroAnimatorOptRPM,
	"aerotorq":   ast.AeroAnimatorOptTorque,
	"aeropit":    ast.AeroAnimatorOptPitch,
	"aerostatus": ast.AeroAnimatorOptStatus,
}

func (p *Parser) parseAnimator() {
	// Comma-separated: node, node, lengthening factor, '|'-joined options.
	args := strings.Split(p.currentLine, ",")
	if len(args) < 4 {
		p.message(SeverityError, "Not enough parameters in animator line, skipping")
		return
	}
	animator := ast.Animator{
		InertiaDefaults: p.inertiaDefaults,
		BeamDefaults:    p.beamDefaults,
		DetacherGroup:   p.detacherGroup,
	}
	animator.Nodes[0] = p.parseNodeRefString(strings.TrimSpace(args[0]))
	animator.Nodes[1] = p.parseNodeRefString(strings.TrimSpace(args[1]))
	animator.LengtheningFactor = p.floatValue(strings.TrimSpace(args[2]))

	for _, option := range strings.Split(args[3], "|") {
		option = strings.ToLower(strings.TrimSpace(option))
		if flag, ok := animatorFlags[option]; ok {
			animator.Flags |= flag
			continue
		}
		if key, value, ok := strings.Cut(option, ":"); ok {
			switch strings.TrimSpace(key) {
			case "shortlimit":
				animator.Flags |= ast.AnimatorOptShortLimit
				animator.ShortLimit = p.floatValue(strings.TrimSpace(value))
				continue
			case "longlimit":
				animator.Flags |= ast.AnimatorOptLongLimit
				animator.LongLimit = p.floatValue(strings.TrimSpace(value))
				continue
			}
		}
		if m := animatorNumberedSource.FindStringSubmatch(option); m != nil {
			engine := p.intValue(m[2])
			if engine < 1 {
				p.message(SeverityWarning,
					fmt.Sprintf("Invalid engine number in animator option '%s', ignoring", option))
				continue
			}
			animator.AeroAnimator.Flags |= animatorAeroFlags[m[1]]
			animator.AeroAnimator.EngineIndex = uint(engine - 1)
			continue
		}
		p.message(SeverityWarning,
			fmt.Sprintf("Invalid animator option '%s', ignoring", option))
	}
	p.module.Animators = append(p.module.Animators, animator)
}

func (p *Parser) parseCollisionBox() {
	// Comma-separated node list.
	box := ast.CollisionBox{}
	for _, arg := range strings.Split(p.currentLine, ",") {
		box.Nodes = append(box.Nodes, p.parseNodeRefString(strings.TrimSpace(arg)))
	}
	p.module.CollisionBoxes = append(p.module.CollisionBoxes, box)
}

func (p *Parser) parseMinimass() {
	if !p.checkNumArguments(1) {
		return
	}
	mm := ast.Minimass{GlobalMinKg: p.argFloat(0)}
	if p.numArgs > 1 {
		mm.Option = p.argMinimassOption(1)
	}
	p.module.Minimass = append(p.module.Minimass, mm)
	// The block takes a single line.
	p.block = KeywordInvalid
}

func (p *Parser) parseGlobals() {
	if !p.checkNumArguments(2) {
		return
	}
	globals := ast.Globals{
		DryMass:   p.argFloat(0),
		CargoMass: p.argFloat(1),
	}
	if p.numArgs > 2 {
		globals.MaterialName = p.argStr(2)
	}
	p.module.Globals = append(p.module.Globals, globals)
}

func (p *Parser) parseGuiSettings() {
	if !p.checkNumArguments(2) {
		return
	}
	p.module.GuiSettings = append(p.module.GuiSettings, ast.GuiSettings{
		Key:   p.argStr(0),
		Value: p.argStr(1),
	})
}

func (p *Parser) parseHelp() {
	p.module.Help = append(p.module.Help, ast.Help{Material: p.currentLine})
}
