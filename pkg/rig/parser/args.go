// File: args.go
// Title: Typed Argument Accessors
// Description: Readers for the tokenized arguments of the current line. All
//              of them are forgiving: numeric readers accept the longest
//              valid prefix and fall back to zero with a diagnostic, enum
//              readers fall back to a safe value with a warning. A malformed
//              argument therefore never aborts the line, let alone the parse.

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

// checkNumArguments verifies the line has at least min arguments and reports
// an error otherwise. Extractors bail out on false, so short lines produce
// no element at all.
func (p *Parser) checkNumArguments(min int) bool {
	if p.numArgs < min {
		p.message(SeverityError,
			fmt.Sprintf("Not enough arguments (got %d, %d needed), skipping line", p.numArgs, min))
		return false
	}
	return true
}

// argStr returns the raw argument text.
func (p *Parser) argStr(index int) string {
	span := p.args[index]
	return p.currentLine[span.start : span.start+span.length]
}

// argChar returns the first byte of the argument.
func (p *Parser) argChar(index int) byte {
	return p.argStr(index)[0]
}

// intPrefix returns the value and length of the longest valid integer prefix.
func intPrefix(s string) (int64, int) {
	value := int64(0)
	best := 0
	for i := 1; i <= len(s); i++ {
		v, err := strconv.ParseInt(s[:i], 10, 64)
		if err == nil {
			value = v
			best = i
		}
	}
	return value, best
}

// floatPrefix returns the value and length of the longest valid float prefix.
func floatPrefix(s string) (float64, int) {
	value := 0.0
	best := 0
	for i := 1; i <= len(s); i++ {
		v, err := strconv.ParseFloat(s[:i], 64)
		if err == nil {
			value = v
			best = i
		}
	}
	return value, best
}

// argInt parses an integer argument; garbage yields 0 with a diagnostic,
// trailing text after a valid prefix yields the prefix with a warning.
func (p *Parser) argInt(index int) int {
	s := p.argStr(index)
	v, n := intPrefix(s)
	if n == 0 {
		p.message(SeverityError,
			fmt.Sprintf("Cannot parse argument #%d ('%s') as integer, using 0", index+1, s))
		return 0
	}
	if n < len(s) {
		p.message(SeverityWarning,
			fmt.Sprintf("Integer argument #%d ('%s') has invalid trailing text", index+1, s))
	}
	return int(v)
}

// argFloat parses a float argument with the same tolerance as argInt.
func (p *Parser) argFloat(index int) float64 {
	s := p.argStr(index)
	v, n := floatPrefix(s)
	if n == 0 {
		p.message(SeverityWarning,
			fmt.Sprintf("Cannot parse argument #%d ('%s') as number, using 0", index+1, s))
		return 0
	}
	if n < len(s) {
		p.message(SeverityWarning,
			fmt.Sprintf("Number argument #%d ('%s') has invalid trailing text", index+1, s))
	}
	return v
}

// argBool accepts "true", "yes" and "1"; anything else is false.
func (p *Parser) argBool(index int) bool {
	switch strings.ToLower(p.argStr(index)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// argNodeRef reads a node reference in the addressing mode(s) currently in
// effect.
func (p *Parser) argNodeRef(index int) ast.NodeRef {
	return p.parseNodeRefString(p.argStr(index))
}

// argNullableNode treats the literal value -1 as "no node".
func (p *Parser) argNullableNode(index int) ast.NodeRef {
	if v, n := floatPrefix(p.argStr(index)); n > 0 && v == -1 {
		return ast.NodeRef{}
	}
	return p.argNodeRef(index)
}

// argRigidityNode treats the literal 9999 as "no rigidity node".
func (p *Parser) argRigidityNode(index int) ast.NodeRef {
	if p.argStr(index) == "9999" {
		return ast.NodeRef{}
	}
	return p.argNodeRef(index)
}

// argWheelSide reads 'l' or 'r'; anything else parses as left with a warning.
func (p *Parser) argWheelSide(index int) ast.WheelSide {
	c := p.argChar(index)
	if c != 'r' {
		if c != 'l' {
			p.message(SeverityWarning,
				fmt.Sprintf("Bad arg #%d ('%c'), parsing as 'l' for backwards compatibility", index+1, c))
		}
		return ast.WheelSideLeft
	}
	return ast.WheelSideRight
}

// argPropulsion reads a wheel propulsion value in range [0,2].
func (p *Parser) argPropulsion(index int) ast.WheelPropulsion {
	v := p.argInt(index)
	if v < 0 || v > 2 {
		p.message(SeverityError,
			fmt.Sprintf("Invalid wheel propulsion value %d, using 0 (NONE)", v))
		return ast.WheelPropulsionNone
	}
	return ast.WheelPropulsion(v)
}

// argBraking reads a wheel braking value in range [0,4].
func (p *Parser) argBraking(index int) ast.WheelBraking {
	v := p.argInt(index)
	if v < 0 || v > 4 {
		p.message(SeverityError,
			fmt.Sprintf("Invalid wheel braking value %d, using 0 (NONE)", v))
		return ast.WheelBrakingNone
	}
	return ast.WheelBraking(v)
}

// argFlareType reads a flare behavior character; unknown characters fall
// back to headlight.
func (p *Parser) argFlareType(index int) ast.FlareType {
	c := p.argChar(index)
	switch ast.FlareType(c) {
	case ast.FlareTypeHeadlight, ast.FlareTypeHighBeam, ast.FlareTypeFogLight,
		ast.FlareTypeTailLight, ast.FlareTypeBrakeLight, ast.FlareTypeReverseLight,
		ast.FlareTypeSideLight, ast.FlareTypeLeftBlinker, ast.FlareTypeRightBlinker,
		ast.FlareTypeUserDefined, ast.FlareTypeDashboard, ast.FlareTypeSignalStalk:
		return ast.FlareType(c)
	}
	p.message(SeverityWarning,
		fmt.Sprintf("Invalid flare type '%c', falling back to 'f' (headlight)", c))
	return ast.FlareTypeHeadlight
}

// argManagedTex maps the "-" placeholder to an empty texture name.
func (p *Parser) argManagedTex(index int) string {
	s := p.argStr(index)
	if s == "-" {
		return ""
	}
	return s
}

// argMinimassOption reads the minimass option character.
func (p *Parser) argMinimassOption(index int) ast.MinimassOption {
	switch p.argChar(index) {
	case 'l':
		return ast.MinimassOptionSkipLoaded
	case 'n':
		return ast.MinimassOptionNone
	}
	p.message(SeverityWarning,
		fmt.Sprintf("Unknown minimass option '%c', falling back to 'n'", p.argChar(index)))
	return ast.MinimassOptionNone
}

// argWingSurface reads a wing control surface character; unknown characters
// fall back to none.
func (p *Parser) argWingSurface(index int) ast.WingControlSurface {
	c := ast.WingControlSurface(p.argChar(index))
	switch c {
	case ast.WingControlNone, ast.WingControlRightAileron, ast.WingControlRightAirBrake,
		ast.WingControlFlap, ast.WingControlElevator, ast.WingControlRudder,
		ast.WingControlRightStabilator, ast.WingControlLeftStabilator,
		ast.WingControlRightElevon, ast.WingControlLeftElevon,
		ast.WingControlRightFlaperon, ast.WingControlLeftFlaperon,
		ast.WingControlRightTaileron, ast.WingControlLeftTaileron,
		ast.WingControlRightRuddervator, ast.WingControlLeftRuddervator:
		return c
	}
	p.message(SeverityWarning,
		fmt.Sprintf("Invalid wing control surface '%c', falling back to 'n'", byte(c)))
	return ast.WingControlNone
}

// parseNodeRefString builds a dual-state node reference from a raw token.
// While legacy numeric addressing may still apply, both interpretations are
// kept; the finalization pass discards the losing one.
func (p *Parser) parseNodeRefString(s string) ast.NodeRef {
	if p.seq.enabled {
		num, n := intPrefix(s)
		if n == 0 {
			num = 0
		}
		if num < 0 {
			p.message(SeverityWarning,
				fmt.Sprintf("Invalid node number %d, parsing as %d for backwards compatibility", num, -num))
			num = -num
		}
		flags := ast.RefImportValid | ast.RefRegularValid | ast.RefRegularNamed
		if p.anyNamedNode {
			flags |= ast.RefImportMustCheckNamedFirst
		}
		return ast.NewNodeRef(s, uint(num), flags, p.lineNumber)
	}
	return ast.NewNodeRef(s, 0, ast.RefRegularValid|ast.RefRegularNamed, p.lineNumber)
}
