// File: sections_wheels.go
// Title: Wheel and Drivetrain Section Extractors
// Description: The four wheel section generations plus wheeldetachers, axles,
//              interaxles and the transfer case. Wheel extractors register
//              their generated-node reservation with the sequential importer.

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

func (p *Parser) parseWheel() {
	if !p.checkNumArguments(14) {
		return
	}
	wheel := ast.Wheel{
		NodeDefaults: p.nodeDefaults,
		BeamDefaults: p.beamDefaults,
	}
	wheel.Radius = p.argFloat(0)
	wheel.Width = p.argFloat(1)
	wheel.RayCount = p.argInt(2)
	wheel.Nodes[0] = p.argNodeRef(3)
	wheel.Nodes[1] = p.argNodeRef(4)
	wheel.RigidityNode = p.argRigidityNode(5)
	wheel.Braking = p.argBraking(6)
	wheel.Propulsion = p.argPropulsion(7)
	wheel.ReferenceArmNode = p.argNodeRef(8)
	wheel.Mass = p.argFloat(9)
	wheel.Springiness = p.argFloat(10)
	wheel.Damping = p.argFloat(11)
	wheel.FaceMaterialName = p.argStr(12)
	wheel.BandMaterialName = p.argStr(13)

	p.seq.reserveGeneratedNodes(KeywordWheels, len(p.module.Wheels), wheel.RayCount)
	p.module.Wheels = append(p.module.Wheels, wheel)
}

func (p *Parser) parseWheel2() {
	if !p.checkNumArguments(17) {
		return
	}
	wheel := ast.Wheel2{
		NodeDefaults: p.nodeDefaults,
		BeamDefaults: p.beamDefaults,
	}
	wheel.RimRadius = p.argFloat(0)
	wheel.TyreRadius = p.argFloat(1)
	wheel.Width = p.argFloat(2)
	wheel.RayCount = p.argInt(3)
	wheel.Nodes[0] = p.argNodeRef(4)
	wheel.Nodes[1] = p.argNodeRef(5)
	wheel.RigidityNode = p.argRigidityNode(6)
	wheel.Braking = p.argBraking(7)
	wheel.Propulsion = p.argPropulsion(8)
	wheel.ReferenceArmNode = p.argNodeRef(9)
	wheel.Mass = p.argFloat(10)
	wheel.RimSpringiness = p.argFloat(11)
	wheel.RimDamping = p.argFloat(12)
	wheel.TyreSpringiness = p.argFloat(13)
	wheel.TyreDamping = p.argFloat(14)
	wheel.FaceMaterialName = p.argStr(15)
	wheel.BandMaterialName = p.argStr(16)

	p.seq.reserveGeneratedNodes(KeywordWheels2, len(p.module.Wheels2), wheel.RayCount)
	p.module.Wheels2 = append(p.module.Wheels2, wheel)
}

func (p *Parser) parseMeshWheelUnified() {
	if !p.checkNumArguments(16) {
		return
	}
	wheel := ast.MeshWheel{
		IsMeshWheel2: p.block == KeywordMeshwheels2,
		NodeDefaults: p.nodeDefaults,
		BeamDefaults: p.beamDefaults,
	}
	wheel.TyreRadius = p.argFloat(0)
	wheel.RimRadius = p.argFloat(1)
	wheel.Width = p.argFloat(2)
	wheel.RayCount = p.argInt(3)
	wheel.Nodes[0] = p.argNodeRef(4)
	wheel.Nodes[1] = p.argNodeRef(5)
	wheel.RigidityNode = p.argRigidityNode(6)
	wheel.Braking = p.argBraking(7)
	wheel.Propulsion = p.argPropulsion(8)
	wheel.ReferenceArmNode = p.argNodeRef(9)
	wheel.Mass = p.argFloat(10)
	wheel.SpringRate = p.argFloat(11)
	wheel.Damping = p.argFloat(12)
	wheel.Side = p.argWheelSide(13)
	wheel.MeshName = p.argStr(14)
	wheel.MaterialName = p.argStr(15)

	p.seq.reserveGeneratedNodes(p.block, len(p.module.MeshWheels), wheel.RayCount)
	p.module.MeshWheels = append(p.module.MeshWheels, wheel)
}

func (p *Parser) parseFlexBodyWheel() {
	if !p.checkNumArguments(16) {
		return
	}
	wheel := ast.FlexBodyWheel{
		NodeDefaults: p.nodeDefaults,
		BeamDefaults: p.beamDefaults,
	}
	wheel.TyreRadius = p.argFloat(0)
	wheel.RimRadius = p.argFloat(1)
	wheel.Width = p.argFloat(2)
	wheel.RayCount = p.argInt(3)
	wheel.Nodes[0] = p.argNodeRef(4)
	wheel.Nodes[1] = p.argNodeRef(5)
	wheel.RigidityNode = p.argRigidityNode(6)
	wheel.Braking = p.argBraking(7)
	wheel.Propulsion = p.argPropulsion(8)
	wheel.ReferenceArmNode = p.argNodeRef(9)
	wheel.Mass = p.argFloat(10)
	wheel.TyreSpringiness = p.argFloat(11)
	wheel.TyreDamping = p.argFloat(12)
	wheel.RimSpringiness = p.argFloat(13)
	wheel.RimDamping = p.argFloat(14)
	wheel.Side = p.argWheelSide(15)
	if p.numArgs > 16 {
		wheel.RimMeshName = p.argStr(16)
	}
	if p.numArgs > 17 {
		wheel.TyreMeshName = p.argStr(17)
	}

	p.seq.reserveGeneratedNodes(KeywordFlexbodywheels, len(p.module.FlexBodyWheels), wheel.RayCount)
	p.module.FlexBodyWheels = append(p.module.FlexBodyWheels, wheel)
}

func (p *Parser) parseWheelDetachers() {
	if !p.checkNumArguments(2) {
		return
	}
	p.module.WheelDetachers = append(p.module.WheelDetachers, ast.WheelDetacher{
		WheelID:       p.argInt(0),
		DetacherGroup: p.argInt(1),
	})
}

var (
	// "w1(node node)" wheel assignment inside axle lines.
	axleWheelProperty = regexp.MustCompile(`^w([12])\(\s*([^ )]+)\s+([^ )]+)\s*\)$`)
	// "d(ols)" differential type list.
	axleDiffProperty = regexp.MustCompile(`^d\((.*)\)$`)
)

// parseDifferentialTypes folds a differential character list, warning on
// unknown characters.
func (p *Parser) parseDifferentialTypes(chars string) []ast.DifferentialType {
	var types []ast.DifferentialType
	for i := 0; i < len(chars); i++ {
		switch c := chars[i]; c {
		case 'o', 'l', 's', 'v':
			types = append(types, ast.DifferentialType(c))
		case ' ':
		default:
			p.message(SeverityWarning,
				fmt.Sprintf("Unknown differential type '%c', ignoring", c))
		}
	}
	return types
}

func (p *Parser) parseAxles() {
	axle := ast.Axle{}
	for _, token := range strings.Split(p.currentLine, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if m := axleWheelProperty.FindStringSubmatch(token); m != nil {
			index := 0
			if m[1] == "2" {
				index = 1
			}
			axle.Wheels[index][0] = p.parseNodeRefString(m[2])
			axle.Wheels[index][1] = p.parseNodeRefString(m[3])
			continue
		}
		if m := axleDiffProperty.FindStringSubmatch(token); m != nil {
			axle.Options = append(axle.Options, p.parseDifferentialTypes(m[1])...)
			continue
		}
		p.message(SeverityError,
			fmt.Sprintf("Invalid axle property '%s', skipping line", token))
		return
	}
	p.module.Axles = append(p.module.Axles, axle)
}

func (p *Parser) parseInterAxles() {
	args := strings.Split(p.currentLine, ",")
	if len(args) < 3 {
		p.message(SeverityError, "Not enough parameters in interaxle line, skipping")
		return
	}
	interaxle := ast.InterAxle{
		A1: p.intValue(strings.TrimSpace(args[0])) - 1,
		A2: p.intValue(strings.TrimSpace(args[1])) - 1,
	}
	diff := strings.TrimSpace(args[2])
	if m := axleDiffProperty.FindStringSubmatch(diff); m != nil {
		interaxle.Options = p.parseDifferentialTypes(m[1])
	} else {
		p.message(SeverityError,
			fmt.Sprintf("Invalid interaxle property '%s', skipping line", diff))
		return
	}
	p.module.InterAxles = append(p.module.InterAxles, interaxle)
}

func (p *Parser) parseTransferCase() {
	if !p.checkNumArguments(2) {
		return
	}
	tc := ast.NewTransferCase()
	tc.A1 = p.argInt(0) - 1
	tc.A2 = p.argInt(1) - 1
	if p.numArgs > 2 {
		tc.Has2WD = p.argInt(2) != 0
	}
	if p.numArgs > 3 {
		tc.Has2WDLo = p.argInt(3) != 0
	}
	if p.numArgs > 4 {
		tc.GearRatios = tc.GearRatios[:0]
		for i := 4; i < p.numArgs; i++ {
			tc.GearRatios = append(tc.GearRatios, p.argFloat(i))
		}
	}
	p.module.TransferCases = append(p.module.TransferCases, tc)
}
