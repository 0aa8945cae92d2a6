// File: sections_aero.go
// Title: Aerial and Marine Section Extractors
// Description: Wings, airbrakes, fuselage drag, jet and propeller engines
//              and marine screwprops.

package parser

import (
	"github.com/rigworks/truckdef/pkg/rig/ast"
)

func (p *Parser) parseWing() {
	if !p.checkNumArguments(16) {
		return
	}
	wing := ast.NewWing()
	for i := 0; i < 8; i++ {
		wing.Nodes[i] = p.argNodeRef(i)
	}
	for i := 0; i < 8; i++ {
		wing.TexCoords[i] = p.argFloat(8 + i)
	}
	if p.numArgs > 16 {
		wing.Control = p.argWingSurface(16)
	}
	if p.numArgs > 17 {
		wing.ChordPoint = p.argFloat(17)
	}
	if p.numArgs > 18 {
		wing.MinDeflection = p.argFloat(18)
	}
	if p.numArgs > 19 {
		wing.MaxDeflection = p.argFloat(19)
	}
	if p.numArgs > 20 {
		wing.Airfoil = p.argStr(20)
	}
	if p.numArgs > 21 {
		wing.EfficacyCoef = p.argFloat(21)
	}
	p.module.Wings = append(p.module.Wings, wing)
}

func (p *Parser) parseAirbrakes() {
	if !p.checkNumArguments(14) {
		return
	}
	airbrake := ast.Airbrake{
		ReferenceNode:  p.argNodeRef(0),
		XAxisNode:      p.argNodeRef(1),
		YAxisNode:      p.argNodeRef(2),
		AdditionalNode: p.argNodeRef(3),
		Offset: ast.Vector3{
			X: p.argFloat(4),
			Y: p.argFloat(5),
			Z: p.argFloat(6),
		},
		Width:               p.argFloat(7),
		Height:              p.argFloat(8),
		MaxInclinationAngle: p.argFloat(9),
		TexcoordX1:          p.argFloat(10),
		TexcoordY1:          p.argFloat(11),
		TexcoordX2:          p.argFloat(12),
		TexcoordY2:          p.argFloat(13),
	}
	p.module.Airbrakes = append(p.module.Airbrakes, airbrake)
}

func (p *Parser) parseFusedrag() {
	if !p.checkNumArguments(3) {
		return
	}
	fusedrag := ast.NewFusedrag()
	fusedrag.FrontNode = p.argNodeRef(0)
	fusedrag.RearNode = p.argNodeRef(1)

	if p.argStr(2) == "autocalc" {
		fusedrag.Autocalc = true
		if p.numArgs > 3 {
			fusedrag.AreaCoefficient = p.argFloat(3)
		}
		if p.numArgs > 4 {
			fusedrag.Airfoil = p.argStr(4)
		}
	} else {
		fusedrag.ApproximateWidth = p.argFloat(2)
		if p.numArgs > 3 {
			fusedrag.Airfoil = p.argStr(3)
		}
	}
	p.module.Fusedrag = append(p.module.Fusedrag, fusedrag)
}

func (p *Parser) parseTurbojets() {
	if !p.checkNumArguments(9) {
		return
	}
	turbojet := ast.Turbojet{
		FrontNode:     p.argNodeRef(0),
		BackNode:      p.argNodeRef(1),
		SideNode:      p.argNodeRef(2),
		IsReversable:  p.argInt(3),
		DryThrust:     p.argFloat(4),
		WetThrust:     p.argFloat(5),
		FrontDiameter: p.argFloat(6),
		BackDiameter:  p.argFloat(7),
		NozzleLength:  p.argFloat(8),
	}
	p.module.Turbojets = append(p.module.Turbojets, turbojet)
}

// parseTurbopropsUnified handles both turboprops and turboprops2; the second
// generation inserts an optional couple node before the power argument.
func (p *Parser) parseTurbopropsUnified() {
	isTurboprop2 := p.block == KeywordTurboprops2
	minArgs := 8
	if isTurboprop2 {
		minArgs = 9
	}
	if !p.checkNumArguments(minArgs) {
		return
	}
	var turboprop ast.Turboprop
	turboprop.ReferenceNode = p.argNodeRef(0)
	turboprop.AxisNode = p.argNodeRef(1)
	turboprop.BladeTipNodes[0] = p.argNodeRef(2)
	turboprop.BladeTipNodes[1] = p.argNodeRef(3)
	turboprop.BladeTipNodes[2] = p.argNullableNode(4)
	turboprop.BladeTipNodes[3] = p.argNullableNode(5)

	offset := 0
	if isTurboprop2 {
		turboprop.CoupleNode = p.argNullableNode(6)
		offset = 1
	}
	turboprop.TurbinePowerKW = p.argFloat(6 + offset)
	turboprop.Airfoil = p.argStr(7 + offset)
	p.module.Turboprops = append(p.module.Turboprops, turboprop)
}

func (p *Parser) parsePistonprops() {
	if !p.checkNumArguments(10) {
		return
	}
	pistonprop := ast.Pistonprop{
		ReferenceNode:  p.argNodeRef(0),
		AxisNode:       p.argNodeRef(1),
		CoupleNode:     p.argNullableNode(6),
		TurbinePowerKW: p.argFloat(7),
		Pitch:          p.argFloat(8),
		Airfoil:        p.argStr(9),
	}
	pistonprop.BladeTipNodes[0] = p.argNodeRef(2)
	pistonprop.BladeTipNodes[1] = p.argNodeRef(3)
	pistonprop.BladeTipNodes[2] = p.argNullableNode(4)
	pistonprop.BladeTipNodes[3] = p.argNullableNode(5)
	p.module.Pistonprops = append(p.module.Pistonprops, pistonprop)
}

func (p *Parser) parseScrewprops() {
	if !p.checkNumArguments(4) {
		return
	}
	screwprop := ast.Screwprop{
		PropNode: p.argNodeRef(0),
		BackNode: p.argNodeRef(1),
		TopNode:  p.argNodeRef(2),
		Power:    p.argFloat(3),
	}
	p.module.Screwprops = append(p.module.Screwprops, screwprop)
}
