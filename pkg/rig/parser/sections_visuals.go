// File: sections_visuals.go
// Title: Visual and Effect Section Extractors
// Description: Props, flexbodies, submesh geometry, flares, managed
//              materials, cameras, exhausts, particles and sound sources.

package parser

import (
	"fmt"
	"strings"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

func (p *Parser) parseCameras() {
	if !p.checkNumArguments(3) {
		return
	}
	camera := ast.Camera{
		CenterNode: p.argNodeRef(0),
		BackNode:   p.argNodeRef(1),
		LeftNode:   p.argNodeRef(2),
	}
	p.module.Cameras = append(p.module.Cameras, camera)
}

func (p *Parser) parseCinecam() {
	if !p.checkNumArguments(11) {
		return
	}
	cinecam := ast.NewCinecam()
	cinecam.BeamDefaults = p.beamDefaults
	cinecam.NodeDefaults = p.nodeDefaults
	cinecam.Position = ast.Vector3{
		X: p.argFloat(0),
		Y: p.argFloat(1),
		Z: p.argFloat(2),
	}
	for i := 0; i < 8; i++ {
		cinecam.Nodes[i] = p.argNodeRef(3 + i)
	}
	if p.numArgs > 11 {
		cinecam.Spring = p.argFloat(11)
	}
	if p.numArgs > 12 {
		cinecam.Damping = p.argFloat(12)
	}
	if p.numArgs > 13 {
		// Garbage (such as an illegal trailing pseudo-comment) parses as 0
		// and must not zero out the mass.
		if value := p.argFloat(13); value > 0 {
			cinecam.NodeMass = value
		}
	}

	p.seq.reserveGeneratedNodes(KeywordCinecam, len(p.module.Cinecams), 0)
	p.module.Cinecams = append(p.module.Cinecams, cinecam)
}

func (p *Parser) parseCameraRails() {
	p.currentCameraRail.Nodes = append(p.currentCameraRail.Nodes, p.argNodeRef(0))
}

func (p *Parser) parseVideoCamera() {
	if !p.checkNumArguments(19) {
		return
	}
	videocamera := ast.VideoCamera{
		ReferenceNode:      p.argNodeRef(0),
		LeftNode:           p.argNodeRef(1),
		BottomNode:         p.argNodeRef(2),
		AltReferenceNode:   p.argNullableNode(3),
		AltOrientationNode: p.argNullableNode(4),
		Offset: ast.Vector3{
			X: p.argFloat(5),
			Y: p.argFloat(6),
			Z: p.argFloat(7),
		},
		Rotation: ast.Vector3{
			X: p.argFloat(8),
			Y: p.argFloat(9),
			Z: p.argFloat(10),
		},
		FieldOfView:     p.argFloat(11),
		TextureWidth:    p.argInt(12),
		TextureHeight:   p.argInt(13),
		MinClipDistance: p.argFloat(14),
		MaxClipDistance: p.argFloat(15),
		CameraRole:      p.argInt(16),
		CameraMode:      p.argInt(17),
		MaterialName:    p.argStr(18),
	}
	if p.numArgs > 19 {
		videocamera.CameraName = p.argStr(19)
	}
	p.module.VideoCameras = append(p.module.VideoCameras, videocamera)
}

func (p *Parser) parseProps() {
	if !p.checkNumArguments(10) {
		return
	}
	var prop ast.Prop
	prop.ReferenceNode = p.argNodeRef(0)
	prop.XAxisNode = p.argNodeRef(1)
	prop.YAxisNode = p.argNodeRef(2)
	prop.Offset = ast.Vector3{X: p.argFloat(3), Y: p.argFloat(4), Z: p.argFloat(5)}
	prop.Rotation = ast.Vector3{X: p.argFloat(6), Y: p.argFloat(7), Z: p.argFloat(8)}
	prop.MeshName = p.argStr(9)

	isDash := false
	switch {
	case strings.Contains(prop.MeshName, "leftmirror"):
		prop.Special = ast.SpecialPropMirrorLeft
	case strings.Contains(prop.MeshName, "rightmirror"):
		prop.Special = ast.SpecialPropMirrorRight
	case strings.Contains(prop.MeshName, "dashboard-rh"):
		prop.Special = ast.SpecialPropDashboardRight
		isDash = true
	case strings.Contains(prop.MeshName, "dashboard"):
		prop.Special = ast.SpecialPropDashboardLeft
		isDash = true
	case strings.HasPrefix(prop.MeshName, "spinprop"):
		prop.Special = ast.SpecialPropAeroPropSpin
	case strings.HasPrefix(prop.MeshName, "pale"):
		prop.Special = ast.SpecialPropAeroPropBlade
	case strings.HasPrefix(prop.MeshName, "seat"):
		// "seat2" is shadowed on purpose, legacy files rely on it.
		prop.Special = ast.SpecialPropDriverSeat
	case strings.HasPrefix(prop.MeshName, "seat2"):
		prop.Special = ast.SpecialPropDriverSeat2
	case strings.HasPrefix(prop.MeshName, "beacon"):
		prop.Special = ast.SpecialPropBeacon
	case strings.HasPrefix(prop.MeshName, "redbeacon"):
		prop.Special = ast.SpecialPropRedBeacon
	case strings.HasPrefix(prop.MeshName, "lightb"):
		prop.Special = ast.SpecialPropLightbar
	}

	if prop.Special == ast.SpecialPropBeacon && p.numArgs >= 14 {
		prop.Beacon.FlareMaterialName = strings.TrimSpace(p.argStr(10))
		prop.Beacon.Color = ast.RGB{
			R: p.argFloat(11),
			G: p.argFloat(12),
			B: p.argFloat(13),
		}
	} else if isDash {
		if p.numArgs > 10 {
			prop.Dashboard.MeshName = p.argStr(10)
		}
		if p.numArgs > 13 {
			prop.Dashboard.Offset = ast.Vector3{
				X: p.argFloat(11),
				Y: p.argFloat(12),
				Z: p.argFloat(13),
			}
			prop.Dashboard.HasOffset = true
		}
		if p.numArgs > 14 {
			prop.Dashboard.RotationAngle = p.argFloat(14)
		}
	}

	p.module.Props = append(p.module.Props, prop)
}

func (p *Parser) parseFlexbody() {
	if !p.checkNumArguments(10) {
		return
	}
	flexbody := ast.Flexbody{
		ReferenceNode: p.argNodeRef(0),
		XAxisNode:     p.argNodeRef(1),
		YAxisNode:     p.argNodeRef(2),
		Offset:        ast.Vector3{X: p.argFloat(3), Y: p.argFloat(4), Z: p.argFloat(5)},
		Rotation:      ast.Vector3{X: p.argFloat(6), Y: p.argFloat(7), Z: p.argFloat(8)},
		MeshName:      p.argStr(9),
	}
	p.module.Flexbodies = append(p.module.Flexbodies, flexbody)
}

func (p *Parser) parseTexcoords() {
	if !p.checkNumArguments(3) {
		return
	}
	texcoord := ast.Texcoord{
		Node: p.argNodeRef(0),
		U:    p.argFloat(1),
		V:    p.argFloat(2),
	}
	p.currentSubmesh.Texcoords = append(p.currentSubmesh.Texcoords, texcoord)
}

func (p *Parser) parseCab() {
	if !p.checkNumArguments(3) {
		return
	}
	var cab ast.Cab
	cab.Nodes[0] = p.argNodeRef(0)
	cab.Nodes[1] = p.argNodeRef(1)
	cab.Nodes[2] = p.argNodeRef(2)
	if p.numArgs > 3 {
		for _, c := range p.argStr(3) {
			switch c {
			case 'c':
				cab.Options |= ast.CabOptContact
			case 'b':
				cab.Options |= ast.CabOptBuoyant
			case 'D':
				cab.Options |= ast.CabOptContact | ast.CabOptBuoyant
			case 'p':
				cab.Options |= ast.CabOptTenXTougher
			case 'u':
				cab.Options |= ast.CabOptInvulnerable
			case 'F':
				cab.Options |= ast.CabOptTenXTougher | ast.CabOptBuoyant
			case 'S':
				cab.Options |= ast.CabOptInvulnerable | ast.CabOptBuoyant
			case 'n':
				// Placeholder, does nothing.
			default:
				p.message(SeverityWarning,
					fmt.Sprintf("ignoring invalid option '%c'", c))
			}
		}
	}
	p.currentSubmesh.CabTriangles = append(p.currentSubmesh.CabTriangles, cab)
}

// parseFlaresUnified handles both flares and flares2; the second generation
// adds a Z offset before the type character.
func (p *Parser) parseFlaresUnified() {
	isFlares2 := p.block == KeywordFlares2
	minArgs := 5
	if isFlares2 {
		minArgs = 6
	}
	if !p.checkNumArguments(minArgs) {
		return
	}
	flare := ast.NewFlare()
	pos := 0
	flare.ReferenceNode = p.argNodeRef(pos)
	pos++
	flare.NodeAxisX = p.argNodeRef(pos)
	pos++
	flare.NodeAxisY = p.argNodeRef(pos)
	pos++
	flare.Offset.X = p.argFloat(pos)
	pos++
	flare.Offset.Y = p.argFloat(pos)
	pos++
	if isFlares2 {
		flare.Offset.Z = p.argFloat(pos)
		pos++
	}

	if p.numArgs > pos {
		flare.Type = p.argFlareType(pos)
		pos++
	}
	if p.numArgs > pos {
		switch flare.Type {
		case ast.FlareTypeUserDefined:
			flare.ControlNumber = p.argInt(pos)
		case ast.FlareTypeDashboard:
			flare.DashboardLink = p.argStr(pos)
		}
		pos++
	}
	if p.numArgs > pos {
		flare.BlinkDelayMilis = p.argInt(pos)
		pos++
	}
	if p.numArgs > pos {
		flare.Size = p.argFloat(pos)
		pos++
	}
	if p.numArgs > pos {
		flare.MaterialName = p.argStr(pos)
	}
	p.module.Flares = append(p.module.Flares, flare)
}

func (p *Parser) parseMaterialFlareBindings() {
	if !p.checkNumArguments(2) {
		return
	}
	binding := ast.MaterialFlareBinding{
		FlareNumber:  p.argInt(0),
		MaterialName: p.argStr(1),
	}
	p.module.MaterialFlareBindings = append(p.module.MaterialFlareBindings, binding)
}

func (p *Parser) parseManagedMaterials() {
	if !p.checkNumArguments(2) {
		return
	}
	var mat ast.ManagedMaterial
	mat.Options = p.managedMatOptions
	mat.Name = p.argStr(0)

	switch typeStr := p.argStr(1); typeStr {
	case "mesh_standard", "mesh_transparent":
		if !p.checkNumArguments(3) {
			return
		}
		if typeStr == "mesh_standard" {
			mat.Type = ast.ManagedMaterialMeshStandard
		} else {
			mat.Type = ast.ManagedMaterialMeshTransparent
		}
		mat.DiffuseMap = p.argStr(2)
		if p.numArgs > 3 {
			mat.SpecularMap = p.argManagedTex(3)
		}
	case "flexmesh_standard", "flexmesh_transparent":
		if !p.checkNumArguments(3) {
			return
		}
		if typeStr == "flexmesh_standard" {
			mat.Type = ast.ManagedMaterialFlexmeshStandard
		} else {
			mat.Type = ast.ManagedMaterialFlexmeshTransparent
		}
		mat.DiffuseMap = p.argStr(2)
		if p.numArgs > 3 {
			mat.DamagedDiffuseMap = p.argManagedTex(3)
		}
		if p.numArgs > 4 {
			mat.SpecularMap = p.argManagedTex(4)
		}
	default:
		p.message(SeverityWarning, typeStr+" is an unkown effect")
		return
	}

	if p.resources != nil {
		if !p.resources.Exists(mat.DiffuseMap) {
			p.message(SeverityWarning, "Missing texture file: "+mat.DiffuseMap)
			return
		}
		if mat.HasDamagedDiffuseMap() && !p.resources.Exists(mat.DamagedDiffuseMap) {
			p.message(SeverityWarning, "Missing texture file: "+mat.DamagedDiffuseMap)
			mat.DamagedDiffuseMap = ""
		}
		if mat.HasSpecularMap() && !p.resources.Exists(mat.SpecularMap) {
			p.message(SeverityWarning, "Missing texture file: "+mat.SpecularMap)
			mat.SpecularMap = ""
		}
	}

	p.module.ManagedMaterials = append(p.module.ManagedMaterials, mat)
}

func (p *Parser) parseExhaust() {
	if !p.checkNumArguments(2) {
		return
	}
	exhaust := ast.Exhaust{
		ReferenceNode: p.argNodeRef(0),
		DirectionNode: p.argNodeRef(1),
	}
	// Param 2 is unused.
	if p.numArgs > 3 {
		exhaust.ParticleName = p.argStr(3)
	}
	p.module.Exhausts = append(p.module.Exhausts, exhaust)
}

func (p *Parser) parseParticles() {
	if !p.checkNumArguments(3) {
		return
	}
	particle := ast.Particle{
		EmitterNode:        p.argNodeRef(0),
		ReferenceNode:      p.argNodeRef(1),
		ParticleSystemName: p.argStr(2),
	}
	p.module.Particles = append(p.module.Particles, particle)
}

func (p *Parser) parseSoundsources() {
	if !p.checkNumArguments(2) {
		return
	}
	soundsource := ast.SoundSource{
		Node:            p.argNodeRef(0),
		SoundScriptName: p.argStr(1),
	}
	p.module.SoundSources = append(p.module.SoundSources, soundsource)
}

func (p *Parser) parseSoundsources2() {
	if !p.checkNumArguments(3) {
		return
	}
	soundsource2 := ast.SoundSource2{
		Node:            p.argNodeRef(0),
		SoundScriptName: p.argStr(2),
	}
	mode := p.argInt(1)
	if mode < -2 {
		p.message(SeverityError,
			fmt.Sprintf("invalid mode %d, falling back to default -2", mode))
		mode = -2
	}
	soundsource2.Mode = ast.SoundSource2Mode(mode)
	p.module.SoundSources2 = append(p.module.SoundSources2, soundsource2)
}
