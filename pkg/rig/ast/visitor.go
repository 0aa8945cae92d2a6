// File: visitor.go
// Title: Node Reference Visitor
// Description: ForEachNodeRef walks every node reference stored anywhere in
//              a module or document. The finalization pass uses it to resolve
//              the addressing dialect of every reference in one sweep.

package ast

// ForEachNodeRef calls fn for every node reference in every module.
func (d *Document) ForEachNodeRef(fn func(*NodeRef)) {
	d.ForEachModule(func(m *Module) { m.ForEachNodeRef(fn) })
}

// ForEachNodeRef calls fn for every node reference in the module, including
// those nested in submeshes, flexbody node sets and rail lists.
func (m *Module) ForEachNodeRef(fn func(*NodeRef)) {
	visitPair := func(pair *[2]NodeRef) {
		fn(&pair[0])
		fn(&pair[1])
	}
	visitSlice := func(refs []NodeRef) {
		for i := range refs {
			fn(&refs[i])
		}
	}

	for i := range m.Beams {
		visitPair(&m.Beams[i].Nodes)
	}
	for i := range m.Shocks {
		visitPair(&m.Shocks[i].Nodes)
	}
	for i := range m.Shocks2 {
		visitPair(&m.Shocks2[i].Nodes)
	}
	for i := range m.Shocks3 {
		visitPair(&m.Shocks3[i].Nodes)
	}
	for i := range m.Hydros {
		visitPair(&m.Hydros[i].Nodes)
	}
	for i := range m.Commands2 {
		visitPair(&m.Commands2[i].Nodes)
	}
	for i := range m.Triggers {
		visitPair(&m.Triggers[i].Nodes)
	}
	for i := range m.Ties {
		fn(&m.Ties[i].RootNode)
	}
	for i := range m.Ropes {
		fn(&m.Ropes[i].RootNode)
		fn(&m.Ropes[i].EndNode)
	}
	for i := range m.Ropables {
		fn(&m.Ropables[i].Node)
	}
	visitSlice(m.Fixes)
	visitSlice(m.Contacters)
	for i := range m.Hooks {
		fn(&m.Hooks[i].Node)
	}
	for i := range m.Lockgroups {
		visitSlice(m.Lockgroups[i].Nodes)
	}
	for i := range m.SlideNodes {
		fn(&m.SlideNodes[i].SlideNode)
		visitSlice(m.SlideNodes[i].RailNodes)
	}
	for i := range m.RailGroups {
		visitSlice(m.RailGroups[i].Nodes)
	}
	for i := range m.Animators {
		visitPair(&m.Animators[i].Nodes)
	}
	for i := range m.CollisionBoxes {
		visitSlice(m.CollisionBoxes[i].Nodes)
	}

	for i := range m.Wheels {
		w := &m.Wheels[i]
		visitPair(&w.Nodes)
		fn(&w.RigidityNode)
		fn(&w.ReferenceArmNode)
	}
	for i := range m.Wheels2 {
		w := &m.Wheels2[i]
		visitPair(&w.Nodes)
		fn(&w.RigidityNode)
		fn(&w.ReferenceArmNode)
	}
	for i := range m.MeshWheels {
		w := &m.MeshWheels[i]
		visitPair(&w.Nodes)
		fn(&w.RigidityNode)
		fn(&w.ReferenceArmNode)
	}
	for i := range m.FlexBodyWheels {
		w := &m.FlexBodyWheels[i]
		visitPair(&w.Nodes)
		fn(&w.RigidityNode)
		fn(&w.ReferenceArmNode)
	}
	for i := range m.Axles {
		visitPair(&m.Axles[i].Wheels[0])
		visitPair(&m.Axles[i].Wheels[1])
	}

	for i := range m.Rotators {
		visitRotator(&m.Rotators[i], fn)
	}
	for i := range m.Rotators2 {
		visitRotator(&m.Rotators2[i], fn)
	}

	for i := range m.Wings {
		for j := range m.Wings[i].Nodes {
			fn(&m.Wings[i].Nodes[j])
		}
	}
	for i := range m.Airbrakes {
		a := &m.Airbrakes[i]
		fn(&a.ReferenceNode)
		fn(&a.XAxisNode)
		fn(&a.YAxisNode)
		fn(&a.AdditionalNode)
	}
	for i := range m.Fusedrag {
		fn(&m.Fusedrag[i].FrontNode)
		fn(&m.Fusedrag[i].RearNode)
	}
	for i := range m.Turbojets {
		t := &m.Turbojets[i]
		fn(&t.FrontNode)
		fn(&t.BackNode)
		fn(&t.SideNode)
	}
	for i := range m.Turboprops {
		t := &m.Turboprops[i]
		fn(&t.ReferenceNode)
		fn(&t.AxisNode)
		for j := range t.BladeTipNodes {
			fn(&t.BladeTipNodes[j])
		}
		fn(&t.CoupleNode)
	}
	for i := range m.Pistonprops {
		p := &m.Pistonprops[i]
		fn(&p.ReferenceNode)
		fn(&p.AxisNode)
		for j := range p.BladeTipNodes {
			fn(&p.BladeTipNodes[j])
		}
		fn(&p.CoupleNode)
	}
	for i := range m.Screwprops {
		s := &m.Screwprops[i]
		fn(&s.PropNode)
		fn(&s.BackNode)
		fn(&s.TopNode)
	}

	for i := range m.Props {
		p := &m.Props[i]
		fn(&p.ReferenceNode)
		fn(&p.XAxisNode)
		fn(&p.YAxisNode)
	}
	for i := range m.Flexbodies {
		f := &m.Flexbodies[i]
		fn(&f.ReferenceNode)
		fn(&f.XAxisNode)
		fn(&f.YAxisNode)
		for j := range f.ForSet {
			fn(&f.ForSet[j].From)
			fn(&f.ForSet[j].To)
		}
	}
	for i := range m.Submeshes {
		s := &m.Submeshes[i]
		for j := range s.Texcoords {
			fn(&s.Texcoords[j].Node)
		}
		for j := range s.CabTriangles {
			for k := range s.CabTriangles[j].Nodes {
				fn(&s.CabTriangles[j].Nodes[k])
			}
		}
	}
	for i := range m.Flares {
		f := &m.Flares[i]
		fn(&f.ReferenceNode)
		fn(&f.NodeAxisX)
		fn(&f.NodeAxisY)
	}
	for i := range m.Exhausts {
		fn(&m.Exhausts[i].ReferenceNode)
		fn(&m.Exhausts[i].DirectionNode)
	}
	for i := range m.Particles {
		fn(&m.Particles[i].EmitterNode)
		fn(&m.Particles[i].ReferenceNode)
	}
	for i := range m.Cameras {
		c := &m.Cameras[i]
		fn(&c.CenterNode)
		fn(&c.BackNode)
		fn(&c.LeftNode)
	}
	for i := range m.CameraRails {
		visitSlice(m.CameraRails[i].Nodes)
	}
	for i := range m.Cinecams {
		for j := range m.Cinecams[i].Nodes {
			fn(&m.Cinecams[i].Nodes[j])
		}
	}
	for i := range m.ExtCamera {
		fn(&m.ExtCamera[i].Node)
	}
	for i := range m.VideoCameras {
		v := &m.VideoCameras[i]
		fn(&v.ReferenceNode)
		fn(&v.LeftNode)
		fn(&v.BottomNode)
		fn(&v.AltReferenceNode)
		fn(&v.AltOrientationNode)
	}
	for i := range m.SoundSources {
		fn(&m.SoundSources[i].Node)
	}
	for i := range m.SoundSources2 {
		fn(&m.SoundSources2[i].Node)
	}
}

func visitRotator(r *Rotator, fn func(*NodeRef)) {
	fn(&r.AxisNodes[0])
	fn(&r.AxisNodes[1])
	for i := range r.BasePlateNodes {
		fn(&r.BasePlateNodes[i])
	}
	for i := range r.RotatingPlateNodes {
		fn(&r.RotatingPlateNodes[i])
	}
}
