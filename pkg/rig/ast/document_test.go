// File: document_test.go
// Title: Document Structure Tests
// Description: Tests for module lookup, iteration order and the node
//              reference walker.

package ast

import (
	"testing"
)

func TestDocumentModuleLookup(t *testing.T) {
	doc := NewDocument()
	trailer := NewModule("trailer")
	doc.UserModules["trailer"] = trailer
	doc.ModuleNames = append(doc.ModuleNames, "trailer")

	if doc.Module(RootModuleName) != doc.Root {
		t.Error("root name must resolve to the root module")
	}
	if doc.Module("trailer") != trailer {
		t.Error("user module lookup failed")
	}
	if doc.Module("missing") != nil {
		t.Error("unknown module must resolve to nil")
	}
}

func TestForEachModuleOrder(t *testing.T) {
	doc := NewDocument()
	for _, name := range []string{"b", "a", "c"} {
		doc.UserModules[name] = NewModule(name)
		doc.ModuleNames = append(doc.ModuleNames, name)
	}

	var order []string
	doc.ForEachModule(func(m *Module) { order = append(order, m.Name) })

	want := []string{RootModuleName, "b", "a", "c"}
	if len(order) != len(want) {
		t.Fatalf("visited %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestForEachNodeRefCoversNestedRefs(t *testing.T) {
	doc := NewDocument()
	m := doc.Root

	m.Beams = append(m.Beams, Beam{})
	m.Fixes = append(m.Fixes, NodeRef{})
	m.Flexbodies = append(m.Flexbodies, Flexbody{
		ForSet: []NodeRange{{}},
	})
	m.Submeshes = append(m.Submeshes, Submesh{
		Texcoords:    []Texcoord{{}},
		CabTriangles: []Cab{{}},
	})

	count := 0
	doc.ForEachNodeRef(func(*NodeRef) { count++ })

	// 2 beam ends + 1 fix + 3 flexbody axes + 2 forset bounds
	// + 1 texcoord + 3 cab corners.
	if count != 12 {
		t.Errorf("visited %d references, want 12", count)
	}
}
