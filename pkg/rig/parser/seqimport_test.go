// File: seqimport_test.go
// Title: Sequential Importer Tests
// Description: Unit tests for the addressing-dialect resolver and the
//              synthetic node number bookkeeping.

package parser

import (
	"testing"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

func TestGeneratedNodeCount(t *testing.T) {
	tests := []struct {
		name    string
		section Keyword
		rays    int
		want    int
	}{
		{"wheels", KeywordWheels, 12, 24},
		{"meshwheels", KeywordMeshwheels, 10, 20},
		{"meshwheels2", KeywordMeshwheels2, 8, 16},
		{"wheels2", KeywordWheels2, 12, 48},
		{"flexbodywheels", KeywordFlexbodywheels, 10, 40},
		{"cinecam", KeywordCinecam, 0, 1},
		{"beams generate nothing", KeywordBeams, 12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generatedNodeCount(tt.section, tt.rays); got != tt.want {
				t.Errorf("generatedNodeCount(%v, %d) = %d, want %d",
					tt.section, tt.rays, got, tt.want)
			}
		})
	}
}

func TestSequentialImporterDisabledAtNamedOnlyVersion(t *testing.T) {
	s := newSequentialImporter()
	if !s.enabled {
		t.Fatal("importer must start enabled")
	}
	s.setFileFormatVersion(3)
	if !s.enabled {
		t.Error("legacy versions keep the importer on")
	}
	s.setFileFormatVersion(450)
	if s.enabled {
		t.Error("version 450 switches the importer off")
	}
	s.reserveGeneratedNodes(KeywordWheels, 0, 12)
	if len(s.generated) != 0 {
		t.Error("a disabled importer must not book generated nodes")
	}
}

func TestCommitGeneratedNodesNumbering(t *testing.T) {
	s := newSequentialImporter()
	s.addNumberedNode(0)
	s.addNumberedNode(7)
	s.addNumberedNode(3)
	s.reserveGeneratedNodes(KeywordWheels, 0, 4)
	s.reserveGeneratedNodes(KeywordCinecam, 0, 0)

	doc := ast.NewDocument()
	s.process(doc, false)

	if len(doc.GeneratedNodes) != 2 {
		t.Fatalf("generated blocks = %d, want 2", len(doc.GeneratedNodes))
	}
	wheel := doc.GeneratedNodes[0]
	if wheel.Section != "wheels" || wheel.FirstNodeNum != 8 || wheel.Count != 8 {
		t.Errorf("wheel block = %+v", wheel)
	}
	cine := doc.GeneratedNodes[1]
	if cine.Section != "cinecam" || cine.FirstNodeNum != 16 || cine.Count != 1 {
		t.Errorf("cinecam block = %+v", cine)
	}
}

func TestCommitGeneratedNodesWithoutNumberedNodes(t *testing.T) {
	s := newSequentialImporter()
	s.reserveGeneratedNodes(KeywordCinecam, 0, 0)

	doc := ast.NewDocument()
	s.process(doc, false)

	if len(doc.GeneratedNodes) != 1 {
		t.Fatalf("generated blocks = %d, want 1", len(doc.GeneratedNodes))
	}
	if doc.GeneratedNodes[0].FirstNodeNum != 0 {
		t.Errorf("FirstNodeNum = %d, want 0 when no node was numbered",
			doc.GeneratedNodes[0].FirstNodeNum)
	}
}

func TestProcessResolvesDialects(t *testing.T) {
	importRef := func() ast.NodeRef {
		return ast.NewNodeRef("1", 1,
			ast.RefImportValid|ast.RefRegularValid, 1)
	}

	t.Run("numbered only", func(t *testing.T) {
		s := newSequentialImporter()
		s.addNumberedNode(1)
		doc := ast.NewDocument()
		doc.Root.Fixes = append(doc.Root.Fixes, importRef())
		s.process(doc, false)
		ref := &doc.Root.Fixes[0]
		if !ref.IsValidImportState() || ref.IsValidRegularState() {
			t.Errorf("flags = %b, want import-only", ref.Flags)
		}
	})

	t.Run("named only", func(t *testing.T) {
		s := newSequentialImporter()
		s.addNamedNode()
		doc := ast.NewDocument()
		doc.Root.Fixes = append(doc.Root.Fixes, importRef())
		s.process(doc, true)
		ref := &doc.Root.Fixes[0]
		if ref.IsValidImportState() || !ref.IsValidRegularState() {
			t.Errorf("flags = %b, want regular-only", ref.Flags)
		}
	})

	t.Run("hybrid keeps both", func(t *testing.T) {
		s := newSequentialImporter()
		s.addNumberedNode(1)
		s.addNamedNode()
		doc := ast.NewDocument()
		doc.Root.Fixes = append(doc.Root.Fixes, importRef())
		s.process(doc, true)
		ref := &doc.Root.Fixes[0]
		if !ref.IsValidImportState() || !ref.IsValidRegularState() {
			t.Errorf("flags = %b, want both states", ref.Flags)
		}
	})

	t.Run("declared version forces named", func(t *testing.T) {
		s := newSequentialImporter()
		s.setFileFormatVersion(450)
		s.addNumberedNode(1)
		doc := ast.NewDocument()
		doc.Root.Fixes = append(doc.Root.Fixes, importRef())
		s.process(doc, false)
		ref := &doc.Root.Fixes[0]
		if ref.IsValidImportState() {
			t.Errorf("flags = %b, import state must be dropped at version 450", ref.Flags)
		}
	})
}
