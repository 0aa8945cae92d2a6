// File: resources_test.go
// Title: Resource Lookup Tests
// Description: Tests for the directory-based resource checker and the texture
//              existence handling in managedmaterials.

package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirCheckerExists(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "cab.dds"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "subdir.dds"), 0o755); err != nil {
		t.Fatal(err)
	}

	checker := &DirChecker{Roots: []string{root}}
	if !checker.Exists("cab.dds") {
		t.Error("existing file not found")
	}
	if checker.Exists("missing.dds") {
		t.Error("missing file reported as existing")
	}
	if checker.Exists("subdir.dds") {
		t.Error("a directory must not count as a resource")
	}
}

func TestManagedMaterialsTextureCheck(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"diffuse.dds", "damaged.dds"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	collector := &Collector{}
	p := New(Options{
		Sink:      collector,
		Resources: &DirChecker{Roots: []string{root}},
	})
	doc, err := p.ParseReader("test.truck", strings.NewReader(`Rig

managedmaterials
body flexmesh_standard diffuse.dds damaged.dds specular.dds
ghost flexmesh_standard nosuch.dds damaged.dds specular.dds
`))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}

	// The first entry survives; its missing specular map is cleared with a
	// warning. The second entry is dropped for the missing diffuse map.
	if len(doc.Root.ManagedMaterials) != 1 {
		t.Fatalf("managed material count = %d, want 1", len(doc.Root.ManagedMaterials))
	}
	mat := doc.Root.ManagedMaterials[0]
	if mat.DiffuseMap != "diffuse.dds" || mat.DamagedDiffuseMap != "damaged.dds" {
		t.Errorf("material = %+v", mat)
	}
	if mat.SpecularMap != "" {
		t.Errorf("SpecularMap = %q, want cleared", mat.SpecularMap)
	}
	if collector.Count(SeverityWarning) != 2 {
		t.Errorf("warning count = %d, want 2 (one per missing texture)",
			collector.Count(SeverityWarning))
	}
}
