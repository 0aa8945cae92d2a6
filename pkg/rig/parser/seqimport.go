// File: seqimport.go
// Title: Sequential Import Subsystem
// Description: Tracks node declarations while the addressing dialect of the
//              file is still unknown, reserves synthetic node numbers for
//              nodes generated by wheels and cinecams, and resolves every
//              node reference in one pass once the whole file has been read.

package parser

import (
	"github.com/rigworks/truckdef/pkg/rig/ast"
)

// namedOnlyFileFormatVersion is the first file format version with purely
// named node addressing; from it on the importer is switched off.
const namedOnlyFileFormatVersion = 450

type generatedBlock struct {
	section      Keyword
	elementIndex int
	count        int
}

// sequentialImporter buffers addressing facts during the parse. It never
// touches the document until process is called from finalization.
type sequentialImporter struct {
	enabled bool

	numberedCount     int
	maxNumbered       uint
	namedCount        int
	generated         []generatedBlock
	fileFormatVersion int
}

func newSequentialImporter() *sequentialImporter {
	return &sequentialImporter{enabled: true}
}

// setFileFormatVersion records the declared version; named-only versions
// disable legacy numeric addressing for all following references.
func (s *sequentialImporter) setFileFormatVersion(version int) {
	s.fileFormatVersion = version
	if version >= namedOnlyFileFormatVersion {
		s.enabled = false
	}
}

// addNumberedNode records a numbered node definition.
func (s *sequentialImporter) addNumberedNode(num uint) {
	s.numberedCount++
	if num > s.maxNumbered {
		s.maxNumbered = num
	}
}

// addNamedNode records a named node definition.
func (s *sequentialImporter) addNamedNode() {
	s.namedCount++
}

// generatedNodeCount returns how many nodes the given section generates per
// element at spawn time.
func generatedNodeCount(section Keyword, rayCount int) int {
	switch section {
	case KeywordWheels, KeywordMeshwheels, KeywordMeshwheels2:
		return rayCount * 2
	case KeywordWheels2, KeywordFlexbodywheels:
		return rayCount * 4
	case KeywordCinecam:
		return 1
	}
	return 0
}

// reserveGeneratedNodes books a block of synthetic node numbers for one
// wheel or cinecam element. Numbers are only assigned at process time, after
// the highest declared node number is known.
func (s *sequentialImporter) reserveGeneratedNodes(section Keyword, elementIndex, rayCount int) {
	if !s.enabled {
		return
	}
	count := generatedNodeCount(section, rayCount)
	if count == 0 {
		return
	}
	s.generated = append(s.generated, generatedBlock{
		section:      section,
		elementIndex: elementIndex,
		count:        count,
	})
}

// process resolves the addressing dialect of the whole document. Documents
// that only used named nodes (or declared a named-only format version) drop
// the numeric interpretation of every reference; documents that only used
// numbered nodes drop the named interpretation and receive the synthetic
// node blocks. Files mixing both keep both interpretations, relying on the
// per-reference named-first flag.
func (s *sequentialImporter) process(doc *ast.Document, anyNamed bool) {
	namedOnly := s.fileFormatVersion >= namedOnlyFileFormatVersion ||
		(anyNamed && s.numberedCount == 0)
	numberedOnly := !anyNamed && s.namedCount == 0

	switch {
	case namedOnly:
		doc.ForEachNodeRef(func(ref *ast.NodeRef) {
			ref.ResolveAsNamed()
		})
	case numberedOnly:
		doc.ForEachNodeRef(func(ref *ast.NodeRef) {
			ref.ResolveAsNumbered()
		})
		s.commitGeneratedNodes(doc)
	default:
		// Hybrid addressing: both states stay valid, named-first flags
		// decide per reference. Generated nodes still get numbers.
		s.commitGeneratedNodes(doc)
	}
}

func (s *sequentialImporter) commitGeneratedNodes(doc *ast.Document) {
	next := uint(0)
	if s.numberedCount > 0 {
		next = s.maxNumbered + 1
	}
	for _, block := range s.generated {
		doc.GeneratedNodes = append(doc.GeneratedNodes, ast.GeneratedNodeBlock{
			Section:      block.section.String(),
			ElementIndex: block.elementIndex,
			FirstNodeNum: next,
			Count:        block.count,
		})
		next += uint(block.count)
	}
}
