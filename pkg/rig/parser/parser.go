// File: parser.go
// Title: Rig Definition Parser
// Description: Line-oriented parser for the rig definition format. Each line
//              is sanitized, classified by leading keyword and routed either
//              to a directive handler or to the extractor of the open block.
//              Malformed lines produce diagnostics and are skipped; parsing
//              never stops before end of input.

package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rigworks/truckdef/pkg/core/log"
	"github.com/rigworks/truckdef/pkg/rig/ast"
)

// Options configures a Parser. The zero value is usable; a nil Logger falls
// back to the package default and a nil Sink forwards diagnostics to the
// logger.
type Options struct {
	Logger    *log.Logger
	Sink      Sink
	Resources ResourceChecker
}

// Parser reads a rig definition stream into an ast.Document. A Parser is
// single-use per input stream but may be reused sequentially.
type Parser struct {
	logger    *log.Logger
	sink      Sink
	resources ResourceChecker

	filename   string
	doc        *ast.Document
	module     *ast.Module
	block      Keyword
	logKeyword Keyword

	currentLine string
	lineNumber  int
	args        [lineMaxArgs]argSpan
	numArgs     int

	// Active defaults snapshots. The builtin ones are kept separate so a
	// negative field in set_node_defaults can reach past the user chain.
	builtinNodeDefaults *ast.NodeDefaults
	builtinInertia      *ast.Inertia
	nodeDefaults        *ast.NodeDefaults
	beamDefaults        *ast.BeamDefaults
	inertiaDefaults     *ast.Inertia
	defaultMinimass     *ast.DefaultMinimass
	detacherGroup       int

	managedMatOptions ast.ManagedMaterialsOptions

	// Staged multi-line constructs.
	currentSubmesh    *ast.Submesh
	currentCameraRail *ast.CameraRail

	anyNamedNode bool
	seq          *sequentialImporter
}

// New returns a parser with the given options applied.
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	logger = logger.WithField("component", "rig-parser")
	sink := opts.Sink
	if sink == nil {
		sink = NewLogSink(logger)
	}
	return &Parser{
		logger:    logger,
		sink:      sink,
		resources: opts.Resources,
	}
}

// ParseFile parses the file at path.
func (p *Parser) ParseFile(path string) (*ast.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rig definition: %w", err)
	}
	defer f.Close()
	return p.ParseReader(path, f)
}

// ParseReader parses a stream. The filename is only used in diagnostics.
// A read error terminates parsing early; the document built so far is still
// finalized and returned alongside the error.
func (p *Parser) ParseReader(filename string, r io.Reader) (*ast.Document, error) {
	p.prepare(filename)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.processRawLine(scanner.Text())
	}
	var err error
	if scanErr := scanner.Err(); scanErr != nil {
		err = fmt.Errorf("reading rig definition %q: %w", filename, scanErr)
		p.message(SeverityError, fmt.Sprintf("Read error, parsing terminated: %v", scanErr))
	}

	p.finalize()
	return p.doc, err
}

// prepare resets all per-document state.
func (p *Parser) prepare(filename string) {
	p.filename = filename
	p.doc = ast.NewDocument()
	p.module = p.doc.Root
	p.block = KeywordInvalid
	p.logKeyword = KeywordInvalid
	p.lineNumber = 0

	p.builtinNodeDefaults = ast.NewNodeDefaults()
	p.builtinInertia = ast.NewInertia()
	p.nodeDefaults = p.builtinNodeDefaults
	p.beamDefaults = ast.NewBeamDefaults()
	p.inertiaDefaults = p.builtinInertia
	p.defaultMinimass = ast.NewDefaultMinimass()
	p.detacherGroup = 0

	p.managedMatOptions = ast.ManagedMaterialsOptions{}
	p.currentSubmesh = nil
	p.currentCameraRail = nil
	p.anyNamedNode = false
	p.seq = newSequentialImporter()
}

// processRawLine sanitizes one input line and feeds it to the state machine.
// The line counter advances for every line, parsed or not.
func (p *Parser) processRawLine(raw string) {
	p.lineNumber++
	line := sanitizeLine(raw)
	if line == "" {
		return
	}
	p.currentLine = line
	p.processCurrentLine()
}

func (p *Parser) processCurrentLine() {
	// The first content line is the title, taken verbatim. Keyword-looking
	// titles are taken too; that is how these files have always worked.
	if p.doc.Name == "" {
		p.doc.Name = p.currentLine
		return
	}

	keyword := identifyKeyword(p.currentLine)

	// Inside comment/description only the matching end marker is a keyword;
	// any other text is block content.
	switch p.block {
	case KeywordComment:
		if keyword == KeywordEndComment {
			p.beginBlock(KeywordInvalid)
		}
		return
	case KeywordDescription:
		if keyword == KeywordEndDescription {
			p.beginBlock(KeywordInvalid)
		} else {
			p.module.Description = append(p.module.Description, p.currentLine)
		}
		return
	}

	if keyword != KeywordInvalid {
		p.logKeyword = keyword
		p.handleKeyword(keyword)
		return
	}

	// No keyword: content of the open block.
	p.logKeyword = p.block
	p.tokenizeCurrentLine()
	p.parseBlockLine()
}

// handleKeyword routes a keyword-led line.
func (p *Parser) handleKeyword(keyword Keyword) {
	switch keyword {

	// Global boolean directives.
	case KeywordDisabledefaultsounds, KeywordEnableAdvancedDeformation,
		KeywordForwardcommands, KeywordHideInChooser, KeywordImportcommands,
		KeywordLockgroupDefaultNolock, KeywordRescuer, KeywordRollon,
		KeywordSlidenodeConnectInstantly:
		p.processGlobalDirective(keyword)

	// Inline directives.
	case KeywordAddAnimation:
		p.parseDirectiveAddAnimation()
	case KeywordAntiLockBrakes:
		p.parseAntiLockBrakes()
	case KeywordAuthor:
		p.beginBlock(KeywordInvalid)
		p.parseAuthor()
	case KeywordBackmesh:
		p.parseDirectiveBackmesh()
	case KeywordCruisecontrol:
		p.parseCruiseControl()
	case KeywordDetacherGroup:
		p.parseDirectiveDetacherGroup()
	case KeywordExtcamera:
		p.parseExtCamera()
	case KeywordFileformatversion:
		p.beginBlock(KeywordInvalid)
		p.parseFileFormatVersion()
	case KeywordFileinfo:
		p.beginBlock(KeywordInvalid)
		p.parseFileinfo()
	case KeywordFlexbodyCameraMode:
		p.parseDirectiveFlexbodyCameraMode()
	case KeywordForset:
		p.parseDirectiveForset()
	case KeywordGuid:
		p.parseGuid()
	case KeywordPropCameraMode:
		p.parseDirectivePropCameraMode()
	case KeywordSection, KeywordEndSection:
		p.processChangeModuleLine(keyword)
	case KeywordSectionconfig:
		// Legacy multi-config marker; configurations are expressed with
		// section/end_section now.
		p.message(SeverityWarning, "Keyword 'sectionconfig' is not supported, ignoring line")
	case KeywordSetBeamDefaults:
		p.parseDirectiveSetBeamDefaults()
	case KeywordSetBeamDefaultsScale:
		p.parseDirectiveSetBeamDefaultsScale()
	case KeywordSetCollisionRange:
		p.parseSetCollisionRange()
	case KeywordSetDefaultMinimass:
		p.parseDirectiveSetDefaultMinimass()
	case KeywordSetInertiaDefaults:
		p.parseDirectiveSetInertiaDefaults()
	case KeywordSetManagedmaterialsOptions:
		p.parseDirectiveSetManagedMaterialsOptions()
	case KeywordSetNodeDefaults:
		p.parseDirectiveSetNodeDefaults()
	case KeywordSetSkeletonSettings:
		p.parseSetSkeletonSettings()
	case KeywordSpeedlimiter:
		p.parseSpeedLimiter()
	case KeywordSubmeshGroundmodel:
		p.parseSubmeshGroundModel()
	case KeywordTractionControl:
		p.parseTractionControl()

	// Keywords closing the current block. The section-specific markers also
	// land here when they appear outside their block; like the generic end
	// they just close whatever is open.
	case KeywordEnd, KeywordEndComment, KeywordEndDescription:
		p.beginBlock(KeywordInvalid)

	// Obsolete sections: recognized so their content does not bleed into
	// the previous block, then discarded.
	case KeywordEnvmap, KeywordHookgroup, KeywordNodecollision, KeywordRigidifiers:
		p.message(SeverityWarning,
			fmt.Sprintf("Section '%s' is obsolete and will be ignored", keyword))
		p.beginBlock(KeywordInvalid)

	// Staged multi-line constructs.
	case KeywordComment, KeywordDescription:
		p.beginBlock(keyword)
	case KeywordSubmesh:
		p.beginBlock(KeywordSubmesh)
		p.currentSubmesh = &ast.Submesh{}
	case KeywordTexcoords, KeywordCab:
		if p.currentSubmesh == nil {
			p.message(SeverityWarning,
				fmt.Sprintf("Section '%s' outside of submesh, ignoring", keyword))
			p.beginBlock(KeywordInvalid)
			return
		}
		p.block = keyword

	// Everything else opens a block.
	default:
		p.beginBlock(keyword)
	}
}

// parseBlockLine dispatches a tokenized data line to the open block's
// extractor.
func (p *Parser) parseBlockLine() {
	switch p.block {
	case KeywordInvalid:
		p.message(SeverityWarning, "Line is not valid in this context, ignoring")
	case KeywordAirbrakes:
		p.parseAirbrakes()
	case KeywordAnimators:
		p.parseAnimator()
	case KeywordAxles:
		p.parseAxles()
	case KeywordBeams:
		p.parseBeams()
	case KeywordBrakes:
		p.parseBrakes()
	case KeywordCab:
		p.parseCab()
	case KeywordCamerarail:
		p.parseCameraRails()
	case KeywordCameras:
		p.parseCameras()
	case KeywordCinecam:
		p.parseCinecam()
	case KeywordCollisionboxes:
		p.parseCollisionBox()
	case KeywordCommands, KeywordCommands2:
		p.parseCommandsUnified()
	case KeywordContacters:
		p.parseContacter()
	case KeywordEngine:
		p.parseEngine()
	case KeywordEngoption:
		p.parseEngoption()
	case KeywordEngturbo:
		p.parseEngturbo()
	case KeywordExhausts:
		p.parseExhaust()
	case KeywordFixes:
		p.parseFixes()
	case KeywordFlares, KeywordFlares2:
		p.parseFlaresUnified()
	case KeywordFlexbodies:
		p.parseFlexbody()
	case KeywordFlexbodywheels:
		p.parseFlexBodyWheel()
	case KeywordFusedrag:
		p.parseFusedrag()
	case KeywordGlobals:
		p.parseGlobals()
	case KeywordGuisettings:
		p.parseGuiSettings()
	case KeywordHelp:
		p.parseHelp()
	case KeywordHooks:
		p.parseHook()
	case KeywordHydros:
		p.parseHydros()
	case KeywordInteraxles:
		p.parseInterAxles()
	case KeywordLockgroups:
		p.parseLockgroups()
	case KeywordManagedmaterials:
		p.parseManagedMaterials()
	case KeywordMaterialflarebindings:
		p.parseMaterialFlareBindings()
	case KeywordMeshwheels, KeywordMeshwheels2:
		p.parseMeshWheelUnified()
	case KeywordMinimass:
		p.parseMinimass()
	case KeywordNodes, KeywordNodes2:
		p.parseNodesUnified()
	case KeywordParticles:
		p.parseParticles()
	case KeywordPistonprops:
		p.parsePistonprops()
	case KeywordProps:
		p.parseProps()
	case KeywordRailgroups:
		p.parseRailGroups()
	case KeywordRopables:
		p.parseRopables()
	case KeywordRopes:
		p.parseRopes()
	case KeywordRotators, KeywordRotators2:
		p.parseRotatorsUnified()
	case KeywordScrewprops:
		p.parseScrewprops()
	case KeywordShocks:
		p.parseShock()
	case KeywordShocks2:
		p.parseShock2()
	case KeywordShocks3:
		p.parseShock3()
	case KeywordSlidenodes:
		p.parseSlidenodes()
	case KeywordSoundsources:
		p.parseSoundsources()
	case KeywordSoundsources2:
		p.parseSoundsources2()
	case KeywordTexcoords:
		p.parseTexcoords()
	case KeywordTies:
		p.parseTies()
	case KeywordTorquecurve:
		p.parseTorqueCurve()
	case KeywordTransfercase:
		p.parseTransferCase()
	case KeywordTriggers:
		p.parseTriggers()
	case KeywordTurbojets:
		p.parseTurbojets()
	case KeywordTurboprops, KeywordTurboprops2:
		p.parseTurbopropsUnified()
	case KeywordVideocamera:
		p.parseVideoCamera()
	case KeywordWheeldetachers:
		p.parseWheelDetachers()
	case KeywordWheels:
		p.parseWheel()
	case KeywordWheels2:
		p.parseWheel2()
	case KeywordWings:
		p.parseWing()
	default:
		p.message(SeverityWarning,
			fmt.Sprintf("Block '%s' not handled, ignoring line", p.block))
	}
}

// beginBlock switches the open block, flushing staged constructs. Re-opening
// the current block is a no-op so a repeated section keyword does not discard
// staged data.
func (p *Parser) beginBlock(keyword Keyword) {
	if keyword == p.block {
		return
	}
	// texcoords/cab are sub-blocks of a staged submesh.
	if keyword != KeywordTexcoords && keyword != KeywordCab {
		p.flushSubmesh()
	}
	p.flushCameraRail()
	p.block = keyword
	if keyword == KeywordCamerarail {
		p.currentCameraRail = &ast.CameraRail{}
	}
}

func (p *Parser) flushSubmesh() {
	if p.currentSubmesh == nil {
		return
	}
	p.module.Submeshes = append(p.module.Submeshes, *p.currentSubmesh)
	p.currentSubmesh = nil
}

func (p *Parser) flushCameraRail() {
	if p.currentCameraRail == nil {
		return
	}
	if len(p.currentCameraRail.Nodes) == 0 {
		p.message(SeverityWarning, "Empty section 'camerarail', ignoring")
	} else {
		p.module.CameraRails = append(p.module.CameraRails, *p.currentCameraRail)
	}
	p.currentCameraRail = nil
}

// processGlobalDirective sets a document-wide boolean flag.
func (p *Parser) processGlobalDirective(keyword Keyword) {
	p.beginBlock(KeywordInvalid)
	switch keyword {
	case KeywordDisabledefaultsounds:
		p.doc.DisableDefaultSounds = true
	case KeywordEnableAdvancedDeformation:
		p.doc.EnableAdvancedDeformation = true
	case KeywordForwardcommands:
		p.doc.ForwardCommands = true
	case KeywordHideInChooser:
		p.doc.HideInChooser = true
	case KeywordImportcommands:
		p.doc.ImportCommands = true
	case KeywordLockgroupDefaultNolock:
		p.doc.LockgroupDefaultNolock = true
	case KeywordRescuer:
		p.doc.Rescuer = true
	case KeywordRollon:
		p.doc.Rollon = true
	case KeywordSlidenodeConnectInstantly:
		p.doc.SlideNodesConnectInstantly = true
	}
}

// processChangeModuleLine switches between the root module and user modules.
func (p *Parser) processChangeModuleLine(keyword Keyword) {
	newModuleName := ast.RootModuleName
	if keyword == KeywordEndSection {
		if p.module == p.doc.Root {
			p.message(SeverityError,
				"Misplaced keyword 'end_section' (no section open), ignoring")
			return
		}
	} else {
		p.tokenizeCurrentLine()
		if !p.checkNumArguments(3) {
			return
		}
		newModuleName = p.argStr(2)
		if newModuleName == p.module.Name {
			p.message(SeverityError,
				fmt.Sprintf("Attempt to re-enter current module '%s', ignoring", newModuleName))
			return
		}
	}

	p.beginBlock(KeywordInvalid)

	if newModuleName == ast.RootModuleName {
		p.module = p.doc.Root
		return
	}
	if existing := p.doc.UserModules[newModuleName]; existing != nil {
		p.module = existing
		return
	}
	m := ast.NewModule(newModuleName)
	p.doc.UserModules[newModuleName] = m
	p.doc.ModuleNames = append(p.doc.ModuleNames, newModuleName)
	p.module = m
}

// finalize flushes staged constructs and resolves the addressing dialect of
// every node reference.
func (p *Parser) finalize() {
	p.beginBlock(KeywordInvalid)
	p.seq.process(p.doc, p.anyNamedNode)
}

// tokenizeCurrentLine splits the current line into argument spans.
func (p *Parser) tokenizeCurrentLine() {
	p.numArgs = tokenize(p.currentLine, p.args[:])
}

// message emits a diagnostic for the current line.
func (p *Parser) message(severity Severity, text string) {
	p.sink.Report(Message{
		Severity: severity,
		File:     p.filename,
		Line:     p.lineNumber,
		Keyword:  p.logKeyword,
		Text:     text,
	})
}
