// File: keyword.go
// Title: Keyword Registry
// Description: The closed set of line-leading keywords and their resolver.
//              Lookup tries the canonical spelling first and falls back to a
//              case-insensitive match, so legacy files with odd casing still
//              parse while the two CamelCase keywords keep their canonical
//              form in diagnostics.

package parser

import "strings"

// Keyword identifies a directive or section marker.
type Keyword int

const (
	KeywordInvalid Keyword = iota

	KeywordAddAnimation
	KeywordAirbrakes
	KeywordAnimators
	KeywordAntiLockBrakes
	KeywordAuthor
	KeywordAxles
	KeywordBackmesh
	KeywordBeams
	KeywordBrakes
	KeywordCab
	KeywordCamerarail
	KeywordCameras
	KeywordCinecam
	KeywordCollisionboxes
	KeywordCommands
	KeywordCommands2
	KeywordComment
	KeywordContacters
	KeywordCruisecontrol
	KeywordDescription
	KeywordDetacherGroup
	KeywordDisabledefaultsounds
	KeywordEnableAdvancedDeformation
	KeywordEnd
	KeywordEndComment
	KeywordEndDescription
	KeywordEndSection
	KeywordEngine
	KeywordEngoption
	KeywordEngturbo
	KeywordEnvmap
	KeywordExhausts
	KeywordExtcamera
	KeywordFileformatversion
	KeywordFileinfo
	KeywordFixes
	KeywordFlares
	KeywordFlares2
	KeywordFlexbodies
	KeywordFlexbodyCameraMode
	KeywordFlexbodywheels
	KeywordForset
	KeywordForwardcommands
	KeywordFusedrag
	KeywordGlobals
	KeywordGuid
	KeywordGuisettings
	KeywordHelp
	KeywordHideInChooser
	KeywordHookgroup
	KeywordHooks
	KeywordHydros
	KeywordImportcommands
	KeywordInteraxles
	KeywordLockgroups
	KeywordLockgroupDefaultNolock
	KeywordManagedmaterials
	KeywordMaterialflarebindings
	KeywordMeshwheels
	KeywordMeshwheels2
	KeywordMinimass
	KeywordNodecollision
	KeywordNodes
	KeywordNodes2
	KeywordParticles
	KeywordPistonprops
	KeywordPropCameraMode
	KeywordProps
	KeywordRailgroups
	KeywordRescuer
	KeywordRigidifiers
	KeywordRollon
	KeywordRopables
	KeywordRopes
	KeywordRotators
	KeywordRotators2
	KeywordScrewprops
	KeywordSection
	KeywordSectionconfig
	KeywordSetBeamDefaults
	KeywordSetBeamDefaultsScale
	KeywordSetCollisionRange
	KeywordSetDefaultMinimass
	KeywordSetInertiaDefaults
	KeywordSetManagedmaterialsOptions
	KeywordSetNodeDefaults
	KeywordSetSkeletonSettings
	KeywordShocks
	KeywordShocks2
	KeywordShocks3
	KeywordSlidenodeConnectInstantly
	KeywordSlidenodes
	KeywordSoundsources
	KeywordSoundsources2
	KeywordSpeedlimiter
	KeywordSubmesh
	KeywordSubmeshGroundmodel
	KeywordTexcoords
	KeywordTies
	KeywordTorquecurve
	KeywordTractionControl
	KeywordTransfercase
	KeywordTriggers
	KeywordTurbojets
	KeywordTurboprops
	KeywordTurboprops2
	KeywordVideocamera
	KeywordWheeldetachers
	KeywordWheels
	KeywordWheels2
	KeywordWings
)

// keywordNames maps each keyword to its canonical spelling. Only two entries
// carry upper-case letters; everything else is historically lower-case.
var keywordNames = map[Keyword]string{
	KeywordAddAnimation:               "add_animation",
	KeywordAirbrakes:                  "airbrakes",
	KeywordAnimators:                  "animators",
	KeywordAntiLockBrakes:             "AntiLockBrakes",
	KeywordAuthor:                     "author",
	KeywordAxles:                      "axles",
	KeywordBackmesh:                   "backmesh",
	KeywordBeams:                      "beams",
	KeywordBrakes:                     "brakes",
	KeywordCab:                        "cab",
	KeywordCamerarail:                 "camerarail",
	KeywordCameras:                    "cameras",
	KeywordCinecam:                    "cinecam",
	KeywordCollisionboxes:             "collisionboxes",
	KeywordCommands:                   "commands",
	KeywordCommands2:                  "commands2",
	KeywordComment:                    "comment",
	KeywordContacters:                 "contacters",
	KeywordCruisecontrol:              "cruisecontrol",
	KeywordDescription:                "description",
	KeywordDetacherGroup:              "detacher_group",
	KeywordDisabledefaultsounds:       "disabledefaultsounds",
	KeywordEnableAdvancedDeformation:  "enable_advanced_deformation",
	KeywordEnd:                        "end",
	KeywordEndComment:                 "end_comment",
	KeywordEndDescription:             "end_description",
	KeywordEndSection:                 "end_section",
	KeywordEngine:                     "engine",
	KeywordEngoption:                  "engoption",
	KeywordEngturbo:                   "engturbo",
	KeywordEnvmap:                     "envmap",
	KeywordExhausts:                   "exhausts",
	KeywordExtcamera:                  "extcamera",
	KeywordFileformatversion:          "fileformatversion",
	KeywordFileinfo:                   "fileinfo",
	KeywordFixes:                      "fixes",
	KeywordFlares:                     "flares",
	KeywordFlares2:                    "flares2",
	KeywordFlexbodies:                 "flexbodies",
	KeywordFlexbodyCameraMode:         "flexbody_camera_mode",
	KeywordFlexbodywheels:             "flexbodywheels",
	KeywordForset:                     "forset",
	KeywordForwardcommands:            "forwardcommands",
	KeywordFusedrag:                   "fusedrag",
	KeywordGlobals:                    "globals",
	KeywordGuid:                       "guid",
	KeywordGuisettings:                "guisettings",
	KeywordHelp:                       "help",
	KeywordHideInChooser:              "hideinchooser",
	KeywordHookgroup:                  "hookgroup",
	KeywordHooks:                      "hooks",
	KeywordHydros:                     "hydros",
	KeywordImportcommands:             "importcommands",
	KeywordInteraxles:                 "interaxles",
	KeywordLockgroups:                 "lockgroups",
	KeywordLockgroupDefaultNolock:     "lockgroup_default_nolock",
	KeywordManagedmaterials:           "managedmaterials",
	KeywordMaterialflarebindings:      "materialflarebindings",
	KeywordMeshwheels:                 "meshwheels",
	KeywordMeshwheels2:                "meshwheels2",
	KeywordMinimass:                   "minimass",
	KeywordNodecollision:              "nodecollision",
	KeywordNodes:                      "nodes",
	KeywordNodes2:                     "nodes2",
	KeywordParticles:                  "particles",
	KeywordPistonprops:                "pistonprops",
	KeywordPropCameraMode:             "prop_camera_mode",
	KeywordProps:                      "props",
	KeywordRailgroups:                 "railgroups",
	KeywordRescuer:                    "rescuer",
	KeywordRigidifiers:                "rigidifiers",
	KeywordRollon:                     "rollon",
	KeywordRopables:                   "ropables",
	KeywordRopes:                      "ropes",
	KeywordRotators:                   "rotators",
	KeywordRotators2:                  "rotators2",
	KeywordScrewprops:                 "screwprops",
	KeywordSection:                    "section",
	KeywordSectionconfig:              "sectionconfig",
	KeywordSetBeamDefaults:            "set_beam_defaults",
	KeywordSetBeamDefaultsScale:       "set_beam_defaults_scale",
	KeywordSetCollisionRange:          "set_collision_range",
	KeywordSetDefaultMinimass:         "set_default_minimass",
	KeywordSetInertiaDefaults:         "set_inertia_defaults",
	KeywordSetManagedmaterialsOptions: "set_managedmaterials_options",
	KeywordSetNodeDefaults:            "set_node_defaults",
	KeywordSetSkeletonSettings:        "set_skeleton_settings",
	KeywordShocks:                     "shocks",
	KeywordShocks2:                    "shocks2",
	KeywordShocks3:                    "shocks3",
	KeywordSlidenodeConnectInstantly:  "slidenode_connect_instantly",
	KeywordSlidenodes:                 "slidenodes",
	KeywordSoundsources:               "soundsources",
	KeywordSoundsources2:              "soundsources2",
	KeywordSpeedlimiter:               "speedlimiter",
	KeywordSubmesh:                    "submesh",
	KeywordSubmeshGroundmodel:         "submesh_groundmodel",
	KeywordTexcoords:                  "texcoords",
	KeywordTies:                       "ties",
	KeywordTorquecurve:                "torquecurve",
	KeywordTractionControl:            "TractionControl",
	KeywordTransfercase:               "transfercase",
	KeywordTriggers:                   "triggers",
	KeywordTurbojets:                  "turbojets",
	KeywordTurboprops:                 "turboprops",
	KeywordTurboprops2:                "turboprops2",
	KeywordVideocamera:                "videocamera",
	KeywordWheeldetachers:             "wheeldetachers",
	KeywordWheels:                     "wheels",
	KeywordWheels2:                    "wheels2",
	KeywordWings:                      "wings",
}

var (
	keywordsRespectCase = make(map[string]Keyword, len(keywordNames))
	keywordsIgnoreCase  = make(map[string]Keyword, len(keywordNames))
)

func init() {
	for kw, name := range keywordNames {
		keywordsRespectCase[name] = kw
		keywordsIgnoreCase[strings.ToLower(name)] = kw
	}
}

// String returns the canonical spelling, or empty for KeywordInvalid.
func (k Keyword) String() string {
	return keywordNames[k]
}

// isSeparator reports whether c ends a keyword token. The same characters
// separate arguments in tokenized lines.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', ':', '|', ',':
		return true
	}
	return false
}

// identifyKeyword resolves the keyword starting a sanitized line, or
// KeywordInvalid when the line does not start with one. Lines not starting
// with an ASCII letter are rejected without a table lookup.
func identifyKeyword(line string) Keyword {
	if line == "" {
		return KeywordInvalid
	}
	c := line[0] | 0x20
	if c < 'a' || c > 'z' {
		return KeywordInvalid
	}
	end := len(line)
	for i := 0; i < len(line); i++ {
		if isSeparator(line[i]) {
			end = i
			break
		}
	}
	token := line[:end]
	if kw, ok := keywordsRespectCase[token]; ok {
		return kw
	}
	if kw, ok := keywordsIgnoreCase[strings.ToLower(token)]; ok {
		return kw
	}
	return KeywordInvalid
}
