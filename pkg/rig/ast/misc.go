// File: misc.go
// Title: Metadata Element Records
// Description: File-level metadata blocks: authorship, global masses, GUID,
//              help material and the global minimum node mass.

package ast

// Author is one author line.
type Author struct {
	Type            string
	ForumAccountID  int
	HasForumAccount bool
	Name            string
	Email           string
}

// Fileinfo carries the repository metadata of the file.
type Fileinfo struct {
	UniqueID    string
	CategoryID  int
	FileVersion int
}

// NewFileinfo returns fileinfo with the format's implicit values.
func NewFileinfo() Fileinfo {
	return Fileinfo{CategoryID: -1}
}

// Guid is the globally unique identifier declared by the guid directive.
type Guid struct {
	GUID string
}

// Globals sets the dry and cargo masses and the cab material.
type Globals struct {
	DryMass      float64
	CargoMass    float64
	MaterialName string
}

// Help names the material shown as the command overview.
type Help struct {
	Material string
}

// Minimass is the minimass block form of the global minimum node mass.
type Minimass struct {
	GlobalMinKg float64
	Option      MinimassOption
}

// GeneratedNodeBlock records a contiguous range of synthetic node numbers
// reserved for nodes a wheel or cinecam generates at spawn time. Ranges are
// committed during finalization of numbered-dialect documents.
type GeneratedNodeBlock struct {
	Section      string
	ElementIndex int
	FirstNodeNum uint
	Count        int
}
