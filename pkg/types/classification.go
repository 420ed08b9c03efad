package types

import "strings"

// PathCandidate is one evaluation's view of the dialog's path field.
// Candidate is already resolved against the original's parent directory.
type PathCandidate struct {
	Original  string
	Candidate string
	Parent    string
	// Raw is the text as the user typed it
	Raw string
}

// ClassificationFlags are the existence/type predicates computed for a
// candidate destination. At most one flag is set, in priority order
// Invalid > SameAsOriginal > ExistsIsDirectory > Exists >
// ParentExistsAsFile > ParentMissing. The one exception is the create
// modes, where the original is only a suggested name and SameAsOriginal may
// be accompanied by Exists or ExistsIsDirectory.
type ClassificationFlags struct {
	Invalid            bool `json:"invalid,omitempty"`
	SameAsOriginal     bool `json:"same_as_original"`
	Exists             bool `json:"exists"`
	ExistsIsDirectory  bool `json:"exists_is_directory"`
	ParentMissing      bool `json:"parent_missing"`
	ParentExistsAsFile bool `json:"parent_exists_as_file"`
}

// Outcome names the highest priority flag that is set
type Outcome int

const (
	Available Outcome = iota
	InvalidInput
	SameAsOriginal
	ExistsAsDirectory
	ExistsAsFile
	ParentIsFile
	ParentMissing
)

var outcomeNames = [...]string{
	Available:         "available",
	InvalidInput:      "invalid",
	SameAsOriginal:    "same-as-original",
	ExistsAsDirectory: "exists-as-directory",
	ExistsAsFile:      "exists-as-file",
	ParentIsFile:      "parent-is-file",
	ParentMissing:     "parent-missing",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Outcome resolves the flags to a single outcome by priority
func (f ClassificationFlags) Outcome() Outcome {
	switch {
	case f.Invalid:
		return InvalidInput
	case f.SameAsOriginal:
		return SameAsOriginal
	case f.ExistsIsDirectory:
		return ExistsAsDirectory
	case f.Exists:
		return ExistsAsFile
	case f.ParentExistsAsFile:
		return ParentIsFile
	case f.ParentMissing:
		return ParentMissing
	}
	return Available
}

// String lists the set flags, or "none"
func (f ClassificationFlags) String() string {
	var set []string
	if f.Invalid {
		set = append(set, "invalid")
	}
	if f.SameAsOriginal {
		set = append(set, "same_as_original")
	}
	if f.ExistsIsDirectory {
		set = append(set, "exists_is_directory")
	}
	if f.Exists {
		set = append(set, "exists")
	}
	if f.ParentExistsAsFile {
		set = append(set, "parent_exists_as_file")
	}
	if f.ParentMissing {
		set = append(set, "parent_missing")
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, ",")
}
