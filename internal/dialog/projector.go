// Package dialog maps classification flags to what the rename/create dialog
// shows: whether the confirm button is enabled, which advisory text is
// displayed next to the path field and how the button is labelled.
//
// Everything here is a pure function of its inputs and is re-evaluated after
// every classification.
package dialog

import (
	"path/filepath"

	"fileops/pkg/types"
)

// Options are the dialog's behaviour and visibility toggles
type Options struct {
	ShowName       bool
	ShowExtension  bool
	ShowParent     bool
	ShowPath       bool
	ShowTarget     bool
	ShowTemplate   bool
	ShowRootOption bool
	AllowCopy      bool
	AllowLink      bool
	// ConfirmMkdir asks before creating a missing parent directory
	ConfirmMkdir bool
}

// DefaultOptions mirrors the stock dialog
func DefaultOptions() Options {
	return Options{
		ShowName:      true,
		ShowExtension: true,
		ShowParent:    true,
		ShowPath:      false,
		ShowTarget:    true,
		ShowTemplate:  true,
		AllowCopy:     true,
		AllowLink:     true,
		ConfirmMkdir:  true,
	}
}

// Permits reports whether op may be confirmed under these options
func (o Options) Permits(op types.Operation) bool {
	switch {
	case op.IsCopy():
		return o.AllowCopy
	case op.Mode == types.Rename && op.IsLink():
		return o.AllowLink
	}
	return true
}

// Projection is the input to Project
type Projection struct {
	Flags     types.ClassificationFlags
	Operation types.Operation
	// IsDir and IsLink describe the source entry (Rename) or the entry
	// being created (New*)
	IsDir  bool
	IsLink bool
	// SameParent is true when the candidate stays in the original's directory
	SameParent bool
	Options    Options
}

// NewProjection builds a Projection for an evaluated candidate
func NewProjection(cand types.PathCandidate, flags types.ClassificationFlags, op types.Operation, isDir, isLink bool, opts Options) Projection {
	return Projection{
		Flags:      flags,
		Operation:  op,
		IsDir:      isDir,
		IsLink:     isLink,
		SameParent: cand.Parent == filepath.Dir(cand.Original),
		Options:    opts,
	}
}

// Project computes the dialog state. Advisory text follows the classifier's
// priority order.
func Project(in Projection) types.DialogState {
	op := in.Operation
	st := types.DialogState{
		ButtonLabel: ButtonLabel(op, in.SameParent),
	}

	switch in.Flags.Outcome() {
	case types.InvalidInput:
		st.Advisory = types.AdvisoryInvalid
	case types.SameAsOriginal:
		st.Advisory = types.AdvisoryOriginal
		switch {
		case op.IsMove():
			st.ConfirmEnabled = true
		case op.IsCreate():
			// In create mode the original is only the suggested name
			switch {
			case in.Flags.ExistsIsDirectory:
				st.Advisory = types.AdvisoryExistsAsFolder
			case in.Flags.Exists:
				existsAsFile(&st, op, in.IsDir)
			default:
				st.ConfirmEnabled = true
			}
		}
	case types.ExistsAsDirectory:
		st.Advisory = types.AdvisoryExistsAsFolder
	case types.ExistsAsFile:
		existsAsFile(&st, op, in.IsDir)
	case types.ParentIsFile:
		st.Advisory = types.AdvisoryParentIsFile
	case types.ParentMissing:
		st.Advisory = types.AdvisoryCreateParent
		st.ConfirmEnabled = true
	default:
		st.ConfirmEnabled = true
	}

	if in.Flags.ExistsIsDirectory || !in.Options.Permits(op) {
		st.ConfirmEnabled = false
	}
	return st
}

// existsAsFile offers an overwrite unless a directory would replace the file
func existsAsFile(st *types.DialogState, op types.Operation, isDir bool) {
	if op.PlacesDirectory(isDir) {
		st.Advisory = types.AdvisoryExistsAsFile
		return
	}
	st.Advisory = types.AdvisoryOverwrite
	st.ConfirmEnabled = true
}

// ButtonLabel names the confirm button for op
func ButtonLabel(op types.Operation, sameParent bool) string {
	switch {
	case op.IsCreate():
		return types.LabelCreate
	case op.IsCopy():
		return types.LabelCopy
	case op.IsLink():
		return types.LabelLink
	case sameParent:
		return types.LabelRename
	}
	return types.LabelMove
}
