package command

import (
	"fileops/internal/classify"
	"fileops/pkg/types"
)

// NewRenameRequest fills a Request for moving, copying or linking src
func NewRenameRequest(op types.Operation, src classify.Entry, dest string, flags types.ClassificationFlags) Request {
	req := Request{
		Operation:    op,
		Flags:        flags,
		Source:       src.Path,
		Destination:  dest,
		SourceTarget: src.Target,
		IsDir:        src.IsDir,
		IsLink:       src.IsLink,
	}
	if op.UsesTarget() {
		req.IsDir = src.TargetIsDir
	}
	return req
}

// NewCreateRequest fills a Request for creating dest. target is the link
// target for NewLink and template an optional template path for NewFile
// and NewDirectory.
func NewCreateRequest(op types.Operation, dest, target, template string, flags types.ClassificationFlags) Request {
	req := Request{
		Operation:   op,
		Flags:       flags,
		Destination: dest,
		IsDir:       op.Mode == types.NewDirectory,
		IsLink:      op.Mode == types.NewLink,
	}
	switch op.Mode {
	case types.NewLink:
		req.Source = target
	case types.NewFile, types.NewDirectory:
		req.Template = template
	}
	return req
}
