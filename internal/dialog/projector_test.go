package dialog

import (
	"testing"

	"fileops/pkg/types"

	"github.com/stretchr/testify/assert"
)

var (
	same          = types.ClassificationFlags{SameAsOriginal: true}
	existsDir     = types.ClassificationFlags{ExistsIsDirectory: true}
	exists        = types.ClassificationFlags{Exists: true}
	parentMissing = types.ClassificationFlags{ParentMissing: true}
	parentFile    = types.ClassificationFlags{ParentExistsAsFile: true}
	invalid       = types.ClassificationFlags{Invalid: true}
	available     = types.ClassificationFlags{}
)

func project(flags types.ClassificationFlags, op types.Operation, isDir bool) types.DialogState {
	return Project(Projection{
		Flags:      flags,
		Operation:  op,
		IsDir:      isDir,
		SameParent: true,
		Options:    DefaultOptions(),
	})
}

func TestProjectSameAsOriginal(t *testing.T) {
	for _, op := range types.Operations {
		st := project(same, op, false)
		assert.Equal(t, types.AdvisoryOriginal, st.Advisory, op.String())
		switch {
		case op.IsMove(), op.IsCreate():
			assert.True(t, st.ConfirmEnabled, op.String())
		default:
			assert.False(t, st.ConfirmEnabled, "%s requires a distinct destination", op)
		}
	}
}

func TestProjectExistsDirectoryNeverConfirms(t *testing.T) {
	flagSets := []types.ClassificationFlags{
		existsDir,
		{SameAsOriginal: true, ExistsIsDirectory: true},
	}
	for _, flags := range flagSets {
		for _, op := range types.Operations {
			for _, isDir := range []bool{false, true} {
				st := project(flags, op, isDir)
				assert.False(t, st.ConfirmEnabled, "%s %s dir=%v", flags, op, isDir)
			}
		}
	}
	assert.Equal(t, types.AdvisoryExistsAsFolder, project(existsDir, types.OpMove, false).Advisory)
}

func TestProjectOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		flags    types.ClassificationFlags
		op       types.Operation
		isDir    bool
		confirm  bool
		advisory types.Advisory
	}{
		{"overwrite file", exists, types.OpMove, false, true, types.AdvisoryOverwrite},
		{"directory over file", exists, types.OpMove, true, false, types.AdvisoryExistsAsFile},
		{"copy over file", exists, types.OpCopy, false, true, types.AdvisoryOverwrite},
		{"parent is file", parentFile, types.OpMove, false, false, types.AdvisoryParentIsFile},
		{"parent missing", parentMissing, types.OpCopy, false, true, types.AdvisoryCreateParent},
		{"parent missing create", parentMissing, types.OpNewDirectory, true, true, types.AdvisoryCreateParent},
		{"available", available, types.OpLink, false, true, types.AdvisoryNone},
		{"invalid", invalid, types.OpMove, false, false, types.AdvisoryInvalid},
		{"invalid outranks same", types.ClassificationFlags{Invalid: true, SameAsOriginal: true}, types.OpMove, false, false, types.AdvisoryInvalid},
		{"new link over existing", types.ClassificationFlags{SameAsOriginal: true, Exists: true}, types.OpNewLink, false, true, types.AdvisoryOverwrite},
		{"link to directory over file", exists, types.OpLink, true, true, types.AdvisoryOverwrite},
		{"link to target directory over file", exists, types.OpLinkTarget, true, true, types.AdvisoryOverwrite},
		{"copy directory over file", exists, types.OpCopy, true, false, types.AdvisoryExistsAsFile},
		{"new file over existing suggestion", types.ClassificationFlags{SameAsOriginal: true, Exists: true}, types.OpNewFile, false, true, types.AdvisoryOverwrite},
		{"new directory over existing file suggestion", types.ClassificationFlags{SameAsOriginal: true, Exists: true}, types.OpNewDirectory, true, false, types.AdvisoryExistsAsFile},
		{"new directory over existing directory suggestion", types.ClassificationFlags{SameAsOriginal: true, ExistsIsDirectory: true}, types.OpNewDirectory, true, false, types.AdvisoryExistsAsFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := project(tt.flags, tt.op, tt.isDir)
			assert.Equal(t, tt.confirm, st.ConfirmEnabled)
			assert.Equal(t, tt.advisory, st.Advisory)
		})
	}
}

func TestProjectRespectsOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowCopy = false

	st := Project(Projection{Flags: available, Operation: types.OpCopy, Options: opts})
	assert.False(t, st.ConfirmEnabled)

	st = Project(Projection{Flags: available, Operation: types.OpMove, Options: opts})
	assert.True(t, st.ConfirmEnabled)

	opts.AllowLink = false
	st = Project(Projection{Flags: available, Operation: types.OpLinkTarget, Options: opts})
	assert.False(t, st.ConfirmEnabled)

	// New links are not governed by AllowLink
	st = Project(Projection{Flags: available, Operation: types.OpNewLink, Options: opts})
	assert.True(t, st.ConfirmEnabled)
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, types.LabelRename, ButtonLabel(types.OpMove, true))
	assert.Equal(t, types.LabelMove, ButtonLabel(types.OpMove, false))
	assert.Equal(t, types.LabelCopy, ButtonLabel(types.OpCopy, true))
	assert.Equal(t, types.LabelCopy, ButtonLabel(types.OpCopyTarget, false))
	assert.Equal(t, types.LabelLink, ButtonLabel(types.OpLink, true))
	assert.Equal(t, types.LabelLink, ButtonLabel(types.OpLinkTarget, false))
	for _, op := range []types.Operation{types.OpNewFile, types.OpNewDirectory, types.OpNewLink} {
		assert.Equal(t, types.LabelCreate, ButtonLabel(op, false))
	}
}

func TestNewProjectionSameParent(t *testing.T) {
	cand := types.PathCandidate{Original: "/tmp/a/file.txt", Candidate: "/tmp/a/b.txt", Parent: "/tmp/a"}
	p := NewProjection(cand, available, types.OpMove, false, false, DefaultOptions())
	assert.True(t, p.SameParent)
	assert.Equal(t, types.LabelRename, Project(p).ButtonLabel)

	cand = types.PathCandidate{Original: "/tmp/a/file.txt", Candidate: "/tmp/b/file.txt", Parent: "/tmp/b"}
	p = NewProjection(cand, available, types.OpMove, false, false, DefaultOptions())
	assert.False(t, p.SameParent)
	assert.Equal(t, types.LabelMove, Project(p).ButtonLabel)
}
