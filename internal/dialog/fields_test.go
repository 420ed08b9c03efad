package dialog

import (
	"testing"

	"fileops/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestVisibleFields(t *testing.T) {
	opts := DefaultOptions()

	t.Run("rename regular file", func(t *testing.T) {
		fields := VisibleFields(FieldContext{Operation: types.OpMove, Options: opts})
		assert.Equal(t, []Field{FieldName, FieldExtension, FieldParent, FieldOperation}, fields)
	})

	t.Run("rename symlink", func(t *testing.T) {
		fields := VisibleFields(FieldContext{Operation: types.OpMove, IsLink: true, Options: opts})
		assert.Contains(t, fields, FieldTarget)
		assert.Contains(t, fields, FieldTargetOperation)
	})

	t.Run("new directory hides extension", func(t *testing.T) {
		fields := VisibleFields(FieldContext{Operation: types.OpNewDirectory, IsDir: true, Options: opts})
		assert.NotContains(t, fields, FieldExtension)
		assert.Contains(t, fields, FieldTemplate)
		assert.NotContains(t, fields, FieldOperation)
	})

	t.Run("new link shows target", func(t *testing.T) {
		fields := VisibleFields(FieldContext{Operation: types.OpNewLink, Options: opts})
		assert.Contains(t, fields, FieldTarget)
		assert.NotContains(t, fields, FieldTemplate)
	})

	t.Run("path forced when parent hidden", func(t *testing.T) {
		o := opts
		o.ShowParent = false
		fields := VisibleFields(FieldContext{Operation: types.OpMove, Options: o})
		assert.Contains(t, fields, FieldPath)
	})

	t.Run("root option", func(t *testing.T) {
		o := opts
		o.ShowRootOption = true
		assert.Contains(t, VisibleFields(FieldContext{Operation: types.OpMove, Options: o}), FieldRoot)
	})
}

func TestAllowedOperations(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, []types.Operation{types.OpMove, types.OpCopy, types.OpLink}, AllowedOperations(false, opts))
	assert.Len(t, AllowedOperations(true, opts), 5)

	opts.AllowLink = false
	assert.Equal(t, []types.Operation{types.OpMove, types.OpCopy, types.OpCopyTarget}, AllowedOperations(true, opts))
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		base  string
		isDir bool
		name  string
		ext   string
	}{
		{"report.pdf", false, "report", ".pdf"},
		{"archive.tar.gz", false, "archive", ".tar.gz"},
		{"ARCHIVE.TAR.XZ", false, "ARCHIVE", ".TAR.XZ"},
		{".bashrc", false, ".bashrc", ""},
		{".config.yaml", false, ".config", ".yaml"},
		{"Makefile", false, "Makefile", ""},
		{"trailing.", false, "trailing.", ""},
		{"photos.2024", true, "photos.2024", ""},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			name, ext := SplitName(tt.base, tt.isDir)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestSplitPathJoin(t *testing.T) {
	p := SplitPath("/tmp/a/archive.tar.bz2", false)
	assert.Equal(t, Parts{Parent: "/tmp/a", Name: "archive", Ext: ".tar.bz2"}, p)
	assert.Equal(t, "/tmp/a/archive.tar.bz2", p.Join())

	p.Name = "backup"
	p.Parent = "/srv"
	assert.Equal(t, "/srv/backup.tar.bz2", p.Join())
}
