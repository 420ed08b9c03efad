package dialog

import "fileops/pkg/types"

// Field is an input area of the rename/create dialog
type Field int

const (
	FieldName Field = iota
	FieldExtension
	FieldParent
	FieldPath
	FieldTarget
	FieldTemplate
	FieldOperation
	FieldTargetOperation
	FieldRoot
)

var fieldNames = [...]string{
	FieldName:            "name",
	FieldExtension:       "extension",
	FieldParent:          "parent",
	FieldPath:            "path",
	FieldTarget:          "target",
	FieldTemplate:        "template",
	FieldOperation:       "operation",
	FieldTargetOperation: "target-operation",
	FieldRoot:            "root",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// FieldContext is what visibility depends on
type FieldContext struct {
	Operation types.Operation
	IsDir     bool
	IsLink    bool
	Options   Options
}

type visibilityRule struct {
	field   Field
	visible func(FieldContext) bool
}

var visibilityTable = []visibilityRule{
	{FieldName, func(c FieldContext) bool { return c.Options.ShowName }},
	{FieldExtension, func(c FieldContext) bool {
		return c.Options.ShowExtension && c.Options.ShowName && !c.IsDir && c.Operation.Mode != types.NewDirectory
	}},
	{FieldParent, func(c FieldContext) bool { return c.Options.ShowParent }},
	// The full path is forced on unless name and parent are both shown
	{FieldPath, func(c FieldContext) bool {
		return c.Options.ShowPath || !(c.Options.ShowName && c.Options.ShowParent)
	}},
	{FieldTarget, func(c FieldContext) bool {
		return c.Operation.Mode == types.NewLink || (c.Operation.Mode == types.Rename && c.IsLink && c.Options.ShowTarget)
	}},
	{FieldTemplate, func(c FieldContext) bool {
		return c.Options.ShowTemplate && (c.Operation.Mode == types.NewFile || c.Operation.Mode == types.NewDirectory)
	}},
	{FieldOperation, func(c FieldContext) bool {
		return c.Operation.Mode == types.Rename && (c.Options.AllowCopy || c.Options.AllowLink)
	}},
	{FieldTargetOperation, func(c FieldContext) bool {
		return c.Operation.Mode == types.Rename && c.IsLink && (c.Options.AllowCopy || c.Options.AllowLink)
	}},
	{FieldRoot, func(c FieldContext) bool { return c.Options.ShowRootOption }},
}

// VisibleFields evaluates the visibility table in display order
func VisibleFields(ctx FieldContext) []Field {
	var fields []Field
	for _, rule := range visibilityTable {
		if rule.visible(ctx) {
			fields = append(fields, rule.field)
		}
	}
	return fields
}

// AllowedOperations lists the rename operations the options permit for a
// source that is (or is not) a symlink
func AllowedOperations(isLink bool, opts Options) []types.Operation {
	ops := []types.Operation{types.OpMove}
	if opts.AllowCopy {
		ops = append(ops, types.OpCopy)
	}
	if opts.AllowLink {
		ops = append(ops, types.OpLink)
	}
	if isLink {
		if opts.AllowCopy {
			ops = append(ops, types.OpCopyTarget)
		}
		if opts.AllowLink {
			ops = append(ops, types.OpLinkTarget)
		}
	}
	return ops
}
