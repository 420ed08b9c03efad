package types

// Advisory is the fixed hint shown next to the path field
type Advisory int

const (
	AdvisoryNone Advisory = iota
	AdvisoryInvalid
	AdvisoryOriginal
	AdvisoryExistsAsFolder
	AdvisoryExistsAsFile
	AdvisoryOverwrite
	AdvisoryParentIsFile
	AdvisoryCreateParent
)

var advisoryText = [...]string{
	AdvisoryNone:           "",
	AdvisoryInvalid:        "invalid path",
	AdvisoryOriginal:       "original",
	AdvisoryExistsAsFolder: "exists as folder",
	AdvisoryExistsAsFile:   "exists as file",
	AdvisoryOverwrite:      "* overwrite existing file",
	AdvisoryParentIsFile:   "parent exists as file",
	AdvisoryCreateParent:   "* create parent",
}

// Text returns the advisory's display string
func (a Advisory) Text() string {
	if int(a) < len(advisoryText) {
		return advisoryText[a]
	}
	return ""
}

func (a Advisory) String() string {
	if a == AdvisoryNone {
		return "none"
	}
	return a.Text()
}

// Button labels
const (
	LabelRename = "Rename"
	LabelMove   = "Move"
	LabelCopy   = "Copy"
	LabelLink   = "Link"
	LabelCreate = "Create"
)

// DialogState is derived from ClassificationFlags and the operation on
// every evaluation and has no lifecycle of its own.
type DialogState struct {
	ConfirmEnabled bool     `json:"confirm_enabled"`
	Advisory       Advisory `json:"advisory"`
	ButtonLabel    string   `json:"button_label"`
}
