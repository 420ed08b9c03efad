package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"fileops/internal/classify"
	"fileops/internal/dialog"
	"fileops/pkg/types"

	"github.com/spf13/cobra"
)

type classifyReport struct {
	Original  string                    `json:"original"`
	Candidate string                    `json:"candidate"`
	Operation string                    `json:"operation"`
	Outcome   string                    `json:"outcome"`
	Flags     types.ClassificationFlags `json:"flags"`
	State     types.DialogState         `json:"state"`
	Advisory  string                    `json:"advisory"`
	Fields    []string                  `json:"fields"`
}

// NewClassifyCmd creates the classify command
func NewClassifyCmd() *cobra.Command {
	var (
		opName string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "classify ORIGINAL [PATH]",
		Short: "Show how a destination path would be classified",
		Long: `Classify resolves PATH against ORIGINAL the way the dialog does and prints
the classification flags together with the resulting dialog state. PATH
defaults to ORIGINAL; relative paths are taken from ORIGINAL's directory.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := types.ParseOperation(opName)
			if err != nil {
				return err
			}
			original, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			raw := original
			if len(args) == 2 {
				raw = args[1]
			}

			c := classify.New()
			isDir, isLink := op.Mode == types.NewDirectory, op.Mode == types.NewLink
			if op.Mode == types.Rename {
				src, err := c.Inspect(original)
				if err != nil {
					return err
				}
				isDir, isLink = src.IsDir, src.IsLink
				if op.UsesTarget() {
					isDir = src.TargetIsDir
				}
			}

			opts := cfg.DialogOptions()
			cand, flags := c.Evaluate(original, raw, op)
			state := dialog.Project(dialog.NewProjection(cand, flags, op, isDir, isLink, opts))

			report := classifyReport{
				Original:  cand.Original,
				Candidate: cand.Candidate,
				Operation: op.String(),
				Outcome:   flags.Outcome().String(),
				Flags:     flags,
				State:     state,
				Advisory:  state.Advisory.Text(),
			}
			for _, f := range dialog.VisibleFields(dialog.FieldContext{Operation: op, IsDir: isDir, IsLink: isLink, Options: opts}) {
				report.Fields = append(report.Fields, f.String())
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(out, "%-10s %s\n", "candidate", emphasisText(report.Candidate))
			fmt.Fprintf(out, "%-10s %s\n", "operation", report.Operation)
			fmt.Fprintf(out, "%-10s %s\n", "outcome", report.Outcome)
			fmt.Fprintf(out, "%-10s %s\n", "flags", flags)
			if report.Advisory != "" {
				fmt.Fprintf(out, "%-10s %s\n", "advisory", warningText(report.Advisory))
			}
			button := successText(state.ButtonLabel)
			if !state.ConfirmEnabled {
				button = infoText(state.ButtonLabel + " (disabled)")
			}
			fmt.Fprintf(out, "%-10s %s\n", "button", button)
			fmt.Fprintf(out, "%-10s %s\n", "fields", strings.Join(report.Fields, ", "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opName, "op", "o", "move", "operation: move, copy, link, copy-target, link-target, new-file, new-dir, new-link")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
