package main

import (
	"fmt"

	"fileops/internal/templates"

	"github.com/spf13/cobra"
)

// NewTemplatesCmd creates the templates command
func NewTemplatesCmd() *cobra.Command {
	var dirs bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the templates new files and directories can start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := templates.List(cfg.Templates.Dir, cfg.Templates.Include, cfg.Templates.Exclude, dirs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, infoText(fmt.Sprintf("no templates in %s", cfg.Templates.Dir)))
				return nil
			}
			for _, t := range list {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dirs, "dirs", "d", false, "list directory templates instead of files")
	return cmd
}
