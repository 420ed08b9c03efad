package main

import (
	"os"

	"fileops/internal/config"
	"fileops/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	debug   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fileops",
		Short:   "Rename, move, copy, link and create files safely",
		Long:    `fileops checks a destination path before acting on it and runs the matching mv, cp, ln, mkdir or touch command.`,
		Version: version,
		// Errors are printed by main
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}
			applyTheme(config.GetTheme(cfg.Theme.Name))
			log.Configure(cfg.Log.Debug || debug, cfg.Log.JSON, os.Stderr)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fileops/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewClassifyCmd())
	rootCmd.AddCommand(NewRenameCmd())
	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewDialogCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}
