package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-go/folio/internal/build"
	"github.com/vango-go/folio/internal/config"
)

func buildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site to a static output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadOrDefault(cwd)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = output
			}

			result, err := build.Run(cfg)
			if err != nil {
				return err
			}
			success("built %d file(s) into %s", result.Files, result.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "override the output directory")
	return cmd
}
