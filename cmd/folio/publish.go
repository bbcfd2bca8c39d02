package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-go/folio/internal/build"
	"github.com/vango-go/folio/internal/config"
	"github.com/vango-go/folio/internal/publish"
)

func publishCmd() *cobra.Command {
	var bucket string
	var prefix string
	var region string
	var skipBuild bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the built site to S3",
		Long: `Publish renders the site (unless --skip-build is set) and uploads
the output directory to the configured S3 bucket. Credentials come from the
standard AWS environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadOrDefault(cwd)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if cfg.Publish.Bucket == "" {
				return fmt.Errorf("no bucket configured; set publish.bucket in %s or pass --bucket", config.FileName)
			}

			if !skipBuild {
				result, err := build.Run(cfg)
				if err != nil {
					return err
				}
				info("built %d file(s) into %s", result.Files, result.OutputDir)
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			client := s3.New(s3.Options{Region: cfg.Publish.Region})
			p := publish.New(client, cfg.Publish.Bucket, cfg.Publish.Prefix, logger)

			uploaded, err := p.PublishDir(cmd.Context(), cfg.Output)
			if err != nil {
				return err
			}
			success("published %d file(s) to s3://%s/%s", uploaded, cfg.Publish.Bucket, cfg.Publish.Prefix)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "destination S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix for uploaded files")
	cmd.Flags().StringVar(&region, "region", "", "bucket AWS region")
	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "upload the existing output directory without rebuilding")
	return cmd
}
