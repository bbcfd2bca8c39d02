// Package publish uploads a built folio site to S3.
//
// The publisher walks the build output directory and issues one PutObject
// per file under the configured bucket and prefix, with content types
// derived from file extensions.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the subset of the S3 client the publisher uses.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads site files to an S3 bucket.
type Publisher struct {
	client API
	bucket string
	prefix string
	logger *slog.Logger
}

// New creates a publisher for the given bucket and key prefix.
func New(client API, bucket, prefix string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.TrimPrefix(prefix, "/"),
		logger: logger,
	}
}

// PublishDir uploads every regular file under dir, preserving relative
// paths as S3 keys under the prefix. It returns the number of files
// uploaded.
func (p *Publisher) PublishDir(ctx context.Context, dir string) (int, error) {
	if p.bucket == "" {
		return 0, fmt.Errorf("publish: no bucket configured")
	}

	uploaded := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := p.PublishFile(ctx, filepath.ToSlash(rel), data); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}
	return uploaded, nil
}

// PublishFile uploads one file under the prefix at the given relative key.
func (p *Publisher) PublishFile(ctx context.Context, key string, data []byte) error {
	fullKey := p.key(key)
	contentType := contentTypeFor(key)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", fullKey, err)
	}
	p.logger.Debug("uploaded", "key", fullKey, "bytes", len(data), "content_type", contentType)
	return nil
}

// key joins the prefix and relative key with exactly one slash.
func (p *Publisher) key(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	if p.prefix == "" {
		return rel
	}
	return strings.TrimSuffix(p.prefix, "/") + "/" + rel
}

// contentTypeFor derives a content type from the file extension.
func contentTypeFor(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
