// Package gcs mirrors statement PDFs from a Cloud Storage prefix into a
// local directory so the extraction pipeline can read them from disk.
package gcs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// ParseURI splits a gs://bucket/prefix URI into bucket and object prefix.
func ParseURI(uri string) (bucket, prefix string, err error) {
	trimmed := strings.TrimPrefix(uri, "gs://")
	if trimmed == uri || trimmed == "" {
		return "", "", fmt.Errorf("gcs: not a gs:// URI: %q", uri)
	}
	bucket, prefix, _ = strings.Cut(trimmed, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("gcs: missing bucket in URI: %q", uri)
	}
	return bucket, prefix, nil
}

// Mirror downloads objects from a bucket prefix into a local directory.
type Mirror struct{}

// MirrorPrefix copies every PDF under the gs:// URI into destDir and returns
// the local paths. Objects that are not PDFs are skipped.
func (Mirror) MirrorPrefix(ctx context.Context, uri, destDir string) ([]string, error) {
	bucket, prefix, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create mirror dir: %w", err)
	}

	var paths []string
	it := client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", uri, err)
		}
		if !strings.EqualFold(filepath.Ext(attrs.Name), ".pdf") {
			continue
		}
		local := filepath.Join(destDir, filepath.Base(attrs.Name))
		if err := downloadObject(ctx, client, bucket, attrs.Name, local); err != nil {
			return nil, err
		}
		paths = append(paths, local)
	}
	return paths, nil
}

func downloadObject(ctx context.Context, client *storage.Client, bucket, object, dest string) error {
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("open GCS object reader: %w", err)
	}
	defer r.Close()

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create local file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("download %s/%s: %w", bucket, object, err)
	}
	return nil
}
