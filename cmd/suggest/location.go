package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/hupe1980/suggest"
	"github.com/hupe1980/suggest/blobstore"
	"github.com/hupe1980/suggest/blobstore/minio"
	"github.com/hupe1980/suggest/blobstore/s3"
)

// location is a parsed --index value.
type location struct {
	scheme   string
	endpoint string
	bucket   string
	name     string
	secure   bool
}

// parseLocation accepts a file path, s3://bucket/key or
// minio://endpoint/bucket/key[?secure=true]. A missing key defaults to
// suggest.DefaultIndexName.
func parseLocation(raw string) (location, error) {
	scheme, _, ok := strings.Cut(raw, "://")
	if !ok {
		if raw == "" {
			return location{}, errors.New("empty index location")
		}
		return location{scheme: "file", name: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return location{}, fmt.Errorf("invalid index location %q: %w", raw, err)
	}
	path := strings.TrimPrefix(u.Path, "/")

	switch scheme {
	case "s3":
		if u.Host == "" {
			return location{}, fmt.Errorf("invalid index location %q: missing bucket", raw)
		}
		return location{scheme: scheme, bucket: u.Host, name: orDefault(path)}, nil
	case "minio":
		bucket, key, _ := strings.Cut(path, "/")
		if u.Host == "" || bucket == "" {
			return location{}, fmt.Errorf("invalid index location %q: want minio://endpoint/bucket/key", raw)
		}
		return location{
			scheme:   scheme,
			endpoint: u.Host,
			bucket:   bucket,
			name:     orDefault(key),
			secure:   u.Query().Get("secure") == "true",
		}, nil
	default:
		return location{}, fmt.Errorf("invalid index location %q: unsupported scheme %q", raw, scheme)
	}
}

func orDefault(name string) string {
	if name == "" {
		return suggest.DefaultIndexName
	}
	return name
}

// store returns the blob store for l and the blob name inside it.
func (l location) store(ctx context.Context) (blobstore.BlobStore, string, error) {
	switch l.scheme {
	case "s3":
		s, err := s3.New(ctx, l.bucket)
		if err != nil {
			return nil, "", err
		}
		return s, l.name, nil
	case "minio":
		s, err := minio.New(l.endpoint, l.bucket, minio.WithSecure(l.secure))
		if err != nil {
			return nil, "", err
		}
		return s, l.name, nil
	default:
		return blobstore.NewLocalStore(filepath.Dir(l.name)), filepath.Base(l.name), nil
	}
}

func (l location) String() string {
	switch l.scheme {
	case "s3":
		return "s3://" + l.bucket + "/" + l.name
	case "minio":
		return "minio://" + l.endpoint + "/" + l.bucket + "/" + l.name
	default:
		return l.name
	}
}
