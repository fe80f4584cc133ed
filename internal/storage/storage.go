// Package storage puts uploaded form files somewhere public and returns the
// URL they can be fetched from.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"ctc-webbase/config"
)

type Store interface {
	Put(ctx context.Context, obj Object) (string, error)
}

// Object is one file to store.
type Object struct {
	Name        string // original file name, only its extension is kept
	ContentType string
	Size        int64
	Body        io.Reader
}

// New picks the driver named by cfg.Storage.Driver.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "", "local":
		return NewLocal(cfg.Storage.Local.Dir, cfg.Storage.Local.BaseURL), nil
	case "s3":
		return NewS3(ctx, cfg.Storage.S3)
	case "cloudinary":
		return NewCloudinary(cfg.Storage.Cloud), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// objectKey is prefix/YYYY/MM/<uuid><ext>.
func objectKey(prefix, name string, now time.Time) string {
	ext := strings.ToLower(path.Ext(name))
	key := path.Join(strings.Trim(prefix, "/"), now.Format("2006/01"), uuid.NewString()+ext)
	return strings.TrimLeft(key, "/")
}
