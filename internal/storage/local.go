package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Local saves files under a directory served at BaseURL.
type Local struct {
	SaveDir string
	BaseURL string
}

func NewLocal(saveDir, baseURL string) *Local {
	return &Local{SaveDir: saveDir, BaseURL: baseURL}
}

func (l *Local) Put(ctx context.Context, obj Object) (string, error) {
	key := objectKey("", obj.Name, time.Now())
	dst := filepath.Join(l.SaveDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, obj.Body); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return strings.TrimRight(l.BaseURL, "/") + "/" + key, nil
}
