package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"ctc-webbase/config"
)

const cloudinaryAPI = "https://api.cloudinary.com/v1_1"

// Cloudinary posts unsigned uploads with an upload preset.
type Cloudinary struct {
	client  *resty.Client
	cfg     config.Cloudinary
	apiBase string
}

func NewCloudinary(c config.Cloudinary) *Cloudinary {
	return &Cloudinary{
		client:  resty.New().SetTimeout(30 * time.Second),
		cfg:     c,
		apiBase: cloudinaryAPI,
	}
}

type cloudinaryResult struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Cloudinary) Put(ctx context.Context, obj Object) (string, error) {
	var out cloudinaryResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", obj.Name, obj.Body).
		SetFormData(map[string]string{
			"upload_preset": c.cfg.UploadPreset,
			"folder":        c.cfg.Folder,
		}).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("%s/%s/auto/upload", c.apiBase, c.cfg.CloudName))
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.IsError() || out.SecureURL == "" {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("cloudinary upload: %s", msg)
	}
	return out.SecureURL, nil
}
