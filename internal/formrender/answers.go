package formrender

import (
	"fmt"
	"path/filepath"
	"strings"

	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
)

// Answers maps field id to the current value of that field.
type Answers map[string]any

// Set replaces the value of a field. Disabled fields cannot be changed and
// checkbox-multi fields only take a list.
func (p *Plan) Set(fieldID string, value any) error {
	f, err := p.editable(fieldID)
	if err != nil {
		return err
	}
	v, err := Coerce(f.Field, value)
	if err != nil {
		return err
	}
	p.Answers[fieldID] = v
	return nil
}

// Toggle flips one option of a checkbox-multi field: it is added when absent
// and exactly that option is removed when present.
func (p *Plan) Toggle(fieldID, option string) error {
	f, err := p.editable(fieldID)
	if err != nil {
		return err
	}
	if f.Type != models.FieldCheckboxMulti {
		return apperr.FieldInvalid(fieldID, fmt.Sprintf("%s is not a multi-choice field", f.Label))
	}

	current, _ := p.Answers[fieldID].([]string)
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, o := range current {
		if o == option && !removed {
			removed = true
			continue
		}
		next = append(next, o)
	}
	if !removed {
		next = append(next, option)
	}
	p.Answers[fieldID] = next
	return nil
}

// AttachFile records a finished upload; its URL becomes the field's answer.
func (p *Plan) AttachFile(fieldID string, up UploadedFile) error {
	f, err := p.editable(fieldID)
	if err != nil {
		return err
	}
	if f.Type != models.FieldFile {
		return apperr.FieldInvalid(fieldID, fmt.Sprintf("%s does not accept files", f.Label))
	}
	if err := CheckFile(f.Field, up.Name, up.Size, p.maxFileMB); err != nil {
		return err
	}
	p.Answers[fieldID] = up.URL
	p.Uploads[fieldID] = up
	return nil
}

// RemoveFile clears a file field.
func (p *Plan) RemoveFile(fieldID string) error {
	if _, err := p.editable(fieldID); err != nil {
		return err
	}
	p.Answers[fieldID] = nil
	delete(p.Uploads, fieldID)
	return nil
}

func (p *Plan) editable(fieldID string) (*RenderedField, error) {
	f := p.field(fieldID)
	if f == nil {
		return nil, apperr.FieldInvalid(fieldID, "unknown field")
	}
	if f.Disabled {
		return nil, apperr.FieldInvalid(fieldID, fmt.Sprintf("%s is read-only", f.Label))
	}
	return f, nil
}

// CheckFile validates a chosen file against the field's allowed extensions
// and size limit. A field without an explicit limit gets defaultMaxMB.
func CheckFile(f models.Field, name string, size int64, defaultMaxMB float64) error {
	maxMB := defaultMaxMB
	if maxMB <= 0 {
		maxMB = DefaultMaxFileMB
	}
	var allowed []string
	if f.File != nil {
		allowed = f.File.AllowedExtensions
		if f.File.MaxSizeMB > 0 {
			maxMB = f.File.MaxSizeMB
		}
	}

	if len(allowed) > 0 {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
		ok := false
		for _, a := range allowed {
			if strings.TrimPrefix(strings.ToLower(strings.TrimSpace(a)), ".") == ext && ext != "" {
				ok = true
				break
			}
		}
		if !ok {
			return apperr.FieldInvalid(f.ID, fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(allowed, ", ")))
		}
	}

	if float64(size) > maxMB*1024*1024 {
		return apperr.FieldInvalid(f.ID, fmt.Sprintf("File size exceeds %gMB limit", maxMB))
	}
	return nil
}
