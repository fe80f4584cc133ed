package dto

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"ctc-webbase/internal/models"
)

type FileConstraintsInput struct {
	AllowedExtensions []string `json:"allowedExtensions"`
	MaxSizeMB         float64  `json:"maxSizeMB"`
}

type FieldInput struct {
	ID       string                `json:"id"`
	Label    string                `json:"label"`
	Type     models.FieldType      `json:"type"`
	Required bool                  `json:"required"`
	Options  []string              `json:"options,omitempty"`
	File     *FileConstraintsInput `json:"fileConstraints,omitempty"`
}

func (f FieldInput) Validate() error {
	types := make([]any, len(models.FieldTypes))
	for i, t := range models.FieldTypes {
		types[i] = t
	}
	return validation.ValidateStruct(&f,
		validation.Field(&f.ID, validation.Required, validation.Length(1, 64)),
		validation.Field(&f.Label, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Type, validation.Required, validation.In(types...)),
		validation.Field(&f.File, validation.By(func(v any) error {
			c, _ := v.(*FileConstraintsInput)
			if c != nil && c.MaxSizeMB < 0 {
				return fmt.Errorf("maxSizeMB must not be negative")
			}
			return nil
		})),
	)
}

func (f FieldInput) Model() models.Field {
	out := models.Field{
		ID:       strings.TrimSpace(f.ID),
		Label:    strings.TrimSpace(f.Label),
		Type:     f.Type,
		Required: f.Required,
		Options:  f.Options,
	}
	if f.File != nil {
		out.File = &models.FileConstraints{
			AllowedExtensions: f.File.AllowedExtensions,
			MaxSizeMB:         f.File.MaxSizeMB,
		}
	}
	return out
}

// CreateFormRequest body for POST /api/events/:id/forms
type CreateFormRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Fields      []FieldInput `json:"fields"`
}

func (r *CreateFormRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Fields),
	); err != nil {
		return err
	}
	return uniqueFieldIDs(r.Fields)
}

// UpdateFormRequest body for PATCH /api/events/:id/forms/:formId. Absent
// members are left unchanged; a present fields list replaces the schema.
type UpdateFormRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Fields      *[]FieldInput `json:"fields,omitempty"`
}

func (r *UpdateFormRequest) Validate() error {
	if r.Title == nil && r.Description == nil && r.Fields == nil {
		return fmt.Errorf("nothing to update")
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return fmt.Errorf("title: cannot be blank")
	}
	if r.Fields == nil {
		return nil
	}
	if err := validation.Validate(*r.Fields); err != nil {
		return err
	}
	return uniqueFieldIDs(*r.Fields)
}

func uniqueFieldIDs(fields []FieldInput) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		id := strings.TrimSpace(f.ID)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("fields: duplicate field id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func FieldModels(in []FieldInput) []models.Field {
	out := make([]models.Field, len(in))
	for i, f := range in {
		out[i] = f.Model()
	}
	return out
}

// FormDetailResponse is a form with every submission made to it.
type FormDetailResponse struct {
	Form        *models.Form                `json:"form"`
	Submissions []models.SubmissionWithUser `json:"submissions"`
}
