// Package formrender interprets a form's field schema: which inputs to show,
// what they start with, how answers change, and which answer blocks submit.
package formrender

import (
	"strings"

	"ctc-webbase/internal/models"
	"ctc-webbase/internal/referral"
)

const DefaultMaxFileMB = 5

// RenderedField is one input as the client should draw it.
type RenderedField struct {
	models.Field
	Disabled bool `json:"disabled"`
}

type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Plan is the render state of one form for one visitor.
type Plan struct {
	FormID      string                  `json:"formId"`
	EventID     string                  `json:"eventId"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Fields      []RenderedField         `json:"fields"`
	Answers     Answers                 `json:"initialAnswers"`
	Uploads     map[string]UploadedFile `json:"uploads"`

	maxFileMB float64
}

// NewPlan lays out the form's fields in stored order and seeds the answer
// map. currentEventID is the event the form is being filled for.
func NewPlan(form *models.Form, staged referral.Staged, currentEventID string, defaultMaxMB float64) *Plan {
	if defaultMaxMB <= 0 {
		defaultMaxMB = DefaultMaxFileMB
	}
	p := &Plan{
		FormID:      form.ID.Hex(),
		EventID:     currentEventID,
		Title:       form.Title,
		Description: form.Description,
		Fields:      make([]RenderedField, 0, len(form.Fields)),
		Answers:     make(Answers, len(form.Fields)),
		Uploads:     map[string]UploadedFile{},
		maxFileMB:   defaultMaxMB,
	}

	for _, f := range form.Fields {
		rf := RenderedField{Field: f}
		if f.Type.HasOptions() || len(f.Options) > 0 {
			rf.Options = VisibleOptions(f.Options)
		}
		if f.Type == models.FieldFile {
			c := models.FileConstraints{MaxSizeMB: defaultMaxMB}
			if f.File != nil {
				c.AllowedExtensions = f.File.AllowedExtensions
				if f.File.MaxSizeMB > 0 {
					c.MaxSizeMB = f.File.MaxSizeMB
				}
			}
			rf.File = &c
		}

		if IsReferralField(f.Label) {
			rf.Disabled = true
			p.Answers[f.ID] = ReferralValue(staged, currentEventID)
		} else {
			p.Answers[f.ID] = InitialValue(f)
		}
		p.Fields = append(p.Fields, rf)
	}
	return p
}

// IsReferralField reports whether a field is the read-only "referred by"
// input, recognized by its label.
func IsReferralField(label string) bool {
	return strings.Contains(strings.ToLower(label), "referred")
}

// ReferralValue is what a "referred by" field shows: the staged lead's name
// when the context belongs to this event, otherwise "none".
func ReferralValue(staged referral.Staged, currentEventID string) string {
	if staged.MatchesEvent(currentEventID) && staged.TechnicalLeadName != "" {
		return staged.TechnicalLeadName
	}
	return models.NoReferral
}

// InitialValue is the empty answer for a field kind.
func InitialValue(f models.Field) any {
	switch f.Type {
	case models.FieldCheckboxMulti:
		return []string{}
	case models.FieldCheckboxSingle:
		return false
	case models.FieldFile:
		return nil
	default:
		return ""
	}
}

// VisibleOptions drops blank and whitespace-only options.
func VisibleOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if strings.TrimSpace(o) != "" {
			out = append(out, o)
		}
	}
	return out
}

func (p *Plan) field(id string) *RenderedField {
	for i := range p.Fields {
		if p.Fields[i].ID == id {
			return &p.Fields[i]
		}
	}
	return nil
}

// Schema returns the rendered fields as plain field definitions, in order.
func (p *Plan) Schema() []models.Field {
	out := make([]models.Field, len(p.Fields))
	for i, f := range p.Fields {
		out[i] = f.Field
	}
	return out
}

// Validate runs the pre-submit required-field check over the plan's answers.
func (p *Plan) Validate() error {
	return Validate(p.Schema(), p.Answers)
}
