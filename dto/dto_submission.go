package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"ctc-webbase/internal/referral"
)

type AnswerInput struct {
	FieldID string `json:"fieldId"`
	Value   any    `json:"value"`
}

// SubmitRequest body for POST /api/events/:id/forms/:formId/submit.
//
// Referral context comes either as referralToken, issued by the resolve
// endpoint, or as the raw values a browser kept in session storage.
type SubmitRequest struct {
	Answers         []AnswerInput `json:"answers"`
	ReferredBy      string        `json:"referredBy,omitempty"`
	ReferredByName  string        `json:"referredByName,omitempty"`
	ReferralCode    string        `json:"referralCode,omitempty"`
	ReferralEventID string        `json:"referralEventId,omitempty"`
	ReferralToken   string        `json:"referralToken,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Answers, validation.NotNil),
	)
}

// Staged returns the plain referral values as a staged context.
func (r *SubmitRequest) Staged() referral.Staged {
	return referral.Staged{
		TechnicalLeadID:   r.ReferredBy,
		TechnicalLeadName: r.ReferredByName,
		ReferralEventID:   r.ReferralEventID,
		ReferralCode:      r.ReferralCode,
	}
}

type SubmitResponse struct {
	ID string `json:"id"`
}

type UploadResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}
