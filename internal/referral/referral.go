// Package referral builds technical-lead referral links and decides which
// lead, if any, a submission is credited to.
package referral

import (
	"encoding/base64"
	"net/url"
	"strings"

	"ctc-webbase/internal/models"
)

const codeLength = 8

// Staged is the referral context a visitor carries from a lead's link to the
// registration form. JSON names match the keys browsers keep in session
// storage.
type Staged struct {
	TechnicalLeadID   string `json:"technicalLeadId"`
	TechnicalLeadName string `json:"technicalLeadName"`
	ReferralEventID   string `json:"referralEventId"`
	ReferralCode      string `json:"referralCode"`
}

// MatchesEvent reports whether the staged context belongs to eventID.
func (s Staged) MatchesEvent(eventID string) bool {
	return s.ReferralEventID != "" && s.ReferralEventID == eventID
}

// Extract returns the referral metadata to attach to a submission for
// currentEventID. Context staged for another event never carries over.
func Extract(s Staged, currentEventID string) models.Referral {
	if !s.MatchesEvent(currentEventID) || s.TechnicalLeadID == "" {
		return models.Referral{ReferredBy: models.NoReferral}
	}
	return models.Referral{
		ReferredBy:     s.TechnicalLeadID,
		ReferredByName: s.TechnicalLeadName,
		ReferralCode:   s.ReferralCode,
	}
}

// Code is the short public code for a lead: the first eight alphanumeric
// characters of the base64 encoding of the lead id.
func Code(leadID string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(leadID))
	var b strings.Builder
	for _, r := range enc {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == codeLength {
				break
			}
		}
	}
	return b.String()
}

// VerifyCode reports whether code was generated for leadID.
func VerifyCode(leadID, code string) bool {
	return leadID != "" && code != "" && Code(leadID) == code
}

// Link builds {origin}/events/{eventID}?ref={code}&tlId={leadID}.
func Link(origin, eventID, leadID string) string {
	q := url.Values{}
	q.Set("ref", Code(leadID))
	q.Set("tlId", leadID)
	return strings.TrimRight(origin, "/") + "/events/" + url.PathEscape(eventID) + "?" + q.Encode()
}
