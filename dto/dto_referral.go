package dto

import (
	"time"

	"ctc-webbase/internal/models"
)

type ReferralLinkResponse struct {
	Link    string `json:"link"`
	Code    string `json:"code"`
	EventID string `json:"eventId"`
}

// ResolveReferralResponse carries the staged keys under the names clients
// store them as, plus a signed token to send back on submit.
type ResolveReferralResponse struct {
	TechnicalLeadID   string    `json:"technicalLeadId"`
	TechnicalLeadName string    `json:"technicalLeadName"`
	ReferralEventID   string    `json:"referralEventId"`
	ReferralCode      string    `json:"referralCode"`
	ReferralToken     string    `json:"referralToken"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

type ReferralStats struct {
	TotalReferrals   int64                       `json:"totalReferrals"`
	ThisMonth        int64                       `json:"thisMonth"`
	ThisWeek         int64                       `json:"thisWeek"`
	TopEvents        []models.EventReferralCount `json:"topEvents"`
	RecentReferrals  []models.RecentReferral     `json:"recentReferrals"`
	MonthlyBreakdown []models.MonthlyCount       `json:"monthlyBreakdown"`
}
