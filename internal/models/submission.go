package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NoReferral is stored in referred_by when a submission was not made through
// a technical lead's link.
const NoReferral = "none"

type Answer struct {
	FieldID string `bson:"field_id" json:"fieldId"`
	Value   any    `bson:"value" json:"value"`
}

type Referral struct {
	ReferredBy     string `bson:"referred_by" json:"referredBy"`
	ReferredByName string `bson:"referred_by_name,omitempty" json:"referredByName,omitempty"`
	ReferralCode   string `bson:"referral_code,omitempty" json:"referralCode,omitempty"`
}

// Attributed reports whether a technical lead is credited.
func (r Referral) Attributed() bool {
	return r.ReferredBy != "" && r.ReferredBy != NoReferral
}

type Submission struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID      bson.ObjectID `bson:"form_id" json:"formId"`
	EventID     bson.ObjectID `bson:"event_id" json:"eventId"`
	UserID      bson.ObjectID `bson:"user_id" json:"userId"`
	Answers     []Answer      `bson:"answers" json:"answers"`
	Referral    `bson:",inline"`
	Shortlisted bool       `bson:"shortlisted" json:"shortlisted"`
	CheckedIn   bool       `bson:"checked_in" json:"checkedIn"`
	CheckedInAt *time.Time `bson:"checked_in_at,omitempty" json:"checkedInAt,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
}

// SubmissionWithUser is a submission joined with its submitter.
type SubmissionWithUser struct {
	Submission `bson:",inline"`
	UserName   string `bson:"user_name" json:"userName"`
	UserEmail  string `bson:"user_email" json:"userEmail"`
}
