package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// EventReferralCount is one row of a lead's top events.
type EventReferralCount struct {
	EventID    bson.ObjectID `bson:"_id" json:"eventId"`
	EventTitle string        `bson:"event_title" json:"eventTitle"`
	Count      int64         `bson:"count" json:"count"`
}

// RecentReferral is a referred submission joined with its submitter, event
// and form.
type RecentReferral struct {
	SubmissionID bson.ObjectID `bson:"_id" json:"id"`
	UserName     string        `bson:"user_name" json:"userName"`
	UserEmail    string        `bson:"user_email" json:"userEmail"`
	EventID      bson.ObjectID `bson:"event_id" json:"eventId"`
	EventTitle   string        `bson:"event_title" json:"eventTitle"`
	FormTitle    string        `bson:"form_title" json:"formTitle"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}

// MonthlyCount is the number of referrals in one calendar month, "YYYY-MM".
type MonthlyCount struct {
	Month string `bson:"_id" json:"month"`
	Count int64  `bson:"count" json:"count"`
}
