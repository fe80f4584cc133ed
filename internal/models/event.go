package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Event struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CommunityID bson.ObjectID `bson:"community_id" json:"communityId"`
	CreatedBy   bson.ObjectID `bson:"created_by" json:"createdBy"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Date        *time.Time    `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt   *time.Time    `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   *time.Time    `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

type Community struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string          `bson:"name" json:"name"`
	CreatedBy bson.ObjectID   `bson:"created_by" json:"createdBy"`
	Admins    []bson.ObjectID `bson:"admins" json:"admins"`
	Members   []bson.ObjectID `bson:"members" json:"members"`
	Status    string          `bson:"status" json:"status"` // pending, approved
}

func (c *Community) IsAdmin(uid bson.ObjectID) bool {
	return containsID(c.Admins, uid)
}

func (c *Community) IsMember(uid bson.ObjectID) bool {
	return containsID(c.Members, uid)
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
