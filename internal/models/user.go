package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleOperator      Role = "operator"
	RoleTechnicalLead Role = "technicalLead"
	RoleStudent       Role = "student"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash,omitempty" json:"-"`
	Role         Role          `bson:"role" json:"role"`
	CreatedAt    time.Time     `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
