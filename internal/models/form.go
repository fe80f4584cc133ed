package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type FieldType string

const (
	FieldText           FieldType = "text"
	FieldEmail          FieldType = "email"
	FieldNumber         FieldType = "number"
	FieldSelect         FieldType = "select"
	FieldCheckboxSingle FieldType = "checkbox-single"
	FieldCheckboxMulti  FieldType = "checkbox-multi"
	FieldFile           FieldType = "file"
)

// FieldTypes lists every supported kind, in the order the builder shows them.
var FieldTypes = []FieldType{
	FieldText, FieldEmail, FieldNumber, FieldSelect,
	FieldCheckboxSingle, FieldCheckboxMulti, FieldFile,
}

func (t FieldType) Valid() bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// HasOptions reports whether the kind renders a list of choices.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldCheckboxMulti
}

type FileConstraints struct {
	AllowedExtensions []string `bson:"allowed_extensions,omitempty" json:"allowedExtensions,omitempty"`
	MaxSizeMB         float64  `bson:"max_size_mb,omitempty" json:"maxSizeMB,omitempty"`
}

type Field struct {
	ID       string           `bson:"id" json:"id"`
	Label    string           `bson:"label" json:"label"`
	Type     FieldType        `bson:"type" json:"type"`
	Required bool             `bson:"required" json:"required"`
	Options  []string         `bson:"options,omitempty" json:"options,omitempty"`
	File     *FileConstraints `bson:"file_constraints,omitempty" json:"fileConstraints,omitempty"`
}

type Form struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID     bson.ObjectID `bson:"event_id" json:"eventId"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Fields      []Field       `bson:"fields" json:"fields"`
	CreatedBy   bson.ObjectID `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// FieldByID returns the field with the given id, or nil.
func (f *Form) FieldByID(id string) *Field {
	for i := range f.Fields {
		if f.Fields[i].ID == id {
			return &f.Fields[i]
		}
	}
	return nil
}
