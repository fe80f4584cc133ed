package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ctc-webbase/internal/models"
)

type FormRepository interface {
	InsertForm(ctx context.Context, form *models.Form) error
	// FindFormForEvent returns the form only if it belongs to eventID.
	FindFormForEvent(ctx context.Context, formID, eventID bson.ObjectID) (*models.Form, error)
	ListFormsByEvent(ctx context.Context, eventID bson.ObjectID) ([]models.Form, error)
	UpdateForm(ctx context.Context, formID bson.ObjectID, set bson.M) (*models.Form, error)
	DeleteForm(ctx context.Context, formID bson.ObjectID) error
	// NormalizeEventRefs rewrites string event ids into ObjectIDs and reports
	// how many documents changed.
	NormalizeEventRefs(ctx context.Context) (int64, error)
}

type mongoFormRepo struct {
	forms       *mongo.Collection
	submissions *mongo.Collection
	legacyRefs  bool
}

// NewFormRepository builds the form store. With legacyRefs set, lookups by
// event also match forms whose event_id was stored as a hex string.
func NewFormRepository(db *mongo.Database, legacyRefs bool) FormRepository {
	return &mongoFormRepo{
		forms:       db.Collection(ColForms),
		submissions: db.Collection(ColSubmissions),
		legacyRefs:  legacyRefs,
	}
}

func (r *mongoFormRepo) eventRef(eventID bson.ObjectID) any {
	if r.legacyRefs {
		return bson.M{"$in": bson.A{eventID, eventID.Hex()}}
	}
	return eventID
}

func (r *mongoFormRepo) InsertForm(ctx context.Context, form *models.Form) error {
	if form.ID.IsZero() {
		form.ID = bson.NewObjectID()
	}
	if _, err := r.forms.InsertOne(ctx, form); err != nil {
		return fmt.Errorf("insert form: %w", err)
	}
	return nil
}

func (r *mongoFormRepo) FindFormForEvent(ctx context.Context, formID, eventID bson.ObjectID) (*models.Form, error) {
	var form models.Form
	filter := bson.M{"_id": formID, "event_id": r.eventRef(eventID)}
	if err := r.forms.FindOne(ctx, filter).Decode(&form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *mongoFormRepo) ListFormsByEvent(ctx context.Context, eventID bson.ObjectID) ([]models.Form, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.forms.Find(ctx, bson.M{"event_id": r.eventRef(eventID)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, fmt.Errorf("decode forms: %w", err)
	}
	return forms, nil
}

func (r *mongoFormRepo) UpdateForm(ctx context.Context, formID bson.ObjectID, set bson.M) (*models.Form, error) {
	if set == nil {
		set = bson.M{}
	}
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var form models.Form
	err := r.forms.FindOneAndUpdate(ctx, bson.M{"_id": formID}, bson.M{"$set": set}, opts).Decode(&form)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// DeleteForm removes the form and every submission made to it, submissions
// first.
func (r *mongoFormRepo) DeleteForm(ctx context.Context, formID bson.ObjectID) error {
	if _, err := r.submissions.DeleteMany(ctx, bson.M{"form_id": formID}); err != nil {
		return fmt.Errorf("delete submissions: %w", err)
	}
	res, err := r.forms.DeleteOne(ctx, bson.M{"_id": formID})
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoFormRepo) NormalizeEventRefs(ctx context.Context) (int64, error) {
	filter := bson.M{"event_id": bson.M{"$type": "string"}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{"event_id": bson.M{"$toObjectId": "$event_id"}}}},
	}

	var total int64
	for _, col := range []*mongo.Collection{r.forms, r.submissions} {
		res, err := col.UpdateMany(ctx, filter, update)
		if err != nil {
			return total, fmt.Errorf("normalize %s: %w", col.Name(), err)
		}
		total += res.ModifiedCount
	}
	return total, nil
}
