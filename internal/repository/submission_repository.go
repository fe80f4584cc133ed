package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ctc-webbase/internal/models"
)

type SubmissionRepository interface {
	InsertSubmission(ctx context.Context, s *models.Submission) error
	// ListByFormWithUsers returns a form's submissions, newest first, each
	// joined with the submitter's name and email.
	ListByFormWithUsers(ctx context.Context, formID bson.ObjectID) ([]models.SubmissionWithUser, error)
	ExistsForUser(ctx context.Context, formID, userID bson.ObjectID) (bool, error)
	// ReferrersOfForm lists the distinct leads credited by a form's submissions.
	ReferrersOfForm(ctx context.Context, formID bson.ObjectID) ([]string, error)
}

type mongoSubmissionRepo struct {
	submissions *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepo{submissions: db.Collection(ColSubmissions)}
}

func (r *mongoSubmissionRepo) InsertSubmission(ctx context.Context, s *models.Submission) error {
	if s.ID.IsZero() {
		s.ID = bson.NewObjectID()
	}
	if _, err := r.submissions.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *mongoSubmissionRepo) ListByFormWithUsers(ctx context.Context, formID bson.ObjectID) ([]models.SubmissionWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"form_id": formID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         ColUsers,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{
			"user_name":  bson.M{"$ifNull": bson.A{"$user.name", ""}},
			"user_email": bson.M{"$ifNull": bson.A{"$user.email", ""}},
		}}},
		{{Key: "$project", Value: bson.M{"user": 0}}},
	}

	cursor, err := r.submissions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate submissions: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.SubmissionWithUser{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return out, nil
}

func (r *mongoSubmissionRepo) ExistsForUser(ctx context.Context, formID, userID bson.ObjectID) (bool, error) {
	n, err := r.submissions.CountDocuments(ctx, bson.M{"form_id": formID, "user_id": userID})
	if err != nil {
		return false, fmt.Errorf("count submissions: %w", err)
	}
	return n > 0, nil
}

func (r *mongoSubmissionRepo) ReferrersOfForm(ctx context.Context, formID bson.ObjectID) ([]string, error) {
	filter := bson.M{"form_id": formID, "referred_by": bson.M{"$nin": bson.A{models.NoReferral, ""}}}
	var leads []string
	if err := r.submissions.Distinct(ctx, "referred_by", filter).Decode(&leads); err != nil {
		return nil, fmt.Errorf("distinct referrers: %w", err)
	}
	return leads, nil
}
