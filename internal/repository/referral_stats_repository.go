package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ctc-webbase/internal/models"
)

// ReferralStatsRepository answers the technical-lead dashboard queries. A lead
// is identified by the hex id stored in submissions.referred_by.
type ReferralStatsRepository interface {
	// CountReferrals counts referred submissions, only those created at or
	// after since when it is non-zero.
	CountReferrals(ctx context.Context, leadID string, since time.Time) (int64, error)
	TopEvents(ctx context.Context, leadID string, limit int) ([]models.EventReferralCount, error)
	RecentReferrals(ctx context.Context, leadID string, limit int) ([]models.RecentReferral, error)
	MonthlyBreakdown(ctx context.Context, leadID string, loc *time.Location) ([]models.MonthlyCount, error)
}

type mongoReferralStatsRepo struct {
	submissions *mongo.Collection
}

func NewReferralStatsRepository(db *mongo.Database) ReferralStatsRepository {
	return &mongoReferralStatsRepo{submissions: db.Collection(ColSubmissions)}
}

func matchLead(leadID string) bson.D {
	return bson.D{{Key: "$match", Value: bson.M{"referred_by": leadID}}}
}

func (r *mongoReferralStatsRepo) CountReferrals(ctx context.Context, leadID string, since time.Time) (int64, error) {
	filter := bson.M{"referred_by": leadID}
	if !since.IsZero() {
		filter["created_at"] = bson.M{"$gte": since}
	}
	n, err := r.submissions.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count referrals: %w", err)
	}
	return n, nil
}

func (r *mongoReferralStatsRepo) TopEvents(ctx context.Context, leadID string, limit int) ([]models.EventReferralCount, error) {
	if limit <= 0 {
		limit = 5
	}
	pipeline := mongo.Pipeline{
		matchLead(leadID),
		{{Key: "$group", Value: bson.M{"_id": "$event_id", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         ColEvents,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "event",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$event", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"count":       1,
			"event_title": bson.M{"$ifNull": bson.A{"$event.title", "Unknown Event"}},
		}}},
	}

	out := []models.EventReferralCount{}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, fmt.Errorf("top events: %w", err)
	}
	return out, nil
}

func (r *mongoReferralStatsRepo) RecentReferrals(ctx context.Context, leadID string, limit int) ([]models.RecentReferral, error) {
	if limit <= 0 {
		limit = 10
	}
	lookup := func(from, local, as string) bson.D {
		return bson.D{{Key: "$lookup", Value: bson.M{
			"from":         from,
			"localField":   local,
			"foreignField": "_id",
			"as":           as,
		}}}
	}
	unwind := func(path string) bson.D {
		return bson.D{{Key: "$unwind", Value: bson.M{"path": path, "preserveNullAndEmptyArrays": true}}}
	}

	pipeline := mongo.Pipeline{
		matchLead(leadID),
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		lookup(ColUsers, "user_id", "user"), unwind("$user"),
		lookup(ColEvents, "event_id", "event"), unwind("$event"),
		lookup(ColForms, "form_id", "form"), unwind("$form"),
		{{Key: "$project", Value: bson.M{
			"event_id":    1,
			"created_at":  1,
			"user_name":   bson.M{"$ifNull": bson.A{"$user.name", ""}},
			"user_email":  bson.M{"$ifNull": bson.A{"$user.email", ""}},
			"event_title": bson.M{"$ifNull": bson.A{"$event.title", ""}},
			"form_title":  bson.M{"$ifNull": bson.A{"$form.title", ""}},
		}}},
	}

	out := []models.RecentReferral{}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, fmt.Errorf("recent referrals: %w", err)
	}
	return out, nil
}

func (r *mongoReferralStatsRepo) MonthlyBreakdown(ctx context.Context, leadID string, loc *time.Location) ([]models.MonthlyCount, error) {
	if loc == nil {
		loc = time.UTC
	}
	pipeline := mongo.Pipeline{
		matchLead(leadID),
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m",
				"date":     "$created_at",
				"timezone": loc.String(),
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	out := []models.MonthlyCount{}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, fmt.Errorf("monthly breakdown: %w", err)
	}
	return out, nil
}

func (r *mongoReferralStatsRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := r.submissions.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
