package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexPlan() []collectionIndexes {
	return []collectionIndexes{
		{"users", []mongo.IndexModel{{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		}}},
		{"forms", []mongo.IndexModel{{
			Keys:    bson.D{{Key: "event_id", Value: 1}},
			Options: options.Index().SetName("event_id"),
		}}},
		{"submissions", []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "form_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("form_created"),
			},
			{
				Keys:    bson.D{{Key: "referred_by", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("referrer_created"),
			},
			{
				// not unique: repeat registrations are a config decision
				Keys:    bson.D{{Key: "form_id", Value: 1}, {Key: "user_id", Value: 1}},
				Options: options.Index().SetName("form_user"),
			},
		}},
	}
}

// EnsureIndexes creates every index the service relies on. Existing indexes
// with the same definition are left alone by the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ci := range indexPlan() {
		if _, err := db.Collection(ci.collection).Indexes().CreateMany(ctx, ci.models); err != nil {
			return fmt.Errorf("indexes on %s: %w", ci.collection, err)
		}
	}
	return nil
}
