package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ctc-webbase/internal/models"
)

type EventRepository interface {
	GetEventByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	GetCommunityByID(ctx context.Context, id bson.ObjectID) (*models.Community, error)
}

type mongoEventRepo struct {
	events      *mongo.Collection
	communities *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &mongoEventRepo{
		events:      db.Collection(ColEvents),
		communities: db.Collection(ColCommunities),
	}
}

// GetEventByID returns mongo.ErrNoDocuments when the event does not exist.
func (r *mongoEventRepo) GetEventByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var event models.Event
	if err := r.events.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *mongoEventRepo) GetCommunityByID(ctx context.Context, id bson.ObjectID) (*models.Community, error) {
	var community models.Community
	if err := r.communities.FindOne(ctx, bson.M{"_id": id}).Decode(&community); err != nil {
		return nil, err
	}
	return &community, nil
}
