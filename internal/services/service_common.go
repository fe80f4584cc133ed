package services

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ctc-webbase/internal/apperr"
)

func parseID(what, hex string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, apperr.Validation(fmt.Sprintf("invalid %s id", what))
	}
	return oid, nil
}

// lookupErr turns a driver error from a single-document read into an API
// error, treating a missing document as not found.
func lookupErr(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(what + " not found")
	}
	return apperr.Internal(err)
}
