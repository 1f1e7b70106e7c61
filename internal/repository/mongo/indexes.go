package mongo

import (
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// Index creation failures are not fatal: queries still work, only slower.
func logIndexError(collection *mongo.Collection, err error) {
	log.WithField("collection", collection.Name()).Warnf("failed to create indexes: %s", err)
}
