package mongo

import (
	"alcyxob/fitness-planner/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// mongoTransactor implements repository.Transactor with multi-document
// transactions. Requires a replica set or sharded cluster.
type mongoTransactor struct {
	client *mongo.Client
}

// NewMongoTransactor creates a Transactor bound to a client.
func NewMongoTransactor(client *mongo.Client) repository.Transactor {
	return &mongoTransactor{client: client}
}

// WithTransaction runs fn inside a session transaction. The mongo.SessionContext
// handed to fn is a context.Context, so repository calls made with it join the
// transaction. The driver retries fn on transient transaction errors.
func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	}, txOpts)
	return err
}
