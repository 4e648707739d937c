package server

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gridboard/gridboard/pkg/cache"
	"github.com/gridboard/gridboard/pkg/errors"
)

// MongoStore is a MongoDB-backed dashboard store for multi-instance
// deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and returns a store backed by the
// "dashboards" collection of the named database. The initial ping is
// retried with backoff so the server can start alongside the database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect mongodb")
	}

	err = cache.RetryWithBackoff(ctx, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("dashboards"),
	}, nil
}

func (s *MongoStore) Put(ctx context.Context, d *Dashboard) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "store dashboard %q", d.ID)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Dashboard, error) {
	var d Dashboard
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeDashboardNotFound, "dashboard %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load dashboard %q", id)
	}
	return &d, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Dashboard, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list dashboards")
	}
	defer cursor.Close(ctx)

	out := []Dashboard{}
	for cursor.Next(ctx) {
		var d Dashboard
		if err := cursor.Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "decode dashboard")
		}
		out = append(out, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list dashboards")
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete dashboard %q", id)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
