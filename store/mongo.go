package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements RecordStore on a MongoDB database. Documents carry their
// own opaque "id" field; Mongo's _id is left to the driver.
type Mongo struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongo(ctx context.Context, uri, database string, timeout time.Duration) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{db: client.Database(database), timeout: timeout}, nil
}

func (m *Mongo) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.timeout)
}

func (m *Mongo) CreateDocument(ctx context.Context, collection, id string, doc any) error {
	ctx, cancel := m.bound(ctx)
	defer cancel()
	_, err := m.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (m *Mongo) GetDocument(ctx context.Context, collection, id string, out any) error {
	ctx, cancel := m.bound(ctx)
	defer cancel()
	err := m.db.Collection(collection).FindOne(ctx, bson.M{"id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) UpdateDocument(ctx context.Context, collection, id string, patch map[string]any, out any) error {
	ctx, cancel := m.bound(ctx)
	defer cancel()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(patch)}, opts).
		Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) ListDocuments(ctx context.Context, collection string, q ListQuery, out any) (int64, error) {
	ctx, cancel := m.bound(ctx)
	defer cancel()

	filter := bson.M{}
	if q.Filter != nil {
		filter = bson.M(q.Filter)
	}
	coll := m.db.Collection(collection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	opts := options.Find()
	if q.OrderBy != "" {
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: -1}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return 0, err
	}
	return total, nil
}
