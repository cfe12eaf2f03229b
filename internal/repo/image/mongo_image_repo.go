package image_repo

import (
	"context"
	"fmt"

	"shirtpay/internal/domain/payment"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "images"

// MongoImageRepo persists image records in the images collection.
// Records are insert-only: created once per successful capture, never
// updated or deleted.
type MongoImageRepo struct {
	coll *mongo.Collection
}

func NewMongoImageRepo(db *mongo.Database) payment.ImageRepo {
	return &MongoImageRepo{coll: db.Collection(collectionName)}
}

type imageDoc struct {
	ID  bson.ObjectID `bson:"_id,omitempty"`
	URL string        `bson:"url"`
}

func (r *MongoImageRepo) Create(ctx context.Context, url string) (payment.Image, error) {
	res, err := r.coll.InsertOne(ctx, imageDoc{URL: url})
	if err != nil {
		return payment.Image{}, fmt.Errorf("insert image record: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return payment.Image{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return payment.Image{ID: id.Hex(), URL: url}, nil
}
