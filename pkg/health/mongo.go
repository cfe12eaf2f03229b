package health

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoChecker checks MongoDB connectivity.
type MongoChecker struct {
	client *mongo.Client
}

// NewMongoChecker creates a new MongoDB health checker.
func NewMongoChecker(client *mongo.Client) *MongoChecker {
	return &MongoChecker{client: client}
}

// Name returns "mongo".
func (c *MongoChecker) Name() string {
	return "mongo"
}

// Check pings the MongoDB deployment.
func (c *MongoChecker) Check(ctx context.Context) Result {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}
