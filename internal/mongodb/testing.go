package mongodb

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CreateTestDatabase connects to the MongoDB deployment named by
// TEST_MONGODB_URL. Transaction tests need a replica set; a standalone
// server rejects session transactions.
func CreateTestDatabase() (*mongo.Client, *mongo.Database) {
	connString := os.Getenv("TEST_MONGODB_URL")
	if connString == "" {
		panic("TEST_MONGODB_URL must be set.")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connString))
	if err != nil {
		panic("Could not connect to MongoDB.")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		panic("Could not reach the MongoDB primary.")
	}

	databaseName := os.Getenv("TEST_MONGODB_DATABASE")
	if databaseName == "" {
		databaseName = "gym_test"
	}
	return client, client.Database(databaseName)
}

func DropCollections(database *mongo.Database) {
	for _, name := range []string{MEMBER_COLLECTION, COURSE_COLLECTION} {
		if err := database.Collection(name).Drop(context.Background()); err != nil {
			panic("Could not drop MongoDB collections.")
		}
	}
}
